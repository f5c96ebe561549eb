package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"legal-letter-be/internal/config"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/repository/specification"
	"legal-letter-be/internal/repository/unitofwork"
	"legal-letter-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the first admin account, which cannot self-register unless ALLOW_ADMIN_SIGNUP is set.
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (min 6 characters)")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	if *email == "" || len(*password) < 6 {
		log.Fatal("Usage: seed -email admin@example.com -password <min 6 chars> [-name Name]")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := seedAdmin(context.Background(), unitofwork.NewRepositoryFactory(db), *email, *password, *name); err != nil {
		color.Red("Seeding failed: %v", err)
		log.Fatal(err)
	}
}

func seedAdmin(ctx context.Context, factory unitofwork.RepositoryFactory, email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	uow := factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return err
	}
	if existing != nil {
		color.Yellow("User %s already exists, skipping...", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         entity.UserRoleAdmin,
		Subscription: entity.NewFreeSubscription(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return err
	}
	if err := uow.AdminProfileRepository().Create(ctx, &entity.AdminProfile{
		Id:          uuid.New(),
		UserId:      user.Id,
		Permissions: entity.DefaultAdminPermissions,
		CreatedAt:   now,
	}); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	color.Green("Created admin %s (%s)", user.Email, user.Id)
	return nil
}
