// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/memory"
	"legal-letter-be/internal/repository/specification"
	"legal-letter-be/internal/repository/unitofwork"
	"legal-letter-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordHashCost  = 12
	minPasswordLength = 6
	usernameLength    = 5
	usernameAttempts  = 50
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	RegisterWithCoupon(ctx context.Context, req *dto.RegisterWithCouponRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	tokens           *TokenIssuer
	referralCache    *memory.ReferralCache
	events           IPublisherService
	logger           logger.ILogger
	allowAdminSignup bool
	hashCost         int
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokens *TokenIssuer,
	referralCache *memory.ReferralCache,
	publisher IPublisherService,
	log logger.ILogger,
	allowAdminSignup bool,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		tokens:           tokens,
		referralCache:    referralCache,
		events:           publisher,
		logger:           log,
		allowAdminSignup: allowAdminSignup,
		hashCost:         passwordHashCost,
	}
}

type registration struct {
	email    string
	password string
	name     string
	role     entity.UserRole
}

func (s *authService) normalize(email, password, name, role string) (*registration, error) {
	reg := &registration{
		email:    strings.ToLower(strings.TrimSpace(email)),
		password: password,
		name:     strings.TrimSpace(name),
		role:     entity.UserRole(strings.TrimSpace(role)),
	}
	if reg.email == "" || reg.password == "" || reg.name == "" {
		return nil, apperror.Validation("Email, password, and name are required")
	}
	if len(reg.password) < minPasswordLength {
		return nil, apperror.Validation("Password must be at least 6 characters")
	}
	if reg.role == "" {
		reg.role = entity.UserRoleUser
	}
	if !reg.role.Valid() {
		return nil, apperror.Validation("Invalid role")
	}
	if reg.role == entity.UserRoleAdmin && !s.allowAdminSignup {
		return nil, apperror.Forbidden("Admin registration is disabled")
	}
	return reg, nil
}

// usernameBase is the lowercased name without whitespace, cut to five runes.
func usernameBase(name string) string {
	var sb strings.Builder
	count := 0
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
		count++
		if count == usernameLength {
			break
		}
	}
	return sb.String()
}

// uniqueUsername appends 2, 3, ... to base until no contractor holds it.
func uniqueUsername(ctx context.Context, repo contract.ContractorProfileRepository, base string) (string, error) {
	candidate := base
	for i := 2; i < usernameAttempts+2; i++ {
		n, err := repo.Count(ctx, specification.ByUsername{Username: candidate})
		if err != nil {
			return "", err
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return "", fmt.Errorf("no free username for %q", base)
}

// createAccount stores the account, its role profile and, when code is set,
// the referral bookkeeping in a single transaction.
func (s *authService) createAccount(ctx context.Context, reg *registration, code string) (*entity.User, *entity.Referral, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.password), s.hashCost)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        reg.email,
		PasswordHash: string(hash),
		Name:         reg.name,
		Role:         reg.role,
		Subscription: entity.NewFreeSubscription(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: reg.email})
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, nil, apperror.Conflict("User already exists")
	}

	var ref *entity.Referral
	var referrer *entity.ContractorProfile
	if code != "" {
		ref, err = resolveReferral(ctx, uow, s.referralCache, code, now)
		if errors.Is(err, errReferralNotFound) {
			return nil, nil, apperror.NotFound("Invalid referral code")
		}
		if err != nil {
			return nil, nil, apperror.Internal(err)
		}

		referrer, err = uow.ContractorProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: ref.ContractorUserId})
		if err != nil {
			return nil, nil, apperror.Internal(err)
		}
		if referrer == nil && ref.CouponId == nil {
			// Cached username whose contractor is gone.
			if s.referralCache != nil {
				s.referralCache.Delete(code)
			}
			return nil, nil, apperror.NotFound("Invalid referral code")
		}

		contractorId := ref.ContractorUserId
		user.Subscription.DiscountPercent = ref.DiscountPercent
		user.Subscription.ReferredBy = &contractorId
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, nil, apperror.Conflict("User already exists")
		}
		return nil, nil, apperror.Internal(err)
	}

	switch reg.role {
	case entity.UserRoleContractor:
		username, err := uniqueUsername(ctx, uow.ContractorProfileRepository(), usernameBase(reg.name))
		if err != nil {
			return nil, nil, apperror.Internal(err)
		}
		profile := &entity.ContractorProfile{
			Id:        uuid.New(),
			UserId:    user.Id,
			Username:  username,
			CreatedAt: now,
		}
		if err := uow.ContractorProfileRepository().Create(ctx, profile); err != nil {
			return nil, nil, apperror.Internal(err)
		}
	case entity.UserRoleAdmin:
		profile := &entity.AdminProfile{
			Id:          uuid.New(),
			UserId:      user.Id,
			Permissions: entity.DefaultAdminPermissions,
			CreatedAt:   now,
		}
		if err := uow.AdminProfileRepository().Create(ctx, profile); err != nil {
			return nil, nil, apperror.Internal(err)
		}
	}

	if ref != nil {
		if ref.CouponId != nil {
			ok, err := uow.CouponRepository().Redeem(ctx, *ref.CouponId, now)
			if err != nil {
				return nil, nil, apperror.Internal(err)
			}
			if !ok {
				return nil, nil, apperror.NotFound("Invalid referral code")
			}
		}
		if referrer != nil {
			if err := uow.ContractorProfileRepository().IncrementReferral(ctx, referrer.Id); err != nil {
				return nil, nil, apperror.Internal(err)
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return user, ref, nil
}

func (s *authService) respond(user *entity.User, message string) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user, time.Now())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &dto.AuthResponse{
		User:    toUserDTO(user),
		Token:   token,
		Message: message,
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	reg, err := s.normalize(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		return nil, err
	}

	user, _, err := s.createAccount(ctx, reg, "")
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "User registered", map[string]interface{}{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
	})
	s.events.Publish(ctx, events.UserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
	})

	return s.respond(user, "Registration successful!")
}

func (s *authService) RegisterWithCoupon(ctx context.Context, req *dto.RegisterWithCouponRequest) (*dto.AuthResponse, error) {
	reg, err := s.normalize(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.CouponCode)
	if code == "" {
		return nil, apperror.Validation("Coupon code is required")
	}

	user, ref, err := s.createAccount(ctx, reg, code)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"user_id":       user.Id.String(),
		"contractor_id": ref.ContractorUserId.String(),
		"discount":      ref.DiscountPercent,
	}
	if ref.CouponId != nil {
		data["coupon_id"] = ref.CouponId.String()
	}
	s.logger.Info("AUTH", "User registered with referral", data)
	s.events.Publish(ctx, events.UserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
	})
	s.events.Publish(ctx, events.ReferralRedeemed, data)

	return s.respond(user, fmt.Sprintf("Registration successful with %d%% discount applied!", ref.DiscountPercent))
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByEmail{Email: email},
		specification.ActiveUsers{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	// Unknown, deactivated and wrong-password accounts look the same to the caller.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("AUTH", "Failed login attempt", map[string]interface{}{"email": email})
		return nil, apperror.Auth("Invalid email or password")
	}

	now := time.Now()
	if err := uow.UserRepository().TouchLastLogin(ctx, user.Id, now); err != nil {
		return nil, apperror.Internal(err)
	}
	user.LastLogin = &now

	s.events.Publish(ctx, events.UserLogin, map[string]interface{}{
		"user_id": user.Id.String(),
	})

	return s.respond(user, "Login successful!")
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: userId},
		specification.ActiveUsers{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found or deactivated")
	}
	return &dto.MeResponse{User: toUserDTO(user)}, nil
}
