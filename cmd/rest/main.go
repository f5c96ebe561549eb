package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legal-letter-be/internal/bootstrap"
	"legal-letter-be/internal/config"
	"legal-letter-be/internal/server"
	"legal-letter-be/internal/tracer"
	"legal-letter-be/pkg/database"

	"github.com/getsentry/sentry-go"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// 2. Tracing and error tracking
	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			EnableTracing:    true,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
			Environment:      cfg.App.Environment,
		}); err != nil {
			log.Printf("[WARN] Sentry init failed: %v", err)
		}
	}

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	if err := container.ConsumerService.Consume(consumerCtx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Run Server
	srv := server.New(cfg, container)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Server failed: %v", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := srv.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	stopConsumer()
	container.Close()

	if err := database.Close(gormDB); err != nil {
		log.Printf("Database close error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracer(ctx); err != nil {
		log.Printf("Tracer shutdown error: %v", err)
	}
	sentry.Flush(2 * time.Second)

	log.Println("Server stopped")
}
