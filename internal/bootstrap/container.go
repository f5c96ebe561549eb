package bootstrap

import (
	"context"
	"log"
	"time"

	"legal-letter-be/internal/config"
	"legal-letter-be/internal/controller"
	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/internal/pkg/mailer"
	"legal-letter-be/internal/repository/memory"
	"legal-letter-be/internal/repository/unitofwork"
	"legal-letter-be/internal/service"
	"legal-letter-be/pkg/database"
	"legal-letter-be/pkg/llm/factory"
	pktNats "legal-letter-be/pkg/nats"
	"legal-letter-be/pkg/payment/stripe"
	"legal-letter-be/pkg/ratelimit"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const referralCacheTTL = 5 * time.Minute

type Container struct {
	// Controllers
	SystemController   controller.ISystemController
	AuthController     controller.IAuthController
	PaymentController  controller.IPaymentController
	LetterController   controller.ILetterController
	ReferralController controller.IReferralController
	AdminController    controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
	// RateLimitStorage is nil when Redis is not configured; the limiter then keeps counters in memory.
	RateLimitStorage fiber.Storage

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.SenderAddr,
		sysLogger,
	)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	gateway := stripe.NewGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	if !gateway.VerifiesSignatures() {
		sysLogger.Warn("WEBHOOK", "Stripe webhook secret not configured, signatures will not be verified", nil)
	}

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	var sink service.EventSink
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sink = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	if cfg.App.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := ratelimit.Connect(ctx, cfg.App.RedisURL)
		cancel()
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		} else {
			storage := ratelimit.NewRedisStorage(rdb, "ratelimit:")
			c.RateLimitStorage = storage
			c.closers = append(c.closers, func() { _ = storage.Close() })
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, service.DomainEventsTopic, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, service.DomainEventsTopic, sink, sysLogger)

	referralCache := memory.NewReferralCache(referralCacheTTL)
	tokens := service.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(uowFactory, tokens, referralCache, publisherService, sysLogger, cfg.App.AllowAdminSignup)
	paymentService := service.NewPaymentService(uowFactory, gateway, cfg.App.ClientURL, publisherService, sysLogger)
	letterService := service.NewLetterService(uowFactory, llmProvider, emailService, publisherService, sysLogger)
	referralService := service.NewReferralService(uowFactory, referralCache, publisherService, sysLogger)
	adminService := service.NewAdminService(uowFactory)

	// 5. Controllers
	c.SystemController = controller.NewSystemController(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})
	c.AuthController = controller.NewAuthController(authService)
	c.PaymentController = controller.NewPaymentController(paymentService)
	c.LetterController = controller.NewLetterController(letterService)
	c.ReferralController = controller.NewReferralController(referralService)
	c.AdminController = controller.NewAdminController(adminService, paymentService)

	return c
}

// Close releases the event bus and the external connections, newest first.
// The database is owned by the caller.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
