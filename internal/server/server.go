package server

import (
	"time"

	"legal-letter-be/internal/bootstrap"
	"legal-letter-be/internal/config"
	"legal-letter-be/internal/controller"
	"legal-letter-be/internal/pkg/serverutils"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: serverutils.ErrorHandler(container.Logger),
	})

	// Middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Content-Type, Authorization, Stripe-Signature",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	if cfg.App.OtelEnabled {
		app.Use(otelfiber.Middleware())
	}

	guards := controller.Guards{
		Auth:          serverutils.JwtMiddleware(cfg.Auth.JWTSecret),
		AuthLimit:     newLimiter(container.RateLimitStorage, 10, time.Minute),
		GenerateLimit: newLimiter(container.RateLimitStorage, 20, time.Hour),
	}

	// Routes
	registerRoutes(app, container, guards)

	app.Use(func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// newLimiter keys on the caller IP. A nil storage keeps the windows in process memory.
func newLimiter(storage fiber.Storage, max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests, please try again later")
		},
		Storage: storage,
	})
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("HTTP", "Server is running", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(10 * time.Second)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container, guards controller.Guards) {
	api := app.Group("/api")

	c.SystemController.RegisterRoutes(api)
	c.AuthController.RegisterRoutes(api, guards)
	c.PaymentController.RegisterRoutes(api, guards)
	c.LetterController.RegisterRoutes(api, guards)
	c.ReferralController.RegisterRoutes(api, guards)
	c.AdminController.RegisterRoutes(api, guards)
}
