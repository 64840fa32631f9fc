package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/vinsa/company-registry/internal/application/auth"
	"github.com/vinsa/company-registry/internal/application/usecase"
	"github.com/vinsa/company-registry/internal/application/validate"
	"github.com/vinsa/company-registry/internal/infrastructure/clerk"
	"github.com/vinsa/company-registry/internal/infrastructure/postgres"
	httpapi "github.com/vinsa/company-registry/internal/interfaces/http"
	"github.com/vinsa/company-registry/pkg/config"
	"github.com/vinsa/company-registry/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)

	syncUC := auth.NewUseCase(userRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo)

	verifier, err := clerk.NewVerifier(cfg.Clerk.JWTPublicKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Clerk JWT public key")
	}
	clerkAPI := clerk.NewClient(cfg.Clerk.SecretKey, cfg.Clerk.APIBaseURL)
	val := validate.New()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpapi.NewErrorHandler(log, cfg.App.IsProduction()),
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.FrontendURL,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimit.Max,
		Expiration: time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests from this IP, please try again later.",
			})
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Company Registration API - made by VINSA",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":    "/health",
				"auth":      "/api/auth",
				"users":     "/api/users",
				"companies": "/api/companies",
				"webhooks":  "/api/webhooks",
			},
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "OK",
			"message":     "Company Registration Backend API is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"version":     "1.0.0",
			"environment": cfg.App.Env,
		})
	})

	httpapi.Register(app, httpapi.RouterDeps{
		Auth:       httpapi.NewAuthHandler(syncUC, userUC),
		Users:      httpapi.NewUserHandler(userUC, val),
		Companies:  httpapi.NewCompanyHandler(companyUC, val),
		Webhooks:   httpapi.NewWebhookHandler(syncUC, cfg.Clerk.WebhookSecret, cfg.App.IsProduction(), log),
		Verifier:   verifier,
		Profiles:   clerkAPI,
		Clerk:      cfg.Clerk,
		Production: cfg.App.IsProduction(),
	})

	app.Use(httpapi.NotFoundHandler())

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
