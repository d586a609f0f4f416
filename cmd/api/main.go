package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/jyotidabass/fitscore-calculator/internal/api/handlers"
	"github.com/jyotidabass/fitscore-calculator/internal/enrich"
	"github.com/jyotidabass/fitscore-calculator/internal/fitscore"
	"github.com/jyotidabass/fitscore-calculator/internal/metrics"
	"github.com/jyotidabass/fitscore-calculator/internal/middleware/ratelimit"
	"github.com/jyotidabass/fitscore-calculator/internal/middleware/security"
	"github.com/jyotidabass/fitscore-calculator/internal/middleware/validation"
	"github.com/jyotidabass/fitscore-calculator/internal/tables"
	"github.com/jyotidabass/fitscore-calculator/pkg/config"
	appLogger "github.com/jyotidabass/fitscore-calculator/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting FitScore API Server")

	metrics.Init()

	classifier := tables.Default()
	local := enrich.NewLocalHeuristic(classifier)

	var insight enrich.Enricher
	if cfg.Insight.Enabled && cfg.Insight.APIKey != "" {
		insight = enrich.NewInsightService(enrich.InsightConfig{
			APIKey:      cfg.Insight.APIKey,
			Model:       cfg.Insight.Model,
			Temperature: cfg.Insight.Temperature,
			MaxTokens:   cfg.Insight.MaxTokens,
			Timeout:     time.Duration(cfg.Insight.TimeoutSec) * time.Second,
		}, local)
	} else {
		appLogger.Info("Insight service disabled, using heuristic enrichment only")
	}

	calculator := fitscore.NewCalculator(classifier, insight)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.RateLimit.MaxRequestsPerMinute,
		Logger:               appLogger.GetLogger(),
	})
	defer limiter.Stop()
	app.Use(limiter.Middleware())

	app.Use(validation.Middleware(validation.Config{
		MaxResumeLength:         cfg.Limits.MaxResumeLength,
		MaxJobDescriptionLength: cfg.Limits.MaxJobDescriptionLength,
		MaxCollateralLength:     cfg.Limits.MaxCollateralLength,
		Logger:                  appLogger.GetLogger(),
	}))

	fitScoreHandler := handlers.NewFitScoreHandler(calculator)

	api := app.Group("/api/v1")

	api.Post("/fitscore", fitScoreHandler.HandleCalculate)
	api.Get("/fitscore/weights", fitScoreHandler.HandleWeights)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	api.Get("/ready", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
