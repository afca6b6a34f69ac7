package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kucukaslan/interactions/api"
	"kucukaslan/interactions/buildinfo"
	"kucukaslan/interactions/config"
	"kucukaslan/interactions/database"
	"kucukaslan/interactions/logger"
	"kucukaslan/interactions/metrics"
	"kucukaslan/interactions/services"

	_ "kucukaslan/interactions/docs" // Import generated docs

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// @title Interaction Analytics API
// @version 1.0
// @description Records de-duplicated clicks and views on pages, business profiles and custom links, and reports on them
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

const idleTimeout = 5 * time.Second

func main() {
	// Set application start time for accurate uptime tracking
	buildinfo.MarkStarted(time.Now())

	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log := logger.Component("main")

	info := buildinfo.GetInfo(time.Now())
	log.Info().
		Str("version", info.Version).
		Str("commit", info.Commit).
		Str("build_date", info.BuildDate).
		Str("go_version", info.GoVersion).
		Str("hostname", info.Hostname).
		Msg("Starting application")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize ClickHouse connection
	if err := database.InitClickHouse(&cfg.ClickHouse); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ClickHouse")
	}

	// Initialize Redis connection. Dedup claims fail open, so Redis being
	// unreachable later only weakens race protection.
	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Redis")
	}

	content, err := database.OpenContentStore(cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Postgres")
	}
	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := content.EnsureSchema(schemaCtx); err != nil {
		cancelSchema()
		log.Fatal().Err(err).Msg("Failed to apply Postgres schema")
	}
	cancelSchema()

	events := database.GetClickHouseDB(cfg.ClickHouse.MaxScanRows)
	resolver := services.NewDefaultTargetResolver(content, cfg.PublicBaseURL)

	counters := services.NewCounterUpdater(cfg.Counters.BufferCapacity, cfg.Counters.BatchSize, cfg.Counters.FlushInterval, content)
	counters.Start()

	ingestion, err := services.NewIngestionService(events, database.GetDedupRedis(&cfg.Redis), content, resolver, counters)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize IngestionService")
	}

	reports, err := services.NewReportService(events, content, resolver, services.ReportSettings{
		DefaultLocationLimit: cfg.Reports.DefaultLocationLimit,
		MaxLocationLimit:     cfg.Reports.MaxLocationLimit,
		DefaultTopLinksLimit: cfg.Reports.DefaultTopLinksLimit,
		RealtimeMinutes:      cfg.Reports.RealtimeMinutes,
		DashboardTimeout:     cfg.Reports.DashboardTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ReportService")
	}

	app := fiber.New(fiber.Config{
		IdleTimeout: idleTimeout,
	})

	app.Use(recover.New())
	app.Use(api.RequestLogger())

	// redirect to swagger docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/", fiber.StatusMovedPermanently)
	})

	// Health check endpoint
	app.Get("/health", api.HealthHandler{
		ClickHouse: database.ClickHouseHealthCheck,
		Redis:      database.RedisHealthCheck,
		Postgres:   content.Ping,
	}.Check)

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api.RegisterRoutes(app,
		api.RequireActor(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		api.NewInteractionHandler(ingestion),
		api.NewReportHandler(reports, time.Now),
	)

	// Listen from a different goroutine
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic().Err(err).Msg("HTTP server stopped")
		}
	}()

	c := make(chan os.Signal, 1)                    // Create channel to signify a signal being sent
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // When an interrupt or termination signal is sent, notify the channel

	<-c // This blocks the main thread until an interrupt is received
	log.Info().Msg("Gracefully shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Error shutting down HTTP server")
	}

	log.Info().Msg("Running cleanup tasks...")

	// Flush buffered counter updates before the content store goes away
	if err := counters.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Error shutting down counter updater")
	}

	if err := database.CloseClickHouse(); err != nil {
		log.Error().Err(err).Msg("Error closing ClickHouse")
	}

	if err := database.CloseRedis(); err != nil {
		log.Error().Err(err).Msg("Error closing Redis")
	}

	if err := content.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing Postgres")
	}

	log.Info().Msg("Fiber was successful shutdown.")
}
