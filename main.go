package main

import (
	"context"
	"log"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"pitchbox/config"
	"pitchbox/middleware"
	"pitchbox/routes"
	"pitchbox/store"
	"pitchbox/worker"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "PITCHBOX: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Error reporting is optional; the DSN is simply absent in development
	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Printf("⚠️ Sentry initialization failed: %v", err)
		}
	}

	// Connect the document store; a missing configuration degrades the
	// store rather than aborting startup (GET /test reports the state)
	st, err := store.Connect(config.AppConfig)
	if err != nil {
		logger.Printf("⚠️ Document store unavailable: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	// Initialize and start the deadline sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	deadlineWorker := worker.NewDeadlineWorker(st, config.AppConfig.SweepInterval, log.New(os.Stdout, "SWEEP: ", log.LstdFlags))
	go deadlineWorker.Start(ctx)

	// Setup routes
	routes.SetupRoutes(app, st)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
