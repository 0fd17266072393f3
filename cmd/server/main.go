package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"neighborshare/internal/adapters/http/middleware"
	"neighborshare/internal/adapters/http/routes"
	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/config"
	"neighborshare/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title Neighborhood Sharing API
// @version 1.0
// @description Community item catalog and borrow-request lifecycle API

// @host localhost:5000
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Create in-memory stores. All state is process-local and lost on
	// restart; persistence is deliberately out of scope.
	items := memstore.NewItemStore()
	ledger := memstore.NewRequestLedger()

	// Seed demo catalog
	if cfg.Seed {
		config.NewSeeder(items, ledger).Run()
	}

	// Start stats heartbeat cron
	cronService := services.NewCronService(services.NewInsightsService(items), cfg.Stats.LogSchedule)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Neighborhood Sharing API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, items, ledger, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
