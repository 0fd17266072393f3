package routes

import (
	"time"

	"neighborshare/internal/adapters/http/handlers"
	"neighborshare/internal/adapters/http/middleware"
	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/config"
	"neighborshare/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, items *memstore.ItemStore, ledger *memstore.RequestLedger, cfg *config.Config) {
	// Initialize services
	catalogService := services.NewCatalogService(items)
	borrowService := services.NewBorrowService(items, ledger, cfg.Borrow)
	insightsService := services.NewInsightsService(items)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(items)
	itemHandler := handlers.NewItemHandler(catalogService)
	requestHandler := handlers.NewRequestHandler(borrowService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Items
	apiV1.Get("/items", itemHandler.GetItems)
	apiV1.Get("/items/:id", itemHandler.GetItem)
	apiV1.Post("/items", itemHandler.AddItem)

	// Borrow requests
	apiV1.Post("/items/:id/request", requestHandler.RequestBorrow)
	apiV1.Get("/my-requests", requestHandler.GetMyRequests)
	apiV1.Delete("/my-requests/:id", requestHandler.CancelRequest)
	apiV1.Patch("/my-requests/:id", requestHandler.ResolveRequest)

	// Insights (category list and trust profile change rarely, cache briefly)
	apiV1.Get("/categories", middleware.CacheControl(time.Minute), insightsHandler.GetCategories)
	apiV1.Get("/stats", insightsHandler.GetStats)
	apiV1.Get("/map-items", insightsHandler.GetMapItems)
	apiV1.Get("/trust-score/:userId", middleware.CacheControl(time.Minute), insightsHandler.GetTrustScore)
}
