package handlers

import (
	"time"

	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	items *memstore.ItemStore
	start time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(items *memstore.ItemStore) *HealthHandler {
	return &HealthHandler{
		items: items,
		start: time.Now(),
	}
}

// Root handles the root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "running",
		"message":    "🏘️ Neighborhood Sharing API is running!",
		"mode":       config.AppConfig.AppMode,
		"itemsCount": h.items.Len(),
		"docs":       "/swagger/index.html",
	})
}

// HealthCheck handles the health check
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.start).Round(time.Second).String(),
	})
}
