package handlers

import (
	"neighborshare/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// InsightsHandler handles read-only reporting endpoints
type InsightsHandler struct {
	insights *services.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insights *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// GetCategories returns item counts per category
// @Summary Category counts
// @Tags Insights
// @Produce json
// @Success 200 {array} services.CategoryCount
// @Router /categories [get]
func (h *InsightsHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.insights.CategoryCounts())
}

// GetStats returns platform-wide statistics
// @Summary Platform stats
// @Tags Insights
// @Produce json
// @Success 200 {object} services.PlatformStats
// @Router /stats [get]
func (h *InsightsHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.insights.PlatformStats())
}

// GetMapItems returns the catalog projected onto demo map coordinates
// @Summary Map items
// @Tags Insights
// @Produce json
// @Success 200 {array} services.MapItem
// @Router /map-items [get]
func (h *InsightsHandler) GetMapItems(c *fiber.Ctx) error {
	return c.JSON(h.insights.MapItems())
}

// GetTrustScore returns the demo trust profile for a user
// @Summary Trust score
// @Tags Insights
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} services.TrustScore
// @Router /trust-score/{userId} [get]
func (h *InsightsHandler) GetTrustScore(c *fiber.Ctx) error {
	return c.JSON(h.insights.TrustScoreFor(c.Params("userId")))
}
