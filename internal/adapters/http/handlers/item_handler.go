package handlers

import (
	"neighborshare/internal/core/domain"
	"neighborshare/internal/core/services"
	"neighborshare/internal/pkg/pagination"
	"neighborshare/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles item catalog endpoints
type ItemHandler struct {
	catalog *services.CatalogService
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalog *services.CatalogService) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

// PaginatedItems is the wrapped response shape used when the caller asks
// for pagination. Without page/limit the endpoint returns a bare array,
// so clients must branch on the shape.
type PaginatedItems struct {
	Items      []domain.Item    `json:"items"`
	Pagination *pagination.Meta `json:"pagination"`
}

// ============================================================
// GET /api/v1/items — query the catalog
// ============================================================

// GetItems queries the catalog
// @Summary List items
// @Description Filter, sort and optionally paginate the item catalog
// @Tags Items
// @Produce json
// @Param category query string false "Category filter ('all' disables)"
// @Param available query string false "true | false | all"
// @Param search query string false "Substring over name, description, tags"
// @Param sort query string false "name | rating | newest | popular"
// @Param page query int false "1-based page (enables pagination)"
// @Param limit query int false "Page size (enables pagination)"
// @Success 200 {array} domain.Item
// @Router /items [get]
func (h *ItemHandler) GetItems(c *fiber.Ctx) error {
	spec := services.QuerySpec{
		Category:  c.Query("category"),
		Available: c.Query("available"),
		Search:    c.Query("search"),
		Sort:      c.Query("sort"),
	}

	if !pagination.Requested(c) {
		return c.JSON(h.catalog.Query(spec))
	}

	items, meta := h.catalog.QueryPage(spec, pagination.GetParams(c))
	return c.JSON(PaginatedItems{
		Items:      items,
		Pagination: meta,
	})
}

// ============================================================
// GET /api/v1/items/:id — single item
// ============================================================

// GetItem returns one item by id
// @Summary Get item
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} response.Response
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.catalog.GetItem(c.Params("id"))
	if err != nil {
		return response.NotFound(c, "Item not found")
	}
	return c.JSON(item)
}

// ============================================================
// POST /api/v1/items — add item
// ============================================================

// AddItem adds a new item to the catalog
// @Summary Add item
// @Tags Items
// @Accept json
// @Produce json
// @Param item body services.AddItemInput true "Item draft"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /items [post]
func (h *ItemHandler) AddItem(c *fiber.Ctx) error {
	var input services.AddItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.catalog.AddItem(&input)
	if err != nil {
		if ve, ok := domain.IsValidation(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		return response.InternalServerError(c, "Failed to add item")
	}
	return response.Created(c, "Item added successfully!", item)
}
