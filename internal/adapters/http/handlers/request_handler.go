package handlers

import (
	"errors"
	"fmt"

	"neighborshare/internal/core/domain"
	"neighborshare/internal/core/services"
	"neighborshare/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles borrow-request endpoints
type RequestHandler struct {
	borrow *services.BorrowService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(borrow *services.BorrowService) *RequestHandler {
	return &RequestHandler{borrow: borrow}
}

// ============================================================
// POST /api/v1/items/:id/request — request to borrow
// ============================================================

// RequestBorrow creates a borrow request for an item
// @Summary Request borrow
// @Tags Requests
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /items/{id}/request [post]
func (h *RequestHandler) RequestBorrow(c *fiber.Ctx) error {
	req, err := h.borrow.RequestBorrow(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "Item not found")
		case errors.Is(err, domain.ErrItemUnavailable):
			return response.BadRequest(c, "Item not available")
		default:
			return response.InternalServerError(c, "Failed to create request")
		}
	}

	return response.Success(c, fmt.Sprintf("Request sent to %s", req.Owner), fiber.Map{
		"status":  "requested",
		"request": req,
	})
}

// ============================================================
// GET /api/v1/my-requests — my borrow requests
// ============================================================

// GetMyRequests lists the current user's requests in insertion order
// @Summary List my requests
// @Tags Requests
// @Produce json
// @Success 200 {array} domain.BorrowRequest
// @Router /my-requests [get]
func (h *RequestHandler) GetMyRequests(c *fiber.Ctx) error {
	return c.JSON(h.borrow.ListRequests())
}

// ============================================================
// DELETE /api/v1/my-requests/:id — cancel request
// ============================================================

// CancelRequest cancels a borrow request
// @Summary Cancel request
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /my-requests/{id} [delete]
func (h *RequestHandler) CancelRequest(c *fiber.Ctx) error {
	if err := h.borrow.CancelRequest(c.Params("id")); err != nil {
		return response.NotFound(c, "Request not found")
	}
	return response.Success(c, "Request cancelled", nil)
}

// ============================================================
// PATCH /api/v1/my-requests/:id — resolve request
// ============================================================

// ResolveInput carries the target status for a pending request
type ResolveInput struct {
	Status domain.RequestStatus `json:"status"`
}

// ResolveRequest approves or rejects a pending request. In a full
// deployment this would sit behind the owner's identity; here it is the
// resolution capability exposed for the single-actor model.
// @Summary Resolve request
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body ResolveInput true "approved or rejected"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /my-requests/{id} [patch]
func (h *RequestHandler) ResolveRequest(c *fiber.Ctx) error {
	var input ResolveInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req, err := h.borrow.ResolveRequest(c.Params("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		case errors.Is(err, domain.ErrInvalidRequestStatus):
			return response.BadRequest(c, "Request cannot be resolved to that status")
		default:
			return response.InternalServerError(c, "Failed to resolve request")
		}
	}
	return response.Success(c, fmt.Sprintf("Request %s", req.Status), req)
}
