package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	inventoryapp "github.com/catalogozord/backend/internal/application/inventory"
	"github.com/catalogozord/backend/internal/interfaces/http/dto"
	"github.com/catalogozord/backend/internal/interfaces/http/middleware"
)

// InventoryHandler serves live stock reads and movement submissions.
type InventoryHandler struct {
	BaseHandler
	movements *inventoryapp.MovementService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(movements *inventoryapp.MovementService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{BaseHandler: NewBaseHandler(logger), movements: movements}
}

// GetLive handles GET /inventory/:sku.
func (h *InventoryHandler) GetLive(c *gin.Context) {
	levels, err := h.movements.Live(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, levels)
}

// CreateMovement handles POST /inventory/movements (privileged).
func (h *InventoryHandler) CreateMovement(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.ErrorResponse(dto.ErrCodeUnauthorized, "identity required"))
		return
	}

	var req inventoryapp.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	response, err := h.movements.Submit(c.Request.Context(), identity, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}
