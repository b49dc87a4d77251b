package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	inventoryapp "github.com/catalogozord/backend/internal/application/inventory"
	"github.com/catalogozord/backend/internal/interfaces/http/dto"
	"github.com/catalogozord/backend/internal/interfaces/http/middleware"
)

// PriceHandler serves live price reads and price updates.
type PriceHandler struct {
	BaseHandler
	prices *inventoryapp.PriceService
}

// NewPriceHandler creates a new price handler.
func NewPriceHandler(prices *inventoryapp.PriceService, logger *zap.Logger) *PriceHandler {
	return &PriceHandler{BaseHandler: NewBaseHandler(logger), prices: prices}
}

type priceView struct {
	SKU   string           `json:"sku"`
	Price *decimal.Decimal `json:"price"`
}

type updatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// Get handles GET /prices/:sku.
func (h *PriceHandler) Get(c *gin.Context) {
	sku := c.Param("sku")
	price, err := h.prices.Get(c.Request.Context(), sku)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, priceView{SKU: sku, Price: price})
}

// Update handles PUT /prices/:sku (privileged).
func (h *PriceHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.ErrorResponse(dto.ErrCodeUnauthorized, "identity required"))
		return
	}

	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	sku := c.Param("sku")
	if err := h.prices.Update(c.Request.Context(), identity, sku, req.Price); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, priceView{SKU: sku, Price: &req.Price})
}
