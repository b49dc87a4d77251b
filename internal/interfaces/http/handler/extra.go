package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	supplierapp "github.com/catalogozord/backend/internal/application/supplier"
)

// ExtraHandler serves the per-SKU extras overlay.
type ExtraHandler struct {
	BaseHandler
	extras *supplierapp.ExtraService
}

// NewExtraHandler creates a new extras handler.
func NewExtraHandler(extras *supplierapp.ExtraService, logger *zap.Logger) *ExtraHandler {
	return &ExtraHandler{BaseHandler: NewBaseHandler(logger), extras: extras}
}

// List handles GET /extras?skus=a,b.
func (h *ExtraHandler) List(c *gin.Context) {
	var skus []string
	if raw := c.Query("skus"); raw != "" {
		skus = strings.Split(raw, ",")
	}

	views, err := h.extras.Get(c.Request.Context(), skus)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// Put handles PUT /extras/:sku (privileged).
func (h *ExtraHandler) Put(c *gin.Context) {
	var req supplierapp.PutExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	sku := c.Param("sku")
	if err := h.extras.Put(c.Request.Context(), sku, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"sku": sku})
}
