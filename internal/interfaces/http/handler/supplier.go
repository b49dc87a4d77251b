package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	supplierapp "github.com/catalogozord/backend/internal/application/supplier"
)

// SupplierHandler serves the supplier registry CRUD.
type SupplierHandler struct {
	BaseHandler
	suppliers *supplierapp.Service
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(suppliers *supplierapp.Service, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{BaseHandler: NewBaseHandler(logger), suppliers: suppliers}
}

// List handles GET /suppliers.
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, suppliers)
}

// Create handles POST /suppliers (privileged).
func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.suppliers.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PATCH /suppliers/:id (privileged).
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "invalid supplier id")
		return
	}

	var req supplierapp.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.suppliers.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete handles DELETE /suppliers/:id (privileged).
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "invalid supplier id")
		return
	}

	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
