package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/domain/integration"
	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/interfaces/http/dto"
)

// BaseHandler provides the shared response helpers.
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a base handler.
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// Success writes a 200 envelope.
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.SuccessResponse(data))
}

// SuccessWithMeta writes a 200 envelope with pagination meta.
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data interface{}, meta dto.Meta) {
	c.JSON(http.StatusOK, dto.SuccessWithMeta(data, meta))
}

// Created writes a 201 envelope.
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.SuccessResponse(data))
}

// NoContent writes an empty 204.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 envelope for malformed input.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse(dto.ErrCodeBadRequest, message))
}

// HandleError maps service errors to the response envelope. Upstream ERP
// failures become 502 so callers can tell them apart from local faults.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var upstreamErr *integration.UpstreamError
	if errors.As(err, &upstreamErr) {
		c.JSON(http.StatusBadGateway,
			dto.ErrorResponse(dto.ErrCodeUpstream, upstreamErr.Error()))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.ErrorResponse(code, domainErr.Message))
		return
	}

	h.logger.Error("unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError,
		dto.ErrorResponse(dto.ErrCodeInternal, "internal server error"))
}
