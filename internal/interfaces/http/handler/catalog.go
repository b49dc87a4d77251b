package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/catalogozord/backend/internal/application/catalog"
	"github.com/catalogozord/backend/internal/interfaces/http/dto"
)

// CatalogHandler serves the mirrored catalog view, the direct upstream read
// and the synchronization trigger.
type CatalogHandler struct {
	BaseHandler
	catalog    *catalogapp.CatalogService
	sync       *catalogapp.SyncService
	enrichment *catalogapp.EnrichmentService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(
	catalog *catalogapp.CatalogService,
	sync *catalogapp.SyncService,
	enrichment *catalogapp.EnrichmentService,
	logger *zap.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(logger),
		catalog:     catalog,
		sync:        sync,
		enrichment:  enrichment,
	}
}

// List handles GET /catalog. With enrich=true the page is overlaid with
// live ERP figures before responding.
func (h *CatalogHandler) List(c *gin.Context) {
	query := catalogapp.ListQuery{
		Page:         queryInt(c, "page", 1),
		PageSize:     queryInt(c, "page_size", 50),
		Search:       c.Query("search"),
		Supplier:     c.Query("supplier"),
		Discontinued: queryOptionalBool(c, "discontinued"),
		Active:       queryOptionalBool(c, "active"),
	}

	page, err := h.catalog.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if c.Query("enrich") == "true" {
		h.enrichment.Enrich(c.Request.Context(), page.Rows)
	}

	h.SuccessWithMeta(c, page.Rows, dto.Meta{
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	})
}

// Sync handles POST /catalog/sync (privileged).
func (h *CatalogHandler) Sync(c *gin.Context) {
	result, err := h.sync.Run(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Upstream handles GET /catalog/upstream, a direct ERP page read that
// bypasses the mirror.
func (h *CatalogHandler) Upstream(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 30)

	result, err := h.catalog.UpstreamPage(c.Request.Context(), page, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func queryOptionalBool(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
