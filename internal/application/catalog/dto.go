package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/catalogozord/backend/internal/domain/integration"
)

// Row is one catalog line as the panel displays it: the mirrored entry,
// the local extras overlay and, after enrichment, the live ERP figures.
type Row struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	ParentCode   string           `json:"parent_code,omitempty"`
	DerivationID *int64           `json:"derivation_id,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	Active       bool             `json:"active"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	SyncedAt     time.Time        `json:"synced_at"`

	SupplierCode string        `json:"supplier_code,omitempty"`
	Discontinued bool          `json:"discontinued"`
	Notes        string        `json:"notes,omitempty"`
	Suppliers    []SupplierRef `json:"suppliers"`

	Live *LiveFigures `json:"live,omitempty"`
}

// SupplierRef is a lightweight supplier reference on a catalog row.
type SupplierRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LiveFigures are the per-view ERP figures. They are never persisted.
type LiveFigures struct {
	OnHand      decimal.Decimal  `json:"on_hand"`
	Reserved    decimal.Decimal  `json:"reserved"`
	AverageCost decimal.Decimal  `json:"average_cost"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ListQuery narrows and pages a catalog listing.
type ListQuery struct {
	Page         int
	PageSize     int
	Search       string
	Supplier     string
	Discontinued *bool
	Active       *bool
}

// PageResult is one page of merged catalog rows.
type PageResult struct {
	Rows     []*Row `json:"rows"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// UpstreamPageResult is a direct upstream catalog read, bypassing the mirror.
type UpstreamPageResult struct {
	Items   []integration.CatalogItem `json:"items"`
	Total   int64                     `json:"total"`
	HasMore bool                      `json:"has_more"`
	Page    int                       `json:"page"`
}

// SyncResult reports a completed synchronization run.
type SyncResult struct {
	Total int `json:"total"`
}
