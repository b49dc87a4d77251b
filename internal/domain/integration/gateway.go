package integration

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CatalogItem is one sellable derivation as reported by the ERP catalog
// endpoint, already filtered and normalized by the gateway.
type CatalogItem struct {
	SKU          string
	Name         string
	ParentCode   string
	DerivationID *int64
	ImageURL     string
	Active       bool
	Price        *decimal.Decimal
}

// CatalogPage is one page of the upstream catalog walk.
type CatalogPage struct {
	Items   []CatalogItem
	Total   int64
	HasMore bool
}

// StockLevel is the live inventory position of one SKU in one warehouse.
type StockLevel struct {
	SKU         string
	Available   decimal.Decimal
	Reserved    decimal.Decimal
	AverageCost decimal.Decimal
}

// Movement is a manual stock adjustment to be written through to the ERP.
// Quantity is signed: negative reduces stock, positive increases it.
type Movement struct {
	SKU      string
	Quantity decimal.Decimal
	UnitCost *decimal.Decimal
	Reason   string
	Actor    string
}

// ERPGateway is the outbound port to the upstream ERP. Implementations do not
// retry; callers decide what a 429 or a 5xx means for them.
type ERPGateway interface {
	// ListCatalogPage fetches one catalog page. Page is clamped to >= 1 and
	// limit to [1,100] before the request is issued.
	ListCatalogPage(ctx context.Context, page, limit int) (*CatalogPage, error)

	// FetchInventory returns the stock rows for a SKU. An empty slice means
	// the ERP has no inventory data for it, which is not an error.
	FetchInventory(ctx context.Context, sku string) ([]StockLevel, error)

	// FetchPrice returns the selling price for a SKU from the configured
	// price list, or nil when the list has no row for it.
	FetchPrice(ctx context.Context, sku string) (*decimal.Decimal, error)

	// PostMovement writes a stock movement and returns the upstream response
	// payload verbatim for auditability.
	PostMovement(ctx context.Context, mov Movement) (json.RawMessage, error)

	// PostPrice writes a new selling price for a SKU on the configured
	// price list.
	PostPrice(ctx context.Context, sku string, price decimal.Decimal) error
}
