package catalog

import (
	"context"

	"github.com/catalogozord/backend/internal/domain/shared"
)

// Filter narrows a catalog listing. Search matches SKU or name
// (case-insensitive substring, accents stripped from the query). Supplier
// matches either an associated supplier's name or the free-text supplier
// code on the extras row.
type Filter struct {
	shared.Pagination
	Search       string
	Supplier     string
	Discontinued *bool
	Active       *bool
}

// EntryRepository defines the persistence operations for the catalog mirror.
type EntryRepository interface {
	// UpsertBatch inserts or overwrites entries by SKU in one statement batch.
	UpsertBatch(ctx context.Context, entries []Entry) error

	// List returns one page of entries plus the total row count for the filter.
	List(ctx context.Context, filter Filter) ([]Entry, int64, error)

	// FindBySKU returns the entry or shared.ErrNotFound.
	FindBySKU(ctx context.Context, sku string) (*Entry, error)
}
