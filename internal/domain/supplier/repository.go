package supplier

import "context"

// Repository defines the persistence operations for suppliers.
type Repository interface {
	FindAll(ctx context.Context) ([]Supplier, error)
	FindByID(ctx context.Context, id int64) (*Supplier, error)
	Create(ctx context.Context, s *Supplier) error
	Update(ctx context.Context, s *Supplier) error

	// Delete removes the supplier and its product associations in one
	// transaction so the catalog supplier filter never sees dangling links.
	Delete(ctx context.Context, id int64) error
}

// ExtraRepository defines the persistence operations for per-SKU extras and
// their supplier associations.
type ExtraRepository interface {
	// FindBySKUs returns the extras rows that exist for the given SKUs.
	FindBySKUs(ctx context.Context, skus []string) ([]ProductExtra, error)

	// SuppliersBySKUs resolves the associated suppliers for each SKU.
	SuppliersBySKUs(ctx context.Context, skus []string) (map[string][]Supplier, error)

	// Upsert inserts or overwrites the extras row for a SKU.
	Upsert(ctx context.Context, extra *ProductExtra) error

	// ReplaceSuppliers swaps the full association set for a SKU
	// (delete-then-insert, one transaction).
	ReplaceSuppliers(ctx context.Context, sku string, supplierIDs []int64) error
}
