package supplier

import "time"

// ProductExtra holds the operations-team annotations for one SKU: the
// supplier's own product code, a discontinued flag and free-form notes.
// There is at most one row per SKU.
type ProductExtra struct {
	SKU          string    `gorm:"column:sku;primaryKey;size:64" json:"sku"`
	SupplierCode string    `gorm:"column:supplier_code;size:128" json:"supplier_code"`
	Discontinued bool      `gorm:"column:discontinued;not null" json:"discontinued"`
	Notes        string    `gorm:"column:notes;type:text" json:"notes"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (ProductExtra) TableName() string {
	return "product_extras"
}

// ProductSupplier links a SKU to one of its suppliers. Edits replace the full
// set for a SKU rather than patching individual links.
type ProductSupplier struct {
	SKU        string `gorm:"column:sku;primaryKey;size:64" json:"sku"`
	SupplierID int64  `gorm:"column:supplier_id;primaryKey" json:"supplier_id"`
}

// TableName returns the table name for GORM
func (ProductSupplier) TableName() string {
	return "product_suppliers"
}
