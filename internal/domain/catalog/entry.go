package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one mirrored catalog row, keyed by SKU. The mirror is
// overwrite-only: synchronization upserts rows and never deletes them, so a
// derivation that disappears upstream stays visible with its last-seen data.
type Entry struct {
	SKU          string           `gorm:"column:sku;primaryKey;size:64" json:"sku"`
	Name         string           `gorm:"column:name;size:512;not null" json:"name"`
	ParentCode   string           `gorm:"column:parent_code;size:64" json:"parent_code"`
	DerivationID *int64           `gorm:"column:derivation_id" json:"derivation_id,omitempty"`
	ImageURL     string           `gorm:"column:image_url;size:1024" json:"image_url"`
	Active       bool             `gorm:"column:active;not null" json:"active"`
	Price        *decimal.Decimal `gorm:"column:price;type:decimal(12,2)" json:"price,omitempty"`
	SyncedAt     time.Time        `gorm:"column:synced_at;not null" json:"synced_at"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "catalog_entries"
}
