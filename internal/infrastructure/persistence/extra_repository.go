package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/domain/supplier"
)

// GormExtraRepository implements supplier.ExtraRepository using GORM.
type GormExtraRepository struct {
	db *gorm.DB
}

// Compile-time interface check
var _ supplier.ExtraRepository = (*GormExtraRepository)(nil)

// NewGormExtraRepository creates a new product-extras repository.
func NewGormExtraRepository(db *gorm.DB) *GormExtraRepository {
	return &GormExtraRepository{db: db}
}

// FindBySKUs returns the extras rows that exist for the given SKUs.
func (r *GormExtraRepository) FindBySKUs(ctx context.Context, skus []string) ([]supplier.ProductExtra, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	var extras []supplier.ProductExtra
	err := r.db.WithContext(ctx).Where("sku IN ?", skus).Find(&extras).Error
	if err != nil {
		return nil, shared.NewPersistenceError("list product extras", err)
	}
	return extras, nil
}

type skuSupplierRow struct {
	SKU       string    `gorm:"column:sku"`
	ID        int64     `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// SuppliersBySKUs resolves the associated suppliers for each SKU.
func (r *GormExtraRepository) SuppliersBySKUs(ctx context.Context, skus []string) (map[string][]supplier.Supplier, error) {
	result := make(map[string][]supplier.Supplier)
	if len(skus) == 0 {
		return result, nil
	}

	var rows []skuSupplierRow
	err := r.db.WithContext(ctx).
		Table("product_suppliers ps").
		Select("ps.sku, s.id, s.name, s.active, s.created_at").
		Joins("JOIN suppliers s ON s.id = ps.supplier_id").
		Where("ps.sku IN ?", skus).
		Order("s.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, shared.NewPersistenceError("list product suppliers", err)
	}

	for _, row := range rows {
		result[row.SKU] = append(result[row.SKU], supplier.Supplier{
			ID:        row.ID,
			Name:      row.Name,
			Active:    row.Active,
			CreatedAt: row.CreatedAt,
		})
	}
	return result, nil
}

// Upsert inserts or overwrites the extras row for a SKU.
func (r *GormExtraRepository) Upsert(ctx context.Context, extra *supplier.ProductExtra) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"supplier_code", "discontinued", "notes", "updated_at",
			}),
		}).
		Create(extra).Error
	if err != nil {
		return shared.NewPersistenceError("upsert product extra", err)
	}
	return nil
}

// ReplaceSuppliers swaps the full association set for a SKU in one
// transaction (delete then insert).
func (r *GormExtraRepository) ReplaceSuppliers(ctx context.Context, sku string, supplierIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sku = ?", sku).
			Delete(&supplier.ProductSupplier{}).Error; err != nil {
			return err
		}
		if len(supplierIDs) == 0 {
			return nil
		}
		links := make([]supplier.ProductSupplier, 0, len(supplierIDs))
		for _, id := range supplierIDs {
			links = append(links, supplier.ProductSupplier{SKU: sku, SupplierID: id})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return shared.NewPersistenceError("replace product suppliers", err)
	}
	return nil
}
