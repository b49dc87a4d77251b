package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/domain/supplier"
)

// GormSupplierRepository implements supplier.Repository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

// Compile-time interface check
var _ supplier.Repository = (*GormSupplierRepository)(nil)

// NewGormSupplierRepository creates a new supplier repository.
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindAll returns all suppliers ordered by name.
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]supplier.Supplier, error) {
	var suppliers []supplier.Supplier
	err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error
	if err != nil {
		return nil, shared.NewPersistenceError("list suppliers", err)
	}
	return suppliers, nil
}

// FindByID returns the supplier or shared.ErrNotFound.
func (r *GormSupplierRepository) FindByID(ctx context.Context, id int64) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError("find supplier", err)
	}
	return &s, nil
}

// Create inserts a new supplier.
func (r *GormSupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return shared.NewPersistenceError("create supplier", err)
	}
	return nil
}

// Update saves the full supplier row.
func (r *GormSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return shared.NewPersistenceError("update supplier", err)
	}
	return nil
}

// Delete removes the supplier and its product associations in one
// transaction. Dangling association rows would make the supplier catalog
// filter lie.
func (r *GormSupplierRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supplier_id = ?", id).
			Delete(&supplier.ProductSupplier{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&supplier.Supplier{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		var de *shared.DomainError
		if errors.As(err, &de) {
			return de
		}
		return shared.NewPersistenceError("delete supplier", err)
	}
	return nil
}
