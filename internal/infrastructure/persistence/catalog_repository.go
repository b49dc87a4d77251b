package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/catalogozord/backend/internal/domain/catalog"
	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/pkg/strutil"
)

const upsertBatchSize = 500

// GormEntryRepository implements catalog.EntryRepository using GORM.
type GormEntryRepository struct {
	db *gorm.DB
}

// Compile-time interface check
var _ catalog.EntryRepository = (*GormEntryRepository)(nil)

// NewGormEntryRepository creates a new catalog entry repository.
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// UpsertBatch inserts or overwrites entries keyed by sku. The mirror is
// overwrite-only; rows are never deleted here.
func (r *GormEntryRepository) UpsertBatch(ctx context.Context, entries []catalog.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "parent_code", "derivation_id", "image_url",
				"active", "price", "synced_at",
			}),
		}).
		CreateInBatches(entries, upsertBatchSize).Error
	if err != nil {
		return shared.NewPersistenceError("upsert catalog entries", err)
	}
	return nil
}

// List returns one page of entries and the total count for the filter.
func (r *GormEntryRepository) List(ctx context.Context, filter catalog.Filter) ([]catalog.Entry, int64, error) {
	filter.Normalize()

	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Entry{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, shared.NewPersistenceError("count catalog entries", err)
	}

	var entries []catalog.Entry
	err := query.
		Order("sku ASC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&entries).Error
	if err != nil {
		return nil, 0, shared.NewPersistenceError("list catalog entries", err)
	}

	return entries, total, nil
}

// FindBySKU returns the entry or shared.ErrNotFound.
func (r *GormEntryRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Entry, error) {
	var entry catalog.Entry
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError("find catalog entry", err)
	}
	return &entry, nil
}

func (r *GormEntryRepository) applyFilter(db *gorm.DB, filter catalog.Filter) *gorm.DB {
	// Both sides of every LIKE are lowered and unaccented: the pattern via
	// strutil.Normalize, the column via the unaccent extension. Otherwise an
	// accented stored value ("Calça") never matches a search for itself.
	if filter.Search != "" {
		pattern := "%" + strutil.Normalize(filter.Search) + "%"
		db = db.Where("LOWER(unaccent(sku)) LIKE ? OR LOWER(unaccent(name)) LIKE ?", pattern, pattern)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.Discontinued != nil {
		sub := "SELECT sku FROM product_extras WHERE discontinued"
		if *filter.Discontinued {
			db = db.Where("sku IN (" + sub + ")")
		} else {
			db = db.Where("sku NOT IN (" + sub + ")")
		}
	}
	if filter.Supplier != "" {
		pattern := "%" + strutil.Normalize(filter.Supplier) + "%"
		db = db.Where(
			`sku IN (SELECT ps.sku FROM product_suppliers ps
				JOIN suppliers s ON s.id = ps.supplier_id
				WHERE LOWER(unaccent(s.name)) LIKE ?)
			OR sku IN (SELECT pe.sku FROM product_extras pe
				WHERE LOWER(unaccent(pe.supplier_code)) LIKE ?)`,
			pattern, pattern,
		)
	}
	return db
}
