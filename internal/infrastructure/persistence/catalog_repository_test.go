package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogozord/backend/internal/domain/catalog"
	"github.com/catalogozord/backend/internal/domain/shared"
)

func TestGormEntryRepository_UpsertBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormEntryRepository(db)

	now := time.Now()
	entries := []catalog.Entry{
		{SKU: "A1", Name: "Camiseta - P", Active: true, SyncedAt: now},
		{SKU: "A2", Name: "Camiseta - M", Active: true, SyncedAt: now},
	}

	mock.ExpectExec(`INSERT INTO "catalog_entries" .* ON CONFLICT \("sku"\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.UpsertBatch(context.Background(), entries)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEntryRepository_UpsertBatch_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormEntryRepository(db)

	err := repo.UpsertBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEntryRepository_List_WithSearch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormEntryRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "catalog_entries" .*LOWER\(unaccent\(sku\)\) LIKE .* OR LOWER\(unaccent\(name\)\) LIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "catalog_entries" .*LIKE.* ORDER BY sku ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"sku", "name", "active"}).
			AddRow("A1", "Camiseta - P", true))

	entries, total, err := repo.List(context.Background(), catalog.Filter{
		Search: "Camiseta",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "A1", entries[0].SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEntryRepository_List_SearchUnaccentsBothSides(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormEntryRepository(db)

	// Searching an accented term must send a stripped pattern while the SQL
	// unaccents the columns, so "Calça" finds the row stored as "Calça".
	mock.ExpectQuery(`SELECT count\(\*\) FROM "catalog_entries" .*LOWER\(unaccent\(sku\)\) LIKE .* OR LOWER\(unaccent\(name\)\) LIKE`).
		WithArgs("%calca%", "%calca%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "catalog_entries" .*LOWER\(unaccent\(sku\)\) LIKE .* OR LOWER\(unaccent\(name\)\) LIKE.* ORDER BY sku ASC LIMIT`).
		WithArgs("%calca%", "%calca%", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sku", "name", "active"}).
			AddRow("C1", "Calça Jeans", true))

	entries, total, err := repo.List(context.Background(), catalog.Filter{
		Search: "Calça",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "Calça Jeans", entries[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEntryRepository_List_SupplierFilterJoinsAssociations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormEntryRepository(db)

	mock.ExpectQuery(`(?s)SELECT count\(\*\) FROM "catalog_entries" .*sku IN \(SELECT ps\.sku FROM product_suppliers ps.*LOWER\(unaccent\(s\.name\)\) LIKE .*LOWER\(unaccent\(pe\.supplier_code\)\) LIKE`).
		WithArgs("%sao jorge%", "%sao jorge%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`(?s)SELECT \* FROM "catalog_entries" .*sku IN \(SELECT ps\.sku`).
		WillReturnRows(sqlmock.NewRows([]string{"sku"}))

	_, total, err := repo.List(context.Background(), catalog.Filter{
		Supplier: "São Jorge",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEntryRepository_FindBySKU_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormEntryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "catalog_entries" WHERE sku = `).
		WillReturnRows(sqlmock.NewRows([]string{"sku"}))

	_, err := repo.FindBySKU(context.Background(), "NOPE")
	require.Error(t, err)

	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, shared.CodeNotFound, de.Code)
}
