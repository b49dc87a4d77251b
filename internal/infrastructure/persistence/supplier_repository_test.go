package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/domain/supplier"
)

func TestGormSupplierRepository_FindAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormSupplierRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "suppliers" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "created_at"}).
			AddRow(1, "Acme", true, now).
			AddRow(2, "Zenith", false, now))

	suppliers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Acme", suppliers[0].Name)
	assert.False(t, suppliers[1].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectQuery(`INSERT INTO "suppliers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	s := &supplier.Supplier{Name: "Acme", Active: true}
	err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSupplierRepository_Delete_CascadesAssociations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "product_suppliers" WHERE supplier_id = `).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "suppliers" WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Delete_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "product_suppliers" WHERE supplier_id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "suppliers" WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)
	require.Error(t, err)

	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, shared.CodeNotFound, de.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
