package supplier

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/catalogozord/backend/internal/domain/supplier"
)

// MockRepository is a mock implementation of supplier.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindAll(ctx context.Context) ([]supplier.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]supplier.Supplier), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockExtraRepository is a mock implementation of supplier.ExtraRepository
type MockExtraRepository struct {
	mock.Mock
}

func (m *MockExtraRepository) FindBySKUs(ctx context.Context, skus []string) ([]supplier.ProductExtra, error) {
	args := m.Called(ctx, skus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]supplier.ProductExtra), args.Error(1)
}

func (m *MockExtraRepository) SuppliersBySKUs(ctx context.Context, skus []string) (map[string][]supplier.Supplier, error) {
	args := m.Called(ctx, skus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]supplier.Supplier), args.Error(1)
}

func (m *MockExtraRepository) Upsert(ctx context.Context, extra *supplier.ProductExtra) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}

func (m *MockExtraRepository) ReplaceSuppliers(ctx context.Context, sku string, supplierIDs []int64) error {
	args := m.Called(ctx, sku, supplierIDs)
	return args.Error(0)
}
