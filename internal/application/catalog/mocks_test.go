package catalog

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	domaincatalog "github.com/catalogozord/backend/internal/domain/catalog"
	"github.com/catalogozord/backend/internal/domain/integration"
	"github.com/catalogozord/backend/internal/domain/supplier"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// MockGateway is a mock implementation of integration.ERPGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListCatalogPage(ctx context.Context, page, limit int) (*integration.CatalogPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.CatalogPage), args.Error(1)
}

func (m *MockGateway) FetchInventory(ctx context.Context, sku string) ([]integration.StockLevel, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]integration.StockLevel), args.Error(1)
}

func (m *MockGateway) FetchPrice(ctx context.Context, sku string) (*decimal.Decimal, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}

func (m *MockGateway) PostMovement(ctx context.Context, mov integration.Movement) (json.RawMessage, error) {
	args := m.Called(ctx, mov)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGateway) PostPrice(ctx context.Context, sku string, price decimal.Decimal) error {
	args := m.Called(ctx, sku, price)
	return args.Error(0)
}

// MockEntryRepository is a mock implementation of catalog.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) UpsertBatch(ctx context.Context, entries []domaincatalog.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) List(ctx context.Context, filter domaincatalog.Filter) ([]domaincatalog.Entry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domaincatalog.Entry), args.Get(1).(int64), args.Error(2)
}

func (m *MockEntryRepository) FindBySKU(ctx context.Context, sku string) (*domaincatalog.Entry, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaincatalog.Entry), args.Error(1)
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
