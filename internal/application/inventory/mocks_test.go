package inventory

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/catalogozord/backend/internal/domain/integration"
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
