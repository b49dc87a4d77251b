package inventory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/domain/integration"
	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/infrastructure/auth"
)

// PriceService reads and writes selling prices on the configured ERP price
// list.
type PriceService struct {
	gateway integration.ERPGateway
	logger  *zap.Logger
}

// NewPriceService creates a new price service.
func NewPriceService(gateway integration.ERPGateway, logger *zap.Logger) *PriceService {
	return &PriceService{gateway: gateway, logger: logger}
}

// Get returns the current selling price of a SKU, or nil when the price
// list has no row for it.
func (s *PriceService) Get(ctx context.Context, sku string) (*decimal.Decimal, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, shared.NewValidationError("sku is required")
	}
	return s.gateway.FetchPrice(ctx, sku)
}

// Update writes a new selling price for a SKU.
func (s *PriceService) Update(ctx context.Context, identity auth.Identity, sku string, price decimal.Decimal) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewValidationError("sku is required")
	}
	if price.IsNegative() {
		return shared.NewValidationError("price must not be negative")
	}

	if err := s.gateway.PostPrice(ctx, sku, price); err != nil {
		return err
	}

	actor := identity.Email
	if actor == "" {
		actor = identity.UserID
	}
	s.logger.Info("price updated",
		zap.String("sku", sku),
		zap.String("price", price.String()),
		zap.String("actor", actor),
	)
	return nil
}
