package inventory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/domain/integration"
	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/infrastructure/auth"
)

// MovementRequest is a manual stock adjustment submitted by an operator.
type MovementRequest struct {
	SKU      string           `json:"sku"`
	Quantity decimal.Decimal  `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason   string           `json:"reason"`
}

// MovementService reads live stock and writes manual movements through to
// the ERP. The acting identity is threaded in explicitly so the audit trail
// records who moved stock.
type MovementService struct {
	gateway integration.ERPGateway
	logger  *zap.Logger
}

// NewMovementService creates a new movement service.
func NewMovementService(gateway integration.ERPGateway, logger *zap.Logger) *MovementService {
	return &MovementService{gateway: gateway, logger: logger}
}

// Live returns the current stock position of a SKU straight from the ERP.
// An empty slice means the ERP has no data for it.
func (s *MovementService) Live(ctx context.Context, sku string) ([]integration.StockLevel, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, shared.NewValidationError("sku is required")
	}
	return s.gateway.FetchInventory(ctx, sku)
}

// Submit validates and writes one stock movement, returning the upstream
// response payload verbatim.
func (s *MovementService) Submit(ctx context.Context, identity auth.Identity, req MovementRequest) (json.RawMessage, error) {
	req.SKU = strings.TrimSpace(req.SKU)
	if req.SKU == "" {
		return nil, shared.NewValidationError("sku is required")
	}
	if req.Quantity.IsZero() {
		return nil, shared.NewValidationError("quantity must not be zero")
	}

	actor := identity.Email
	if actor == "" {
		actor = identity.UserID
	}

	response, err := s.gateway.PostMovement(ctx, integration.Movement{
		SKU:      req.SKU,
		Quantity: req.Quantity,
		UnitCost: req.UnitCost,
		Reason:   strings.TrimSpace(req.Reason),
		Actor:    actor,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock movement submitted",
		zap.String("sku", req.SKU),
		zap.String("quantity", req.Quantity.String()),
		zap.String("actor", actor),
	)
	return response, nil
}
