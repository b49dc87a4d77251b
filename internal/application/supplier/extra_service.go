package supplier

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/domain/supplier"
)

// ExtraView is one SKU's extras row with its associated suppliers resolved.
type ExtraView struct {
	SKU          string              `json:"sku"`
	SupplierCode string              `json:"supplier_code"`
	Discontinued bool                `json:"discontinued"`
	Notes        string              `json:"notes"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Suppliers    []supplier.Supplier `json:"suppliers"`
}

// PutExtraRequest replaces the extras row and association set for a SKU.
type PutExtraRequest struct {
	SupplierCode string  `json:"supplier_code"`
	Discontinued bool    `json:"discontinued"`
	Notes        string  `json:"notes"`
	SupplierIDs  []int64 `json:"supplier_ids"`
}

// ExtraService manages the per-SKU extras overlay.
type ExtraService struct {
	extras supplier.ExtraRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewExtraService creates a new extras service.
func NewExtraService(extras supplier.ExtraRepository, logger *zap.Logger) *ExtraService {
	return &ExtraService{extras: extras, logger: logger, now: time.Now}
}

// Get returns the extras for the requested SKUs. SKUs without an extras row
// are simply absent from the result.
func (s *ExtraService) Get(ctx context.Context, skus []string) ([]ExtraView, error) {
	cleaned := make([]string, 0, len(skus))
	for _, sku := range skus {
		if sku = strings.TrimSpace(sku); sku != "" {
			cleaned = append(cleaned, sku)
		}
	}
	if len(cleaned) == 0 {
		return []ExtraView{}, nil
	}

	extras, err := s.extras.FindBySKUs(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	suppliersBySKU, err := s.extras.SuppliersBySKUs(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	views := make([]ExtraView, 0, len(extras))
	for _, extra := range extras {
		view := ExtraView{
			SKU:          extra.SKU,
			SupplierCode: extra.SupplierCode,
			Discontinued: extra.Discontinued,
			Notes:        extra.Notes,
			UpdatedAt:    extra.UpdatedAt,
			Suppliers:    suppliersBySKU[extra.SKU],
		}
		if view.Suppliers == nil {
			view.Suppliers = []supplier.Supplier{}
		}
		views = append(views, view)
	}
	return views, nil
}

// Put upserts the extras row for a SKU and replaces its full supplier
// association set.
func (s *ExtraService) Put(ctx context.Context, sku string, req PutExtraRequest) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewValidationError("sku is required")
	}

	extra := &supplier.ProductExtra{
		SKU:          sku,
		SupplierCode: strings.TrimSpace(req.SupplierCode),
		Discontinued: req.Discontinued,
		Notes:        req.Notes,
		UpdatedAt:    s.now().UTC(),
	}
	if err := s.extras.Upsert(ctx, extra); err != nil {
		return err
	}
	if err := s.extras.ReplaceSuppliers(ctx, sku, req.SupplierIDs); err != nil {
		return err
	}

	s.logger.Info("product extras updated", zap.String("sku", sku))
	return nil
}
