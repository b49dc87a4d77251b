package catalog

import (
	"context"

	"go.uber.org/zap"

	domaincatalog "github.com/catalogozord/backend/internal/domain/catalog"
	"github.com/catalogozord/backend/internal/domain/integration"
	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/domain/supplier"
)

// CatalogService serves the merged catalog view: mirrored entries overlaid
// with the locally-owned extras and supplier associations.
type CatalogService struct {
	entries domaincatalog.EntryRepository
	extras  supplier.ExtraRepository
	gateway integration.ERPGateway
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	entries domaincatalog.EntryRepository,
	extras supplier.ExtraRepository,
	gateway integration.ERPGateway,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{entries: entries, extras: extras, gateway: gateway, logger: logger}
}

// List returns one page of catalog rows with the extras overlay applied.
func (s *CatalogService) List(ctx context.Context, query ListQuery) (*PageResult, error) {
	filter := domaincatalog.Filter{
		Pagination:   shared.Pagination{Page: query.Page, PageSize: query.PageSize},
		Search:       query.Search,
		Supplier:     query.Supplier,
		Discontinued: query.Discontinued,
		Active:       query.Active,
	}
	filter.Normalize()

	entries, total, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	skus := make([]string, 0, len(entries))
	for _, entry := range entries {
		skus = append(skus, entry.SKU)
	}

	extras, err := s.extras.FindBySKUs(ctx, skus)
	if err != nil {
		return nil, err
	}
	extrasBySKU := make(map[string]supplier.ProductExtra, len(extras))
	for _, extra := range extras {
		extrasBySKU[extra.SKU] = extra
	}

	suppliersBySKU, err := s.extras.SuppliersBySKUs(ctx, skus)
	if err != nil {
		return nil, err
	}

	rows := make([]*Row, 0, len(entries))
	for _, entry := range entries {
		row := &Row{
			SKU:          entry.SKU,
			Name:         entry.Name,
			ParentCode:   entry.ParentCode,
			DerivationID: entry.DerivationID,
			ImageURL:     entry.ImageURL,
			Active:       entry.Active,
			Price:        entry.Price,
			SyncedAt:     entry.SyncedAt,
			Suppliers:    []SupplierRef{},
		}
		if extra, ok := extrasBySKU[entry.SKU]; ok {
			row.SupplierCode = extra.SupplierCode
			row.Discontinued = extra.Discontinued
			row.Notes = extra.Notes
		}
		for _, s := range suppliersBySKU[entry.SKU] {
			row.Suppliers = append(row.Suppliers, SupplierRef{ID: s.ID, Name: s.Name})
		}
		rows = append(rows, row)
	}

	return &PageResult{
		Rows:     rows,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// UpstreamPage reads one catalog page straight from the ERP without touching
// the mirror. Used for spot-checks against stale mirror data.
func (s *CatalogService) UpstreamPage(ctx context.Context, page, limit int) (*UpstreamPageResult, error) {
	if page < 1 {
		page = 1
	}
	result, err := s.gateway.ListCatalogPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &UpstreamPageResult{
		Items:   result.Items,
		Total:   result.Total,
		HasMore: result.HasMore,
		Page:    page,
	}, nil
}
