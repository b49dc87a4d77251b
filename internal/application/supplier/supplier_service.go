package supplier

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/domain/shared"
	"github.com/catalogozord/backend/internal/domain/supplier"
)

// CreateSupplierRequest creates a new supplier.
type CreateSupplierRequest struct {
	Name string `json:"name"`
}

// UpdateSupplierRequest patches a supplier; nil fields are left unchanged.
type UpdateSupplierRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// Service manages the locally-owned supplier registry.
type Service struct {
	suppliers supplier.Repository
	logger    *zap.Logger
}

// NewService creates a new supplier service.
func NewService(suppliers supplier.Repository, logger *zap.Logger) *Service {
	return &Service{suppliers: suppliers, logger: logger}
}

// List returns all suppliers ordered by name.
func (s *Service) List(ctx context.Context) ([]supplier.Supplier, error) {
	return s.suppliers.FindAll(ctx)
}

// Create registers a new supplier.
func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (*supplier.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, shared.NewValidationError("supplier name is required")
	}

	created := &supplier.Supplier{Name: name, Active: true}
	if err := s.suppliers.Create(ctx, created); err != nil {
		return nil, err
	}

	s.logger.Info("supplier created",
		zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Update applies a partial update to a supplier.
func (s *Service) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (*supplier.Supplier, error) {
	if req.Name == nil && req.Active == nil {
		return nil, shared.NewValidationError("no fields to update")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, shared.NewValidationError("supplier name must not be empty")
	}

	existing, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := s.suppliers.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a supplier and its product associations.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("supplier deleted", zap.Int64("id", id))
	return nil
}
