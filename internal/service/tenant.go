package service

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/tenant"
	"github.com/rentfold/rentfold/internal/port/database"
)

// TenantService handles tenant business logic.
type TenantService struct {
	store  database.Store
	access *AccessService
}

// NewTenantService creates a new TenantService.
func NewTenantService(store database.Store, access *AccessService) *TenantService {
	return &TenantService{store: store, access: access}
}

// List returns the acting owner's tenants.
func (s *TenantService) List(ctx context.Context) ([]tenant.Tenant, error) {
	return s.store.ListTenants(ctx)
}

// Get returns a tenant by ID.
func (s *TenantService) Get(ctx context.Context, id int64) (*tenant.Tenant, error) {
	if err := s.access.Authorize(ctx, domain.KindTenant, id); err != nil {
		return nil, err
	}
	return s.store.GetTenant(ctx, id)
}

// Create creates a tenant. The property reference, when set, must resolve
// to the acting owner. A tenant created without a property is invisible to
// scoped queries until one is assigned.
func (s *TenantService) Create(ctx context.Context, req tenant.CreateRequest) (*tenant.Tenant, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if req.PropertyID != nil {
		if err := s.access.Authorize(ctx, domain.KindProperty, *req.PropertyID); err != nil {
			return nil, err
		}
	}
	return s.store.CreateTenant(ctx, req)
}

// Update applies a partial update to a tenant. A changed property
// reference must resolve to the acting owner.
func (s *TenantService) Update(ctx context.Context, id int64, req tenant.UpdateRequest) (*tenant.Tenant, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindTenant, id); err != nil {
		return nil, err
	}
	if req.PropertyID != nil {
		if err := s.access.Authorize(ctx, domain.KindProperty, *req.PropertyID); err != nil {
			return nil, err
		}
	}

	t, err := s.store.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Phone != nil {
		t.Phone = *req.Phone
	}
	if req.Email != nil {
		t.Email = *req.Email
	}
	if req.Floor != nil {
		t.Floor = *req.Floor
	}
	if req.PropertyID != nil {
		t.PropertyID = req.PropertyID
	}
	if req.EmergencyContact != nil {
		t.EmergencyContact = *req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		t.EmergencyPhone = *req.EmergencyPhone
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}

	if err := s.store.UpdateTenant(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a tenant.
func (s *TenantService) Delete(ctx context.Context, id int64) error {
	if err := s.access.Authorize(ctx, domain.KindTenant, id); err != nil {
		return err
	}
	return s.store.DeleteTenant(ctx, id)
}
