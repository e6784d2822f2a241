package service

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/property"
	"github.com/rentfold/rentfold/internal/port/database"
)

// PropertyService handles property business logic.
type PropertyService struct {
	store  database.Store
	access *AccessService
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(store database.Store, access *AccessService) *PropertyService {
	return &PropertyService{store: store, access: access}
}

// List returns the acting owner's properties, directly owned or via company.
func (s *PropertyService) List(ctx context.Context) ([]property.Property, error) {
	return s.store.ListProperties(ctx)
}

// Get returns a property by ID.
func (s *PropertyService) Get(ctx context.Context, id int64) (*property.Property, error) {
	if err := s.access.Authorize(ctx, domain.KindProperty, id); err != nil {
		return nil, err
	}
	return s.store.GetProperty(ctx, id)
}

// Create creates a property. A company reference must resolve to the acting
// owner; without one the property is owned directly.
func (s *PropertyService) Create(ctx context.Context, req property.CreateRequest, ownerID int64) (*property.Property, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if req.CompanyID != nil {
		if err := s.access.Authorize(ctx, domain.KindCompany, *req.CompanyID); err != nil {
			return nil, err
		}
	}
	if req.Status == "" {
		req.Status = property.StatusVacant
	}
	return s.store.CreateProperty(ctx, req, ownerID)
}

// Update applies a partial update to a property. A changed company
// reference must resolve to the acting owner.
func (s *PropertyService) Update(ctx context.Context, id int64, req property.UpdateRequest) (*property.Property, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindProperty, id); err != nil {
		return nil, err
	}
	if req.CompanyID != nil {
		if err := s.access.Authorize(ctx, domain.KindCompany, *req.CompanyID); err != nil {
			return nil, err
		}
	}

	p, err := s.store.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Address1 != nil {
		p.Address1 = *req.Address1
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.Zip != nil {
		p.Zip = *req.Zip
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.CompanyID != nil {
		p.CompanyID = req.CompanyID
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	if err := s.store.UpdateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a property. Tenants that referenced it lose their
// property link and become unreachable until reassigned.
func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if err := s.access.Authorize(ctx, domain.KindProperty, id); err != nil {
		return err
	}
	return s.store.DeleteProperty(ctx, id)
}
