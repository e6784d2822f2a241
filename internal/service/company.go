package service

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/company"
	"github.com/rentfold/rentfold/internal/port/database"
)

// CompanyService handles company business logic.
type CompanyService struct {
	store  database.Store
	access *AccessService
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(store database.Store, access *AccessService) *CompanyService {
	return &CompanyService{store: store, access: access}
}

// List returns the acting owner's companies.
func (s *CompanyService) List(ctx context.Context) ([]company.Company, error) {
	return s.store.ListCompanies(ctx)
}

// Get returns a company by ID.
func (s *CompanyService) Get(ctx context.Context, id int64) (*company.Company, error) {
	if err := s.access.Authorize(ctx, domain.KindCompany, id); err != nil {
		return nil, err
	}
	return s.store.GetCompany(ctx, id)
}

// Create creates a company owned by the acting owner.
func (s *CompanyService) Create(ctx context.Context, req company.CreateRequest) (*company.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return s.store.CreateCompany(ctx, req)
}

// Update applies a partial update to a company.
func (s *CompanyService) Update(ctx context.Context, id int64, req company.UpdateRequest) (*company.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindCompany, id); err != nil {
		return nil, err
	}

	c, err := s.store.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.store.UpdateCompany(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a company. Properties that referenced it fall back to
// direct ownership resolution; the database nulls the reference.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	if err := s.access.Authorize(ctx, domain.KindCompany, id); err != nil {
		return err
	}
	return s.store.DeleteCompany(ctx, id)
}
