package service

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/adapter/otel"
	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/payment"
	"github.com/rentfold/rentfold/internal/port/database"
)

// PaymentService handles rent payment business logic.
type PaymentService struct {
	store   database.Store
	access  *AccessService
	metrics *otel.Metrics
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(store database.Store, access *AccessService, metrics *otel.Metrics) *PaymentService {
	return &PaymentService{store: store, access: access, metrics: metrics}
}

// List returns the acting owner's rent payments.
func (s *PaymentService) List(ctx context.Context) ([]payment.RentPayment, error) {
	return s.store.ListRentPayments(ctx)
}

// ListByTenant returns a tenant's payments, newest first.
func (s *PaymentService) ListByTenant(ctx context.Context, tenantID int64) ([]payment.RentPayment, error) {
	if err := s.access.Authorize(ctx, domain.KindTenant, tenantID); err != nil {
		return nil, err
	}
	return s.store.ListRentPaymentsByTenant(ctx, tenantID)
}

// Get returns a rent payment by ID.
func (s *PaymentService) Get(ctx context.Context, id int64) (*payment.RentPayment, error) {
	if err := s.access.Authorize(ctx, domain.KindRentPayment, id); err != nil {
		return nil, err
	}
	return s.store.GetRentPayment(ctx, id)
}

// Create records a payment. The tenant must resolve to the acting owner.
func (s *PaymentService) Create(ctx context.Context, req payment.CreateRequest) (*payment.RentPayment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindTenant, req.TenantID); err != nil {
		return nil, err
	}

	p, err := s.store.CreateRentPayment(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PaymentsRecorded.Add(ctx, 1)
	}
	return p, nil
}

// Update applies a partial update to a payment. The tenant reference is
// fixed at creation.
func (s *PaymentService) Update(ctx context.Context, id int64, req payment.UpdateRequest) (*payment.RentPayment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindRentPayment, id); err != nil {
		return nil, err
	}

	p, err := s.store.GetRentPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PaymentDate != nil {
		p.PaymentDate = *req.PaymentDate
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		p.PaymentMethod = *req.PaymentMethod
	}
	if req.CheckNumber != nil {
		p.CheckNumber = req.CheckNumber
	}
	if req.PaidInFull != nil {
		p.PaidInFull = *req.PaidInFull
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	if err := s.store.UpdateRentPayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a payment.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.access.Authorize(ctx, domain.KindRentPayment, id); err != nil {
		return err
	}
	return s.store.DeleteRentPayment(ctx, id)
}
