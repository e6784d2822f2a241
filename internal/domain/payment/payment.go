// Package payment defines rent payments. Ownership is derived through the
// paying tenant's property.
package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/domain"
)

// Payment methods accepted on a rent payment.
const (
	MethodCash     = "cash"
	MethodCheck    = "check"
	MethodTransfer = "transfer"
	MethodCard     = "card"
	MethodOther    = "other"
)

var validMethods = map[string]bool{
	MethodCash:     true,
	MethodCheck:    true,
	MethodTransfer: true,
	MethodCard:     true,
	MethodOther:    true,
}

// RentPayment records money received from a tenant.
type RentPayment struct {
	ID            int64           `json:"id"`
	TenantID      int64           `json:"tenant_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	CheckNumber   *string         `json:"check_number,omitempty"`
	PaidInFull    bool            `json:"paid_in_full"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateRequest is the input for recording a rent payment.
type CreateRequest struct {
	TenantID      int64           `json:"tenant_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	CheckNumber   *string         `json:"check_number"`
	PaidInFull    bool            `json:"paid_in_full"`
	Notes         string          `json:"notes"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.TenantID == 0 {
		return fmt.Errorf("tenant_id is required: %w", domain.ErrValidation)
	}
	if r.PaymentDate.IsZero() {
		return fmt.Errorf("payment_date is required: %w", domain.ErrValidation)
	}
	if r.Amount.IsNegative() || r.Amount.IsZero() {
		return fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	}
	if r.PaymentMethod != "" && !validMethods[r.PaymentMethod] {
		return fmt.Errorf("unknown payment_method %q: %w", r.PaymentMethod, domain.ErrValidation)
	}
	return nil
}

// UpdateRequest carries partial updates; nil means leave unchanged.
// The tenant reference is fixed at creation.
type UpdateRequest struct {
	PaymentDate   *time.Time       `json:"payment_date"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method"`
	CheckNumber   *string          `json:"check_number"`
	PaidInFull    *bool            `json:"paid_in_full"`
	Notes         *string          `json:"notes"`
}

// Validate checks supplied fields.
func (r *UpdateRequest) Validate() error {
	if r.Amount != nil && (r.Amount.IsNegative() || r.Amount.IsZero()) {
		return fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	}
	if r.PaymentMethod != nil && !validMethods[*r.PaymentMethod] {
		return fmt.Errorf("unknown payment_method %q: %w", *r.PaymentMethod, domain.ErrValidation)
	}
	return nil
}
