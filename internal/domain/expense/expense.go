// Package expense defines expenses and their categories. An expense may
// attach to a property, a company, or neither explicitly; its ownership is
// resolved through whichever reference is set.
package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/domain"
)

// Expense is a cost entry attributable to a property or company.
type Expense struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	PropertyID  *int64          `json:"property_id,omitempty"`
	CompanyID   *int64          `json:"company_id,omitempty"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateRequest is the input for creating an expense.
type CreateRequest struct {
	Date        time.Time       `json:"date"`
	PropertyID  *int64          `json:"property_id"`
	CompanyID   *int64          `json:"company_id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("date is required: %w", domain.ErrValidation)
	}
	if r.Category == "" {
		return fmt.Errorf("category is required: %w", domain.ErrValidation)
	}
	if r.Amount.IsNegative() || r.Amount.IsZero() {
		return fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	}
	return nil
}

// UpdateRequest carries partial updates; nil means leave unchanged.
type UpdateRequest struct {
	Date        *time.Time       `json:"date"`
	PropertyID  *int64           `json:"property_id"`
	CompanyID   *int64           `json:"company_id"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

// Validate checks supplied fields.
func (r *UpdateRequest) Validate() error {
	if r.Amount != nil && (r.Amount.IsNegative() || r.Amount.IsZero()) {
		return fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	}
	if r.Category != nil && *r.Category == "" {
		return fmt.Errorf("category cannot be empty: %w", domain.ErrValidation)
	}
	return nil
}

// Category is an expense category. A nil OwnerID marks a shared default
// visible to every owner.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   *int64    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCategoryRequest is the input for creating an owner-scoped category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields.
func (r *CreateCategoryRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	return nil
}
