// Package property defines the property model. A property is owned either
// directly via OwnerID or transitively via its company; accessibility is the
// inclusive OR of both paths.
package property

import (
	"fmt"
	"time"

	"github.com/rentfold/rentfold/internal/domain"
)

// Status values for a property.
const (
	StatusActive   = "active"
	StatusVacant   = "vacant"
	StatusInactive = "inactive"
)

// Property is a rentable building or unit.
type Property struct {
	ID        int64     `json:"id"`
	Address1  string    `json:"address1"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Type      string    `json:"type,omitempty"`
	CompanyID *int64    `json:"company_id,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	OwnerID   *int64    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest is the input for creating a property. When CompanyID is nil
// the property is owned directly by the acting owner.
type CreateRequest struct {
	Address1  string `json:"address1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Type      string `json:"type"`
	CompanyID *int64 `json:"company_id"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.Address1 == "" {
		return fmt.Errorf("address1 is required: %w", domain.ErrValidation)
	}
	if r.City == "" {
		return fmt.Errorf("city is required: %w", domain.ErrValidation)
	}
	return nil
}

// UpdateRequest carries partial updates; nil means leave unchanged.
type UpdateRequest struct {
	Address1  *string `json:"address1"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
	Type      *string `json:"type"`
	CompanyID *int64  `json:"company_id"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

// Validate checks supplied fields.
func (r *UpdateRequest) Validate() error {
	if r.Address1 != nil && *r.Address1 == "" {
		return fmt.Errorf("address1 cannot be empty: %w", domain.ErrValidation)
	}
	return nil
}
