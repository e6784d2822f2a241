// Package tenant defines the renter model. A tenant carries no owner
// reference; its owner is whoever owns its property. A tenant without a
// property is unreachable by any ownership-scoped query.
package tenant

import (
	"fmt"
	"time"

	"github.com/rentfold/rentfold/internal/domain"
)

// Tenant is a renter, optionally assigned to a property.
type Tenant struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Floor            string    `json:"floor,omitempty"`
	PropertyID       *int64    `json:"property_id,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `json:"emergency_phone,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateRequest is the input for creating a tenant.
type CreateRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Floor            string `json:"floor"`
	PropertyID       *int64 `json:"property_id"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	Notes            string `json:"notes"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	return nil
}

// UpdateRequest carries partial updates; nil means leave unchanged.
type UpdateRequest struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	Floor            *string `json:"floor"`
	PropertyID       *int64  `json:"property_id"`
	EmergencyContact *string `json:"emergency_contact"`
	EmergencyPhone   *string `json:"emergency_phone"`
	Notes            *string `json:"notes"`
}

// Validate checks supplied fields.
func (r *UpdateRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("name cannot be empty: %w", domain.ErrValidation)
	}
	return nil
}
