// Package company defines the optional legal entity grouping properties.
package company

import (
	"fmt"
	"time"

	"github.com/rentfold/rentfold/internal/domain"
)

// Company groups properties under a single owner.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes,omitempty"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest is the input for creating a company. The owner is taken
// from the authenticated request, never from the body.
type CreateRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("name exceeds 255 characters: %w", domain.ErrValidation)
	}
	return nil
}

// UpdateRequest carries partial updates; nil means leave unchanged.
type UpdateRequest struct {
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
}

// Validate checks supplied fields.
func (r *UpdateRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("name cannot be empty: %w", domain.ErrValidation)
	}
	return nil
}
