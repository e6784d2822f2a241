// Package lease defines the lease model linking exactly one tenant to
// exactly one property, plus the attached-document rules.
package lease

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/domain"
)

// MaxDocumentSize is the upload limit for lease documents.
const MaxDocumentSize = 10 << 20 // 10 MiB

// AllowedDocumentExtensions maps permitted lease document extensions to
// their content types. Extension keys are lowercase without the dot.
var AllowedDocumentExtensions = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// Lease binds a tenant to a property for a date range at a monthly rent.
type Lease struct {
	ID                   int64               `json:"id"`
	PropertyID           int64               `json:"property_id"`
	TenantID             int64               `json:"tenant_id"`
	StartDate            time.Time           `json:"start_date"`
	EndDate              time.Time           `json:"end_date"`
	Rent                 decimal.Decimal     `json:"rent"`
	Deposit              decimal.NullDecimal `json:"deposit,omitzero"`
	DocumentFilename     string              `json:"document_filename,omitempty"`
	DocumentOriginalName string              `json:"document_original_name,omitempty"`
	DocumentUploadedAt   time.Time           `json:"document_uploaded_at,omitzero"`
	Notes                string              `json:"notes,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
}

// DayStart truncates t to midnight UTC. Activeness and expiry are whole-day
// comparisons: a lease whose end_date is today stays active all day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateRequest is the input for creating a lease. Both references are
// required and must resolve to the creating owner.
type CreateRequest struct {
	PropertyID int64               `json:"property_id"`
	TenantID   int64               `json:"tenant_id"`
	StartDate  time.Time           `json:"start_date"`
	EndDate    time.Time           `json:"end_date"`
	Rent       decimal.Decimal     `json:"rent"`
	Deposit    decimal.NullDecimal `json:"deposit"`
	Notes      string              `json:"notes"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.PropertyID == 0 {
		return fmt.Errorf("property_id is required: %w", domain.ErrValidation)
	}
	if r.TenantID == 0 {
		return fmt.Errorf("tenant_id is required: %w", domain.ErrValidation)
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("start_date and end_date are required: %w", domain.ErrValidation)
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("end_date precedes start_date: %w", domain.ErrValidation)
	}
	if r.Rent.IsNegative() || r.Rent.IsZero() {
		return fmt.Errorf("rent must be positive: %w", domain.ErrValidation)
	}
	return nil
}

// UpdateRequest carries partial updates; nil means leave unchanged.
// Property and tenant references are fixed at creation.
type UpdateRequest struct {
	StartDate *time.Time           `json:"start_date"`
	EndDate   *time.Time           `json:"end_date"`
	Rent      *decimal.Decimal     `json:"rent"`
	Deposit   *decimal.NullDecimal `json:"deposit"`
	Notes     *string              `json:"notes"`
}

// Validate checks supplied fields.
func (r *UpdateRequest) Validate() error {
	if r.Rent != nil && (r.Rent.IsNegative() || r.Rent.IsZero()) {
		return fmt.Errorf("rent must be positive: %w", domain.ErrValidation)
	}
	return nil
}
