package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rentfold/rentfold/internal/adapter/otel"
	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/lease"
	"github.com/rentfold/rentfold/internal/port/blobstore"
	"github.com/rentfold/rentfold/internal/port/database"
)

// LeaseService handles lease business logic, including the attached
// document lifecycle.
type LeaseService struct {
	store   database.Store
	blobs   blobstore.Store
	access  *AccessService
	metrics *otel.Metrics
}

// NewLeaseService creates a new LeaseService.
func NewLeaseService(store database.Store, blobs blobstore.Store, access *AccessService, metrics *otel.Metrics) *LeaseService {
	return &LeaseService{store: store, blobs: blobs, access: access, metrics: metrics}
}

// List returns the acting owner's leases.
func (s *LeaseService) List(ctx context.Context) ([]lease.Lease, error) {
	return s.store.ListLeases(ctx)
}

// Get returns a lease by ID.
func (s *LeaseService) Get(ctx context.Context, id int64) (*lease.Lease, error) {
	if err := s.access.Authorize(ctx, domain.KindLease, id); err != nil {
		return nil, err
	}
	return s.store.GetLease(ctx, id)
}

// Create creates a lease. Both the property and the tenant must resolve to
// the acting owner.
func (s *LeaseService) Create(ctx context.Context, req lease.CreateRequest) (*lease.Lease, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindProperty, req.PropertyID); err != nil {
		return nil, err
	}
	if err := s.access.Authorize(ctx, domain.KindTenant, req.TenantID); err != nil {
		return nil, err
	}
	return s.store.CreateLease(ctx, req)
}

// Update applies a partial update to a lease. The property and tenant
// references are fixed at creation.
func (s *LeaseService) Update(ctx context.Context, id int64, req lease.UpdateRequest) (*lease.Lease, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindLease, id); err != nil {
		return nil, err
	}

	l, err := s.store.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		l.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		l.EndDate = *req.EndDate
	}
	if l.EndDate.Before(l.StartDate) {
		return nil, fmt.Errorf("end_date precedes start_date: %w", domain.ErrValidation)
	}
	if req.Rent != nil {
		l.Rent = *req.Rent
	}
	if req.Deposit != nil {
		l.Deposit = *req.Deposit
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}

	if err := s.store.UpdateLease(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a lease and, best effort, its stored document. A blob
// delete failure is logged but never blocks the row delete.
func (s *LeaseService) Delete(ctx context.Context, id int64) error {
	if err := s.access.Authorize(ctx, domain.KindLease, id); err != nil {
		return err
	}

	l, err := s.store.GetLease(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteLease(ctx, id); err != nil {
		return err
	}

	if l.DocumentFilename != "" {
		if _, err := s.blobs.DeleteIfExists(ctx, l.DocumentFilename); err != nil {
			slog.Warn("failed to delete lease document blob", "lease_id", id,
				"filename", l.DocumentFilename, "error", err)
		}
	}
	return nil
}

// AttachDocument validates, stores, and records a lease document. An
// existing document is replaced; its old blob is removed best effort after
// the new one is recorded.
func (s *LeaseService) AttachDocument(ctx context.Context, id int64, originalName string, r io.Reader, size int64) (*lease.Lease, error) {
	if err := s.access.Authorize(ctx, domain.KindLease, id); err != nil {
		return nil, err
	}

	if size > lease.MaxDocumentSize {
		return nil, fmt.Errorf("document exceeds %d bytes: %w", lease.MaxDocumentSize, domain.ErrPayloadTooLarge)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	contentType, ok := lease.AllowedDocumentExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("document type %q not allowed: %w", ext, domain.ErrUnsupportedMedia)
	}

	// Sniff the leading bytes so a renamed executable cannot slip through
	// on extension alone.
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read document: %w", domain.ErrStorage)
	}
	head = head[:n]
	if !sniffMatches(ext, http.DetectContentType(head)) {
		return nil, fmt.Errorf("document content does not match %q: %w", ext, domain.ErrUnsupportedMedia)
	}

	l, err := s.store.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := l.DocumentFilename

	now := time.Now().UTC()
	stored := fmt.Sprintf("lease-%d-%d-%s.%s", id, now.UnixNano(), uuid.NewString()[:8], ext)

	// Guard against oversized bodies whose declared size lied.
	body := io.MultiReader(bytes.NewReader(head), io.LimitReader(r, lease.MaxDocumentSize+1))
	if _, err := s.blobs.Put(ctx, stored, body, contentType); err != nil {
		return nil, fmt.Errorf("store document: %w", domain.ErrStorage)
	}

	if err := s.store.SetLeaseDocument(ctx, id, stored, originalName, now); err != nil {
		if _, derr := s.blobs.DeleteIfExists(ctx, stored); derr != nil {
			slog.Warn("failed to remove orphaned document blob", "filename", stored, "error", derr)
		}
		return nil, err
	}

	if previous != "" && previous != stored {
		if _, err := s.blobs.DeleteIfExists(ctx, previous); err != nil {
			slog.Warn("failed to delete replaced document blob", "lease_id", id,
				"filename", previous, "error", err)
		}
	}

	if s.metrics != nil {
		s.metrics.DocumentsUploaded.Add(ctx, 1)
	}

	return s.store.GetLease(ctx, id)
}

// sniffMatches reports whether a detected content type is plausible for
// the claimed extension. Office formats detect as zip or generic binary,
// so those accept the broad types.
func sniffMatches(ext, detected string) bool {
	detected = strings.ToLower(strings.TrimSpace(strings.SplitN(detected, ";", 2)[0]))
	switch ext {
	case "pdf":
		return detected == "application/pdf"
	case "jpg", "jpeg":
		return detected == "image/jpeg"
	case "png":
		return detected == "image/png"
	case "doc":
		return detected == "application/msword" || detected == "application/octet-stream"
	case "docx":
		return detected == "application/zip" || detected == "application/octet-stream"
	default:
		return false
	}
}

// DetachDocument clears the lease's document record and removes the blob
// best effort.
func (s *LeaseService) DetachDocument(ctx context.Context, id int64) error {
	if err := s.access.Authorize(ctx, domain.KindLease, id); err != nil {
		return err
	}

	l, err := s.store.GetLease(ctx, id)
	if err != nil {
		return err
	}
	if l.DocumentFilename == "" {
		return fmt.Errorf("lease %d has no document: %w", id, domain.ErrNotFound)
	}

	if err := s.store.ClearLeaseDocument(ctx, id); err != nil {
		return err
	}

	if _, err := s.blobs.DeleteIfExists(ctx, l.DocumentFilename); err != nil {
		slog.Warn("failed to delete lease document blob", "lease_id", id,
			"filename", l.DocumentFilename, "error", err)
	}

	if s.metrics != nil {
		s.metrics.DocumentsDeleted.Add(ctx, 1)
	}
	return nil
}
