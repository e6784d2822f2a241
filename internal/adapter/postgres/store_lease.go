package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rentfold/rentfold/internal/domain/lease"
)

const leaseColumns = `id, property_id, tenant_id, start_date, end_date, rent, deposit,
	COALESCE(document_filename, ''), COALESCE(document_original_name, ''), document_uploaded_at,
	notes, created_at`

func (s *Store) ListLeases(ctx context.Context) ([]lease.Lease, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+leaseColumns+`
		 FROM leases l WHERE `+leaseScope("l", "$1")+`
		 ORDER BY end_date DESC`, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	defer rows.Close()

	var leases []lease.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		leases = append(leases, l)
	}
	return leases, rows.Err()
}

func (s *Store) GetLease(ctx context.Context, id int64) (*lease.Lease, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+leaseColumns+`
		 FROM leases l WHERE l.id = $1 AND `+leaseScope("l", "$2"),
		id, ownerFromCtx(ctx))

	l, err := scanLease(row)
	if err != nil {
		return nil, notFoundWrap(err, "get lease %d", id)
	}
	return &l, nil
}

func (s *Store) CreateLease(ctx context.Context, req lease.CreateRequest) (*lease.Lease, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO leases (property_id, tenant_id, start_date, end_date, rent, deposit, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+leaseColumns,
		req.PropertyID, req.TenantID, req.StartDate, req.EndDate, req.Rent, req.Deposit, req.Notes)

	l, err := scanLease(row)
	if err != nil {
		return nil, fmt.Errorf("create lease: %w", err)
	}
	return &l, nil
}

func (s *Store) UpdateLease(ctx context.Context, l *lease.Lease) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE leases l SET start_date = $2, end_date = $3, rent = $4, deposit = $5, notes = $6
		 WHERE l.id = $1 AND `+leaseScope("l", "$7"),
		l.ID, l.StartDate, l.EndDate, l.Rent, l.Deposit, l.Notes, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "update lease %d", l.ID)
}

func (s *Store) DeleteLease(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM leases l WHERE l.id = $1 AND `+leaseScope("l", "$2"),
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "delete lease %d", id)
}

// SetLeaseDocument records a newly attached document on the lease row.
func (s *Store) SetLeaseDocument(ctx context.Context, id int64, filename, originalName string, uploadedAt time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE leases l SET document_filename = $2, document_original_name = $3, document_uploaded_at = $4
		 WHERE l.id = $1 AND `+leaseScope("l", "$5"),
		id, filename, originalName, uploadedAt, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "set lease document %d", id)
}

// ClearLeaseDocument detaches the document from the lease row.
func (s *Store) ClearLeaseDocument(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE leases l SET document_filename = NULL, document_original_name = NULL, document_uploaded_at = NULL
		 WHERE l.id = $1 AND `+leaseScope("l", "$2"),
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "clear lease document %d", id)
}

// ListActiveLeaseDetails returns every lease active as of the given date
// (start <= asOf <= end) joined with its tenant and property address, used
// by the unpaid-rent analyzer.
func (s *Store) ListActiveLeaseDetails(ctx context.Context, asOf time.Time) ([]lease.ActiveDetail, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT l.id, t.id, t.name, t.phone, t.email, p.address1, l.rent, l.start_date, l.end_date
		 FROM leases l
		 JOIN tenants t ON t.id = l.tenant_id
		 JOIN properties p ON p.id = l.property_id
		 WHERE l.start_date <= $1 AND l.end_date >= $1 AND `+leaseScope("l", "$2")+`
		 ORDER BY t.name ASC`, asOf, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list active lease details: %w", err)
	}
	defer rows.Close()

	var details []lease.ActiveDetail
	for rows.Next() {
		var d lease.ActiveDetail
		if err := rows.Scan(&d.LeaseID, &d.TenantID, &d.TenantName, &d.TenantPhone, &d.TenantEmail,
			&d.PropertyAddress, &d.Rent, &d.StartDate, &d.EndDate); err != nil {
			return nil, fmt.Errorf("scan active lease detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func scanLease(row scannable) (lease.Lease, error) {
	var l lease.Lease
	var uploadedAt *time.Time
	err := row.Scan(&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate,
		&l.Rent, &l.Deposit, &l.DocumentFilename, &l.DocumentOriginalName, &uploadedAt,
		&l.Notes, &l.CreatedAt)
	if err != nil {
		return l, err
	}
	if uploadedAt != nil {
		l.DocumentUploadedAt = *uploadedAt
	}
	return l, nil
}
