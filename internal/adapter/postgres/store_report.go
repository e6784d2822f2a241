package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/domain/report"
)

func (s *Store) CountProperties(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM properties p WHERE `+propertyScope("p", "$1"),
		ownerFromCtx(ctx)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return n, nil
}

// CountActiveTenants counts distinct tenants on a lease active at asOf.
// Activeness bounds only the end date; a forward-dated lease counts.
func (s *Store) CountActiveTenants(ctx context.Context, asOf time.Time) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT l.tenant_id) FROM leases l
		 WHERE l.end_date >= $1 AND `+leaseScope("l", "$2"),
		asOf, ownerFromCtx(ctx)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active tenants: %w", err)
	}
	return n, nil
}

func (s *Store) CountActiveLeases(ctx context.Context, asOf time.Time) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM leases l
		 WHERE l.end_date >= $1 AND `+leaseScope("l", "$2"),
		asOf, ownerFromCtx(ctx)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active leases: %w", err)
	}
	return n, nil
}

// SumActiveRent totals the monthly rent across leases active at asOf.
// Activeness bounds only the end date; a forward-dated lease counts.
func (s *Store) SumActiveRent(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(l.rent), 0) FROM leases l
		 WHERE l.end_date >= $1 AND `+leaseScope("l", "$2"),
		asOf, ownerFromCtx(ctx)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum active rent: %w", err)
	}
	return total, nil
}

// SumExpensesBetween totals expenses with from <= date < to. Zero bounds
// mean unbounded on that side.
func (s *Store) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(e.amount), 0) FROM expenses e WHERE ` + expenseScope("e", "$1")
	args := []any{ownerFromCtx(ctx)}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(` AND e.date >= $%d`, len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(` AND e.date < $%d`, len(args))
	}

	var total decimal.Decimal
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

// SumPaymentsBetween totals rent payments with from <= payment_date < to and
// returns the matching row count. Zero bounds mean unbounded on that side.
func (s *Store) SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	query := `SELECT COALESCE(SUM(rp0.amount), 0), COUNT(*) FROM rent_payments rp0 WHERE ` +
		rentPaymentScope("rp0", "$1")
	args := []any{ownerFromCtx(ctx)}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(` AND rp0.payment_date >= $%d`, len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(` AND rp0.payment_date < $%d`, len(args))
	}

	var total decimal.Decimal
	var count int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("sum rent payments: %w", err)
	}
	return total, count, nil
}

// ListExpiringLeases returns leases ending within [from, to], soonest first.
func (s *Store) ListExpiringLeases(ctx context.Context, from, to time.Time) ([]report.ExpiringLease, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT l.id, t.name, p.address1, l.end_date, l.rent
		 FROM leases l
		 JOIN tenants t ON t.id = l.tenant_id
		 JOIN properties p ON p.id = l.property_id
		 WHERE l.end_date >= $1 AND l.end_date <= $2 AND `+leaseScope("l", "$3")+`
		 ORDER BY l.end_date ASC`, from, to, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list expiring leases: %w", err)
	}
	defer rows.Close()

	var expiring []report.ExpiringLease
	for rows.Next() {
		var e report.ExpiringLease
		if err := rows.Scan(&e.LeaseID, &e.TenantName, &e.PropertyAddress, &e.EndDate, &e.Rent); err != nil {
			return nil, fmt.Errorf("scan expiring lease: %w", err)
		}
		expiring = append(expiring, e)
	}
	return expiring, rows.Err()
}
