package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rentfold/rentfold/internal/domain/payment"
)

const rentPaymentColumns = `id, tenant_id, payment_date, amount, COALESCE(payment_method, ''),
	check_number, paid_in_full, COALESCE(notes, ''), created_at`

func (s *Store) ListRentPayments(ctx context.Context) ([]payment.RentPayment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+rentPaymentColumns+`
		 FROM rent_payments rp0 WHERE `+rentPaymentScope("rp0", "$1")+`
		 ORDER BY payment_date DESC, id DESC`, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list rent payments: %w", err)
	}
	defer rows.Close()
	return collectRentPayments(rows)
}

// ListRentPaymentsByTenant returns the tenant's payments. Access to the
// tenant itself is verified by the caller; the ownership predicate still
// guards every returned row.
func (s *Store) ListRentPaymentsByTenant(ctx context.Context, tenantID int64) ([]payment.RentPayment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+rentPaymentColumns+`
		 FROM rent_payments rp0 WHERE rp0.tenant_id = $1 AND `+rentPaymentScope("rp0", "$2")+`
		 ORDER BY payment_date DESC, id DESC`, tenantID, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list rent payments for tenant %d: %w", tenantID, err)
	}
	defer rows.Close()
	return collectRentPayments(rows)
}

func (s *Store) GetRentPayment(ctx context.Context, id int64) (*payment.RentPayment, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+rentPaymentColumns+`
		 FROM rent_payments rp0 WHERE rp0.id = $1 AND `+rentPaymentScope("rp0", "$2"),
		id, ownerFromCtx(ctx))

	p, err := scanRentPayment(row)
	if err != nil {
		return nil, notFoundWrap(err, "get rent payment %d", id)
	}
	return &p, nil
}

func (s *Store) CreateRentPayment(ctx context.Context, req payment.CreateRequest) (*payment.RentPayment, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO rent_payments (tenant_id, payment_date, amount, payment_method, check_number, paid_in_full, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+rentPaymentColumns,
		req.TenantID, req.PaymentDate, req.Amount, req.PaymentMethod, req.CheckNumber, req.PaidInFull, req.Notes)

	p, err := scanRentPayment(row)
	if err != nil {
		return nil, fmt.Errorf("create rent payment: %w", err)
	}
	return &p, nil
}

func (s *Store) UpdateRentPayment(ctx context.Context, p *payment.RentPayment) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE rent_payments rp0 SET payment_date = $2, amount = $3, payment_method = $4,
			check_number = $5, paid_in_full = $6, notes = $7
		 WHERE rp0.id = $1 AND `+rentPaymentScope("rp0", "$8"),
		p.ID, p.PaymentDate, p.Amount, p.PaymentMethod, p.CheckNumber, p.PaidInFull, p.Notes, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "update rent payment %d", p.ID)
}

func (s *Store) DeleteRentPayment(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM rent_payments rp0 WHERE rp0.id = $1 AND `+rentPaymentScope("rp0", "$2"),
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "delete rent payment %d", id)
}

func collectRentPayments(rows pgx.Rows) ([]payment.RentPayment, error) {
	var payments []payment.RentPayment
	for rows.Next() {
		p, err := scanRentPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rent payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func scanRentPayment(row scannable) (payment.RentPayment, error) {
	var p payment.RentPayment
	err := row.Scan(&p.ID, &p.TenantID, &p.PaymentDate, &p.Amount, &p.PaymentMethod,
		&p.CheckNumber, &p.PaidInFull, &p.Notes, &p.CreatedAt)
	return p, err
}
