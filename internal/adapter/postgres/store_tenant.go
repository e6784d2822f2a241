package postgres

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain/tenant"
)

const tenantColumns = `id, name, phone, email, floor, property_id, emergency_contact, emergency_phone, notes, created_at`

func (s *Store) ListTenants(ctx context.Context) ([]tenant.Tenant, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+tenantColumns+`
		 FROM tenants t WHERE `+tenantScope("t", "$1")+`
		 ORDER BY name ASC`, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (s *Store) GetTenant(ctx context.Context, id int64) (*tenant.Tenant, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+tenantColumns+`
		 FROM tenants t WHERE t.id = $1 AND `+tenantScope("t", "$2"),
		id, ownerFromCtx(ctx))

	t, err := scanTenant(row)
	if err != nil {
		return nil, notFoundWrap(err, "get tenant %d", id)
	}
	return &t, nil
}

func (s *Store) CreateTenant(ctx context.Context, req tenant.CreateRequest) (*tenant.Tenant, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO tenants (name, phone, email, floor, property_id, emergency_contact, emergency_phone, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+tenantColumns,
		req.Name, req.Phone, req.Email, req.Floor, req.PropertyID,
		req.EmergencyContact, req.EmergencyPhone, req.Notes)

	t, err := scanTenant(row)
	if err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}
	return &t, nil
}

func (s *Store) UpdateTenant(ctx context.Context, t *tenant.Tenant) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE tenants t SET name = $2, phone = $3, email = $4, floor = $5,
		        property_id = $6, emergency_contact = $7, emergency_phone = $8, notes = $9
		 WHERE t.id = $1 AND `+tenantScope("t", "$10"),
		t.ID, t.Name, t.Phone, t.Email, t.Floor, t.PropertyID,
		t.EmergencyContact, t.EmergencyPhone, t.Notes, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "update tenant %d", t.ID)
}

func (s *Store) DeleteTenant(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM tenants t WHERE t.id = $1 AND `+tenantScope("t", "$2"),
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "delete tenant %d", id)
}

func scanTenant(row scannable) (tenant.Tenant, error) {
	var t tenant.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.Email, &t.Floor, &t.PropertyID,
		&t.EmergencyContact, &t.EmergencyPhone, &t.Notes, &t.CreatedAt)
	return t, err
}
