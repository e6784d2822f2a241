package postgres

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain/company"
)

func (s *Store) ListCompanies(ctx context.Context) ([]company.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, notes, owner_id, created_at
		 FROM companies c WHERE `+companyScope("c", "$1")+`
		 ORDER BY created_at DESC`, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *Store) GetCompany(ctx context.Context, id int64) (*company.Company, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, notes, owner_id, created_at
		 FROM companies c WHERE c.id = $1 AND `+companyScope("c", "$2"),
		id, ownerFromCtx(ctx))

	c, err := scanCompany(row)
	if err != nil {
		return nil, notFoundWrap(err, "get company %d", id)
	}
	return &c, nil
}

func (s *Store) CreateCompany(ctx context.Context, req company.CreateRequest) (*company.Company, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO companies (name, notes, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, notes, owner_id, created_at`,
		req.Name, req.Notes, ownerFromCtx(ctx))

	c, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", uniqueWrap(err))
	}
	return &c, nil
}

func (s *Store) UpdateCompany(ctx context.Context, c *company.Company) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE companies c SET name = $2, notes = $3
		 WHERE c.id = $1 AND `+companyScope("c", "$4"),
		c.ID, c.Name, c.Notes, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "update company %d", c.ID)
}

func (s *Store) DeleteCompany(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM companies c WHERE c.id = $1 AND `+companyScope("c", "$2"),
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "delete company %d", id)
}

func scanCompany(row scannable) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.Notes, &c.OwnerID, &c.CreatedAt)
	return c, err
}
