package postgres

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain/property"
)

const propertyColumns = `id, address1, city, state, zip, type, company_id, status, notes, owner_id, created_at`

func (s *Store) ListProperties(ctx context.Context) ([]property.Property, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+propertyColumns+`
		 FROM properties p WHERE `+propertyScope("p", "$1")+`
		 ORDER BY created_at DESC`, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var properties []property.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (s *Store) GetProperty(ctx context.Context, id int64) (*property.Property, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+propertyColumns+`
		 FROM properties p WHERE p.id = $1 AND `+propertyScope("p", "$2"),
		id, ownerFromCtx(ctx))

	p, err := scanProperty(row)
	if err != nil {
		return nil, notFoundWrap(err, "get property %d", id)
	}
	return &p, nil
}

// CreateProperty bootstraps a property under the given owner. When the
// request names a company, ownership flows through the company instead and
// owner_id stays null; the caller must have verified company access.
func (s *Store) CreateProperty(ctx context.Context, req property.CreateRequest, ownerID int64) (*property.Property, error) {
	var directOwner *int64
	if req.CompanyID == nil {
		directOwner = &ownerID
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO properties (address1, city, state, zip, type, company_id, status, notes, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+propertyColumns,
		req.Address1, req.City, req.State, req.Zip, req.Type, req.CompanyID, req.Status, req.Notes, directOwner)

	p, err := scanProperty(row)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return &p, nil
}

func (s *Store) UpdateProperty(ctx context.Context, p *property.Property) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE properties p SET address1 = $2, city = $3, state = $4, zip = $5,
		        type = $6, company_id = $7, status = $8, notes = $9
		 WHERE p.id = $1 AND `+propertyScope("p", "$10"),
		p.ID, p.Address1, p.City, p.State, p.Zip, p.Type, p.CompanyID, p.Status, p.Notes,
		ownerFromCtx(ctx))
	return execExpectOne(tag, err, "update property %d", p.ID)
}

func (s *Store) DeleteProperty(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM properties p WHERE p.id = $1 AND `+propertyScope("p", "$2"),
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "delete property %d", id)
}

func scanProperty(row scannable) (property.Property, error) {
	var p property.Property
	err := row.Scan(&p.ID, &p.Address1, &p.City, &p.State, &p.Zip, &p.Type,
		&p.CompanyID, &p.Status, &p.Notes, &p.OwnerID, &p.CreatedAt)
	return p, err
}
