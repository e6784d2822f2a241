package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rentfold/rentfold/internal/domain/owner"
)

// Owner rows are not ownership-scoped; access to these methods is gated by
// the admin flag at the service layer.

func (s *Store) CreateOwner(ctx context.Context, o *owner.Owner) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO owners (email, name, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		o.Email, o.Name, o.PasswordHash, o.IsAdmin,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("create owner: %w", uniqueWrap(err))
	}
	return nil
}

func (s *Store) GetOwner(ctx context.Context, id int64) (*owner.Owner, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, is_admin, created_at, last_login
		 FROM owners WHERE id = $1`, id)

	o, err := scanOwner(row)
	if err != nil {
		return nil, notFoundWrap(err, "get owner %d", id)
	}
	return &o, nil
}

func (s *Store) GetOwnerByEmail(ctx context.Context, email string) (*owner.Owner, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, is_admin, created_at, last_login
		 FROM owners WHERE email = $1`, email)

	o, err := scanOwner(row)
	if err != nil {
		return nil, notFoundWrap(err, "get owner by email")
	}
	return &o, nil
}

func (s *Store) ListOwners(ctx context.Context) ([]owner.Owner, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, email, name, password_hash, is_admin, created_at, last_login
		 FROM owners ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	var owners []owner.Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func (s *Store) UpdateOwnerPassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE owners SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	return execExpectOne(tag, err, "update owner password %d", id)
}

func (s *Store) TouchLastLogin(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE owners SET last_login = now() WHERE id = $1`, id)
	return execExpectOne(tag, err, "touch last_login %d", id)
}

func scanOwner(row scannable) (owner.Owner, error) {
	var o owner.Owner
	var lastLogin *time.Time
	err := row.Scan(&o.ID, &o.Email, &o.Name, &o.PasswordHash, &o.IsAdmin, &o.CreatedAt, &lastLogin)
	if err != nil {
		return o, err
	}
	if lastLogin != nil {
		o.LastLogin = *lastLogin
	}
	return o, nil
}
