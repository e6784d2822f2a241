package service

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/port/database"
)

// AccessService resolves whether an entity belongs to the acting owner.
// Ownership is transitive: tenant -> property -> company -> owner, with
// properties also ownable directly. The store evaluates the predicate;
// this service turns the boolean into the right domain error.
type AccessService struct {
	store database.Store
}

// NewAccessService creates a new access resolver.
func NewAccessService(store database.Store) *AccessService {
	return &AccessService{store: store}
}

// Accessible reports whether the entity resolves to the acting owner.
// Nonexistent entities and dangling references resolve to false.
func (s *AccessService) Accessible(ctx context.Context, kind domain.Kind, id int64) (bool, error) {
	return s.store.IsAccessible(ctx, kind, id)
}

// Authorize returns nil when the entity is accessible. An inaccessible
// entity yields ErrForbidden when the row exists under another owner and
// ErrNotFound when it does not exist at all.
func (s *AccessService) Authorize(ctx context.Context, kind domain.Kind, id int64) error {
	ok, err := s.store.IsAccessible(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("resolve access: %w", err)
	}
	if ok {
		return nil
	}

	exists, err := s.store.Exists(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("check existence: %w", err)
	}
	if exists {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrForbidden)
	}
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
}
