package service

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/expense"
	"github.com/rentfold/rentfold/internal/port/database"
)

// ExpenseService handles expense and expense category business logic.
type ExpenseService struct {
	store  database.Store
	access *AccessService
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store database.Store, access *AccessService) *ExpenseService {
	return &ExpenseService{store: store, access: access}
}

// List returns the acting owner's expenses.
func (s *ExpenseService) List(ctx context.Context) ([]expense.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// Get returns an expense by ID.
func (s *ExpenseService) Get(ctx context.Context, id int64) (*expense.Expense, error) {
	if err := s.access.Authorize(ctx, domain.KindExpense, id); err != nil {
		return nil, err
	}
	return s.store.GetExpense(ctx, id)
}

// Create creates an expense. Each set reference must resolve to the acting
// owner. Both references are optional; a row with neither resolves to no
// owner and becomes unreachable, like a tenant with no property.
func (s *ExpenseService) Create(ctx context.Context, req expense.CreateRequest) (*expense.Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.authorizeRefs(ctx, req.PropertyID, req.CompanyID); err != nil {
		return nil, err
	}
	return s.store.CreateExpense(ctx, req)
}

// Update applies a partial update to an expense. Changed references must
// resolve to the acting owner, and the update may not strip the last one.
func (s *ExpenseService) Update(ctx context.Context, id int64, req expense.UpdateRequest) (*expense.Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := s.access.Authorize(ctx, domain.KindExpense, id); err != nil {
		return nil, err
	}
	if err := s.authorizeRefs(ctx, req.PropertyID, req.CompanyID); err != nil {
		return nil, err
	}

	e, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.PropertyID != nil {
		e.PropertyID = req.PropertyID
	}
	if req.CompanyID != nil {
		e.CompanyID = req.CompanyID
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Description != nil {
		e.Description = *req.Description
	}

	if err := s.store.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an expense.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.access.Authorize(ctx, domain.KindExpense, id); err != nil {
		return err
	}
	return s.store.DeleteExpense(ctx, id)
}

// ListCategories returns the shared default categories plus the acting
// owner's own.
func (s *ExpenseService) ListCategories(ctx context.Context) ([]expense.Category, error) {
	return s.store.ListExpenseCategories(ctx)
}

// CreateCategory creates an owner-scoped category.
func (s *ExpenseService) CreateCategory(ctx context.Context, req expense.CreateCategoryRequest) (*expense.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return s.store.CreateExpenseCategory(ctx, req)
}

// DeleteCategory removes one of the acting owner's categories. Shared
// defaults cannot be deleted.
func (s *ExpenseService) DeleteCategory(ctx context.Context, id int64) error {
	return s.store.DeleteExpenseCategory(ctx, id)
}

func (s *ExpenseService) authorizeRefs(ctx context.Context, propertyID, companyID *int64) error {
	if propertyID != nil {
		if err := s.access.Authorize(ctx, domain.KindProperty, *propertyID); err != nil {
			return err
		}
	}
	if companyID != nil {
		if err := s.access.Authorize(ctx, domain.KindCompany, *companyID); err != nil {
			return err
		}
	}
	return nil
}
