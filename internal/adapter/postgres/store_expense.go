package postgres

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain/expense"
)

const expenseColumns = `id, date, property_id, company_id, category, amount, COALESCE(description, ''), created_at`

func (s *Store) ListExpenses(ctx context.Context) ([]expense.Expense, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+expenseColumns+`
		 FROM expenses e WHERE `+expenseScope("e", "$1")+`
		 ORDER BY date DESC, id DESC`, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) GetExpense(ctx context.Context, id int64) (*expense.Expense, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+`
		 FROM expenses e WHERE e.id = $1 AND `+expenseScope("e", "$2"),
		id, ownerFromCtx(ctx))

	e, err := scanExpense(row)
	if err != nil {
		return nil, notFoundWrap(err, "get expense %d", id)
	}
	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, req expense.CreateRequest) (*expense.Expense, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO expenses (date, property_id, company_id, category, amount, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+expenseColumns,
		req.Date, req.PropertyID, req.CompanyID, req.Category, req.Amount, req.Description)

	e, err := scanExpense(row)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &e, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE expenses e SET date = $2, property_id = $3, company_id = $4, category = $5, amount = $6, description = $7
		 WHERE e.id = $1 AND `+expenseScope("e", "$8"),
		e.ID, e.Date, e.PropertyID, e.CompanyID, e.Category, e.Amount, e.Description, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "update expense %d", e.ID)
}

func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM expenses e WHERE e.id = $1 AND `+expenseScope("e", "$2"),
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "delete expense %d", id)
}

// ListExpenseCategories returns the shared defaults (owner_id IS NULL)
// together with the acting owner's own categories.
func (s *Store) ListExpenseCategories(ctx context.Context) ([]expense.Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, owner_id, created_at
		 FROM expense_categories
		 WHERE owner_id IS NULL OR owner_id = $1
		 ORDER BY name ASC`, ownerFromCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()

	var cats []expense.Category
	for rows.Next() {
		var c expense.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.OwnerID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *Store) CreateExpenseCategory(ctx context.Context, req expense.CreateCategoryRequest) (*expense.Category, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO expense_categories (name, owner_id) VALUES ($1, $2)
		 RETURNING id, name, owner_id, created_at`,
		req.Name, ownerFromCtx(ctx))

	var c expense.Category
	if err := row.Scan(&c.ID, &c.Name, &c.OwnerID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("create expense category: %w", uniqueWrap(err))
	}
	return &c, nil
}

// DeleteExpenseCategory removes an owner's own category. Shared defaults
// (owner_id IS NULL) cannot be deleted through this path.
func (s *Store) DeleteExpenseCategory(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM expense_categories WHERE id = $1 AND owner_id = $2`,
		id, ownerFromCtx(ctx))
	return execExpectOne(tag, err, "delete expense category %d", id)
}

func scanExpense(row scannable) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.Date, &e.PropertyID, &e.CompanyID, &e.Category,
		&e.Amount, &e.Description, &e.CreatedAt)
	return e, err
}
