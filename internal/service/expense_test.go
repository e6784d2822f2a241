package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/expense"
)

func newExpenseService(store *mockStore) *ExpenseService {
	return NewExpenseService(store, NewAccessService(store))
}

func TestExpenseCreate_ReferencePaths(t *testing.T) {
	svc := newExpenseService(newFixtureStore())

	req := expense.CreateRequest{
		Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Category: "Maintenance",
		Amount:   decimal.NewFromInt(80),
	}

	req.PropertyID = int64ptr(11)
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Errorf("property-scoped create: %v", err)
	}

	req.PropertyID = nil
	req.CompanyID = int64ptr(10)
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Errorf("company-scoped create: %v", err)
	}
}

func TestExpenseCreate_NeitherReferenceIsOrphaned(t *testing.T) {
	store := newFixtureStore()
	svc := newExpenseService(store)

	// Neither reference is valid; the row just resolves to no owner.
	created, err := svc.Create(context.Background(), expense.CreateRequest{
		Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Category: "Maintenance",
		Amount:   decimal.NewFromInt(80),
	})
	if err != nil {
		t.Fatalf("unattached create: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("get orphaned expense err = %v, want ErrForbidden", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, e := range listed {
		if e.ID == created.ID {
			t.Error("orphaned expense visible in list")
		}
	}
}

func TestExpenseCreate_RejectsForeignReferences(t *testing.T) {
	svc := newExpenseService(newFixtureStore())

	req := expense.CreateRequest{
		Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Category: "Maintenance",
		Amount:   decimal.NewFromInt(80),
	}

	// Property 21 and company 20 belong to the other owner.
	req.PropertyID = int64ptr(21)
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign property err = %v, want ErrForbidden", err)
	}

	req.PropertyID = nil
	req.CompanyID = int64ptr(20)
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign company err = %v, want ErrForbidden", err)
	}
}

func TestExpenseUpdate_ChecksChangedReferences(t *testing.T) {
	store := newFixtureStore()
	svc := newExpenseService(store)

	created, err := svc.Create(context.Background(), expense.CreateRequest{
		Date:       time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		PropertyID: int64ptr(11),
		Category:   "Maintenance",
		Amount:     decimal.NewFromInt(80),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(context.Background(), created.ID, expense.UpdateRequest{PropertyID: int64ptr(21)})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("reassign to foreign property err = %v, want ErrForbidden", err)
	}

	amount := decimal.NewFromInt(95)
	updated, err := svc.Update(context.Background(), created.ID, expense.UpdateRequest{Amount: &amount})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Amount.Equal(amount) {
		t.Errorf("amount = %s, want 95", updated.Amount)
	}
}

func TestExpenseCategories(t *testing.T) {
	store := newFixtureStore()
	store.categories = []expense.Category{
		{ID: 1, Name: "Maintenance"},                 // shared default
		{ID: 2, Name: "Gardening", OwnerID: int64ptr(1)},
		{ID: 3, Name: "Private", OwnerID: int64ptr(2)}, // other owner's
	}
	svc := newExpenseService(store)

	cats, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want shared + own = 2", len(cats))
	}

	created, err := svc.CreateCategory(context.Background(), expense.CreateCategoryRequest{Name: "Legal"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.OwnerID == nil || *created.OwnerID != 1 {
		t.Errorf("created category owner = %v, want acting owner", created.OwnerID)
	}

	if _, err := svc.CreateCategory(context.Background(), expense.CreateCategoryRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty name err = %v, want ErrValidation", err)
	}

	// Shared defaults cannot be deleted.
	if err := svc.DeleteCategory(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("delete shared default err = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteCategory(context.Background(), created.ID); err != nil {
		t.Errorf("delete own category: %v", err)
	}
}
