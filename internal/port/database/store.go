// Package database defines the database store port (interface).
//
// Every entity-scoped method resolves the acting owner from the request
// context; list methods filter by the ownership predicate at query time.
package database

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/company"
	"github.com/rentfold/rentfold/internal/domain/expense"
	"github.com/rentfold/rentfold/internal/domain/lease"
	"github.com/rentfold/rentfold/internal/domain/owner"
	"github.com/rentfold/rentfold/internal/domain/payment"
	"github.com/rentfold/rentfold/internal/domain/property"
	"github.com/rentfold/rentfold/internal/domain/report"
	"github.com/rentfold/rentfold/internal/domain/tenant"
)

// Store is the port interface for database operations.
type Store interface {
	// Access resolution. Fails closed: a dangling reference resolves to
	// false, not an error.
	IsAccessible(ctx context.Context, kind domain.Kind, id int64) (bool, error)

	// Exists reports bare row existence, regardless of ownership. Used to
	// distinguish not-found from forbidden.
	Exists(ctx context.Context, kind domain.Kind, id int64) (bool, error)

	// Owners (unscoped; gated by the admin flag at the service layer)
	CreateOwner(ctx context.Context, o *owner.Owner) error
	GetOwner(ctx context.Context, id int64) (*owner.Owner, error)
	GetOwnerByEmail(ctx context.Context, email string) (*owner.Owner, error)
	ListOwners(ctx context.Context) ([]owner.Owner, error)
	UpdateOwnerPassword(ctx context.Context, id int64, passwordHash string) error
	TouchLastLogin(ctx context.Context, id int64) error

	// Companies
	ListCompanies(ctx context.Context) ([]company.Company, error)
	GetCompany(ctx context.Context, id int64) (*company.Company, error)
	CreateCompany(ctx context.Context, req company.CreateRequest) (*company.Company, error)
	UpdateCompany(ctx context.Context, c *company.Company) error
	DeleteCompany(ctx context.Context, id int64) error

	// Properties
	ListProperties(ctx context.Context) ([]property.Property, error)
	GetProperty(ctx context.Context, id int64) (*property.Property, error)
	CreateProperty(ctx context.Context, req property.CreateRequest, ownerID int64) (*property.Property, error)
	UpdateProperty(ctx context.Context, p *property.Property) error
	DeleteProperty(ctx context.Context, id int64) error

	// Tenants
	ListTenants(ctx context.Context) ([]tenant.Tenant, error)
	GetTenant(ctx context.Context, id int64) (*tenant.Tenant, error)
	CreateTenant(ctx context.Context, req tenant.CreateRequest) (*tenant.Tenant, error)
	UpdateTenant(ctx context.Context, t *tenant.Tenant) error
	DeleteTenant(ctx context.Context, id int64) error

	// Leases
	ListLeases(ctx context.Context) ([]lease.Lease, error)
	GetLease(ctx context.Context, id int64) (*lease.Lease, error)
	CreateLease(ctx context.Context, req lease.CreateRequest) (*lease.Lease, error)
	UpdateLease(ctx context.Context, l *lease.Lease) error
	DeleteLease(ctx context.Context, id int64) error
	SetLeaseDocument(ctx context.Context, id int64, filename, originalName string, uploadedAt time.Time) error
	ClearLeaseDocument(ctx context.Context, id int64) error

	// Expenses
	ListExpenses(ctx context.Context) ([]expense.Expense, error)
	GetExpense(ctx context.Context, id int64) (*expense.Expense, error)
	CreateExpense(ctx context.Context, req expense.CreateRequest) (*expense.Expense, error)
	UpdateExpense(ctx context.Context, e *expense.Expense) error
	DeleteExpense(ctx context.Context, id int64) error

	// Expense categories (owner-scoped plus shared defaults)
	ListExpenseCategories(ctx context.Context) ([]expense.Category, error)
	CreateExpenseCategory(ctx context.Context, req expense.CreateCategoryRequest) (*expense.Category, error)
	DeleteExpenseCategory(ctx context.Context, id int64) error

	// Rent payments
	ListRentPayments(ctx context.Context) ([]payment.RentPayment, error)
	ListRentPaymentsByTenant(ctx context.Context, tenantID int64) ([]payment.RentPayment, error)
	GetRentPayment(ctx context.Context, id int64) (*payment.RentPayment, error)
	CreateRentPayment(ctx context.Context, req payment.CreateRequest) (*payment.RentPayment, error)
	UpdateRentPayment(ctx context.Context, p *payment.RentPayment) error
	DeleteRentPayment(ctx context.Context, id int64) error

	// Reporting reads
	ListActiveLeaseDetails(ctx context.Context, asOf time.Time) ([]lease.ActiveDetail, error)
	CountProperties(ctx context.Context) (int, error)
	CountActiveTenants(ctx context.Context, asOf time.Time) (int, error)
	CountActiveLeases(ctx context.Context, asOf time.Time) (int, error)
	SumActiveRent(ctx context.Context, asOf time.Time) (decimal.Decimal, error)
	SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error)
	ListExpiringLeases(ctx context.Context, from, to time.Time) ([]report.ExpiringLease, error)
}
