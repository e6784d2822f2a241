// Package report defines the read-only composite views: dashboard counters,
// unpaid-rent records, payment summaries, and period financial summaries.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/domain"
)

// Dashboard aggregates owner-scoped counts and sums.
type Dashboard struct {
	PropertyCount     int             `json:"property_count"`
	ActiveTenantCount int             `json:"active_tenant_count"`
	ActiveLeaseCount  int             `json:"active_lease_count"`
	MonthlyRent       decimal.Decimal `json:"monthly_rent"`
	ExpensesThisMonth decimal.Decimal `json:"expenses_this_month"`
	ExpiringLeases    []ExpiringLease `json:"expiring_leases"`
}

// ExpiringLease is a lease ending within the next 30 days.
type ExpiringLease struct {
	LeaseID         int64           `json:"lease_id"`
	TenantName      string          `json:"tenant_name"`
	PropertyAddress string          `json:"property_address"`
	EndDate         time.Time       `json:"end_date"`
	Rent            decimal.Decimal `json:"rent"`
}

// Unpaid month statuses.
const (
	StatusNotPaid = "Not Paid"
	StatusPartial = "Partial"
)

// UnpaidMonth is one underpaid calendar month for one lease.
type UnpaidMonth struct {
	TenantID        int64           `json:"tenant_id"`
	TenantName      string          `json:"tenant_name"`
	TenantPhone     string          `json:"tenant_phone,omitempty"`
	TenantEmail     string          `json:"tenant_email,omitempty"`
	PropertyAddress string          `json:"property_address"`
	Year            int             `json:"year"`
	Month           time.Month      `json:"month"`
	MonthLabel      string          `json:"month_label"` // e.g. "2026-03"
	ExpectedRent    decimal.Decimal `json:"expected_rent"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	Status          string          `json:"status"`
}

// PaymentSummary describes collections for one calendar month.
type PaymentSummary struct {
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	ExpectedTotal  decimal.Decimal `json:"expected_total"`
	CollectedTotal decimal.Decimal `json:"collected_total"`
	PaymentCount   int             `json:"payment_count"`
	Outstanding    decimal.Decimal `json:"outstanding"`
}

// Reporting periods for the financial summary.
const (
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"
	PeriodThisYear  = "this_year"
	PeriodAll       = "all"
)

// ParsePeriod validates a period query value; empty defaults to this_month.
func ParsePeriod(s string) (string, error) {
	switch s {
	case "":
		return PeriodThisMonth, nil
	case PeriodThisMonth, PeriodLastMonth, PeriodThisYear, PeriodAll:
		return s, nil
	default:
		return "", fmt.Errorf("unknown period %q: %w", s, domain.ErrValidation)
	}
}

// PeriodRange converts a period into [from, to) bounds relative to now in
// UTC. The all-time period returns zero times, meaning unbounded.
func PeriodRange(period string, now time.Time) (from, to time.Time) {
	now = now.UTC()
	switch period {
	case PeriodThisMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	case PeriodLastMonth:
		to = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		from = to.AddDate(0, -1, 0)
	case PeriodThisYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(1, 0, 0)
	}
	return from, to
}

// FinancialSummary is the period-scoped income/expense roll-up.
type FinancialSummary struct {
	Period        string          `json:"period"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ROI           decimal.Decimal `json:"roi"` // percent; 0 when expenses are 0
}

// ComputeROI returns netProfit/totalExpenses*100 rounded to 2 places, or
// zero when totalExpenses is zero.
func ComputeROI(netProfit, totalExpenses decimal.Decimal) decimal.Decimal {
	if totalExpenses.IsZero() {
		return decimal.Zero
	}
	return netProfit.Div(totalExpenses).Mul(decimal.NewFromInt(100)).Round(2)
}
