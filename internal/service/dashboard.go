package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rentfold/rentfold/internal/domain"
	"github.com/rentfold/rentfold/internal/domain/lease"
	"github.com/rentfold/rentfold/internal/domain/report"
	"github.com/rentfold/rentfold/internal/port/database"
)

// expiringWindow is how far ahead the dashboard looks for lease endings.
const expiringWindow = 30 * 24 * time.Hour

// DashboardService builds the read-only composite views: the dashboard,
// period financial summaries, and monthly payment summaries.
type DashboardService struct {
	store database.Store
	now   func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store database.Store) *DashboardService {
	return &DashboardService{store: store, now: time.Now}
}

// Dashboard assembles the owner's headline numbers. The aggregates are
// independent reads, so they run concurrently. Activeness is a whole-day
// comparison, so the clock is truncated to the current date first.
func (s *DashboardService) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	today := lease.DayStart(s.now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var d report.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.store.CountProperties(gctx)
		d.PropertyCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountActiveTenants(gctx, today)
		d.ActiveTenantCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountActiveLeases(gctx, today)
		d.ActiveLeaseCount = n
		return err
	})
	g.Go(func() error {
		total, err := s.store.SumActiveRent(gctx, today)
		d.MonthlyRent = total
		return err
	})
	g.Go(func() error {
		total, err := s.store.SumExpensesBetween(gctx, monthStart, monthEnd)
		d.ExpensesThisMonth = total
		return err
	})
	g.Go(func() error {
		expiring, err := s.store.ListExpiringLeases(gctx, today, today.Add(expiringWindow))
		d.ExpiringLeases = expiring
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble dashboard: %w", err)
	}
	if d.ExpiringLeases == nil {
		d.ExpiringLeases = []report.ExpiringLease{}
	}
	return &d, nil
}

// FinancialSummary rolls up income and expenses for a named period.
func (s *DashboardService) FinancialSummary(ctx context.Context, periodStr string) (*report.FinancialSummary, error) {
	period, err := report.ParsePeriod(periodStr)
	if err != nil {
		return nil, err
	}
	from, to := report.PeriodRange(period, s.now())

	var summary report.FinancialSummary
	summary.Period = period

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, _, err := s.store.SumPaymentsBetween(gctx, from, to)
		summary.TotalIncome = total
		return err
	})
	g.Go(func() error {
		total, err := s.store.SumExpensesBetween(gctx, from, to)
		summary.TotalExpenses = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble financial summary: %w", err)
	}

	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.ROI = report.ComputeROI(summary.NetProfit, summary.TotalExpenses)
	return &summary, nil
}

// PaymentSummary describes collections against expectations for one
// calendar month. Zero year/month default to the current month.
func (s *DashboardService) PaymentSummary(ctx context.Context, year int, month time.Month) (*report.PaymentSummary, error) {
	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month %d out of range: %w", month, domain.ErrValidation)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	// Expected rent is measured against leases active at month start.
	expected, err := s.store.SumActiveRent(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("sum expected rent: %w", err)
	}

	collected, count, err := s.store.SumPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum collected: %w", err)
	}

	return &report.PaymentSummary{
		Year:           year,
		Month:          month,
		ExpectedTotal:  expected,
		CollectedTotal: collected,
		PaymentCount:   count,
		Outstanding:    expected.Sub(collected),
	}, nil
}
