package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfold/rentfold/internal/adapter/otel"
	"github.com/rentfold/rentfold/internal/domain/lease"
	"github.com/rentfold/rentfold/internal/domain/report"
	"github.com/rentfold/rentfold/internal/port/database"
)

// unpaidWindowMonths is the trailing window the analyzer inspects,
// including the current month.
const unpaidWindowMonths = 12

// UnpaidRentService computes which calendar months of active leases are
// unpaid or underpaid.
type UnpaidRentService struct {
	store   database.Store
	metrics *otel.Metrics
	now     func() time.Time
}

// NewUnpaidRentService creates a new UnpaidRentService.
func NewUnpaidRentService(store database.Store, metrics *otel.Metrics) *UnpaidRentService {
	return &UnpaidRentService{store: store, metrics: metrics, now: time.Now}
}

// Analyze scans the trailing twelve calendar months (UTC, current month
// included) across the acting owner's active leases. A month counts when
// the sum of that tenant's payments in it is below the lease rent. Months
// before the lease start are skipped. Results are ordered newest month
// first, then tenant name.
func (s *UnpaidRentService) Analyze(ctx context.Context) ([]report.UnpaidMonth, error) {
	started := s.now()
	// Whole-day activeness: a lease ending today is still analyzed today.
	today := lease.DayStart(started)

	details, err := s.store.ListActiveLeaseDetails(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("load active leases: %w", err)
	}

	// One pass over all payments, bucketed per tenant per calendar month.
	payments, err := s.store.ListRentPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	type bucket struct {
		tenantID int64
		year     int
		month    time.Month
	}
	paid := make(map[bucket]decimal.Decimal)
	for _, p := range payments {
		d := p.PaymentDate.UTC()
		b := bucket{tenantID: p.TenantID, year: d.Year(), month: d.Month()}
		paid[b] = paid[b].Add(p.Amount)
	}

	var unpaid []report.UnpaidMonth
	for _, dt := range details {
		start := dt.StartDate.UTC()
		for i := 0; i < unpaidWindowMonths; i++ {
			m := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)

			// Year-then-month comparison: never flag months before the
			// lease began.
			if m.Year() < start.Year() ||
				(m.Year() == start.Year() && m.Month() < start.Month()) {
				continue
			}

			got := paid[bucket{tenantID: dt.TenantID, year: m.Year(), month: m.Month()}]
			if got.GreaterThanOrEqual(dt.Rent) {
				continue
			}

			status := report.StatusNotPaid
			if got.IsPositive() {
				status = report.StatusPartial
			}
			unpaid = append(unpaid, report.UnpaidMonth{
				TenantID:        dt.TenantID,
				TenantName:      dt.TenantName,
				TenantPhone:     dt.TenantPhone,
				TenantEmail:     dt.TenantEmail,
				PropertyAddress: dt.PropertyAddress,
				Year:            m.Year(),
				Month:           m.Month(),
				MonthLabel:      fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month())),
				ExpectedRent:    dt.Rent,
				AmountPaid:      got,
				AmountDue:       dt.Rent.Sub(got),
				Status:          status,
			})
		}
	}

	sort.SliceStable(unpaid, func(i, j int) bool {
		a, b := unpaid[i], unpaid[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.TenantName < b.TenantName
	})

	if s.metrics != nil {
		s.metrics.UnpaidRentScan.Record(ctx, time.Since(started).Seconds())
	}
	return unpaid, nil
}
