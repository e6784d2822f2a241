package lease

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveDetail is a lease joined with its tenant identity and property
// address, as needed by the unpaid-rent analyzer.
type ActiveDetail struct {
	LeaseID         int64
	TenantID        int64
	TenantName      string
	TenantPhone     string
	TenantEmail     string
	PropertyAddress string
	Rent            decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
}
