// Package http implements the REST API on top of the service layer.
package http

import (
	"github.com/rentfold/rentfold/internal/service"
)

const maxRequestBodySize = 1 << 20 // 1 MB for JSON bodies; uploads have their own limit

// Handlers bundles the services the route handlers depend on.
type Handlers struct {
	Auth       *service.AuthService
	Companies  *service.CompanyService
	Properties *service.PropertyService
	Tenants    *service.TenantService
	Leases     *service.LeaseService
	Expenses   *service.ExpenseService
	Payments   *service.PaymentService
	UnpaidRent *service.UnpaidRentService
	Dashboard  *service.DashboardService
}
