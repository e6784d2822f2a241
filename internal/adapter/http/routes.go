package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rentfold/rentfold/internal/domain/company"
	"github.com/rentfold/rentfold/internal/domain/expense"
	"github.com/rentfold/rentfold/internal/domain/lease"
	"github.com/rentfold/rentfold/internal/domain/payment"
	"github.com/rentfold/rentfold/internal/domain/property"
	"github.com/rentfold/rentfold/internal/domain/tenant"
	"github.com/rentfold/rentfold/internal/middleware"
)

// MountRoutes registers all API routes on the given chi router. The auth
// middleware runs ahead of this group, so every handler below can assume
// an identity in the context.
func MountRoutes(r chi.Router, h *Handlers) {
	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Post("/auth/login", h.Login)
		r.Get("/auth/me", h.Me)

		// Owner administration
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/owners", h.ListOwners)
			r.Post("/owners", h.CreateOwner)
			r.Post("/owners/{id}/reset-password", h.ResetOwnerPassword)
		})

		// Companies
		r.Get("/companies", handleList(h.Companies.List))
		r.Post("/companies", handleCreate[company.CreateRequest](maxRequestBodySize, h.Companies.Create))
		r.Get("/companies/{id}", handleGet(h.Companies.Get, "company not found"))
		r.Put("/companies/{id}", handleUpdate[company.UpdateRequest](maxRequestBodySize, h.Companies.Update, "company not found"))
		r.Delete("/companies/{id}", handleDelete(h.Companies.Delete, "company not found"))

		// Properties
		r.Get("/properties", handleList(h.Properties.List))
		r.Post("/properties", h.CreateProperty)
		r.Get("/properties/{id}", handleGet(h.Properties.Get, "property not found"))
		r.Put("/properties/{id}", handleUpdate[property.UpdateRequest](maxRequestBodySize, h.Properties.Update, "property not found"))
		r.Delete("/properties/{id}", handleDelete(h.Properties.Delete, "property not found"))

		// Tenants
		r.Get("/tenants", handleList(h.Tenants.List))
		r.Post("/tenants", handleCreate[tenant.CreateRequest](maxRequestBodySize, h.Tenants.Create))
		r.Get("/tenants/{id}", handleGet(h.Tenants.Get, "tenant not found"))
		r.Put("/tenants/{id}", handleUpdate[tenant.UpdateRequest](maxRequestBodySize, h.Tenants.Update, "tenant not found"))
		r.Delete("/tenants/{id}", handleDelete(h.Tenants.Delete, "tenant not found"))
		r.Get("/tenants/{id}/payments", h.ListTenantPayments)

		// Leases
		r.Get("/leases", handleList(h.Leases.List))
		r.Post("/leases", handleCreate[lease.CreateRequest](maxRequestBodySize, h.Leases.Create))
		r.Get("/leases/{id}", handleGet(h.Leases.Get, "lease not found"))
		r.Put("/leases/{id}", handleUpdate[lease.UpdateRequest](maxRequestBodySize, h.Leases.Update, "lease not found"))
		r.Delete("/leases/{id}", handleDelete(h.Leases.Delete, "lease not found"))
		r.Post("/leases/{id}/upload", h.UploadLeaseDocument)
		r.Delete("/leases/{id}/document", h.DeleteLeaseDocument)

		// Expenses
		r.Get("/expenses", handleList(h.Expenses.List))
		r.Post("/expenses", handleCreate[expense.CreateRequest](maxRequestBodySize, h.Expenses.Create))
		r.Get("/expenses/{id}", handleGet(h.Expenses.Get, "expense not found"))
		r.Put("/expenses/{id}", handleUpdate[expense.UpdateRequest](maxRequestBodySize, h.Expenses.Update, "expense not found"))
		r.Delete("/expenses/{id}", handleDelete(h.Expenses.Delete, "expense not found"))

		// Expense categories
		r.Get("/expense-categories", handleList(h.Expenses.ListCategories))
		r.Post("/expense-categories", handleCreate[expense.CreateCategoryRequest](maxRequestBodySize, h.Expenses.CreateCategory))
		r.Delete("/expense-categories/{id}", handleDelete(h.Expenses.DeleteCategory, "category not found"))

		// Rent payments
		r.Get("/rent-payments", handleList(h.Payments.List))
		r.Post("/rent-payments", handleCreate[payment.CreateRequest](maxRequestBodySize, h.Payments.Create))
		r.Get("/rent-payments/{id}", handleGet(h.Payments.Get, "payment not found"))
		r.Put("/rent-payments/{id}", handleUpdate[payment.UpdateRequest](maxRequestBodySize, h.Payments.Update, "payment not found"))
		r.Delete("/rent-payments/{id}", handleDelete(h.Payments.Delete, "payment not found"))

		// Reports
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/reports", h.GetFinancialSummary)
		r.Get("/reports/unpaid-rent", h.GetUnpaidRent)
		r.Get("/payments/summary", h.GetPaymentSummary)
	})
}

// CreateProperty creates a property owned by the acting owner. It is not a
// generic factory because creation needs the owner id from the identity.
func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[property.CreateRequest](w, r, maxRequestBodySize)
	if !ok {
		return
	}

	id := middleware.IdentityFromContext(r.Context())
	p, err := h.Properties.Create(r.Context(), req, id.OwnerID)
	if err != nil {
		writeDomainError(w, err, "creation failed")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
