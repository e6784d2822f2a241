package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rentfold/rentfold/internal/domain/payment"
	"github.com/rentfold/rentfold/internal/domain/report"
)

// GetDashboard returns the owner's headline aggregates.
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboard.Dashboard(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// GetFinancialSummary returns the period income/expense roll-up.
func (h *Handlers) GetFinancialSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dashboard.FinancialSummary(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		writeDomainError(w, err, "report unavailable")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetUnpaidRent returns the unpaid-rent analysis.
func (h *Handlers) GetUnpaidRent(w http.ResponseWriter, r *http.Request) {
	unpaid, err := h.UnpaidRent.Analyze(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if unpaid == nil {
		unpaid = []report.UnpaidMonth{}
	}
	writeJSON(w, http.StatusOK, unpaid)
}

// GetPaymentSummary returns the monthly collections summary. Year and
// month query params default to the current month.
func (h *Handlers) GetPaymentSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var year int
	var month time.Month
	if v := q.Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = n
	}
	if v := q.Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(n)
	}

	summary, err := h.Dashboard.PaymentSummary(r.Context(), year, month)
	if err != nil {
		writeDomainError(w, err, "summary unavailable")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ListTenantPayments lists a tenant's rent payments, newest first.
func (h *Handlers) ListTenantPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	payments, err := h.Payments.ListByTenant(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "tenant not found")
		return
	}
	if payments == nil {
		payments = []payment.RentPayment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
