package service

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
	"github.com/rentfold/rentfold/internal/port/database"
)

// Ensure the mock implements the port at compile time.
var _ database.Store = (*mockStore)(nil)

// mockStore is an in-memory store that mirrors the ownership resolution
// rules of the SQL implementation. The acting owner is a struct field
// because the mock has no request context to read.
type mockStore struct {
	acting int64

	owners     []owner.Owner
	companies  []company.Company
	properties []property.Property
	tenants    []tenant.Tenant
	leases     []lease.Lease
	expenses   []expense.Expense
	categories []expense.Category
	payments   []payment.RentPayment

	nextID int64

	// Error hooks.
	isAccessibleErr     error
	createErr           error
	listErr             error
	setLeaseDocumentErr error
}

func (m *mockStore) id() int64 {
	m.nextID++
	return m.nextID
}

// --- ownership resolution ---

func (m *mockStore) companyOwned(id int64) bool {
	for _, c := range m.companies {
		if c.ID == id {
			return c.OwnerID == m.acting
		}
	}
	return false
}

func (m *mockStore) propertyOwned(id int64) bool {
	for _, p := range m.properties {
		if p.ID != id {
			continue
		}
		if p.OwnerID != nil && *p.OwnerID == m.acting {
			return true
		}
		if p.CompanyID != nil && m.companyOwned(*p.CompanyID) {
			return true
		}
	}
	return false
}

func (m *mockStore) tenantOwned(id int64) bool {
	for _, t := range m.tenants {
		if t.ID == id && t.PropertyID != nil {
			return m.propertyOwned(*t.PropertyID)
		}
	}
	return false
}

func (m *mockStore) leaseOwned(id int64) bool {
	for _, l := range m.leases {
		if l.ID == id {
			return m.propertyOwned(l.PropertyID)
		}
	}
	return false
}

func (m *mockStore) expenseOwned(id int64) bool {
	for _, e := range m.expenses {
		if e.ID != id {
			continue
		}
		if e.CompanyID != nil && m.companyOwned(*e.CompanyID) {
			return true
		}
		if e.PropertyID != nil && m.propertyOwned(*e.PropertyID) {
			return true
		}
	}
	return false
}

func (m *mockStore) paymentOwned(id int64) bool {
	for _, p := range m.payments {
		if p.ID == id {
			return m.tenantOwned(p.TenantID)
		}
	}
	return false
}

func (m *mockStore) IsAccessible(_ context.Context, kind domain.Kind, id int64) (bool, error) {
	if m.isAccessibleErr != nil {
		return false, m.isAccessibleErr
	}
	switch kind {
	case domain.KindCompany:
		return m.companyOwned(id), nil
	case domain.KindProperty:
		return m.propertyOwned(id), nil
	case domain.KindTenant:
		return m.tenantOwned(id), nil
	case domain.KindLease:
		return m.leaseOwned(id), nil
	case domain.KindExpense:
		return m.expenseOwned(id), nil
	case domain.KindRentPayment:
		return m.paymentOwned(id), nil
	}
	return false, nil
}

func (m *mockStore) Exists(_ context.Context, kind domain.Kind, id int64) (bool, error) {
	switch kind {
	case domain.KindCompany:
		for _, c := range m.companies {
			if c.ID == id {
				return true, nil
			}
		}
	case domain.KindProperty:
		for _, p := range m.properties {
			if p.ID == id {
				return true, nil
			}
		}
	case domain.KindTenant:
		for _, t := range m.tenants {
			if t.ID == id {
				return true, nil
			}
		}
	case domain.KindLease:
		for _, l := range m.leases {
			if l.ID == id {
				return true, nil
			}
		}
	case domain.KindExpense:
		for _, e := range m.expenses {
			if e.ID == id {
				return true, nil
			}
		}
	case domain.KindRentPayment:
		for _, p := range m.payments {
			if p.ID == id {
				return true, nil
			}
		}
	}
	return false, nil
}

// --- owners ---

func (m *mockStore) CreateOwner(_ context.Context, o *owner.Owner) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.owners {
		if existing.Email == o.Email {
			return domain.ErrConflict
		}
	}
	o.ID = m.id()
	o.CreatedAt = time.Now()
	m.owners = append(m.owners, *o)
	return nil
}

func (m *mockStore) GetOwner(_ context.Context, id int64) (*owner.Owner, error) {
	for i := range m.owners {
		if m.owners[i].ID == id {
			return &m.owners[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetOwnerByEmail(_ context.Context, email string) (*owner.Owner, error) {
	for i := range m.owners {
		if m.owners[i].Email == email {
			return &m.owners[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) ListOwners(_ context.Context) ([]owner.Owner, error) {
	return m.owners, m.listErr
}

func (m *mockStore) UpdateOwnerPassword(_ context.Context, id int64, hash string) error {
	for i := range m.owners {
		if m.owners[i].ID == id {
			m.owners[i].PasswordHash = hash
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) TouchLastLogin(_ context.Context, id int64) error {
	for i := range m.owners {
		if m.owners[i].ID == id {
			m.owners[i].LastLogin = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- companies ---

func (m *mockStore) ListCompanies(_ context.Context) ([]company.Company, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []company.Company
	for _, c := range m.companies {
		if c.OwnerID == m.acting {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockStore) GetCompany(_ context.Context, id int64) (*company.Company, error) {
	for i := range m.companies {
		if m.companies[i].ID == id && m.companyOwned(id) {
			c := m.companies[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateCompany(_ context.Context, req company.CreateRequest) (*company.Company, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	c := company.Company{ID: m.id(), Name: req.Name, Notes: req.Notes, OwnerID: m.acting, CreatedAt: time.Now()}
	m.companies = append(m.companies, c)
	return &c, nil
}

func (m *mockStore) UpdateCompany(_ context.Context, c *company.Company) error {
	for i := range m.companies {
		if m.companies[i].ID == c.ID && m.companyOwned(c.ID) {
			m.companies[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteCompany(_ context.Context, id int64) error {
	for i := range m.companies {
		if m.companies[i].ID == id && m.companyOwned(id) {
			m.companies = append(m.companies[:i], m.companies[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- properties ---

func (m *mockStore) ListProperties(_ context.Context) ([]property.Property, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []property.Property
	for _, p := range m.properties {
		if m.propertyOwned(p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) GetProperty(_ context.Context, id int64) (*property.Property, error) {
	for i := range m.properties {
		if m.properties[i].ID == id && m.propertyOwned(id) {
			p := m.properties[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateProperty(_ context.Context, req property.CreateRequest, ownerID int64) (*property.Property, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	p := property.Property{
		ID: m.id(), Address1: req.Address1, City: req.City, State: req.State,
		Zip: req.Zip, Type: req.Type, CompanyID: req.CompanyID, Status: req.Status,
		Notes: req.Notes, CreatedAt: time.Now(),
	}
	if req.CompanyID == nil {
		p.OwnerID = &ownerID
	}
	m.properties = append(m.properties, p)
	return &p, nil
}

func (m *mockStore) UpdateProperty(_ context.Context, p *property.Property) error {
	for i := range m.properties {
		if m.properties[i].ID == p.ID && m.propertyOwned(p.ID) {
			m.properties[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteProperty(_ context.Context, id int64) error {
	for i := range m.properties {
		if m.properties[i].ID == id && m.propertyOwned(id) {
			m.properties = append(m.properties[:i], m.properties[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- tenants ---

func (m *mockStore) ListTenants(_ context.Context) ([]tenant.Tenant, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []tenant.Tenant
	for _, t := range m.tenants {
		if m.tenantOwned(t.ID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockStore) GetTenant(_ context.Context, id int64) (*tenant.Tenant, error) {
	for i := range m.tenants {
		if m.tenants[i].ID == id && m.tenantOwned(id) {
			t := m.tenants[i]
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateTenant(_ context.Context, req tenant.CreateRequest) (*tenant.Tenant, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	t := tenant.Tenant{
		ID: m.id(), Name: req.Name, Phone: req.Phone, Email: req.Email,
		Floor: req.Floor, PropertyID: req.PropertyID,
		EmergencyContact: req.EmergencyContact, EmergencyPhone: req.EmergencyPhone,
		Notes: req.Notes, CreatedAt: time.Now(),
	}
	m.tenants = append(m.tenants, t)
	return &t, nil
}

func (m *mockStore) UpdateTenant(_ context.Context, t *tenant.Tenant) error {
	for i := range m.tenants {
		if m.tenants[i].ID == t.ID && m.tenantOwned(t.ID) {
			m.tenants[i] = *t
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteTenant(_ context.Context, id int64) error {
	for i := range m.tenants {
		if m.tenants[i].ID == id && m.tenantOwned(id) {
			m.tenants = append(m.tenants[:i], m.tenants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- leases ---

func (m *mockStore) ListLeases(_ context.Context) ([]lease.Lease, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []lease.Lease
	for _, l := range m.leases {
		if m.leaseOwned(l.ID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockStore) GetLease(_ context.Context, id int64) (*lease.Lease, error) {
	for i := range m.leases {
		if m.leases[i].ID == id && m.leaseOwned(id) {
			l := m.leases[i]
			return &l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateLease(_ context.Context, req lease.CreateRequest) (*lease.Lease, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	l := lease.Lease{
		ID: m.id(), PropertyID: req.PropertyID, TenantID: req.TenantID,
		StartDate: req.StartDate, EndDate: req.EndDate, Rent: req.Rent,
		Deposit: req.Deposit, Notes: req.Notes, CreatedAt: time.Now(),
	}
	m.leases = append(m.leases, l)
	return &l, nil
}

func (m *mockStore) UpdateLease(_ context.Context, l *lease.Lease) error {
	for i := range m.leases {
		if m.leases[i].ID == l.ID && m.leaseOwned(l.ID) {
			m.leases[i] = *l
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteLease(_ context.Context, id int64) error {
	for i := range m.leases {
		if m.leases[i].ID == id && m.leaseOwned(id) {
			m.leases = append(m.leases[:i], m.leases[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) SetLeaseDocument(_ context.Context, id int64, filename, originalName string, uploadedAt time.Time) error {
	if m.setLeaseDocumentErr != nil {
		return m.setLeaseDocumentErr
	}
	for i := range m.leases {
		if m.leases[i].ID == id && m.leaseOwned(id) {
			m.leases[i].DocumentFilename = filename
			m.leases[i].DocumentOriginalName = originalName
			m.leases[i].DocumentUploadedAt = uploadedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) ClearLeaseDocument(_ context.Context, id int64) error {
	for i := range m.leases {
		if m.leases[i].ID == id && m.leaseOwned(id) {
			m.leases[i].DocumentFilename = ""
			m.leases[i].DocumentOriginalName = ""
			m.leases[i].DocumentUploadedAt = time.Time{}
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- expenses ---

func (m *mockStore) ListExpenses(_ context.Context) ([]expense.Expense, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []expense.Expense
	for _, e := range m.expenses {
		if m.expenseOwned(e.ID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockStore) GetExpense(_ context.Context, id int64) (*expense.Expense, error) {
	for i := range m.expenses {
		if m.expenses[i].ID == id && m.expenseOwned(id) {
			e := m.expenses[i]
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateExpense(_ context.Context, req expense.CreateRequest) (*expense.Expense, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	e := expense.Expense{
		ID: m.id(), Date: req.Date, PropertyID: req.PropertyID, CompanyID: req.CompanyID,
		Category: req.Category, Amount: req.Amount, Description: req.Description,
		CreatedAt: time.Now(),
	}
	m.expenses = append(m.expenses, e)
	return &e, nil
}

func (m *mockStore) UpdateExpense(_ context.Context, e *expense.Expense) error {
	for i := range m.expenses {
		if m.expenses[i].ID == e.ID && m.expenseOwned(e.ID) {
			m.expenses[i] = *e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteExpense(_ context.Context, id int64) error {
	for i := range m.expenses {
		if m.expenses[i].ID == id && m.expenseOwned(id) {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) ListExpenseCategories(_ context.Context) ([]expense.Category, error) {
	var out []expense.Category
	for _, c := range m.categories {
		if c.OwnerID == nil || *c.OwnerID == m.acting {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockStore) CreateExpenseCategory(_ context.Context, req expense.CreateCategoryRequest) (*expense.Category, error) {
	ownerID := m.acting
	c := expense.Category{ID: m.id(), Name: req.Name, OwnerID: &ownerID, CreatedAt: time.Now()}
	m.categories = append(m.categories, c)
	return &c, nil
}

func (m *mockStore) DeleteExpenseCategory(_ context.Context, id int64) error {
	for i := range m.categories {
		c := m.categories[i]
		if c.ID == id && c.OwnerID != nil && *c.OwnerID == m.acting {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- rent payments ---

func (m *mockStore) ListRentPayments(_ context.Context) ([]payment.RentPayment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []payment.RentPayment
	for _, p := range m.payments {
		if m.paymentOwned(p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) ListRentPaymentsByTenant(_ context.Context, tenantID int64) ([]payment.RentPayment, error) {
	var out []payment.RentPayment
	for _, p := range m.payments {
		if p.TenantID == tenantID && m.paymentOwned(p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) GetRentPayment(_ context.Context, id int64) (*payment.RentPayment, error) {
	for i := range m.payments {
		if m.payments[i].ID == id && m.paymentOwned(id) {
			p := m.payments[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateRentPayment(_ context.Context, req payment.CreateRequest) (*payment.RentPayment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	p := payment.RentPayment{
		ID: m.id(), TenantID: req.TenantID, PaymentDate: req.PaymentDate,
		Amount: req.Amount, PaymentMethod: req.PaymentMethod, CheckNumber: req.CheckNumber,
		PaidInFull: req.PaidInFull, Notes: req.Notes, CreatedAt: time.Now(),
	}
	m.payments = append(m.payments, p)
	return &p, nil
}

func (m *mockStore) UpdateRentPayment(_ context.Context, p *payment.RentPayment) error {
	for i := range m.payments {
		if m.payments[i].ID == p.ID && m.paymentOwned(p.ID) {
			m.payments[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteRentPayment(_ context.Context, id int64) error {
	for i := range m.payments {
		if m.payments[i].ID == id && m.paymentOwned(id) {
			m.payments = append(m.payments[:i], m.payments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- reporting reads ---

func (m *mockStore) ListActiveLeaseDetails(_ context.Context, asOf time.Time) ([]lease.ActiveDetail, error) {
	var out []lease.ActiveDetail
	for _, l := range m.leases {
		// The analyzer additionally bounds the start date.
		if !m.leaseOwned(l.ID) || l.StartDate.After(asOf) || l.EndDate.Before(asOf) {
			continue
		}
		d := lease.ActiveDetail{
			LeaseID: l.ID, TenantID: l.TenantID, Rent: l.Rent,
			StartDate: l.StartDate, EndDate: l.EndDate,
		}
		for _, t := range m.tenants {
			if t.ID == l.TenantID {
				d.TenantName, d.TenantPhone, d.TenantEmail = t.Name, t.Phone, t.Email
			}
		}
		for _, p := range m.properties {
			if p.ID == l.PropertyID {
				d.PropertyAddress = p.Address1
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *mockStore) CountProperties(_ context.Context) (int, error) {
	n := 0
	for _, p := range m.properties {
		if m.propertyOwned(p.ID) {
			n++
		}
	}
	return n, nil
}

func (m *mockStore) CountActiveTenants(_ context.Context, asOf time.Time) (int, error) {
	seen := map[int64]bool{}
	for _, l := range m.leases {
		if m.leaseOwned(l.ID) && !l.EndDate.Before(asOf) {
			seen[l.TenantID] = true
		}
	}
	return len(seen), nil
}

func (m *mockStore) CountActiveLeases(_ context.Context, asOf time.Time) (int, error) {
	n := 0
	for _, l := range m.leases {
		if m.leaseOwned(l.ID) && !l.EndDate.Before(asOf) {
			n++
		}
	}
	return n, nil
}

func (m *mockStore) SumActiveRent(_ context.Context, asOf time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range m.leases {
		if m.leaseOwned(l.ID) && !l.EndDate.Before(asOf) {
			total = total.Add(l.Rent)
		}
	}
	return total, nil
}

func (m *mockStore) SumExpensesBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.expenses {
		if !m.expenseOwned(e.ID) {
			continue
		}
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !e.Date.Before(to) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (m *mockStore) SumPaymentsBetween(_ context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	total := decimal.Zero
	count := 0
	for _, p := range m.payments {
		if !m.paymentOwned(p.ID) {
			continue
		}
		if !from.IsZero() && p.PaymentDate.Before(from) {
			continue
		}
		if !to.IsZero() && !p.PaymentDate.Before(to) {
			continue
		}
		total = total.Add(p.Amount)
		count++
	}
	return total, count, nil
}

func (m *mockStore) ListExpiringLeases(_ context.Context, from, to time.Time) ([]report.ExpiringLease, error) {
	var out []report.ExpiringLease
	for _, l := range m.leases {
		if !m.leaseOwned(l.ID) || l.EndDate.Before(from) || l.EndDate.After(to) {
			continue
		}
		e := report.ExpiringLease{LeaseID: l.ID, EndDate: l.EndDate, Rent: l.Rent}
		for _, t := range m.tenants {
			if t.ID == l.TenantID {
				e.TenantName = t.Name
			}
		}
		for _, p := range m.properties {
			if p.ID == l.PropertyID {
				e.PropertyAddress = p.Address1
			}
		}
		out = append(out, e)
	}
	return out, nil
}
