package postgres

import (
	"strings"
	"testing"

	"github.com/rentfold/rentfold/internal/domain"
)

func TestScopeFor_CoversEveryKind(t *testing.T) {
	kinds := []struct {
		kind  domain.Kind
		table string
	}{
		{domain.KindCompany, "companies"},
		{domain.KindProperty, "properties"},
		{domain.KindTenant, "tenants"},
		{domain.KindLease, "leases"},
		{domain.KindExpense, "expenses"},
		{domain.KindRentPayment, "rent_payments"},
	}

	for _, tc := range kinds {
		table, scope, err := scopeFor(tc.kind)
		if err != nil {
			t.Errorf("scopeFor(%s): %v", tc.kind, err)
			continue
		}
		if table != tc.table {
			t.Errorf("scopeFor(%s) table = %q, want %q", tc.kind, table, tc.table)
		}
		if frag := scope("x", "$2"); !strings.Contains(frag, "$2") {
			t.Errorf("scopeFor(%s) fragment has no owner placeholder: %s", tc.kind, frag)
		}
	}
}

func TestScopeFor_UnknownKind(t *testing.T) {
	if _, _, err := scopeFor(domain.Kind("gadget")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestCompanyScope(t *testing.T) {
	got := companyScope("c", "$1")
	if got != "c.owner_id = $1" {
		t.Errorf("companyScope = %q", got)
	}
}

func TestPropertyScope_ChecksBothOwnershipPaths(t *testing.T) {
	frag := propertyScope("p", "$1")
	if !strings.Contains(frag, "p.owner_id = $1") {
		t.Errorf("direct owner path missing: %s", frag)
	}
	if !strings.Contains(frag, "pc.id = p.company_id") || !strings.Contains(frag, "pc.owner_id = $1") {
		t.Errorf("company path missing: %s", frag)
	}
	if !strings.Contains(frag, " OR ") {
		t.Errorf("paths are not inclusive-or: %s", frag)
	}
}

func TestTenantScope_ResolvesThroughProperty(t *testing.T) {
	frag := tenantScope("t", "$1")
	if !strings.Contains(frag, "tp.id = t.property_id") {
		t.Errorf("property linkage missing: %s", frag)
	}
	// A tenant without a property must match no owner, so the predicate has
	// to be an EXISTS over the property, not a bare join condition.
	if !strings.HasPrefix(strings.TrimSpace(frag), "EXISTS") {
		t.Errorf("tenant scope is not an EXISTS: %s", frag)
	}
}

func TestExpenseScope_ChecksCompanyAndProperty(t *testing.T) {
	frag := expenseScope("e", "$1")
	if !strings.Contains(frag, "ec.id = e.company_id") {
		t.Errorf("company branch missing: %s", frag)
	}
	if !strings.Contains(frag, "ep.id = e.property_id") {
		t.Errorf("property branch missing: %s", frag)
	}
}

func TestRentPaymentScope_ResolvesThroughTenant(t *testing.T) {
	frag := rentPaymentScope("rp0", "$1")
	if !strings.Contains(frag, "rt.id = rp0.tenant_id") {
		t.Errorf("tenant linkage missing: %s", frag)
	}
	if !strings.Contains(frag, "rp.id = rt.property_id") {
		t.Errorf("property linkage missing: %s", frag)
	}
}

func TestScopeAliasesDoNotCollide(t *testing.T) {
	// Nested subqueries reuse propertyScope with their own aliases; the
	// outer alias must never leak into the inner fragment except as the
	// linking column.
	frag := rentPaymentScope("x", "$2")
	if strings.Contains(frag, "x.owner_id") {
		t.Errorf("outer alias used for owner check: %s", frag)
	}
}
