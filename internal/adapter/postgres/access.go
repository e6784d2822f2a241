package postgres

import (
	"context"
	"fmt"

	"github.com/rentfold/rentfold/internal/domain"
)

// Ownership-predicate SQL fragments.
//
// Every entity's accessibility is derived transitively through the chain
// tenant -> property -> company -> owner (or property -> owner directly).
// These builders produce the predicate once, so list queries, single-row
// reads, mutating statements, and IsAccessible all share exactly the same
// rule and cannot drift apart. Each builder takes the table alias of the
// row being tested and the bind placeholder carrying the owner id.

// companyScope: accessible iff the company is owned directly.
func companyScope(alias, owner string) string {
	return fmt.Sprintf(`%s.owner_id = %s`, alias, owner)
}

// propertyScope: accessible iff owned directly OR via the property's
// company. Inclusive OR; both paths may be set.
func propertyScope(alias, owner string) string {
	return fmt.Sprintf(`(%[1]s.owner_id = %[2]s OR EXISTS (
		SELECT 1 FROM companies pc WHERE pc.id = %[1]s.company_id AND pc.owner_id = %[2]s))`,
		alias, owner)
}

// tenantScope: derived entirely from the tenant's property. A tenant with
// no property matches nothing (unlisted for every owner).
func tenantScope(alias, owner string) string {
	return fmt.Sprintf(`EXISTS (SELECT 1 FROM properties tp WHERE tp.id = %s.property_id AND %s)`,
		alias, propertyScope("tp", owner))
}

// leaseScope: the lease's property is authoritative; the tenant linkage is
// not independently checked.
func leaseScope(alias, owner string) string {
	return fmt.Sprintf(`EXISTS (SELECT 1 FROM properties lp WHERE lp.id = %s.property_id AND %s)`,
		alias, propertyScope("lp", owner))
}

// expenseScope: 3-way OR over the expense's company, its property, or that
// property's own company (folded into propertyScope's company branch).
func expenseScope(alias, owner string) string {
	return fmt.Sprintf(`(EXISTS (SELECT 1 FROM companies ec WHERE ec.id = %[1]s.company_id AND ec.owner_id = %[2]s)
		OR EXISTS (SELECT 1 FROM properties ep WHERE ep.id = %[1]s.property_id AND %[3]s))`,
		alias, owner, propertyScope("ep", owner))
}

// rentPaymentScope: derived via tenant -> property.
func rentPaymentScope(alias, owner string) string {
	return fmt.Sprintf(`EXISTS (
		SELECT 1 FROM tenants rt JOIN properties rp ON rp.id = rt.property_id
		WHERE rt.id = %s.tenant_id AND %s)`,
		alias, propertyScope("rp", owner))
}

// scopeFor returns the table name and predicate builder for an entity kind.
func scopeFor(kind domain.Kind) (table string, scope func(alias, owner string) string, err error) {
	switch kind {
	case domain.KindCompany:
		return "companies", companyScope, nil
	case domain.KindProperty:
		return "properties", propertyScope, nil
	case domain.KindTenant:
		return "tenants", tenantScope, nil
	case domain.KindLease:
		return "leases", leaseScope, nil
	case domain.KindExpense:
		return "expenses", expenseScope, nil
	case domain.KindRentPayment:
		return "rent_payments", rentPaymentScope, nil
	default:
		return "", nil, fmt.Errorf("unknown entity kind %q", kind)
	}
}

// IsAccessible reports whether the entity resolves to the acting owner.
// A nonexistent id resolves to false (fails closed), never an error.
func (s *Store) IsAccessible(ctx context.Context, kind domain.Kind, id int64) (bool, error) {
	table, scope, err := scopeFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s x WHERE x.id = $1 AND %s)`,
		table, scope("x", "$2"))

	var ok bool
	if err := s.pool.QueryRow(ctx, query, id, ownerFromCtx(ctx)).Scan(&ok); err != nil {
		return false, fmt.Errorf("resolve access %s %d: %w", kind, id, err)
	}
	return ok, nil
}

// Exists reports whether a row of the given kind exists at all, regardless
// of ownership. Used to distinguish not-found from forbidden.
func (s *Store) Exists(ctx context.Context, kind domain.Kind, id int64) (bool, error) {
	table, _, err := scopeFor(kind)
	if err != nil {
		return false, err
	}

	var ok bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := s.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("check existence %s %d: %w", kind, id, err)
	}
	return ok, nil
}
