package domain

// Kind identifies an entity kind for ownership resolution.
type Kind string

// Entity kinds the access resolver understands.
const (
	KindCompany     Kind = "company"
	KindProperty    Kind = "property"
	KindTenant      Kind = "tenant"
	KindLease       Kind = "lease"
	KindExpense     Kind = "expense"
	KindRentPayment Kind = "rent_payment"
)
