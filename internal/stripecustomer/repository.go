// Package stripecustomer provides CRUD access to the legacy stripe customer
// records kept in the main database.
package stripecustomer

import "context"

// Repository provides CRUD operations on the stripe_customer table.
type Repository interface {
	Insert(ctx context.Context, params InsertParams) (*StripeCustomer, error)
	// Get returns the customer matching the first populated lookup key, or
	// nil when no row matches.
	Get(ctx context.Context, params GetParams) (*StripeCustomer, error)
	// Update applies only the supplied fields and returns the updated row,
	// or nil when the where predicate matched nothing.
	Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*StripeCustomer, error)
	ListByOwner(ctx context.Context, ownerType string, ownerID int64) ([]StripeCustomer, error)
}
