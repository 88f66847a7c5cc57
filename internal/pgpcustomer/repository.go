// Package pgpcustomer provides CRUD access to payment-gateway-provider
// customer records.
package pgpcustomer

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides CRUD operations on the pgp_customers table.
type Repository interface {
	Insert(ctx context.Context, params InsertParams) (*PgpCustomer, error)
	// Get returns the customer for a payer, or nil when no row matches.
	Get(ctx context.Context, params GetParams) (*PgpCustomer, error)
	// Update applies only the supplied fields and returns the updated row,
	// or nil when the where predicate matched nothing.
	Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*PgpCustomer, error)
	ListByPayer(ctx context.Context, payerID uuid.UUID) ([]PgpCustomer, error)
}
