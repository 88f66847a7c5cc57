// Package paymentmethod provides CRUD access to gateway payment method
// records.
package paymentmethod

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides CRUD operations on the pgp_payment_methods table.
type Repository interface {
	Insert(ctx context.Context, params InsertParams) (*PaymentMethod, error)
	// Get returns the method matching the first populated lookup key, or
	// nil when no row matches.
	Get(ctx context.Context, params GetParams) (*PaymentMethod, error)
	// Update applies only the supplied fields and returns the updated row,
	// or nil when the where predicate matched nothing.
	Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*PaymentMethod, error)
	// ListByPayer returns the payer's attached (not yet detached) methods.
	ListByPayer(ctx context.Context, payerID uuid.UUID) ([]PaymentMethod, error)
}
