// Package payer provides CRUD access to payer records.
package payer

import "context"

// Repository provides CRUD operations on the payers table.
type Repository interface {
	Insert(ctx context.Context, params InsertParams) (*Payer, error)
	// Get returns the payer matching the first populated lookup key, or nil
	// when no row matches.
	Get(ctx context.Context, params GetParams) (*Payer, error)
	// Update applies only the supplied fields and returns the updated row,
	// or nil when the where predicate matched nothing.
	Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*Payer, error)
	ListByType(ctx context.Context, payerType string, limit int32) ([]Payer, error)
}
