// Package transfer provides CRUD access to payout transfer records.
package transfer

import (
	"context"
	"time"
)

// Repository provides CRUD operations on the transfer table.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Transfer, error)
	// GetByID returns the transfer, or nil when no row matches. Served from
	// the replica; callers needing read-your-write must use GetByIDs.
	GetByID(ctx context.Context, id int64) (*Transfer, error)
	// GetByIDs reads a batch from the master, for callers that just wrote
	// the rows and cannot tolerate replica lag.
	GetByIDs(ctx context.Context, ids []int64) ([]Transfer, error)
	// ListSubmittedAfter returns ids of transfers submitted at or after
	// start using the given method.
	ListSubmittedAfter(ctx context.Context, start time.Time, method string) ([]int64, error)
	// Update applies only the supplied fields and returns the updated row,
	// or nil when no row matched.
	Update(ctx context.Context, set UpdateSet, id int64) (*Transfer, error)
}
