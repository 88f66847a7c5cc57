// Package paymentaccount provides CRUD access to payout payment accounts.
package paymentaccount

import "context"

// Repository provides CRUD operations on the payment_account table.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*PaymentAccount, error)
	// GetByID returns the payment account, or nil when no row matches.
	GetByID(ctx context.Context, id int64) (*PaymentAccount, error)
	// ListByAccount returns all payment accounts referencing the given
	// provider account, ordered by id ascending.
	ListByAccount(ctx context.Context, accountID int64, accountType string) ([]PaymentAccount, error)
	// Update applies only the supplied fields and returns the updated row,
	// or nil when no row matched.
	Update(ctx context.Context, set UpdateSet, id int64) (*PaymentAccount, error)
}
