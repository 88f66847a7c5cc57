package paymentaccount

import (
	"time"

	"github.com/ledgerline/paycore/internal/database"
)

// AccountType values for the account_type column.
const (
	AccountTypeStripeManagedAccount = "stripe_managed_account"
)

// PaymentAccount represents a row in the payment_account table
// (payout_maindb). statement_descriptor is the only NOT NULL column
// besides the id.
type PaymentAccount struct {
	ID                                 int64      `db:"id"`
	AccountType                        *string    `db:"account_type"`
	AccountID                          *int64     `db:"account_id"`
	Entity                             *string    `db:"entity"`
	OldAccountID                       *int64     `db:"old_account_id"`
	UpgradedToManagedAccountAt         *time.Time `db:"upgraded_to_managed_account_at"`
	IsVerifiedWithStripe               *bool      `db:"is_verified_with_stripe"`
	TransfersEnabled                   *bool      `db:"transfers_enabled"`
	ChargesEnabled                     *bool      `db:"charges_enabled"`
	StatementDescriptor                string     `db:"statement_descriptor"`
	CreatedAt                          *time.Time `db:"created_at"`
	PayoutDisabled                     *bool      `db:"payout_disabled"`
	ResolveOutstandingBalanceFrequency *string    `db:"resolve_outstanding_balance_frequency"`
}

// CreateParams carries the caller-supplied fields for a new payment
// account; created_at is stamped by the repository at call time.
type CreateParams struct {
	AccountType          *string
	AccountID            *int64
	Entity               *string
	OldAccountID         *int64
	IsVerifiedWithStripe *bool
	TransfersEnabled     *bool
	ChargesEnabled       *bool
	StatementDescriptor  string
	PayoutDisabled       *bool
}

// UpdateSet holds the mutable columns. Absent fields are never written.
type UpdateSet struct {
	AccountType                        database.Field[string]
	AccountID                          database.Field[int64]
	Entity                             database.Field[string]
	UpgradedToManagedAccountAt         database.Field[time.Time]
	IsVerifiedWithStripe               database.Field[bool]
	TransfersEnabled                   database.Field[bool]
	ChargesEnabled                     database.Field[bool]
	StatementDescriptor                database.Field[string]
	PayoutDisabled                     database.Field[bool]
	ResolveOutstandingBalanceFrequency database.Field[string]
}
