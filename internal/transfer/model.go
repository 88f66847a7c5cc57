package transfer

import (
	"time"

	"github.com/ledgerline/paycore/internal/database"
)

// Method values for the transfer method column.
const (
	MethodStripe = "stripe"
	MethodCheck  = "check"
)

// Transfer represents a row in the transfer table (payout_maindb).
type Transfer struct {
	ID                   int64      `db:"id"`
	RecipientID          *int64     `db:"recipient_id"`
	Subtotal             int64      `db:"subtotal"`
	Adjustments          string     `db:"adjustments"`
	Amount               int64      `db:"amount"`
	Currency             *string    `db:"currency"`
	CreatedAt            time.Time  `db:"created_at"`
	SubmittedAt          *time.Time `db:"submitted_at"`
	DeletedAt            *time.Time `db:"deleted_at"`
	Method               string     `db:"method"`
	ManualTransferReason *string    `db:"manual_transfer_reason"`
	Status               *string    `db:"status"`
	StatusCode           *string    `db:"status_code"`
	SubmittingAt         *time.Time `db:"submitting_at"`
	ShouldRetryOnFailure *bool      `db:"should_retry_on_failure"`
	StatementDescription *string    `db:"statement_description"`
	CreatedByID          *int64     `db:"created_by_id"`
	DeletedByID          *int64     `db:"deleted_by_id"`
	PaymentAccountID     *int64     `db:"payment_account_id"`
	SubmittedByID        *int64     `db:"submitted_by_id"`
}

// CreateParams carries the caller-supplied fields for a new transfer;
// created_at is stamped by the repository at call time.
type CreateParams struct {
	RecipientID          *int64
	Subtotal             int64
	Adjustments          string
	Amount               int64
	Currency             *string
	Method               string
	ManualTransferReason *string
	Status               *string
	StatusCode           *string
	StatementDescription *string
	CreatedByID          *int64
	PaymentAccountID     *int64
}

// UpdateSet holds the mutable columns. Absent fields are never written.
type UpdateSet struct {
	Subtotal             database.Field[int64]
	Adjustments          database.Field[string]
	Amount               database.Field[int64]
	Currency             database.Field[string]
	SubmittedAt          database.Field[time.Time]
	DeletedAt            database.Field[time.Time]
	Method               database.Field[string]
	Status               database.Field[string]
	StatusCode           database.Field[string]
	SubmittingAt         database.Field[time.Time]
	ShouldRetryOnFailure database.Field[bool]
	StatementDescription database.Field[string]
	DeletedByID          database.Field[int64]
	SubmittedByID        database.Field[int64]
}
