package payer

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/paycore/internal/database"
)

// Payer represents a row in the payers table (payin_paymentdb).
type Payer struct {
	ID                     uuid.UUID      `db:"id"`
	PayerType              string         `db:"payer_type"`
	Country                string         `db:"country"`
	LegacyStripeCustomerID *string        `db:"legacy_stripe_customer_id"`
	AccountBalance         *int64         `db:"account_balance"`
	Description            *string        `db:"description"`
	DDPayerID              *string        `db:"dd_payer_id"`
	Metadata               map[string]any `db:"metadata"`
	CreatedAt              time.Time      `db:"created_at"`
	UpdatedAt              time.Time      `db:"updated_at"`
	DeletedAt              *time.Time     `db:"deleted_at"`
}

// InsertParams carries the caller-supplied fields for a new payer.
// Server-assigned fields (timestamps) are never part of the input.
type InsertParams struct {
	ID                     uuid.UUID // generated when zero
	PayerType              string
	Country                string
	LegacyStripeCustomerID *string
	AccountBalance         *int64
	Description            *string
	DDPayerID              *string
	Metadata               map[string]any
}

// GetParams carries mutually exclusive lookup keys. Exactly one is expected
// to be populated; resolution order is ID, then LegacyStripeCustomerID,
// then DDPayerID.
type GetParams struct {
	ID                     *uuid.UUID
	LegacyStripeCustomerID *string
	DDPayerID              *string
}

// UpdateSet holds the mutable columns. Absent fields are never written.
type UpdateSet struct {
	LegacyStripeCustomerID database.Field[string]
	AccountBalance         database.Field[int64]
	Description            database.Field[string]
	Metadata               database.Field[map[string]any]
	DeletedAt              database.Field[time.Time]
}

// UpdateWhere selects the row to update.
type UpdateWhere struct {
	ID uuid.UUID
}
