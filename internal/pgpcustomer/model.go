package pgpcustomer

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/paycore/internal/database"
)

// PgpCustomer represents a row in the pgp_customers table (payin_paymentdb):
// the payment-gateway-provider side of a payer.
type PgpCustomer struct {
	ID                     uuid.UUID      `db:"id"`
	PayerID                uuid.UUID      `db:"payer_id"`
	PGPResourceID          string         `db:"pgp_resource_id"`
	Currency               *string        `db:"currency"`
	PGPCode                *string        `db:"pgp_code"`
	LegacyID               *int64         `db:"legacy_id"`
	LegacyStripeCustomerID *string        `db:"legacy_stripe_customer_id"`
	AccountBalance         *int64         `db:"account_balance"`
	DefaultPaymentMethodID *string        `db:"default_payment_method_id"`
	LegacyDefaultSourceID  *string        `db:"legacy_default_source_id"`
	LegacyDefaultCardID    *string        `db:"legacy_default_card_id"`
	Description            *string        `db:"description"`
	Metadata               map[string]any `db:"metadata"`
	CreatedAt              time.Time      `db:"created_at"`
	UpdatedAt              time.Time      `db:"updated_at"`
	DeletedAt              *time.Time     `db:"deleted_at"`
}

// InsertParams carries the caller-supplied fields for a new pgp customer.
type InsertParams struct {
	ID                     uuid.UUID // generated when zero
	PayerID                uuid.UUID
	PGPResourceID          string
	Currency               *string
	PGPCode                *string
	LegacyID               *int64
	LegacyStripeCustomerID *string
	AccountBalance         *int64
	Description            *string
	Metadata               map[string]any
}

// GetParams selects a pgp customer by its payer; PGPCode narrows the match
// when a payer has customers at more than one provider.
type GetParams struct {
	PayerID uuid.UUID
	PGPCode *string
}

// UpdateSet holds the mutable columns. Absent fields are never written.
type UpdateSet struct {
	DefaultPaymentMethodID database.Field[string]
	LegacyDefaultSourceID  database.Field[string]
	LegacyDefaultCardID    database.Field[string]
	Currency               database.Field[string]
	AccountBalance         database.Field[int64]
}

// UpdateWhere selects the row to update.
type UpdateWhere struct {
	ID uuid.UUID
}
