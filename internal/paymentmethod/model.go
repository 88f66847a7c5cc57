package paymentmethod

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/paycore/internal/database"
)

// PaymentMethod represents a row in the pgp_payment_methods table
// (payin_paymentdb): a tokenized instrument held at a payment gateway
// provider.
type PaymentMethod struct {
	ID                       uuid.UUID  `db:"id"`
	PGPCode                  string     `db:"pgp_code"`
	PGPResourceID            string     `db:"pgp_resource_id"`
	PayerID                  *uuid.UUID `db:"payer_id"`
	PGPCardID                *string    `db:"pgp_card_id"`
	LegacyConsumerID         *string    `db:"legacy_consumer_id"`
	LegacyStripeCardSerialID *int64     `db:"legacy_stripe_card_serial_id"`
	Object                   *string    `db:"object"`
	Type                     *string    `db:"type"`
	CreatedAt                time.Time  `db:"created_at"`
	UpdatedAt                time.Time  `db:"updated_at"`
	DeletedAt                *time.Time `db:"deleted_at"`
	AttachedAt               *time.Time `db:"attached_at"`
	DetachedAt               *time.Time `db:"detached_at"`
}

// InsertParams carries the caller-supplied fields for a new payment method.
type InsertParams struct {
	ID                       uuid.UUID // generated when zero
	PGPCode                  string
	PGPResourceID            string
	PayerID                  *uuid.UUID
	PGPCardID                *string
	LegacyConsumerID         *string
	LegacyStripeCardSerialID *int64
	Object                   *string
	Type                     *string
	AttachedAt               *time.Time
}

// GetParams carries mutually exclusive lookup keys; resolution order is ID,
// then the provider-side PGPResourceID.
type GetParams struct {
	ID            *uuid.UUID
	PGPResourceID *string
}

// UpdateSet holds the mutable columns. Absent fields are never written.
type UpdateSet struct {
	PGPCardID  database.Field[string]
	AttachedAt database.Field[time.Time]
	DetachedAt database.Field[time.Time]
	DeletedAt  database.Field[time.Time]
}

// UpdateWhere selects the row to update.
type UpdateWhere struct {
	ID uuid.UUID
}
