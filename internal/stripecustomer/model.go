package stripecustomer

import "github.com/ledgerline/paycore/internal/database"

// StripeCustomer represents a row in the legacy stripe_customer table
// (payin_maindb). Rows are keyed by a serial id rather than a UUID.
type StripeCustomer struct {
	ID               int64   `db:"id"`
	StripeID         string  `db:"stripe_id"`
	CountryShortname string  `db:"country_shortname"`
	OwnerType        string  `db:"owner_type"`
	OwnerID          int64   `db:"owner_id"`
	DefaultCard      *string `db:"default_card"`
	DefaultSource    *string `db:"default_source"`
}

// InsertParams carries the caller-supplied fields for a new stripe customer;
// the serial id is assigned by the database.
type InsertParams struct {
	StripeID         string
	CountryShortname string
	OwnerType        string
	OwnerID          int64
	DefaultCard      *string
	DefaultSource    *string
}

// GetParams carries mutually exclusive lookup keys; resolution order is the
// serial ID, then the external StripeID.
type GetParams struct {
	ID       *int64
	StripeID *string
}

// UpdateSet holds the mutable columns. Absent fields are never written.
type UpdateSet struct {
	DefaultCard   database.Field[string]
	DefaultSource database.Field[string]
}

// UpdateWhere selects the row to update.
type UpdateWhere struct {
	ID int64
}
