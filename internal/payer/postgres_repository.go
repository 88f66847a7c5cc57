package payer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/paycore/internal/database"
)

const columns = "id, payer_type, country, legacy_stripe_customer_id, account_balance, description, dd_payer_id, metadata, created_at, updated_at, deleted_at"

// PostgresRepository implements Repository against payin_paymentdb.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a Repository backed by the given logical database.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

// Insert writes exactly one payer and returns the persisted row from the
// same round trip.
func (r *PostgresRepository) Insert(ctx context.Context, params InsertParams) (*Payer, error) {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := "INSERT INTO payers (id, payer_type, country, legacy_stripe_customer_id, account_balance, description, dd_payer_id, metadata) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING " + columns

	return database.FetchOneRequired[Payer](ctx, r.db.Master(), database.RoleMaster, "payer.insert", query,
		id, params.PayerType, params.Country, params.LegacyStripeCustomerID,
		params.AccountBalance, params.Description, params.DDPayerID, params.Metadata)
}

// Get resolves the lookup keys in fixed priority order: canonical id first,
// then the legacy identifiers. Absence is a nil result, not an error.
func (r *PostgresRepository) Get(ctx context.Context, params GetParams) (*Payer, error) {
	var (
		predicate string
		arg       any
	)
	switch {
	case params.ID != nil:
		predicate, arg = "id = $1", *params.ID
	case params.LegacyStripeCustomerID != nil:
		predicate, arg = "legacy_stripe_customer_id = $1", *params.LegacyStripeCustomerID
	case params.DDPayerID != nil:
		predicate, arg = "dd_payer_id = $1", *params.DDPayerID
	default:
		return nil, errors.New("payer: no lookup key supplied")
	}

	query := "SELECT " + columns + " FROM payers WHERE " + predicate
	return database.FetchOne[Payer](ctx, r.db.Replica(), database.RoleReplica, "payer.get", query, arg)
}

// Update applies only the supplied fields. A where predicate that matches
// nothing yields a nil row.
func (r *PostgresRepository) Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*Payer, error) {
	b := database.NewUpdateBuilder()
	b.Add("legacy_stripe_customer_id", set.LegacyStripeCustomerID)
	b.Add("account_balance", set.AccountBalance)
	b.Add("description", set.Description)
	b.Add("metadata", set.Metadata)
	b.Add("deleted_at", set.DeletedAt)

	if b.Empty() {
		query := "SELECT " + columns + " FROM payers WHERE id = $1"
		return database.FetchOne[Payer](ctx, r.db.Master(), database.RoleMaster, "payer.update", query, where.ID)
	}

	b.AddRaw("updated_at = now()")

	query := fmt.Sprintf("UPDATE payers SET %s WHERE id = $%d RETURNING %s",
		b.SetClause(), b.NextIdx(), columns)

	return database.FetchOne[Payer](ctx, r.db.Master(), database.RoleMaster, "payer.update", query, b.Args(where.ID)...)
}

// ListByType returns payers of the given type, newest first.
func (r *PostgresRepository) ListByType(ctx context.Context, payerType string, limit int32) ([]Payer, error) {
	if limit < 1 {
		limit = 100
	}
	query := "SELECT " + columns + " FROM payers WHERE payer_type = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT $2"
	return database.FetchAll[Payer](ctx, r.db.Replica(), database.RoleReplica, "payer.list_by_type", query, payerType, limit)
}
