package stripecustomer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerline/paycore/internal/database"
)

const columns = "id, stripe_id, country_shortname, owner_type, owner_id, default_card, default_source"

// PostgresRepository implements Repository against payin_maindb.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a Repository backed by the given logical database.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, params InsertParams) (*StripeCustomer, error) {
	query := "INSERT INTO stripe_customer (stripe_id, country_shortname, owner_type, owner_id, default_card, default_source) " +
		"VALUES ($1, $2, $3, $4, $5, $6) RETURNING " + columns

	return database.FetchOneRequired[StripeCustomer](ctx, r.db.Master(), database.RoleMaster, "stripe_customer.insert", query,
		params.StripeID, params.CountryShortname, params.OwnerType, params.OwnerID,
		params.DefaultCard, params.DefaultSource)
}

func (r *PostgresRepository) Get(ctx context.Context, params GetParams) (*StripeCustomer, error) {
	var (
		predicate string
		arg       any
	)
	switch {
	case params.ID != nil:
		predicate, arg = "id = $1", *params.ID
	case params.StripeID != nil:
		predicate, arg = "stripe_id = $1", *params.StripeID
	default:
		return nil, errors.New("stripecustomer: no lookup key supplied")
	}

	query := "SELECT " + columns + " FROM stripe_customer WHERE " + predicate
	return database.FetchOne[StripeCustomer](ctx, r.db.Replica(), database.RoleReplica, "stripe_customer.get", query, arg)
}

func (r *PostgresRepository) Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*StripeCustomer, error) {
	b := database.NewUpdateBuilder()
	b.Add("default_card", set.DefaultCard)
	b.Add("default_source", set.DefaultSource)

	if b.Empty() {
		query := "SELECT " + columns + " FROM stripe_customer WHERE id = $1"
		return database.FetchOne[StripeCustomer](ctx, r.db.Master(), database.RoleMaster, "stripe_customer.update", query, where.ID)
	}

	query := fmt.Sprintf("UPDATE stripe_customer SET %s WHERE id = $%d RETURNING %s",
		b.SetClause(), b.NextIdx(), columns)

	return database.FetchOne[StripeCustomer](ctx, r.db.Master(), database.RoleMaster, "stripe_customer.update", query, b.Args(where.ID)...)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerType string, ownerID int64) ([]StripeCustomer, error) {
	query := "SELECT " + columns + " FROM stripe_customer WHERE owner_type = $1 AND owner_id = $2 ORDER BY id ASC"
	return database.FetchAll[StripeCustomer](ctx, r.db.Replica(), database.RoleReplica, "stripe_customer.list_by_owner", query, ownerType, ownerID)
}
