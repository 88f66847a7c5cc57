package pgpcustomer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/paycore/internal/database"
)

const columns = "id, payer_id, pgp_resource_id, currency, pgp_code, legacy_id, legacy_stripe_customer_id, account_balance, default_payment_method_id, legacy_default_source_id, legacy_default_card_id, description, metadata, created_at, updated_at, deleted_at"

// PostgresRepository implements Repository against payin_paymentdb.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a Repository backed by the given logical database.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, params InsertParams) (*PgpCustomer, error) {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := "INSERT INTO pgp_customers (id, payer_id, pgp_resource_id, currency, pgp_code, legacy_id, legacy_stripe_customer_id, account_balance, description, metadata) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING " + columns

	return database.FetchOneRequired[PgpCustomer](ctx, r.db.Master(), database.RoleMaster, "pgp_customer.insert", query,
		id, params.PayerID, params.PGPResourceID, params.Currency, params.PGPCode,
		params.LegacyID, params.LegacyStripeCustomerID, params.AccountBalance, params.Description,
		params.Metadata)
}

func (r *PostgresRepository) Get(ctx context.Context, params GetParams) (*PgpCustomer, error) {
	if params.PGPCode != nil {
		query := "SELECT " + columns + " FROM pgp_customers WHERE payer_id = $1 AND pgp_code = $2"
		return database.FetchOne[PgpCustomer](ctx, r.db.Replica(), database.RoleReplica, "pgp_customer.get", query,
			params.PayerID, *params.PGPCode)
	}
	query := "SELECT " + columns + " FROM pgp_customers WHERE payer_id = $1"
	return database.FetchOne[PgpCustomer](ctx, r.db.Replica(), database.RoleReplica, "pgp_customer.get", query, params.PayerID)
}

func (r *PostgresRepository) Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*PgpCustomer, error) {
	b := database.NewUpdateBuilder()
	b.Add("default_payment_method_id", set.DefaultPaymentMethodID)
	b.Add("legacy_default_source_id", set.LegacyDefaultSourceID)
	b.Add("legacy_default_card_id", set.LegacyDefaultCardID)
	b.Add("currency", set.Currency)
	b.Add("account_balance", set.AccountBalance)

	if b.Empty() {
		query := "SELECT " + columns + " FROM pgp_customers WHERE id = $1"
		return database.FetchOne[PgpCustomer](ctx, r.db.Master(), database.RoleMaster, "pgp_customer.update", query, where.ID)
	}

	b.AddRaw("updated_at = now()")

	query := fmt.Sprintf("UPDATE pgp_customers SET %s WHERE id = $%d RETURNING %s",
		b.SetClause(), b.NextIdx(), columns)

	return database.FetchOne[PgpCustomer](ctx, r.db.Master(), database.RoleMaster, "pgp_customer.update", query, b.Args(where.ID)...)
}

func (r *PostgresRepository) ListByPayer(ctx context.Context, payerID uuid.UUID) ([]PgpCustomer, error) {
	query := "SELECT " + columns + " FROM pgp_customers WHERE payer_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC"
	return database.FetchAll[PgpCustomer](ctx, r.db.Replica(), database.RoleReplica, "pgp_customer.list_by_payer", query, payerID)
}
