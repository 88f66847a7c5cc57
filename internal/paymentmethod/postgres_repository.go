package paymentmethod

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/paycore/internal/database"
)

const columns = "id, pgp_code, pgp_resource_id, payer_id, pgp_card_id, legacy_consumer_id, legacy_stripe_card_serial_id, object, type, created_at, updated_at, deleted_at, attached_at, detached_at"

// PostgresRepository implements Repository against payin_paymentdb.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a Repository backed by the given logical database.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, params InsertParams) (*PaymentMethod, error) {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := "INSERT INTO pgp_payment_methods (id, pgp_code, pgp_resource_id, payer_id, pgp_card_id, legacy_consumer_id, legacy_stripe_card_serial_id, object, type, attached_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING " + columns

	return database.FetchOneRequired[PaymentMethod](ctx, r.db.Master(), database.RoleMaster, "payment_method.insert", query,
		id, params.PGPCode, params.PGPResourceID, params.PayerID, params.PGPCardID,
		params.LegacyConsumerID, params.LegacyStripeCardSerialID, params.Object,
		params.Type, params.AttachedAt)
}

func (r *PostgresRepository) Get(ctx context.Context, params GetParams) (*PaymentMethod, error) {
	var (
		predicate string
		arg       any
	)
	switch {
	case params.ID != nil:
		predicate, arg = "id = $1", *params.ID
	case params.PGPResourceID != nil:
		predicate, arg = "pgp_resource_id = $1", *params.PGPResourceID
	default:
		return nil, errors.New("paymentmethod: no lookup key supplied")
	}

	query := "SELECT " + columns + " FROM pgp_payment_methods WHERE " + predicate
	return database.FetchOne[PaymentMethod](ctx, r.db.Replica(), database.RoleReplica, "payment_method.get", query, arg)
}

func (r *PostgresRepository) Update(ctx context.Context, set UpdateSet, where UpdateWhere) (*PaymentMethod, error) {
	b := database.NewUpdateBuilder()
	b.Add("pgp_card_id", set.PGPCardID)
	b.Add("attached_at", set.AttachedAt)
	b.Add("detached_at", set.DetachedAt)
	b.Add("deleted_at", set.DeletedAt)

	if b.Empty() {
		query := "SELECT " + columns + " FROM pgp_payment_methods WHERE id = $1"
		return database.FetchOne[PaymentMethod](ctx, r.db.Master(), database.RoleMaster, "payment_method.update", query, where.ID)
	}

	b.AddRaw("updated_at = now()")

	query := fmt.Sprintf("UPDATE pgp_payment_methods SET %s WHERE id = $%d RETURNING %s",
		b.SetClause(), b.NextIdx(), columns)

	return database.FetchOne[PaymentMethod](ctx, r.db.Master(), database.RoleMaster, "payment_method.update", query, b.Args(where.ID)...)
}

func (r *PostgresRepository) ListByPayer(ctx context.Context, payerID uuid.UUID) ([]PaymentMethod, error) {
	query := "SELECT " + columns + " FROM pgp_payment_methods WHERE payer_id = $1 AND detached_at IS NULL AND deleted_at IS NULL ORDER BY created_at ASC"
	return database.FetchAll[PaymentMethod](ctx, r.db.Replica(), database.RoleReplica, "payment_method.list_by_payer", query, payerID)
}
