package paymentaccount

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/paycore/internal/database"
)

const columns = "id, account_type, account_id, entity, old_account_id, upgraded_to_managed_account_at, is_verified_with_stripe, transfers_enabled, charges_enabled, statement_descriptor, created_at, payout_disabled, resolve_outstanding_balance_frequency"

// PostgresRepository implements Repository against payout_maindb.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a Repository backed by the given logical database.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

// Create inserts exactly one payment account, stamping created_at at call
// time.
func (r *PostgresRepository) Create(ctx context.Context, params CreateParams) (*PaymentAccount, error) {
	query := "INSERT INTO payment_account (account_type, account_id, entity, old_account_id, is_verified_with_stripe, transfers_enabled, charges_enabled, statement_descriptor, payout_disabled, created_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING " + columns

	return database.FetchOneRequired[PaymentAccount](ctx, r.db.Master(), database.RoleMaster, "payment_account.create", query,
		params.AccountType, params.AccountID, params.Entity, params.OldAccountID,
		params.IsVerifiedWithStripe, params.TransfersEnabled, params.ChargesEnabled,
		params.StatementDescriptor, params.PayoutDisabled, time.Now().UTC())
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*PaymentAccount, error) {
	query := "SELECT " + columns + " FROM payment_account WHERE id = $1"
	return database.FetchOne[PaymentAccount](ctx, r.db.Replica(), database.RoleReplica, "payment_account.get_by_id", query, id)
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID int64, accountType string) ([]PaymentAccount, error) {
	query := "SELECT " + columns + " FROM payment_account WHERE account_id = $1 AND account_type = $2 ORDER BY id ASC"
	return database.FetchAll[PaymentAccount](ctx, r.db.Replica(), database.RoleReplica, "payment_account.list_by_account", query, accountID, accountType)
}

func (r *PostgresRepository) Update(ctx context.Context, set UpdateSet, id int64) (*PaymentAccount, error) {
	b := database.NewUpdateBuilder()
	b.Add("account_type", set.AccountType)
	b.Add("account_id", set.AccountID)
	b.Add("entity", set.Entity)
	b.Add("upgraded_to_managed_account_at", set.UpgradedToManagedAccountAt)
	b.Add("is_verified_with_stripe", set.IsVerifiedWithStripe)
	b.Add("transfers_enabled", set.TransfersEnabled)
	b.Add("charges_enabled", set.ChargesEnabled)
	b.Add("statement_descriptor", set.StatementDescriptor)
	b.Add("payout_disabled", set.PayoutDisabled)
	b.Add("resolve_outstanding_balance_frequency", set.ResolveOutstandingBalanceFrequency)

	if b.Empty() {
		query := "SELECT " + columns + " FROM payment_account WHERE id = $1"
		return database.FetchOne[PaymentAccount](ctx, r.db.Master(), database.RoleMaster, "payment_account.update", query, id)
	}

	query := fmt.Sprintf("UPDATE payment_account SET %s WHERE id = $%d RETURNING %s",
		b.SetClause(), b.NextIdx(), columns)

	return database.FetchOne[PaymentAccount](ctx, r.db.Master(), database.RoleMaster, "payment_account.update", query, b.Args(id)...)
}
