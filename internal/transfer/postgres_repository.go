package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/paycore/internal/database"
)

const columns = "id, recipient_id, subtotal, adjustments, amount, currency, created_at, submitted_at, deleted_at, method, manual_transfer_reason, status, status_code, submitting_at, should_retry_on_failure, statement_description, created_by_id, deleted_by_id, payment_account_id, submitted_by_id"

// PostgresRepository implements Repository against payout_maindb.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a Repository backed by the given logical database.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

// Create inserts exactly one transfer, stamping created_at at call time.
func (r *PostgresRepository) Create(ctx context.Context, params CreateParams) (*Transfer, error) {
	query := "INSERT INTO transfer (recipient_id, subtotal, adjustments, amount, currency, method, manual_transfer_reason, status, status_code, statement_description, created_by_id, payment_account_id, created_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING " + columns

	return database.FetchOneRequired[Transfer](ctx, r.db.Master(), database.RoleMaster, "transfer.create", query,
		params.RecipientID, params.Subtotal, params.Adjustments, params.Amount,
		params.Currency, params.Method, params.ManualTransferReason, params.Status,
		params.StatusCode, params.StatementDescription, params.CreatedByID,
		params.PaymentAccountID, time.Now().UTC())
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Transfer, error) {
	query := "SELECT " + columns + " FROM transfer WHERE id = $1"
	return database.FetchOne[Transfer](ctx, r.db.Replica(), database.RoleReplica, "transfer.get_by_id", query, id)
}

// GetByIDs reads from the master: the batch is used right after the rows
// were written and replica lag would drop them.
func (r *PostgresRepository) GetByIDs(ctx context.Context, ids []int64) ([]Transfer, error) {
	query := "SELECT " + columns + " FROM transfer WHERE id = ANY($1)"
	return database.FetchAll[Transfer](ctx, r.db.Master(), database.RoleMaster, "transfer.get_by_ids", query, ids)
}

type transferID struct {
	ID int64 `db:"id"`
}

func (r *PostgresRepository) ListSubmittedAfter(ctx context.Context, start time.Time, method string) ([]int64, error) {
	if method == "" {
		method = MethodStripe
	}
	query := "SELECT id FROM transfer WHERE submitted_at >= $1 AND method = $2 ORDER BY id ASC"
	rows, err := database.FetchAll[transferID](ctx, r.db.Replica(), database.RoleReplica, "transfer.list_submitted_after", query, start, method)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *PostgresRepository) Update(ctx context.Context, set UpdateSet, id int64) (*Transfer, error) {
	b := database.NewUpdateBuilder()
	b.Add("subtotal", set.Subtotal)
	b.Add("adjustments", set.Adjustments)
	b.Add("amount", set.Amount)
	b.Add("currency", set.Currency)
	b.Add("submitted_at", set.SubmittedAt)
	b.Add("deleted_at", set.DeletedAt)
	b.Add("method", set.Method)
	b.Add("status", set.Status)
	b.Add("status_code", set.StatusCode)
	b.Add("submitting_at", set.SubmittingAt)
	b.Add("should_retry_on_failure", set.ShouldRetryOnFailure)
	b.Add("statement_description", set.StatementDescription)
	b.Add("deleted_by_id", set.DeletedByID)
	b.Add("submitted_by_id", set.SubmittedByID)

	if b.Empty() {
		query := "SELECT " + columns + " FROM transfer WHERE id = $1"
		return database.FetchOne[Transfer](ctx, r.db.Master(), database.RoleMaster, "transfer.update", query, id)
	}

	query := fmt.Sprintf("UPDATE transfer SET %s WHERE id = $%d RETURNING %s",
		b.SetClause(), b.NextIdx(), columns)

	return database.FetchOne[Transfer](ctx, r.db.Master(), database.RoleMaster, "transfer.update", query, b.Args(id)...)
}
