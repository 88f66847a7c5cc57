package paymentaccount

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/paycore/internal/database"
)

var accountCols = []string{
	"id", "account_type", "account_id", "entity", "old_account_id",
	"upgraded_to_managed_account_at", "is_verified_with_stripe",
	"transfers_enabled", "charges_enabled", "statement_descriptor",
	"created_at", "payout_disabled", "resolve_outstanding_balance_frequency",
}

func newRepo(t *testing.T) (Repository, pgxmock.PgxPoolIface, pgxmock.PgxPoolIface) {
	t.Helper()
	master, err := pgxmock.NewPool()
	require.NoError(t, err)
	replica, err := pgxmock.NewPool()
	require.NoError(t, err)
	db := database.NewWithPools("payout_maindb", master, replica)
	return NewRepository(db), master, replica
}

func ptr[T any](v T) *T { return &v }

func accountRow(id int64) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows(accountCols).AddRow(
		id, ptr(AccountTypeStripeManagedAccount), ptr(int64(77)), ptr("dasher"), nil,
		nil, ptr(true),
		ptr(true), ptr(true), "PAYOUT",
		ptr(now), nil, nil,
	)
}

func TestCreateStampsCreatedAt(t *testing.T) {
	repo, master, _ := newRepo(t)
	defer master.Close()

	master.ExpectQuery("INSERT INTO payment_account").
		WithArgs(ptr(AccountTypeStripeManagedAccount), ptr(int64(77)), ptr("dasher"), (*int64)(nil),
			ptr(true), ptr(true), ptr(true),
			"PAYOUT", (*bool)(nil), pgxmock.AnyArg()).
		WillReturnRows(accountRow(1))

	got, err := repo.Create(context.Background(), CreateParams{
		AccountType:          ptr(AccountTypeStripeManagedAccount),
		AccountID:            ptr(int64(77)),
		Entity:               ptr("dasher"),
		IsVerifiedWithStripe: ptr(true),
		TransfersEnabled:     ptr(true),
		ChargesEnabled:       ptr(true),
		StatementDescriptor:  "PAYOUT",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	require.NoError(t, master.ExpectationsWereMet())
}

func TestCreateNoRowIsDefect(t *testing.T) {
	repo, master, _ := newRepo(t)
	defer master.Close()

	master.ExpectQuery("INSERT INTO payment_account").
		WillReturnRows(pgxmock.NewRows(accountCols))

	_, err := repo.Create(context.Background(), CreateParams{StatementDescriptor: "PAYOUT"})
	require.ErrorIs(t, err, database.ErrNoRowReturned)
}

func TestGetByIDUsesReplica(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	replica.ExpectQuery(regexp.QuoteMeta(
		"SELECT " + columns + " FROM payment_account WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(accountRow(1))

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NoError(t, replica.ExpectationsWereMet())
	require.NoError(t, master.ExpectationsWereMet())
}

func TestGetByIDAbsenceIsNil(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	replica.ExpectQuery("SELECT .* FROM payment_account WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(accountCols))

	got, err := repo.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListByAccountOrdersByID(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	replica.ExpectQuery(regexp.QuoteMeta(
		"WHERE account_id = $1 AND account_type = $2 ORDER BY id ASC")).
		WithArgs(int64(77), AccountTypeStripeManagedAccount).
		WillReturnRows(accountRow(1).AddRow(
			int64(2), ptr(AccountTypeStripeManagedAccount), ptr(int64(77)), ptr("store"), nil,
			nil, nil,
			nil, nil, "PAYOUT",
			nil, nil, nil,
		))

	got, err := repo.ListByAccount(context.Background(), 77, AccountTypeStripeManagedAccount)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	require.NoError(t, replica.ExpectationsWereMet())
}

func TestListByAccountEmptyMatch(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	replica.ExpectQuery("SELECT .* FROM payment_account").
		WithArgs(int64(0), "missing").
		WillReturnRows(pgxmock.NewRows(accountCols))

	got, err := repo.ListByAccount(context.Background(), 0, "missing")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdateSubmitsOnlySuppliedFields(t *testing.T) {
	repo, master, _ := newRepo(t)
	defer master.Close()

	master.ExpectQuery(regexp.QuoteMeta(
		"UPDATE payment_account SET account_type = $1, account_id = $2 WHERE id = $3 RETURNING " + columns)).
		WithArgs(AccountTypeStripeManagedAccount, int64(88), int64(1)).
		WillReturnRows(accountRow(1))

	got, err := repo.Update(context.Background(), UpdateSet{
		AccountType: database.Set(AccountTypeStripeManagedAccount),
		AccountID:   database.Set(int64(88)),
	}, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NoError(t, master.ExpectationsWereMet())
}

func TestUpdateNoMatchReturnsNil(t *testing.T) {
	repo, master, _ := newRepo(t)
	defer master.Close()

	master.ExpectQuery("UPDATE payment_account SET").
		WithArgs(false, int64(404)).
		WillReturnRows(pgxmock.NewRows(accountCols))

	got, err := repo.Update(context.Background(), UpdateSet{PayoutDisabled: database.Set(false)}, 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}
