package pgpcustomer

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/paycore/internal/database"
)

var pgpCustomerCols = []string{
	"id", "payer_id", "pgp_resource_id", "currency", "pgp_code", "legacy_id",
	"legacy_stripe_customer_id", "account_balance", "default_payment_method_id",
	"legacy_default_source_id", "legacy_default_card_id", "description",
	"metadata", "created_at", "updated_at", "deleted_at",
}

func newRepo(t *testing.T) (Repository, pgxmock.PgxPoolIface, pgxmock.PgxPoolIface) {
	t.Helper()
	master, err := pgxmock.NewPool()
	require.NoError(t, err)
	replica, err := pgxmock.NewPool()
	require.NoError(t, err)
	db := database.NewWithPools("payin_paymentdb", master, replica)
	return NewRepository(db), master, replica
}

func ptr[T any](v T) *T { return &v }

func customerRow(id, payerID uuid.UUID) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows(pgpCustomerCols).AddRow(
		id, payerID, "cus_abc123", ptr("usd"), ptr("stripe"), nil,
		nil, nil, nil,
		nil, nil, nil,
		nil, now, now, nil,
	)
}

func TestInsertThenGetRoundTrip(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	id := uuid.New()
	payerID := uuid.New()

	master.ExpectQuery("INSERT INTO pgp_customers").
		WithArgs(id, payerID, "cus_abc123", ptr("usd"), ptr("stripe"),
			(*int64)(nil), (*string)(nil), (*int64)(nil), (*string)(nil),
			(map[string]any)(nil)).
		WillReturnRows(customerRow(id, payerID))

	inserted, err := repo.Insert(context.Background(), InsertParams{
		ID:            id,
		PayerID:       payerID,
		PGPResourceID: "cus_abc123",
		Currency:      ptr("usd"),
		PGPCode:       ptr("stripe"),
	})
	require.NoError(t, err)

	replica.ExpectQuery(regexp.QuoteMeta(
		"SELECT " + columns + " FROM pgp_customers WHERE payer_id = $1")).
		WithArgs(payerID).
		WillReturnRows(customerRow(id, payerID))

	got, err := repo.Get(context.Background(), GetParams{PayerID: payerID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, inserted, got)
}

func TestInsertPersistsMetadata(t *testing.T) {
	repo, master, _ := newRepo(t)
	defer master.Close()

	id := uuid.New()
	payerID := uuid.New()
	meta := map[string]any{"source": "backfill", "batch": "2026-08"}

	now := time.Now().UTC()
	master.ExpectQuery("INSERT INTO pgp_customers").
		WithArgs(id, payerID, "cus_abc123", (*string)(nil), (*string)(nil),
			(*int64)(nil), (*string)(nil), (*int64)(nil), (*string)(nil), meta).
		WillReturnRows(pgxmock.NewRows(pgpCustomerCols).AddRow(
			id, payerID, "cus_abc123", nil, nil, nil,
			nil, nil, nil,
			nil, nil, nil,
			meta, now, now, nil,
		))

	got, err := repo.Insert(context.Background(), InsertParams{
		ID:            id,
		PayerID:       payerID,
		PGPResourceID: "cus_abc123",
		Metadata:      meta,
	})
	require.NoError(t, err)
	assert.Equal(t, meta, got.Metadata)
	require.NoError(t, master.ExpectationsWereMet())
}

func TestGetNarrowedByPGPCode(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	id := uuid.New()
	payerID := uuid.New()

	replica.ExpectQuery(regexp.QuoteMeta("WHERE payer_id = $1 AND pgp_code = $2")).
		WithArgs(payerID, "stripe").
		WillReturnRows(customerRow(id, payerID))

	got, err := repo.Get(context.Background(), GetParams{PayerID: payerID, PGPCode: ptr("stripe")})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NoError(t, replica.ExpectationsWereMet())
}

func TestGetAbsenceIsNil(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	payerID := uuid.New()
	replica.ExpectQuery("SELECT .* FROM pgp_customers").
		WithArgs(payerID).
		WillReturnRows(pgxmock.NewRows(pgpCustomerCols))

	got, err := repo.Get(context.Background(), GetParams{PayerID: payerID})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateDefaultPaymentMethod(t *testing.T) {
	repo, master, _ := newRepo(t)
	defer master.Close()

	id := uuid.New()
	payerID := uuid.New()

	master.ExpectQuery(regexp.QuoteMeta(
		"UPDATE pgp_customers SET default_payment_method_id = $1, legacy_default_card_id = $2, updated_at = now() WHERE id = $3 RETURNING " + columns)).
		WithArgs("pm_123", "card_456", id).
		WillReturnRows(customerRow(id, payerID))

	got, err := repo.Update(context.Background(),
		UpdateSet{
			DefaultPaymentMethodID: database.Set("pm_123"),
			LegacyDefaultCardID:    database.Set("card_456"),
		},
		UpdateWhere{ID: id})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NoError(t, master.ExpectationsWereMet())
}

func TestUpdateNoMatchReturnsNil(t *testing.T) {
	repo, master, _ := newRepo(t)
	defer master.Close()

	id := uuid.New()
	master.ExpectQuery("UPDATE pgp_customers SET").
		WithArgs("pm_123", id).
		WillReturnRows(pgxmock.NewRows(pgpCustomerCols))

	got, err := repo.Update(context.Background(),
		UpdateSet{DefaultPaymentMethodID: database.Set("pm_123")},
		UpdateWhere{ID: id})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListByPayerEmptyMatch(t *testing.T) {
	repo, master, replica := newRepo(t)
	defer master.Close()
	defer replica.Close()

	payerID := uuid.New()
	replica.ExpectQuery("SELECT .* FROM pgp_customers WHERE payer_id").
		WithArgs(payerID).
		WillReturnRows(pgxmock.NewRows(pgpCustomerCols))

	got, err := repo.ListByPayer(context.Background(), payerID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
