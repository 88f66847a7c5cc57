package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateErrorIntegrityClass(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "payers_dd_payer_id_key"}
	err := translateError(pgErr)

	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "23505", ie.Code)
	assert.Equal(t, "payers_dd_payer_id_key", ie.Constraint)
	assert.True(t, IsIntegrityError(err))
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
}

func TestTranslateErrorForeignKey(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "23503", ConstraintName: "transfer_payment_account_fk"})
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestTranslateErrorPassthrough(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Same(t, plain, translateError(plain))

	// Non-integrity pg errors are not wrapped either.
	serialization := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(serialization), translateError(serialization))
}

func TestConnectionErrorMessage(t *testing.T) {
	err := &ConnectionError{Database: "payout_maindb", Role: "replica", Err: fmt.Errorf("dial tcp: refused")}
	assert.Contains(t, err.Error(), "payout_maindb")
	assert.Contains(t, err.Error(), "replica")
	assert.ErrorContains(t, err, "refused")
}
