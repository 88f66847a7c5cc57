package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePool implements Pool for lifecycle tests.
type fakePool struct {
	closed  int
	pingErr error
}

func (f *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (f *fakePool) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakePool) Close() { f.closed++ }

func TestReplicaFallsBackToMaster(t *testing.T) {
	master := &fakePool{}
	db := NewWithPools("payout_bankdb", master, nil)

	assert.Same(t, Pool(master), db.Replica())
	assert.Same(t, Pool(master), db.Master())
}

func TestReplicaDistinctWhenConfigured(t *testing.T) {
	master := &fakePool{}
	replica := &fakePool{}
	db := NewWithPools("payin_maindb", master, replica)

	assert.Same(t, Pool(replica), db.Replica())
	assert.Same(t, Pool(master), db.Master())
}

func TestCloseIsIdempotent(t *testing.T) {
	master := &fakePool{}
	replica := &fakePool{}
	db := NewWithPools("payin_maindb", master, replica)

	require.True(t, db.Connected())

	db.Close()
	assert.False(t, db.Connected())
	assert.Equal(t, 1, master.closed)
	assert.Equal(t, 1, replica.closed)

	// Second close is a no-op.
	db.Close()
	assert.Equal(t, 1, master.closed)
	assert.Equal(t, 1, replica.closed)
}

func TestPingAfterCloseFails(t *testing.T) {
	db := NewWithPools("ledger_maindb", &fakePool{}, nil)
	db.Close()

	err := db.Ping(context.Background())
	require.Error(t, err)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "ledger_maindb", connErr.Database)
}

func TestPingReportsFailingRole(t *testing.T) {
	master := &fakePool{}
	replica := &fakePool{pingErr: errors.New("connection refused")}
	db := NewWithPools("payin_paymentdb", master, replica)

	err := db.Ping(context.Background())
	require.Error(t, err)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "payin_paymentdb", connErr.Database)
	assert.Equal(t, "replica", connErr.Role)
}
