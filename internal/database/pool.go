package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool is a minimal abstraction over a Postgres connection pool, used by
// repositories. It is implemented by *pgxpool.Pool and pgxmock.PgxPoolIface.
type Pool interface {
	// Exec executes a SQL command and returns the command tag.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	// Query executes a SELECT and returns a rows iterator.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	// QueryRow executes a query expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// Ping verifies the connection to the database is alive.
	Ping(ctx context.Context) error
	// Close shuts down the pool and frees resources.
	Close()
}
