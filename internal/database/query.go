package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerline/paycore/pkg/metrics"
)

// Role labels which pool a statement runs against.
type Role string

const (
	RoleMaster  Role = "master"
	RoleReplica Role = "replica"
)

// FetchOne executes a query against the given pool and maps the first row
// onto T by column name (db struct tags). Zero rows is a normal absent
// result, returned as (nil, nil).
func FetchOne[T any](ctx context.Context, pool Pool, role Role, op, sql string, args ...any) (*T, error) {
	row, err := collectOne[T](ctx, pool, role, op, sql, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// FetchOneRequired is FetchOne for statements that structurally must return
// a row (INSERT/UPDATE with a RETURNING clause). Zero rows is reported as
// ErrNoRowReturned, a defect signal rather than an ordinary error.
func FetchOneRequired[T any](ctx context.Context, pool Pool, role Role, op, sql string, args ...any) (*T, error) {
	row, err := collectOne[T](ctx, pool, role, op, sql, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRowReturned
		}
		return nil, err
	}
	return row, nil
}

// FetchAll executes a query against the given pool and maps every row onto
// T. An empty match yields an empty slice, never an error.
func FetchAll[T any](ctx context.Context, pool Pool, role Role, op, sql string, args ...any) ([]T, error) {
	start := time.Now()
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		observe(op, role, start, err)
		return nil, translateError(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	observe(op, role, start, err)
	if err != nil {
		return nil, translateError(err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func collectOne[T any](ctx context.Context, pool Pool, role Role, op, sql string, args ...any) (*T, error) {
	start := time.Now()
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		observe(op, role, start, err)
		return nil, translateError(err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	observe(op, role, start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, translateError(err)
	}
	return row, nil
}

func observe(op string, role Role, start time.Time, err error) {
	status := "success"
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		status = "failure"
	}
	metrics.DBQueriesTotal.WithLabelValues(op, string(role), status).Inc()
	metrics.DBQueryDuration.WithLabelValues(op, string(role)).Observe(time.Since(start).Seconds())
}
