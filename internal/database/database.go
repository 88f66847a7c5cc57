// Package database manages the connection pools for one logical database
// (a read/write master plus a read-only replica) and the shared query
// capability used by all typed repositories.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/paycore/pkg/metrics"
)

// PoolConfig holds sizing and timeout settings applied to one pool.
type PoolConfig struct {
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	ConnectTimeout   time.Duration
	StatementTimeout time.Duration
}

// Options describes one logical database.
type Options struct {
	// ID is the logical database name used in logs, errors and metrics.
	ID        string
	MasterURL string
	// ReplicaURL may be empty; reads then go to the master pool.
	ReplicaURL string
	Master     PoolConfig
	Replica    PoolConfig
}

// DB encapsulates the connection pools for one logical database. A handle is
// either fully connected or fully disconnected; Open never returns a handle
// with only one of its pools established.
type DB struct {
	id          string
	master      Pool
	replica     Pool
	masterPool  *pgxpool.Pool
	replicaPool *pgxpool.Pool
	replicaURL  string
}

// Open establishes the master pool, then the replica pool, pinging each. Any
// failure closes whatever was opened and is returned as a *ConnectionError
// naming the logical database; callers are expected to treat it as fatal at
// startup.
func Open(ctx context.Context, opts Options) (*DB, error) {
	master, err := openPool(ctx, opts.MasterURL, opts.Master)
	if err != nil {
		return nil, &ConnectionError{Database: opts.ID, Role: "master", Err: err}
	}

	var replica *pgxpool.Pool
	if opts.ReplicaURL != "" {
		replica, err = openPool(ctx, opts.ReplicaURL, opts.Replica)
		if err != nil {
			master.Close()
			return nil, &ConnectionError{Database: opts.ID, Role: "replica", Err: err}
		}
	}

	db := &DB{
		id:         opts.ID,
		master:     master,
		masterPool: master,
		replicaURL: opts.ReplicaURL,
	}
	if replica != nil {
		db.replica = replica
		db.replicaPool = replica
	}

	slog.Info("database connected", "database", opts.ID, "replica", opts.ReplicaURL != "")
	return db, nil
}

// NewWithPools builds a handle from existing pools. replica may be nil, in
// which case reads use the master pool. Used by tests and by callers that
// manage pool construction themselves.
func NewWithPools(id string, master, replica Pool) *DB {
	db := &DB{id: id, master: master}
	if replica != nil {
		db.replica = replica
	}
	return db
}

func openPool(ctx context.Context, url string, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.StatementTimeout > 0 {
		poolCfg.ConnConfig.RuntimeParams["statement_timeout"] =
			fmt.Sprintf("%d", cfg.StatementTimeout.Milliseconds())
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// ID returns the logical database name.
func (db *DB) ID() string { return db.id }

// Master returns the read/write pool.
func (db *DB) Master() Pool { return db.master }

// Replica returns the read-only pool. Logical databases configured without
// an independent replica serve reads from the master pool; that is an
// explicit policy for low-volume databases, not an outage fallback.
func (db *DB) Replica() Pool {
	if db.replica != nil {
		return db.replica
	}
	return db.master
}

// MasterPgxPool exposes the underlying master pool for callers that need a
// database/sql handle, such as migrations. Nil for handles built from mocks.
func (db *DB) MasterPgxPool() *pgxpool.Pool { return db.masterPool }

// ReplicaURL returns the replica connection URL the handle was opened with.
func (db *DB) ReplicaURL() string { return db.replicaURL }

// Close releases both pools. It is safe to call on a handle that never
// connected and safe to call more than once.
func (db *DB) Close() {
	if db.master != nil {
		db.master.Close()
		db.master = nil
		db.masterPool = nil
	}
	if db.replica != nil {
		db.replica.Close()
		db.replica = nil
		db.replicaPool = nil
	}
}

// Connected reports whether the handle still holds its pools.
func (db *DB) Connected() bool { return db.master != nil }

// Ping verifies both pools are reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db.master == nil {
		return &ConnectionError{Database: db.id, Role: "master", Err: fmt.Errorf("not connected")}
	}
	if err := db.master.Ping(ctx); err != nil {
		return &ConnectionError{Database: db.id, Role: "master", Err: err}
	}
	if db.replica != nil {
		if err := db.replica.Ping(ctx); err != nil {
			return &ConnectionError{Database: db.id, Role: "replica", Err: err}
		}
	}
	return nil
}

// StartPoolMetrics starts a goroutine that periodically publishes pool stats
// until ctx is cancelled.
func (db *DB) StartPoolMetrics(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				db.collectPoolStats()
			}
		}
	}()
}

func (db *DB) collectPoolStats() {
	if db.masterPool != nil {
		stats := db.masterPool.Stat()
		metrics.DBPoolTotalConns.WithLabelValues(db.id, "master").Set(float64(stats.TotalConns()))
		metrics.DBPoolIdleConns.WithLabelValues(db.id, "master").Set(float64(stats.IdleConns()))
		metrics.DBPoolInUseConns.WithLabelValues(db.id, "master").Set(float64(stats.AcquiredConns()))
	}
	if db.replicaPool != nil {
		stats := db.replicaPool.Stat()
		metrics.DBPoolTotalConns.WithLabelValues(db.id, "replica").Set(float64(stats.TotalConns()))
		metrics.DBPoolIdleConns.WithLabelValues(db.id, "replica").Set(float64(stats.IdleConns()))
		metrics.DBPoolInUseConns.WithLabelValues(db.id, "replica").Set(float64(stats.AcquiredConns()))
	}
}
