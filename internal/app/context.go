// Package app builds and tears down the process context: the six logical
// database handles plus the payment-gateway worker pool and the
// back-office client. The context is constructed once at startup and
// passed explicitly to whatever needs it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerline/paycore/internal/config"
	"github.com/ledgerline/paycore/internal/database"
	"github.com/ledgerline/paycore/internal/dsjclient"
	"github.com/ledgerline/paycore/internal/stripeclient"
)

// Context holds every long-lived dependency. Immutable after New returns.
type Context struct {
	PayoutMainDB    *database.DB
	PayoutBankDB    *database.DB
	PayinMainDB     *database.DB
	PayinPaymentDB  *database.DB
	LedgerMainDB    *database.DB
	LedgerPaymentDB *database.DB

	Stripe *stripeclient.Pool
	DSJ    *dsjclient.Client

	// closers overrides the database disconnect set; tests inject fakes
	// here. Nil means disconnect the handles above.
	closers []disconnector
}

// New connects the six logical databases in declared order, failing fast:
// the first connection error closes whatever was already opened and no
// partial context escapes. The three maindb handles share a single
// alternative-replica selection made here, once per process.
func New(ctx context.Context, cfg *config.Config) (*Context, error) {
	masterCfg := database.PoolConfig{
		MaxConns:         cfg.MasterPoolMaxConns,
		MinConns:         cfg.MasterPoolMinConns,
		MaxConnLifetime:  cfg.DBMaxConnLifetime,
		MaxConnIdleTime:  cfg.DBMaxConnIdleTime,
		ConnectTimeout:   cfg.DBConnectTimeout,
		StatementTimeout: cfg.DBStatementTimeout,
	}
	replicaCfg := masterCfg
	replicaCfg.MaxConns = cfg.ReplicaPoolMaxConns
	replicaCfg.MinConns = cfg.ReplicaPoolMinConns

	selected := database.SelectAlternativeReplica(cfg.AvailableMainDBReplicas)
	if selected != "" {
		slog.Info("alternative maindb replica selected", "replica", selected)
	}

	payoutMainReplica, err := database.WithAlternativeReplica(cfg.PayoutMainDBReplicaURL, selected)
	if err != nil {
		return nil, fmt.Errorf("payout_maindb replica: %w", err)
	}
	payinMainReplica, err := database.WithAlternativeReplica(cfg.PayinMainDBReplicaURL, selected)
	if err != nil {
		return nil, fmt.Errorf("payin_maindb replica: %w", err)
	}
	ledgerMainReplica, err := database.WithAlternativeReplica(cfg.LedgerMainDBReplicaURL, selected)
	if err != nil {
		return nil, fmt.Errorf("ledger_maindb replica: %w", err)
	}

	defs := []database.Options{
		{ID: "payout_maindb", MasterURL: cfg.PayoutMainDBMasterURL, ReplicaURL: payoutMainReplica, Master: masterCfg, Replica: replicaCfg},
		{ID: "payout_bankdb", MasterURL: cfg.PayoutBankDBMasterURL, ReplicaURL: cfg.PayoutBankDBReplicaURL, Master: masterCfg, Replica: replicaCfg},
		{ID: "payin_maindb", MasterURL: cfg.PayinMainDBMasterURL, ReplicaURL: payinMainReplica, Master: masterCfg, Replica: replicaCfg},
		{ID: "payin_paymentdb", MasterURL: cfg.PayinPaymentDBMasterURL, ReplicaURL: cfg.PayinPaymentDBReplicaURL, Master: masterCfg, Replica: replicaCfg},
		{ID: "ledger_maindb", MasterURL: cfg.LedgerMainDBMasterURL, ReplicaURL: ledgerMainReplica, Master: masterCfg, Replica: replicaCfg},
		{ID: "ledger_paymentdb", MasterURL: cfg.LedgerPaymentDBMasterURL, ReplicaURL: cfg.LedgerPaymentDBReplicaURL, Master: masterCfg, Replica: replicaCfg},
	}

	opened := make([]*database.DB, 0, len(defs))
	for _, opts := range defs {
		db, err := database.Open(ctx, opts)
		if err != nil {
			slog.Error("database connection failed", "database", opts.ID, "error", err)
			for _, prev := range opened {
				prev.Close()
			}
			return nil, err
		}
		opened = append(opened, db)
	}

	return &Context{
		PayoutMainDB:    opened[0],
		PayoutBankDB:    opened[1],
		PayinMainDB:     opened[2],
		PayinPaymentDB:  opened[3],
		LedgerMainDB:    opened[4],
		LedgerPaymentDB: opened[5],
		Stripe:          stripeclient.NewPool(cfg.StripeSecretKey, cfg.StripeCountry, cfg.StripeMaxWorkers),
		DSJ: dsjclient.New(dsjclient.Config{
			BaseURL:  cfg.DSJBaseURL,
			Email:    cfg.DSJEmail,
			Password: cfg.DSJPassword,
			TokenTTL: cfg.DSJTokenTTL,
		}),
	}, nil
}

// Databases returns the connected handles in declared order.
func (c *Context) Databases() []*database.DB {
	return []*database.DB{
		c.PayoutMainDB, c.PayoutBankDB,
		c.PayinMainDB, c.PayinPaymentDB,
		c.LedgerMainDB, c.LedgerPaymentDB,
	}
}

// StartPoolMetrics begins periodic pool-stat publication for every handle.
func (c *Context) StartPoolMetrics(ctx context.Context) {
	for _, db := range c.Databases() {
		if db != nil {
			db.StartPoolMetrics(ctx)
		}
	}
}

// Close disconnects all databases concurrently, then releases the gateway
// worker pool and the back-office client regardless of how the
// disconnects went. The joined disconnect error is returned only after
// the clients are released.
func (c *Context) Close(ctx context.Context) error {
	ds := c.closers
	if ds == nil {
		for _, db := range c.Databases() {
			if db != nil {
				ds = append(ds, dbCloser{db: db})
			}
		}
	}
	err := closeAll(ctx, ds)

	if c.Stripe != nil && !c.Stripe.Released() {
		c.Stripe.Shutdown(true)
	}
	if c.DSJ != nil {
		c.DSJ.Close()
	}

	return err
}
