// Package config loads application configuration from environment variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"VERSION" default:"dev"`

	PayoutMainDBMasterURL     string `envconfig:"PAYOUT_MAINDB_MASTER_URL" required:"true"`
	PayoutMainDBReplicaURL    string `envconfig:"PAYOUT_MAINDB_REPLICA_URL" required:"true"`
	PayoutBankDBMasterURL     string `envconfig:"PAYOUT_BANKDB_MASTER_URL" required:"true"`
	PayoutBankDBReplicaURL    string `envconfig:"PAYOUT_BANKDB_REPLICA_URL" default:""`
	PayinMainDBMasterURL      string `envconfig:"PAYIN_MAINDB_MASTER_URL" required:"true"`
	PayinMainDBReplicaURL     string `envconfig:"PAYIN_MAINDB_REPLICA_URL" required:"true"`
	PayinPaymentDBMasterURL   string `envconfig:"PAYIN_PAYMENTDB_MASTER_URL" required:"true"`
	PayinPaymentDBReplicaURL  string `envconfig:"PAYIN_PAYMENTDB_REPLICA_URL" default:""`
	LedgerMainDBMasterURL     string `envconfig:"LEDGER_MAINDB_MASTER_URL" required:"true"`
	LedgerMainDBReplicaURL    string `envconfig:"LEDGER_MAINDB_REPLICA_URL" required:"true"`
	LedgerPaymentDBMasterURL  string `envconfig:"LEDGER_PAYMENTDB_MASTER_URL" required:"true"`
	LedgerPaymentDBReplicaURL string `envconfig:"LEDGER_PAYMENTDB_REPLICA_URL" default:""`

	// AvailableMainDBReplicas lists alternative replica database names shared
	// by all maindb handles. One is selected per process.
	AvailableMainDBReplicas []string `envconfig:"AVAILABLE_MAINDB_REPLICAS" default:""`

	MasterPoolMaxConns  int32         `envconfig:"DB_MASTER_POOL_MAX_CONNS" default:"10"`
	MasterPoolMinConns  int32         `envconfig:"DB_MASTER_POOL_MIN_CONNS" default:"2"`
	ReplicaPoolMaxConns int32         `envconfig:"DB_REPLICA_POOL_MAX_CONNS" default:"10"`
	ReplicaPoolMinConns int32         `envconfig:"DB_REPLICA_POOL_MIN_CONNS" default:"2"`
	DBConnectTimeout    time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
	DBStatementTimeout  time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"5s"`
	DBMaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	DBMaxConnIdleTime   time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m"`

	RunMigrations bool `envconfig:"RUN_MIGRATIONS" default:"false"`

	StripeSecretKey  string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	StripeCountry    string `envconfig:"STRIPE_COUNTRY" default:"US"`
	StripeMaxWorkers int    `envconfig:"STRIPE_MAX_WORKERS" default:"10"`

	DSJBaseURL  string        `envconfig:"DSJ_BASE_URL" default:""`
	DSJEmail    string        `envconfig:"DSJ_EMAIL" default:""`
	DSJPassword string        `envconfig:"DSJ_PASSWORD" default:""`
	DSJTokenTTL time.Duration `envconfig:"DSJ_JWT_TOKEN_TTL" default:"30m"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
