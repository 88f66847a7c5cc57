// Package migrate applies embedded SQL migrations on startup.
package migrate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ledgerline/paycore/internal/database"
	"github.com/ledgerline/paycore/migrations"
)

// Up runs the pending migrations in dir (a subdirectory of the embedded
// migrations filesystem) against the master pool of db. Migrations always
// run on the master; goose records its version table per database.
func Up(ctx context.Context, db *database.DB, dir string) error {
	pool := db.MasterPgxPool()
	if pool == nil {
		return fmt.Errorf("migrating %s: database not connected", db.ID())
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("migrating %s: %w", db.ID(), err)
	}
	return nil
}
