package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ledgerline/paycore/internal/database"
)

type disconnector interface {
	Disconnect(ctx context.Context) error
}

// dbCloser bounds a pool close with the caller's deadline. pgxpool.Close
// blocks until every acquired connection is returned; a handle that cannot
// drain in time is reported rather than waited on forever.
type dbCloser struct {
	db *database.DB
}

func (d dbCloser) Disconnect(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.db.Close()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("disconnecting %s: %w", d.db.ID(), ctx.Err())
	}
}

// closeAll disconnects everything concurrently and joins the failures.
// One slow or failing disconnect never blocks the others.
func closeAll(ctx context.Context, ds []disconnector) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, d := range ds {
		wg.Add(1)
		go func(d disconnector) {
			defer wg.Done()
			if err := d.Disconnect(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(d)
	}
	wg.Wait()
	return errors.Join(errs...)
}
