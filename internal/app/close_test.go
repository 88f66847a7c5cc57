package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/paycore/internal/dsjclient"
	"github.com/ledgerline/paycore/internal/stripeclient"
)

type fakeDisconnector struct {
	err    error
	delay  time.Duration
	called atomic.Bool
}

func (f *fakeDisconnector) Disconnect(ctx context.Context) error {
	f.called.Store(true)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func TestCloseAllDisconnectsEverything(t *testing.T) {
	a := &fakeDisconnector{}
	b := &fakeDisconnector{}

	err := closeAll(context.Background(), []disconnector{a, b})
	require.NoError(t, err)
	assert.True(t, a.called.Load())
	assert.True(t, b.called.Load())
}

// One failing disconnect must not stop the others, and its error must
// still surface.
func TestCloseAllJoinsFailures(t *testing.T) {
	boom := errors.New("replica pool stuck")
	a := &fakeDisconnector{err: boom}
	b := &fakeDisconnector{}

	err := closeAll(context.Background(), []disconnector{a, b})
	require.ErrorIs(t, err, boom)
	assert.True(t, b.called.Load())
}

func TestCloseAllHonorsDeadline(t *testing.T) {
	slow := &fakeDisconnector{delay: time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := closeAll(ctx, []disconnector{slow})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCloseAllEmpty(t *testing.T) {
	require.NoError(t, closeAll(context.Background(), nil))
}

// A database disconnect failure must not keep the gateway worker pool
// alive: Close still releases it, and the disconnect error surfaces in
// the same call.
func TestContextCloseFailingDisconnectStillReleasesPool(t *testing.T) {
	boom := errors.New("payout_maindb master pool stuck")
	failing := &fakeDisconnector{err: boom}
	healthy := &fakeDisconnector{}

	c := &Context{
		Stripe:  stripeclient.NewPool("sk_test", "US", 1),
		DSJ:     dsjclient.New(dsjclient.Config{BaseURL: "http://localhost:0"}),
		closers: []disconnector{failing, healthy},
	}

	err := c.Close(context.Background())
	require.ErrorIs(t, err, boom)
	assert.True(t, failing.called.Load())
	assert.True(t, healthy.called.Load())
	assert.True(t, c.Stripe.Released())
}

// Close releases the gateway worker pool and the back-office client even
// when there is nothing to disconnect, and a second Close does not panic.
func TestContextCloseReleasesClients(t *testing.T) {
	c := &Context{
		Stripe: stripeclient.NewPool("sk_test", "US", 1),
		DSJ:    dsjclient.New(dsjclient.Config{BaseURL: "http://localhost:0"}),
	}

	require.NoError(t, c.Close(context.Background()))
	assert.True(t, c.Stripe.Released())

	require.NoError(t, c.Close(context.Background()))
}
