package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_SingleFlight(t *testing.T) {
	g := &Guard{}
	assert.Equal(t, Idle, g.State())

	require.NoError(t, g.TryAcquire())
	assert.Equal(t, Running, g.State())

	// Overlapping invocations are turned away while the first holds the guard.
	assert.ErrorIs(t, g.TryAcquire(), ErrSyncInProgress)
	assert.Equal(t, Busy, g.State())

	g.Release()
	assert.Equal(t, Idle, g.State())

	// After release a new invocation proceeds normally.
	require.NoError(t, g.TryAcquire())
	g.Release()
}

func TestGuard_StuckRunFailsafe(t *testing.T) {
	g := &Guard{}
	require.NoError(t, g.TryAcquire())

	// The in-flight run never releases. The first maxSkips attempts are
	// rejected, then the guard lets an invocation through so the feed
	// cannot be locked up forever.
	for i := 0; i < maxSkips; i++ {
		assert.ErrorIs(t, g.TryAcquire(), ErrSyncInProgress)
	}
	assert.NoError(t, g.TryAcquire())

	// The skip counter starts over for the admitted run.
	assert.ErrorIs(t, g.TryAcquire(), ErrSyncInProgress)
}

func TestGuard_ReleaseResetsSkips(t *testing.T) {
	g := &Guard{}
	require.NoError(t, g.TryAcquire())
	assert.ErrorIs(t, g.TryAcquire(), ErrSyncInProgress)
	g.Release()

	require.NoError(t, g.TryAcquire())
	assert.Equal(t, Running, g.State())
}
