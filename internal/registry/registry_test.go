package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	r := New()

	lease, err := r.Acquire("tui")
	require.NoError(t, err)

	entry, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, lease.ID(), entry.ID)
	assert.Equal(t, "tui", entry.Owner)

	assert.True(t, lease.Release())
	_, ok = r.Active()
	assert.False(t, ok)
}

func TestSecondAcquireRefused(t *testing.T) {
	r := New()

	first, err := r.Acquire("alice")
	require.NoError(t, err)

	second, err := r.Acquire("bob")
	assert.ErrorIs(t, err, ErrAlreadyActive)
	assert.Nil(t, second)

	entry, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, first.ID(), entry.ID, "first session must be untouched")
}

func TestReleaseIsIdempotent(t *testing.T) {
	r := New()

	lease, err := r.Acquire("tui")
	require.NoError(t, err)

	assert.True(t, lease.Release())
	assert.False(t, lease.Release())

	// A stale lease must not free a newer session's slot.
	next, err := r.Acquire("tui")
	require.NoError(t, err)
	assert.False(t, lease.Release())

	entry, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, next.ID(), entry.ID)
}

func TestConcurrentAcquireSingleWinner(t *testing.T) {
	r := New()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Acquire("ssh"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
