package async

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardAcquireRelease(t *testing.T) {
	g := NewGuard()

	require.NoError(t, g.Acquire("pricecheck:p1"))
	assert.ErrorIs(t, g.Acquire("pricecheck:p1"), ErrInFlight)

	// different profiles and operation kinds don't collide
	require.NoError(t, g.Acquire("pricecheck:p2"))
	require.NoError(t, g.Acquire("extract:p1"))

	g.Release("pricecheck:p1")
	require.NoError(t, g.Acquire("pricecheck:p1"))
}

func TestGuardReleaseUnknownKeyIsHarmless(t *testing.T) {
	g := NewGuard()
	g.Release("never-acquired")
	require.NoError(t, g.Acquire("never-acquired"))
}

func TestGuardConcurrentAcquire(t *testing.T) {
	g := NewGuard()

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if g.Acquire("pricecheck:p1") == nil {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, acquired, "exactly one concurrent caller wins the slot")
}
