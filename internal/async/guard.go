// Package async provides the per-profile in-flight guard. Oracle calls
// are not deduplicated by the core, so the request layer enforces
// at-most-one outstanding operation per profile and operation kind.
package async

import (
	"errors"
	"sync"
)

// ErrInFlight means the same operation is already running for this
// profile; the caller should surface a retriable busy condition, not
// queue a duplicate.
var ErrInFlight = errors.New("operation already in flight")

// Guard tracks in-flight operations keyed by profile and operation name.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire claims the slot for key. The caller must Release it, normally
// via defer, whether the operation succeeds or fails.
func (g *Guard) Acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return ErrInFlight
	}
	g.inflight[key] = struct{}{}
	return nil
}

func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}
