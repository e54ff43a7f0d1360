package tracker

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// guard serializes every read and write against the cache.
// It is not reentrant: an operation holding it must not call another public
// Tracker method.
type guard struct {
	sem *semaphore.Weighted
}

func newGuard() *guard {
	return &guard{sem: semaphore.NewWeighted(1)}
}

// acquire blocks until the guard is held or ctx is done.
func (g *guard) acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

func (g *guard) release() {
	g.sem.Release(1)
}
