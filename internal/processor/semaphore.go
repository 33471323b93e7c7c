package processor

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// engineGuard bounds how many pipeline runs may use each external engine
// at once. Engines are independent, so the summarize and tag branches of
// one run never wait on each other.
type engineGuard struct {
	transcribe *semaphore.Weighted
	summarize  *semaphore.Weighted
	tag        *semaphore.Weighted
}

func newEngineGuard(capacity int) *engineGuard {
	if capacity <= 0 {
		capacity = 1
	}
	n := int64(capacity)
	return &engineGuard{
		transcribe: semaphore.NewWeighted(n),
		summarize:  semaphore.NewWeighted(n),
		tag:        semaphore.NewWeighted(n),
	}
}

// with runs fn while holding one slot of sem.
func with(ctx context.Context, sem *semaphore.Weighted, fn func()) error {
	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer sem.Release(1)

	fn()
	return nil
}
