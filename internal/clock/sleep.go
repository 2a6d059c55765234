// Package clock provides the wall clock used for block timestamps and a
// context-aware sleep for back-off loops.
package clock

import (
	"context"
	"time"
)

// Now returns the current time. Components keep it as a field so tests can pin it.
type Now func() time.Time

// System is the real wall clock in UTC.
func System() time.Time {
	return time.Now().UTC()
}

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Now {
	return func() time.Time { return t }
}

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
