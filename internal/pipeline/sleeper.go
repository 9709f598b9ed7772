package pipeline

import (
	"context"
	"time"
)

// Sleeper blocks for d or until ctx is done, whichever comes first. It
// returns ctx.Err() when woken by cancellation.
type Sleeper func(ctx context.Context, d time.Duration) error

// ContextSleep is the default Sleeper, backed by a timer.
func ContextSleep(ctx context.Context, d time.Duration) error {
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
