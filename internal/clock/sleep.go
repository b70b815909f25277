package clock

import (
	"context"
	"time"
)

// SleepWithContext pauses for d unless ctx ends first. A non-positive d only
// checks ctx, which lets loops with a zero pause still observe cancellation.
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
