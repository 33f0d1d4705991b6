// Package delaypkg provides the simulated network latency used by the demo
// services. The delay stands in for a real backend round-trip and is
// configurable per operation.
package delaypkg

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first.
// A non-positive d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
