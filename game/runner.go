package game

import (
	"context"
	"time"
)

// Run ticks the world in frames: it ticks until budget wall time has passed,
// then sends a snapshot on out. It returns ctx.Err() once ctx is done.
// Cancellation is checked between ticks only, so a tick always completes,
// and a pending send is abandoned when ctx ends.
func (w *World) Run(ctx context.Context, budget time.Duration, out chan<- Snapshot) error {
	for {
		start := time.Now()
		for time.Since(start) < budget {
			if err := ctx.Err(); err != nil {
				return err
			}
			w.Tick()
		}

		select {
		case out <- w.Snapshot():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunTicks runs n ticks, stopping early if ctx is done.
func (w *World) RunTicks(ctx context.Context, n uint64) error {
	for i := uint64(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.Tick()
	}
	return nil
}
