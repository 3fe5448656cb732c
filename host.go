package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pthm-cable/gridlife/game"
)

// simHost runs World.Run on a background goroutine. Only one goroutine
// touches the world at a time: the host waits for the runner to exit before
// it restarts it with a new budget.
type simHost struct {
	world  *game.World
	budget time.Duration
	paused bool

	snapshots chan game.Snapshot
	cancel    context.CancelFunc
	done      chan struct{}
}

func newSimHost(world *game.World, budget time.Duration) *simHost {
	return &simHost{
		world:  world,
		budget: budget,
		// Capacity one: the runner blocks until the previous frame is taken.
		snapshots: make(chan game.Snapshot, 1),
	}
}

func (h *simHost) start(parent context.Context) {
	if h.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(parent)
	h.cancel = cancel
	h.done = make(chan struct{})

	go func(budget time.Duration) {
		defer close(h.done)
		err := h.world.Run(ctx, budget, h.snapshots)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("simulation stopped", "error", err)
		}
	}(h.budget)
}

// halt stops the runner and waits for its current tick to finish.
func (h *simHost) halt() {
	if h.cancel == nil {
		return
	}
	h.cancel()
	<-h.done
	h.cancel = nil
}

// poll returns a snapshot if one is ready, without blocking.
func (h *simHost) poll() (game.Snapshot, bool) {
	select {
	case s := <-h.snapshots:
		return s, true
	default:
		return game.Snapshot{}, false
	}
}

func (h *simHost) togglePause(ctx context.Context) {
	h.paused = !h.paused
	if h.paused {
		h.halt()
		return
	}
	h.start(ctx)
}

func (h *simHost) setBudget(ctx context.Context, budget time.Duration) {
	h.budget = budget
	if h.paused {
		return
	}
	h.halt()
	h.start(ctx)
}
