package main

import (
	"context"
	"testing"
	"time"

	"github.com/pthm-cable/gridlife/game"
	"github.com/pthm-cable/gridlife/spatial"
	"github.com/pthm-cable/gridlife/terrain"
)

func TestSimHostDeliversSnapshots(t *testing.T) {
	world := game.NewWorld(8, 8, terrain.Impassable(), game.Settings{FoodRegenRate: 1, CreatureGenerationRate: 2})
	defer world.Close()

	h := newSimHost(world, time.Millisecond)
	ctx := context.Background()
	h.start(ctx)

	deadline := time.After(5 * time.Second)
	for {
		if s, ok := h.poll(); ok {
			if s.Stats.CurrentTick == 0 {
				t.Fatal("snapshot sent before any tick")
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("no snapshot delivered")
		case <-time.After(time.Millisecond):
		}
	}

	h.togglePause(ctx)
	if !h.paused || h.cancel != nil {
		t.Fatal("pause should stop the runner")
	}
	// Drain whatever was produced before the pause, then the tick must hold.
	h.poll()
	tick := world.CurrentTick()
	time.Sleep(10 * time.Millisecond)
	if world.CurrentTick() != tick {
		t.Errorf("world ticked while paused: %d -> %d", tick, world.CurrentTick())
	}

	h.setBudget(ctx, 2*time.Millisecond)
	if h.cancel != nil {
		t.Error("budget change while paused must not resume")
	}
	h.togglePause(ctx)
	if h.cancel == nil {
		t.Error("resume should restart the runner")
	}
	h.halt()
}

func TestOccupiedIn(t *testing.T) {
	s := game.Snapshot{Creatures: []spatial.Position{{X: 1, Y: 2}, {X: 3, Y: 3}}}
	if !occupiedIn(s, spatial.Position{X: 3, Y: 3}) {
		t.Error("expected (3,3) occupied")
	}
	if occupiedIn(s, spatial.Position{X: 2, Y: 1}) {
		t.Error("expected (2,1) empty")
	}
}
