package game

import (
	"testing"

	"github.com/pthm-cable/gridlife/neural"
	"github.com/pthm-cable/gridlife/spatial"
	"github.com/pthm-cable/gridlife/terrain"
)

func newTestWorld(t *testing.T, width, height int, settings Settings) *World {
	t.Helper()
	w := NewWorldWithOptions(width, height, terrain.Impassable(), settings, Options{Seed: 42, Workers: 2})
	t.Cleanup(w.Close)
	return w
}

// brainFor returns a brain that always chooses a.
func brainFor(a neural.Action) *neural.Brain {
	return neural.MustBrain(
		[]neural.Neuron{neural.AlwaysActive(), neural.Actor(a)},
		[]neural.Connection{{Source: 0, Dest: 1}},
	)
}

func pos(x, y int) spatial.Position { return spatial.Position{X: x, Y: y} }

func mustSpawn(t *testing.T, w *World, p spatial.Position, c Creature) Creature {
	t.Helper()
	if !w.Spawn(p, c) {
		t.Fatalf("spawn at %s failed", p)
	}
	got, _ := w.CreatureAt(p)
	return got
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t, 6, 4, Settings{})

	if w.Width() != 6 || w.Height() != 4 {
		t.Errorf("size = %dx%d", w.Width(), w.Height())
	}
	if w.CurrentTick() != 0 || w.CreatureCount() != 0 {
		t.Errorf("tick %d creatures %d", w.CurrentTick(), w.CreatureCount())
	}
	if tile, _ := w.Tile(pos(0, 0)); tile != terrain.Impassable() {
		t.Errorf("corner = %v", tile)
	}
	if tile, _ := w.Tile(pos(2, 2)); tile != terrain.Ground(true) {
		t.Errorf("interior = %v", tile)
	}
	if _, ok := w.Tile(pos(6, 0)); ok {
		t.Error("off-grid tile should be absent")
	}
	if w.InBounds(pos(6, 0)) || !w.InBounds(pos(5, 3)) {
		t.Error("bounds check wrong")
	}
}

func TestNewWorldRejectsNegativeRates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewWorld(5, 5, terrain.Impassable(), Settings{FoodRegenRate: -1})
}

func TestSpawnRules(t *testing.T) {
	w := newTestWorld(t, 5, 5, Settings{})

	if w.Spawn(pos(0, 2), NewCreature(spatial.North, nil)) {
		t.Error("spawn on impassable border should fail")
	}
	if w.Spawn(pos(9, 9), NewCreature(spatial.North, nil)) {
		t.Error("spawn off grid should fail")
	}
	first := mustSpawn(t, w, pos(2, 2), NewCreature(spatial.East, nil))
	if w.Spawn(pos(2, 2), NewCreature(spatial.North, nil)) {
		t.Error("spawn on occupied cell should fail")
	}
	if w.CreatureCount() != 1 {
		t.Fatalf("count = %d", w.CreatureCount())
	}
	if first.Energy != InitialEnergy || first.Facing != spatial.East || first.Pos != pos(2, 2) {
		t.Errorf("unexpected creature %+v", first)
	}

	second := mustSpawn(t, w, pos(1, 1), NewCreature(spatial.North, nil))
	if second.ID <= first.ID {
		t.Errorf("ids not increasing: %d then %d", first.ID, second.ID)
	}
}

func TestSetTileGuardsOccupiedCells(t *testing.T) {
	w := newTestWorld(t, 5, 5, Settings{})
	mustSpawn(t, w, pos(2, 2), NewCreature(spatial.North, nil))

	if w.SetTile(pos(2, 2), terrain.Impassable()) {
		t.Error("should not make an occupied cell impassable")
	}
	if !w.SetTile(pos(2, 2), terrain.Ground(false)) {
		t.Error("clearing food under a creature should succeed")
	}
	if w.SetTile(pos(0, 0), terrain.Ground(true)) {
		t.Error("border is fixed")
	}
}

func TestCreaturesSortedByID(t *testing.T) {
	w := newTestWorld(t, 8, 8, Settings{})
	for _, p := range []spatial.Position{pos(5, 5), pos(1, 1), pos(3, 2), pos(6, 1)} {
		mustSpawn(t, w, p, NewCreature(spatial.North, nil))
	}

	all := w.Creatures()
	if len(all) != 4 {
		t.Fatalf("got %d creatures", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("not sorted: %d before %d", all[i-1].ID, all[i].ID)
		}
	}
	if all[0].Pos != pos(5, 5) {
		t.Errorf("oldest creature at %s, want (5,5)", all[0].Pos)
	}
}

func TestSnapshot(t *testing.T) {
	w := newTestWorld(t, 5, 5, Settings{})
	big := neural.Generate(newRand(3))
	mustSpawn(t, w, pos(2, 2), NewCreature(spatial.North, big))
	mustSpawn(t, w, pos(1, 1), NewCreature(spatial.North, nil))
	w.SetTile(pos(3, 3), terrain.Ground(false))

	s := w.Snapshot()
	if len(s.Pixels) != 5*5*4 {
		t.Fatalf("pixel buffer %d bytes", len(s.Pixels))
	}

	px := func(x, y int) [4]byte {
		i := (y*5 + x) * 4
		return [4]byte{s.Pixels[i], s.Pixels[i+1], s.Pixels[i+2], s.Pixels[i+3]}
	}
	if got := px(0, 0); got != [4]byte{255, 128, 0, 255} {
		t.Errorf("border pixel %v", got)
	}
	if got := px(2, 2); got != [4]byte{0, 255, 0, 255} {
		t.Errorf("food pixel %v", got)
	}
	if got := px(3, 3); got != [4]byte{0, 0, 0, 255} {
		t.Errorf("bare ground pixel %v", got)
	}

	if s.Stats.CreatureCount != 2 || s.Stats.CurrentTick != 0 {
		t.Errorf("stats %+v", s.Stats)
	}
	if s.Stats.MaxBrainNeuronCount != big.NeuronCount() {
		t.Errorf("max brain = %d, want %d", s.Stats.MaxBrainNeuronCount, big.NeuronCount())
	}
	if len(s.Creatures) != 2 || s.Creatures[0] != pos(2, 2) {
		t.Errorf("creature overlay %v", s.Creatures)
	}

	// The snapshot does not alias world state.
	s.Pixels[0] = 7
	if again := w.Snapshot(); again.Pixels[0] != 255 {
		t.Error("snapshot shares the pixel buffer")
	}
}
