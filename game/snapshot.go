package game

import (
	"github.com/pthm-cable/gridlife/spatial"
)

// Stats summarises the world for the host.
type Stats struct {
	CurrentTick         uint64
	CreatureCount       int
	MaxBrainNeuronCount int
}

// Snapshot is a self-contained copy of the world for rendering.
type Snapshot struct {
	Width, Height int
	// Pixels holds row-major RGBA bytes, one pixel per tile, colored by tile only.
	Pixels []byte
	// Creatures lists occupied cells in id order, for hosts that overlay them.
	Creatures []spatial.Position
	Stats     Stats
}

// Snapshot copies the current world state. It shares nothing with the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Width:     w.grid.Width(),
		Height:    w.grid.Height(),
		Pixels:    w.grid.Pixels(),
		Creatures: make([]spatial.Position, 0, len(w.occupancy)),
		Stats: Stats{
			CurrentTick:   w.tick,
			CreatureCount: len(w.occupancy),
		},
	}
	for _, c := range w.Creatures() {
		s.Creatures = append(s.Creatures, c.Pos)
		if c.Brain != nil && c.Brain.NeuronCount() > s.Stats.MaxBrainNeuronCount {
			s.Stats.MaxBrainNeuronCount = c.Brain.NeuronCount()
		}
	}
	return s
}
