// Package components defines ECS components for creature state.
package components

import (
	"github.com/pthm-cable/gridlife/neural"
	"github.com/pthm-cable/gridlife/spatial"
)

// Identity carries the creature's id, assigned at birth from a monotonic counter.
// Apply order is ascending id.
type Identity struct {
	ID uint64
}

// Heading is the cardinal direction the creature faces.
type Heading struct {
	Facing spatial.Cardinal
}

// Mind holds the creature's brain. A nil Brain marks an inert creature:
// it never senses, never acts and is never charged energy.
type Mind struct {
	Brain *neural.Brain
}

// Inert reports whether the creature has no brain.
func (m Mind) Inert() bool { return m.Brain == nil }

// Location mirrors the creature's key in the world's occupancy map.
type Location struct {
	Pos spatial.Position
}
