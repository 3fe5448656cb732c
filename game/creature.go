package game

import (
	"github.com/pthm-cable/gridlife/neural"
	"github.com/pthm-cable/gridlife/spatial"
)

// Creature energy constants.
const (
	InitialEnergy uint16 = 100
	EatEnergy     uint16 = 50

	// OffspringWarnThreshold is the offspring count above which a reproduce
	// action emits a debug record. It never blocks reproduction.
	OffspringWarnThreshold = 2
)

// Creature is a value copy of one creature's state.
type Creature struct {
	ID        uint64
	Pos       spatial.Position
	Energy    uint16
	Facing    spatial.Cardinal
	Brain     *neural.Brain // nil for inert creatures
	Born      uint64
	Offspring uint64
}

// NewCreature returns a creature with the spawn energy, ready to be placed with Spawn.
func NewCreature(facing spatial.Cardinal, brain *neural.Brain) Creature {
	return Creature{Energy: InitialEnergy, Facing: facing, Brain: brain}
}

// Inert reports whether the creature has no brain.
func (c Creature) Inert() bool { return c.Brain == nil }
