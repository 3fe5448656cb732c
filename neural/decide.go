package neural

import (
	"math/rand"

	"github.com/pthm-cable/gridlife/spatial"
	"github.com/pthm-cable/gridlife/terrain"
)

// Senses is the read-only view of the world a brain may query.
type Senses interface {
	Occupied(p spatial.Position) bool
	Tile(p spatial.Position) (terrain.Tile, bool)
}

// Signals holds one value per neuron slot.
type Signals [MaxNeurons]float32

// Seed computes every sensing neuron's output for a creature at pos facing
// facing. Acting neurons are seeded with zero.
func (b *Brain) Seed(view Senses, pos spatial.Position, facing spatial.Cardinal, rng *rand.Rand) Signals {
	var out Signals
	for i, n := range b.neurons {
		if !n.IsSensor() {
			continue
		}
		switch n.Sensor {
		case SenseAlways:
			out[i] = 1
		case SenseRandom:
			out[i] = rng.Float32()
		case SenseProximity:
			if view.Occupied(spatial.Toward(pos, facing, n.Dir)) {
				out[i] = 1
			}
		case SenseColor:
			at := pos
			if !n.Local {
				at = spatial.Toward(pos, facing, n.Dir)
			}
			if tile, ok := view.Tile(at); ok && tile.Color().Dominates(n.Ref) {
				out[i] = 1
			}
		}
	}
	return out
}

// DecideFrom propagates seeded sensor outputs along every connection once and
// returns the action of the acting neuron with the strictly largest input.
// Ties go to the earlier neuron; if no actor received positive input the
// result is Idle.
func (b *Brain) DecideFrom(seed Signals) Action {
	var input Signals
	for _, c := range b.connections {
		input[c.Dest] += seed[c.Source]
	}

	best := Idle()
	var bestInput float32
	for i, n := range b.neurons {
		if !n.IsActor() {
			continue
		}
		if input[i] > bestInput {
			best = n.Action
			bestInput = input[i]
		}
	}
	return best
}

// Decide runs a full sense-propagate-decide pass.
func (b *Brain) Decide(view Senses, pos spatial.Position, facing spatial.Cardinal, rng *rand.Rand) Action {
	return b.DecideFrom(b.Seed(view, pos, facing, rng))
}
