package neural

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/gridlife/spatial"
	"github.com/pthm-cable/gridlife/terrain"
)

// Role separates sensing neurons (connection sources) from acting neurons
// (connection destinations).
type Role uint8

const (
	RoleSensor Role = iota
	RoleActor
)

// SensorKind enumerates what a sensing neuron measures.
type SensorKind uint8

const (
	SenseAlways    SensorKind = iota // constant 1
	SenseRandom                      // fresh uniform draw every tick
	SenseProximity                   // 1 when the adjacent cell holds a creature
	SenseColor                       // 1 when the sampled tile color dominates Ref
)

// numNeuronKinds is the number of discriminants drawn during generation:
// four sensor kinds plus one actor per action kind.
const numNeuronKinds = 10

// Neuron is a single node of a brain. Sensor fields are used when Role is
// RoleSensor; Action is used when Role is RoleActor.
type Neuron struct {
	Role Role

	Sensor SensorKind
	Dir    spatial.Relative // proximity / color direction
	Local  bool             // color sensor samples the creature's own cell
	Ref    terrain.Color    // color sensor reference

	Action Action
}

// AlwaysActive returns a sensor that always fires.
func AlwaysActive() Neuron { return Neuron{Role: RoleSensor, Sensor: SenseAlways} }

// RandomSensor returns a sensor emitting a uniform [0,1) value every tick.
func RandomSensor() Neuron { return Neuron{Role: RoleSensor, Sensor: SenseRandom} }

// Proximity returns a sensor detecting a creature in the adjacent cell.
func Proximity(dir spatial.Relative) Neuron {
	return Neuron{Role: RoleSensor, Sensor: SenseProximity, Dir: dir}
}

// ColorAt returns a color sensor looking at the adjacent cell in dir.
func ColorAt(dir spatial.Relative, ref terrain.Color) Neuron {
	return Neuron{Role: RoleSensor, Sensor: SenseColor, Dir: dir, Ref: ref}
}

// ColorHere returns a color sensor looking at the creature's own cell.
func ColorHere(ref terrain.Color) Neuron {
	return Neuron{Role: RoleSensor, Sensor: SenseColor, Local: true, Ref: ref}
}

// Actor returns an acting neuron wrapping the given action.
func Actor(a Action) Neuron { return Neuron{Role: RoleActor, Action: a} }

// IsSensor reports whether the neuron can be a connection source.
func (n Neuron) IsSensor() bool { return n.Role == RoleSensor }

// IsActor reports whether the neuron can be a connection destination.
func (n Neuron) IsActor() bool { return n.Role == RoleActor }

// randomNeuron draws one of the ten neuron kinds uniformly.
func randomNeuron(rng *rand.Rand) Neuron {
	switch rng.Intn(numNeuronKinds) {
	case 0:
		return AlwaysActive()
	case 1:
		return RandomSensor()
	case 2:
		return Proximity(spatial.RandomRelative(rng))
	case 3:
		// Four directions plus the creature's own cell.
		which := rng.Intn(5)
		ref := terrain.RandomColor(rng)
		if which == 4 {
			return ColorHere(ref)
		}
		return ColorAt(spatial.Relative(which), ref)
	case 4:
		return Actor(Idle())
	case 5:
		return Actor(Eat())
	case 6:
		return Actor(Move(spatial.RandomRelative(rng)))
	case 7:
		return Actor(Rotate(spatial.RandomRotation(rng)))
	case 8:
		return Actor(Reproduce(spatial.RandomRelative(rng)))
	default:
		return Actor(CopyBrain(spatial.RandomRelative(rng)))
	}
}

func (n Neuron) String() string {
	if n.Role == RoleActor {
		return "act:" + n.Action.String()
	}
	switch n.Sensor {
	case SenseAlways:
		return "sense:always"
	case SenseRandom:
		return "sense:random"
	case SenseProximity:
		return "sense:proximity:" + n.Dir.String()
	case SenseColor:
		if n.Local {
			return fmt.Sprintf("sense:color:here>%v", n.Ref)
		}
		return fmt.Sprintf("sense:color:%s>%v", n.Dir, n.Ref)
	}
	return fmt.Sprintf("sense(%d)", n.Sensor)
}
