package neural

import (
	"fmt"

	"github.com/pthm-cable/gridlife/spatial"
)

// ActionKind enumerates the behaviors a creature can choose.
type ActionKind uint8

const (
	ActIdle ActionKind = iota
	ActEat
	ActMove
	ActRotate
	ActReproduce
	ActCopyBrain
)

// Fixed energy costs. Reproduce is priced relative to the spawn energy.
const (
	CostIdle         = 1
	CostRotate       = 2
	CostEat          = 2
	CostMove         = 3
	CostCopyBrain    = 10
	ReproducePremium = 5
)

// Action is one decided behavior. Dir is used by Move, Reproduce and CopyBrain;
// Turn is used by Rotate.
type Action struct {
	Kind ActionKind
	Dir  spatial.Relative
	Turn spatial.Rotation
}

// Idle returns the do-nothing action.
func Idle() Action { return Action{Kind: ActIdle} }

// Eat returns the eat action.
func Eat() Action { return Action{Kind: ActEat} }

// Move returns a one-step move in a relative direction.
func Move(dir spatial.Relative) Action { return Action{Kind: ActMove, Dir: dir} }

// Rotate returns a 90 degree turn.
func Rotate(turn spatial.Rotation) Action { return Action{Kind: ActRotate, Turn: turn} }

// Reproduce returns an action placing an inert offspring in a relative direction.
func Reproduce(dir spatial.Relative) Action { return Action{Kind: ActReproduce, Dir: dir} }

// CopyBrain returns an action sharing the actor's brain with the neighbor in dir.
func CopyBrain(dir spatial.Relative) Action { return Action{Kind: ActCopyBrain, Dir: dir} }

// Cost returns the energy price of the action for creatures spawned with initialEnergy.
func (a Action) Cost(initialEnergy uint16) uint16 {
	switch a.Kind {
	case ActIdle:
		return CostIdle
	case ActEat:
		return CostEat
	case ActMove:
		return CostMove
	case ActRotate:
		return CostRotate
	case ActReproduce:
		return initialEnergy + ReproducePremium
	case ActCopyBrain:
		return CostCopyBrain
	}
	panic(fmt.Sprintf("neural: unknown action kind %d", a.Kind))
}

func (a Action) String() string {
	switch a.Kind {
	case ActIdle:
		return "idle"
	case ActEat:
		return "eat"
	case ActMove:
		return "move:" + a.Dir.String()
	case ActRotate:
		return "rotate:" + a.Turn.String()
	case ActReproduce:
		return "reproduce:" + a.Dir.String()
	case ActCopyBrain:
		return "copy_brain:" + a.Dir.String()
	}
	return fmt.Sprintf("action(%d)", a.Kind)
}
