package game

import (
	"fmt"

	"github.com/pthm-cable/gridlife/neural"
	"github.com/pthm-cable/gridlife/spatial"
)

// apply executes one decided action. The snapshot must still describe the
// creature standing at its position; anything else means the decide/apply
// pairing is broken and apply panics.
func (w *World) apply(snap *creatureSnapshot, act neural.Action) {
	e, ok := w.occupancy[snap.Pos]
	if !ok {
		panic(fmt.Sprintf("game: %s action for empty cell %s", act, snap.Pos))
	}
	if e != snap.Entity {
		panic(fmt.Sprintf("game: %s action for creature %d at %s, found a different creature", act, snap.ID, snap.Pos))
	}

	_, energy, heading, lineage, mind, loc := w.creatures.Get(e)
	if !energy.Spend(act.Cost(InitialEnergy)) {
		w.recordDeath(w.tick - lineage.Born)
		w.remove(loc.Pos, e)
		return
	}

	switch act.Kind {
	case neural.ActIdle:

	case neural.ActEat:
		if w.grid.Eat(loc.Pos) {
			energy.Gain(EatEnergy)
			w.recordMeal()
		}

	case neural.ActMove:
		target := spatial.Toward(loc.Pos, heading.Facing, act.Dir)
		if !w.canPlace(target) {
			w.recordMove(true)
			return
		}
		delete(w.occupancy, loc.Pos)
		w.occupancy[target] = e
		loc.Pos = target
		w.recordMove(false)

	case neural.ActRotate:
		heading.Facing = heading.Facing.Rotate(act.Turn)

	case neural.ActReproduce:
		target := spatial.Toward(loc.Pos, heading.Facing, act.Dir)
		facing := act.Dir.Resolve(heading.Facing)
		lineage.Offspring++
		if lineage.Offspring > OffspringWarnThreshold {
			w.logger.Debug("prolific creature",
				"id", snap.ID,
				"offspring", lineage.Offspring,
				"tick", w.tick,
			)
		}
		w.recordReproduceAttempt()
		// Component pointers are invalid once a new entity exists.
		if w.Spawn(target, NewCreature(facing, nil)) {
			w.recordBirth()
		}

	case neural.ActCopyBrain:
		target := spatial.Toward(loc.Pos, heading.Facing, act.Dir)
		other, ok := w.occupancy[target]
		if !ok {
			return
		}
		w.mindMap.Get(other).Brain = mind.Brain
		w.recordBrainCopy()

	default:
		panic(fmt.Sprintf("game: unknown action kind %d", act.Kind))
	}
}
