package game

import (
	"sort"

	"github.com/pthm-cable/gridlife/neural"
	"github.com/pthm-cable/gridlife/spatial"
	"github.com/pthm-cable/gridlife/telemetry"
)

// Tick advances the world by one step: decide, apply, spawn, regrow food.
// Each phase completes before the next begins.
func (w *World) Tick() {
	w.tick++
	w.startTick()

	w.parallel.reseed(w.rng)

	w.startPhase(telemetry.PhaseDecide)
	w.decide()

	w.startPhase(telemetry.PhaseApply)
	p := w.parallel
	for i := range p.snapshots {
		w.apply(&p.snapshots[i], p.intents[i])
	}

	w.startPhase(telemetry.PhaseSpawn)
	w.spawnRandom()

	w.startPhase(telemetry.PhaseFood)
	w.regrowFood()

	w.startPhase(telemetry.PhaseTelemetry)
	w.flushTelemetry()

	w.endTick()
}

// decide snapshots every creature that has a brain, ordered by id, and
// computes one action per snapshot on the worker pool.
func (w *World) decide() {
	p := w.parallel
	p.snapshots = p.snapshots[:0]

	query := w.creatureFilter.Query()
	for query.Next() {
		id, _, heading, _, mind, loc := query.Get()
		if mind.Inert() {
			continue
		}
		p.snapshots = append(p.snapshots, creatureSnapshot{
			Entity: query.Entity(),
			ID:     id.ID,
			Pos:    loc.Pos,
			Facing: heading.Facing,
			Brain:  mind.Brain,
		})
	}
	sort.Slice(p.snapshots, func(i, j int) bool {
		return p.snapshots[i].ID < p.snapshots[j].ID
	})

	n := len(p.snapshots)
	if cap(p.intents) < n {
		p.intents = make([]neural.Action, n)
	}
	p.intents = p.intents[:n]

	w.runJob(jobDecide, n)
}

// spawnRandom generates the configured number of random creatures in
// parallel, then inserts them in candidate order. Candidates landing on an
// occupied or impassable cell are dropped.
func (w *World) spawnRandom() {
	n := w.settings.CreatureGenerationRate
	p := w.parallel
	if cap(p.candidates) < n {
		p.candidates = make([]spawnCandidate, n)
	}
	p.candidates = p.candidates[:n]

	w.runJob(jobSpawn, n)

	for _, c := range p.candidates {
		if w.Spawn(c.Pos, NewCreature(c.Facing, c.Brain)) {
			w.recordSpawn()
		}
	}
}

// regrowFood attempts the configured number of food placements at uniformly
// random cells. Impassable cells are no-ops.
func (w *World) regrowFood() {
	width, height := w.grid.Width(), w.grid.Height()
	for i := 0; i < w.settings.FoodRegenRate; i++ {
		w.grid.Regrow(spatial.RandomPosition(w.rng, width, height))
	}
}
