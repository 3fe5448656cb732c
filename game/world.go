// Package game implements the grid world and its tick scheduler.
package game

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gridlife/components"
	"github.com/pthm-cable/gridlife/spatial"
	"github.com/pthm-cable/gridlife/telemetry"
	"github.com/pthm-cable/gridlife/terrain"
)

// Settings are the per-tick attempt counts.
type Settings struct {
	FoodRegenRate          int
	CreatureGenerationRate int
}

// Options configure optional collaborators of a World.
type Options struct {
	Seed              int64
	Workers           int // 0 = GOMAXPROCS
	ParallelThreshold int // 0 = defaultParallelThreshold
	Logger            *slog.Logger

	// Telemetry; all optional.
	Collector *telemetry.Collector
	Perf      *telemetry.PerfCollector
	Bookmarks *telemetry.BookmarkDetector
	Output    *telemetry.OutputManager
	LogStats  bool
	OnStats   func(telemetry.WindowStats)
}

// World owns the tile grid, the occupancy map and every creature.
// It is not safe for concurrent use; the scheduler parallelises internally.
type World struct {
	grid     *terrain.Grid
	settings Settings
	tick     uint64
	nextID   uint64
	rng      *rand.Rand
	logger   *slog.Logger

	ecs       *ecs.World
	creatures *ecs.Map6[
		components.Identity,
		components.Energy,
		components.Heading,
		components.Lineage,
		components.Mind,
		components.Location,
	]
	creatureFilter *ecs.Filter6[
		components.Identity,
		components.Energy,
		components.Heading,
		components.Lineage,
		components.Mind,
		components.Location,
	]
	mindMap *ecs.Map[components.Mind]

	// occupancy maps each occupied cell to its creature. It is mutated only
	// by the scheduler's sequential phases.
	occupancy map[spatial.Position]ecs.Entity

	parallel *parallelState

	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewWorld builds a world with default options.
func NewWorld(width, height int, border terrain.Tile, settings Settings) *World {
	return NewWorldWithOptions(width, height, border, settings, Options{Seed: 1})
}

// NewWorldWithOptions builds a width x height world whose outer ring is border.
// It panics if either dimension is below 1 or a rate is negative.
func NewWorldWithOptions(width, height int, border terrain.Tile, settings Settings, opts Options) *World {
	if settings.FoodRegenRate < 0 || settings.CreatureGenerationRate < 0 {
		panic("game: settings rates must be non-negative")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	world := ecs.NewWorld()
	w := &World{
		grid:     terrain.NewGrid(width, height, border),
		settings: settings,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logger:   logger,
		ecs:      world,
		creatures: ecs.NewMap6[
			components.Identity,
			components.Energy,
			components.Heading,
			components.Lineage,
			components.Mind,
			components.Location,
		](world),
		creatureFilter: ecs.NewFilter6[
			components.Identity,
			components.Energy,
			components.Heading,
			components.Lineage,
			components.Mind,
			components.Location,
		](world),
		mindMap:       ecs.NewMap[components.Mind](world),
		occupancy:     make(map[spatial.Position]ecs.Entity),
		collector:     opts.Collector,
		perf:          opts.Perf,
		bookmarks:     opts.Bookmarks,
		output:        opts.Output,
		logStats:      opts.LogStats,
		statsCallback: opts.OnStats,
	}
	w.parallel = newParallelState(opts.Workers, opts.ParallelThreshold)
	return w
}

// Close stops the worker pool. The world must not be ticked afterwards.
func (w *World) Close() {
	w.parallel.stopWorkers()
}

// Width returns the number of columns.
func (w *World) Width() int { return w.grid.Width() }

// Height returns the number of rows.
func (w *World) Height() int { return w.grid.Height() }

// CurrentTick returns the number of ticks run so far.
func (w *World) CurrentTick() uint64 { return w.tick }

// CreatureCount returns the number of live creatures.
func (w *World) CreatureCount() int { return len(w.occupancy) }

// Settings returns the per-tick attempt counts.
func (w *World) Settings() Settings { return w.settings }

// SetSettings replaces the per-tick attempt counts from the next tick on.
func (w *World) SetSettings(s Settings) {
	if s.FoodRegenRate < 0 || s.CreatureGenerationRate < 0 {
		panic("game: settings rates must be non-negative")
	}
	w.settings = s
}

// InBounds reports whether pos lies on the grid.
func (w *World) InBounds(pos spatial.Position) bool { return w.grid.InBounds(pos) }

// Tile returns the tile at pos, or false when pos is off the grid.
func (w *World) Tile(pos spatial.Position) (terrain.Tile, bool) { return w.grid.At(pos) }

// SetTile replaces an interior tile. Border and off-grid positions are refused.
func (w *World) SetTile(pos spatial.Position, t terrain.Tile) bool {
	if !t.Passable() {
		if _, occupied := w.occupancy[pos]; occupied {
			return false
		}
	}
	return w.grid.Set(pos, t)
}

// PassableCount returns the number of tiles a creature may occupy.
func (w *World) PassableCount() int { return w.grid.PassableCount() }

// Occupied reports whether a creature stands at pos.
func (w *World) Occupied(pos spatial.Position) bool {
	_, ok := w.occupancy[pos]
	return ok
}

// canPlace reports whether a creature could be put at pos.
func (w *World) canPlace(pos spatial.Position) bool {
	tile, ok := w.grid.At(pos)
	if !ok || !tile.Passable() {
		return false
	}
	_, occupied := w.occupancy[pos]
	return !occupied
}

// Spawn places c at pos with a fresh id and the current tick as its birth
// tick. It reports false, placing nothing, when pos is off the grid,
// impassable or occupied.
func (w *World) Spawn(pos spatial.Position, c Creature) bool {
	_, ok := w.place(pos, c)
	return ok
}

func (w *World) place(pos spatial.Position, c Creature) (ecs.Entity, bool) {
	if !w.canPlace(pos) {
		return ecs.Entity{}, false
	}
	w.nextID++
	e := w.creatures.NewEntity(
		&components.Identity{ID: w.nextID},
		&components.Energy{Value: c.Energy},
		&components.Heading{Facing: c.Facing},
		&components.Lineage{Born: w.tick, Offspring: c.Offspring},
		&components.Mind{Brain: c.Brain},
		&components.Location{Pos: pos},
	)
	w.occupancy[pos] = e
	return e, true
}

// remove deletes the creature at pos from the occupancy map and the ECS world.
func (w *World) remove(pos spatial.Position, e ecs.Entity) {
	delete(w.occupancy, pos)
	w.ecs.RemoveEntity(e)
}

func (w *World) load(e ecs.Entity) Creature {
	id, energy, heading, lineage, mind, loc := w.creatures.Get(e)
	return Creature{
		ID:        id.ID,
		Pos:       loc.Pos,
		Energy:    energy.Value,
		Facing:    heading.Facing,
		Brain:     mind.Brain,
		Born:      lineage.Born,
		Offspring: lineage.Offspring,
	}
}

// CreatureAt returns a copy of the creature at pos.
func (w *World) CreatureAt(pos spatial.Position) (Creature, bool) {
	e, ok := w.occupancy[pos]
	if !ok {
		return Creature{}, false
	}
	return w.load(e), true
}

// Creatures returns copies of all live creatures ordered by id.
func (w *World) Creatures() []Creature {
	out := make([]Creature, 0, len(w.occupancy))
	query := w.creatureFilter.Query()
	for query.Next() {
		id, energy, heading, lineage, mind, loc := query.Get()
		out = append(out, Creature{
			ID:        id.ID,
			Pos:       loc.Pos,
			Energy:    energy.Value,
			Facing:    heading.Facing,
			Brain:     mind.Brain,
			Born:      lineage.Born,
			Offspring: lineage.Offspring,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// view is the read-only Senses implementation handed to brains during the
// decide phase. It must only be used while no phase mutates the world.
type view struct{ w *World }

func (v view) Occupied(p spatial.Position) bool { return v.w.Occupied(p) }

func (v view) Tile(p spatial.Position) (terrain.Tile, bool) { return v.w.grid.At(p) }
