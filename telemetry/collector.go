// Package telemetry provides windowed population statistics, bookmarks,
// per-phase timing and CSV output for the simulation.
package telemetry

// Sample is the population state observed at the end of a window.
type Sample struct {
	Creatures     int
	Inert         int
	Energies      []float64
	BrainSizes    []float64 // neuron counts of creatures that have a brain
	FoodTiles     int
	PassableTiles int
}

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     uint64
	windowStartTick uint64

	// Event counters for current window
	spawned           int
	births            int
	deaths            int
	meals             int
	moves             int
	movesBlocked      int
	reproduceAttempts int
	brainCopies       int
	lifespanSum       uint64
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks uint64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordSpawn records a creature placed by the spawn phase.
func (c *Collector) RecordSpawn() { c.spawned++ }

// RecordBirth records an offspring placed by a reproduce action.
func (c *Collector) RecordBirth() { c.births++ }

// RecordReproduceAttempt records a reproduce action, placed or not.
func (c *Collector) RecordReproduceAttempt() { c.reproduceAttempts++ }

// RecordDeath records a creature removed for lack of energy after living age ticks.
func (c *Collector) RecordDeath(age uint64) {
	c.deaths++
	c.lifespanSum += age
}

// RecordMeal records a successful eat.
func (c *Collector) RecordMeal() { c.meals++ }

// RecordMove records a move; blocked moves left the creature in place.
func (c *Collector) RecordMove(blocked bool) {
	if blocked {
		c.movesBlocked++
		return
	}
	c.moves++
}

// RecordBrainCopy records a brain handed to a neighbour.
func (c *Collector) RecordBrainCopy() { c.brainCopies++ }

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick uint64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() uint64 {
	return c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick uint64, s Sample) WindowStats {
	energy := Describe(s.Energies)
	brains := Describe(s.BrainSizes)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Creatures: s.Creatures,
		Inert:     s.Inert,

		Spawned:           c.spawned,
		Births:            c.births,
		Deaths:            c.deaths,
		Meals:             c.meals,
		Moves:             c.moves,
		MovesBlocked:      c.movesBlocked,
		ReproduceAttempts: c.reproduceAttempts,
		BrainCopies:       c.brainCopies,

		EnergyMean: energy.Mean,
		EnergyStd:  energy.Std,
		EnergyP10:  energy.P10,
		EnergyP50:  energy.P50,
		EnergyP90:  energy.P90,

		BrainNeuronsMean: brains.Mean,
		BrainNeuronsMax:  int(brains.Max),

		FoodTiles: s.FoodTiles,
	}
	if c.deaths > 0 {
		stats.MeanLifespan = float64(c.lifespanSum) / float64(c.deaths)
	}
	if s.PassableTiles > 0 {
		stats.Occupancy = float64(s.Creatures) / float64(s.PassableTiles)
		stats.FoodCoverage = float64(s.FoodTiles) / float64(s.PassableTiles)
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawned = 0
	c.births = 0
	c.deaths = 0
	c.meals = 0
	c.moves = 0
	c.movesBlocked = 0
	c.reproduceAttempts = 0
	c.brainCopies = 0
	c.lifespanSum = 0

	return stats
}
