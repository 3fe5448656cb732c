package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/gridlife/config"
	"github.com/pthm-cable/gridlife/game"
	"github.com/pthm-cable/gridlife/telemetry"
)

// warmupWindows are skipped before occupancy is scored.
const warmupWindows = 2

// FitnessEvaluator runs headless worlds and scores how close their live
// population stays to a target occupancy.
type FitnessEvaluator struct {
	params   *ParamVector
	base     *config.Config
	ticks    uint64
	seeds    []int64
	target   float64
	mu       sync.Mutex
	lastMean float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, base *config.Config, ticks uint64, seeds []int64, target float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params: params,
		base:   base,
		ticks:  ticks,
		seeds:  seeds,
		target: target,
	}
}

// LastMeanOccupancy returns the mean occupancy from the most recent evaluation.
func (fe *FitnessEvaluator) LastMeanOccupancy() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMean
}

// Evaluate computes fitness for raw parameter values (lower = better).
// Seeds run in parallel and their scores are averaged.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.configFor(x)

	fitness := make([]float64, len(fe.seeds))
	means := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			windows := fe.runSimulation(cfg, s)
			fitness[idx], means[idx] = fe.score(windows)
		}(i, seed)
	}
	wg.Wait()

	fe.mu.Lock()
	fe.lastMean = stat.Mean(means, nil)
	fe.mu.Unlock()
	return stat.Mean(fitness, nil)
}

// configFor copies the base config and applies x.
func (fe *FitnessEvaluator) configFor(x []float64) *config.Config {
	cfg := *fe.base
	fe.params.ApplyToConfig(&cfg, x)
	return &cfg
}

// runSimulation runs one seed for the configured number of ticks and
// returns the window stats it produced.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) []telemetry.WindowStats {
	var windows []telemetry.WindowStats
	w := game.NewWorldFromConfig(cfg, game.Options{
		Seed: seed,
		// Seeds already run side by side.
		Workers: 1,
		OnStats: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})
	defer w.Close()

	for w.CurrentTick() < fe.ticks {
		w.Tick()
	}
	return windows
}

// score returns the fitness for one run and its mean occupancy. Fitness is
// the mean absolute distance from the target plus one per window in which
// the population was extinct.
func (fe *FitnessEvaluator) score(windows []telemetry.WindowStats) (fitness, mean float64) {
	if len(windows) <= warmupWindows {
		return 1, 0
	}
	valid := windows[warmupWindows:]

	occupancy := make([]float64, len(valid))
	var extinct float64
	for i, w := range valid {
		occupancy[i] = w.Occupancy
		if w.Creatures == 0 {
			extinct++
		}
	}
	mean = stat.Mean(occupancy, nil)

	var dist float64
	for _, o := range occupancy {
		dist += math.Abs(o - fe.target)
	}
	return dist/float64(len(valid)) + extinct/float64(len(valid)), mean
}
