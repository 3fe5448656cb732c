package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick uint64 `csv:"-"`
	WindowEndTick   uint64 `csv:"window_end"`

	// Population at window end
	Creatures int     `csv:"creatures"`
	Inert     int     `csv:"inert"`
	Occupancy float64 `csv:"occupancy"` // creatures / passable tiles

	// Events during window
	Spawned           int `csv:"spawned"`
	Births            int `csv:"births"`
	Deaths            int `csv:"deaths"`
	Meals             int `csv:"meals"`
	Moves             int `csv:"moves"`
	MovesBlocked      int `csv:"moves_blocked"`
	ReproduceAttempts int `csv:"reproduce_attempts"`
	BrainCopies       int `csv:"brain_copies"`

	MeanLifespan float64 `csv:"mean_lifespan"` // ticks, over creatures that died this window

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Brain sizes of creatures that have one
	BrainNeuronsMean float64 `csv:"brain_neurons_mean"`
	BrainNeuronsMax  int     `csv:"brain_neurons_max"`

	FoodTiles    int     `csv:"food_tiles"`
	FoodCoverage float64 `csv:"food_coverage"` // food tiles / passable tiles
}

// Distribution summarises a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// Describe computes mean, sample standard deviation and empirical
// percentiles. The input is not modified. An empty sample yields zeros.
func Describe(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var d Distribution
	if n == 1 {
		d.Mean = sorted[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	}
	d.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	d.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	d.Max = sorted[n-1]
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartTick),
		slog.Uint64("window_end", s.WindowEndTick),
		slog.Int("creatures", s.Creatures),
		slog.Int("inert", s.Inert),
		slog.Float64("occupancy", s.Occupancy),
		slog.Int("spawned", s.Spawned),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("meals", s.Meals),
		slog.Int("moves", s.Moves),
		slog.Int("moves_blocked", s.MovesBlocked),
		slog.Int("reproduce_attempts", s.ReproduceAttempts),
		slog.Int("brain_copies", s.BrainCopies),
		slog.Float64("mean_lifespan", s.MeanLifespan),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("brain_neurons_mean", s.BrainNeuronsMean),
		slog.Int("brain_neurons_max", s.BrainNeuronsMax),
		slog.Int("food_tiles", s.FoodTiles),
		slog.Float64("food_coverage", s.FoodCoverage),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"creatures", s.Creatures,
		"inert", s.Inert,
		"occupancy", s.Occupancy,
		"spawned", s.Spawned,
		"births", s.Births,
		"deaths", s.Deaths,
		"meals", s.Meals,
		"moves", s.Moves,
		"moves_blocked", s.MovesBlocked,
		"brain_copies", s.BrainCopies,
		"mean_lifespan", s.MeanLifespan,
		"energy_mean", s.EnergyMean,
		"energy_p50", s.EnergyP50,
		"brain_neurons_mean", s.BrainNeuronsMean,
		"food_coverage", s.FoodCoverage,
	)
}
