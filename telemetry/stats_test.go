package telemetry

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	values := []float64{9, 2, 4, 4, 4, 5, 5, 7}
	d := Describe(values)

	if math.Abs(d.Mean-5) > 1e-9 {
		t.Errorf("mean = %v, want 5", d.Mean)
	}
	// Sample standard deviation: sqrt(32/7).
	if math.Abs(d.Std-math.Sqrt(32.0/7.0)) > 1e-9 {
		t.Errorf("std = %v, want %v", d.Std, math.Sqrt(32.0/7.0))
	}
	if d.Max != 9 {
		t.Errorf("max = %v, want 9", d.Max)
	}
	if values[0] != 9 {
		t.Error("Describe must not reorder its input")
	}
}

func TestDescribePercentiles(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	d := Describe(values)

	tests := []struct {
		name      string
		got, want float64
	}{
		{"p10", d.P10, 1},
		{"p50", d.P50, 5},
		{"p90", d.P90, 9},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDescribeEdgeCases(t *testing.T) {
	if d := Describe(nil); d != (Distribution{}) {
		t.Errorf("empty sample should be zero, got %+v", d)
	}

	d := Describe([]float64{42})
	if d.Mean != 42 || d.Std != 0 || d.P50 != 42 || d.Max != 42 {
		t.Errorf("single sample: %+v", d)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(100)

	if c.ShouldFlush(99) {
		t.Error("should not flush before the window closes")
	}
	if !c.ShouldFlush(100) {
		t.Error("should flush once the window closes")
	}

	c.RecordSpawn()
	c.RecordSpawn()
	c.RecordBirth()
	c.RecordReproduceAttempt()
	c.RecordReproduceAttempt()
	c.RecordDeath(10)
	c.RecordDeath(30)
	c.RecordMeal()
	c.RecordMove(false)
	c.RecordMove(true)
	c.RecordBrainCopy()

	stats := c.Flush(100, Sample{
		Creatures:     4,
		Inert:         1,
		Energies:      []float64{100, 100, 50, 150},
		BrainSizes:    []float64{6, 10, 8},
		FoodTiles:     10,
		PassableTiles: 40,
	})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 100 {
		t.Errorf("window = [%d,%d]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Spawned != 2 || stats.Births != 1 || stats.ReproduceAttempts != 2 {
		t.Errorf("births: %+v", stats)
	}
	if stats.Deaths != 2 || stats.MeanLifespan != 20 {
		t.Errorf("deaths = %d lifespan = %v", stats.Deaths, stats.MeanLifespan)
	}
	if stats.Moves != 1 || stats.MovesBlocked != 1 || stats.Meals != 1 || stats.BrainCopies != 1 {
		t.Errorf("actions: %+v", stats)
	}
	if stats.EnergyMean != 100 {
		t.Errorf("energy mean = %v", stats.EnergyMean)
	}
	if stats.BrainNeuronsMean != 8 || stats.BrainNeuronsMax != 10 {
		t.Errorf("brain sizes: mean %v max %d", stats.BrainNeuronsMean, stats.BrainNeuronsMax)
	}
	if stats.Occupancy != 0.1 || stats.FoodCoverage != 0.25 {
		t.Errorf("occupancy %v coverage %v", stats.Occupancy, stats.FoodCoverage)
	}

	next := c.Flush(200, Sample{})
	if next.WindowStartTick != 100 || next.Spawned != 0 || next.Deaths != 0 || next.MeanLifespan != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}
