package game

import (
	"github.com/pthm-cable/gridlife/telemetry"
)

func (w *World) recordSpawn() {
	if w.collector != nil {
		w.collector.RecordSpawn()
	}
}

func (w *World) recordBirth() {
	if w.collector != nil {
		w.collector.RecordBirth()
	}
}

func (w *World) recordReproduceAttempt() {
	if w.collector != nil {
		w.collector.RecordReproduceAttempt()
	}
}

func (w *World) recordDeath(age uint64) {
	if w.collector != nil {
		w.collector.RecordDeath(age)
	}
}

func (w *World) recordMeal() {
	if w.collector != nil {
		w.collector.RecordMeal()
	}
}

func (w *World) recordMove(blocked bool) {
	if w.collector != nil {
		w.collector.RecordMove(blocked)
	}
}

func (w *World) recordBrainCopy() {
	if w.collector != nil {
		w.collector.RecordBrainCopy()
	}
}

func (w *World) startTick() {
	if w.perf != nil {
		w.perf.StartTick()
	}
}

func (w *World) startPhase(ph telemetry.Phase) {
	if w.perf != nil {
		w.perf.StartPhase(ph)
	}
}

func (w *World) endTick() {
	if w.perf != nil {
		w.perf.EndTick()
	}
}

// flushTelemetry closes the stats window when it is due and hands the
// record to the callback, the log, the CSV output and the bookmark detector.
func (w *World) flushTelemetry() {
	if w.collector == nil || !w.collector.ShouldFlush(w.tick) {
		return
	}

	stats := w.collector.Flush(w.tick, w.sample())

	if w.statsCallback != nil {
		w.statsCallback(stats)
	}

	var perfStats telemetry.PerfStats
	if w.perf != nil {
		perfStats = w.perf.Stats()
	}

	if w.logStats {
		stats.LogStats()
		if w.perf != nil {
			perfStats.LogStats()
		}
	}

	if w.output != nil {
		if err := w.output.WriteTelemetry(stats); err != nil {
			w.logger.Error("failed to write telemetry", "error", err)
		}
		if w.perf != nil {
			if err := w.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
				w.logger.Error("failed to write perf", "error", err)
			}
		}
	}

	if w.bookmarks == nil {
		return
	}
	for _, bm := range w.bookmarks.Check(stats) {
		if w.logStats {
			bm.LogBookmark()
		}
		if w.output != nil {
			if err := w.output.WriteBookmark(bm); err != nil {
				w.logger.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// sample collects the end-of-window population state.
func (w *World) sample() telemetry.Sample {
	s := telemetry.Sample{
		Energies:      make([]float64, 0, len(w.occupancy)),
		FoodTiles:     w.grid.FoodCount(),
		PassableTiles: w.grid.PassableCount(),
	}

	query := w.creatureFilter.Query()
	for query.Next() {
		_, energy, _, _, mind, _ := query.Get()
		s.Creatures++
		s.Energies = append(s.Energies, float64(energy.Value))
		if mind.Inert() {
			s.Inert++
			continue
		}
		s.BrainSizes = append(s.BrainSizes, float64(mind.Brain.NeuronCount()))
	}
	return s
}
