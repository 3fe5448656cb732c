package telemetry

import (
	"fmt"
	"log/slog"
	"time"
)

// Phase is one stage of a simulation tick.
type Phase uint8

// Tick phases in execution order.
const (
	PhaseDecide Phase = iota
	PhaseApply
	PhaseSpawn
	PhaseFood
	PhaseTelemetry
	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseDecide:
		return "decide"
	case PhaseApply:
		return "apply"
	case PhaseSpawn:
		return "spawn"
	case PhaseFood:
		return "food"
	case PhaseTelemetry:
		return "telemetry"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// PhaseTimes holds one duration per phase.
type PhaseTimes [numPhases]time.Duration

// tickSample is the timing of a single tick.
type tickSample struct {
	total  time.Duration
	phases PhaseTimes
}

// PerfCollector keeps per-phase tick timings over a rolling window of ticks.
// It is owned by the goroutine that ticks the world.
type PerfCollector struct {
	samples []tickSample
	next    int
	filled  int

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	inPhase    bool
	phase      Phase
}

// NewPerfCollector creates a collector averaging over the last windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{samples: make([]tickSample, windowSize)}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
	p.inPhase = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the tick in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.inPhase = false
	p.current.total = now.Sub(p.tickStart)

	p.samples[p.next] = p.current
	p.next = (p.next + 1) % len(p.samples)
	if p.filled < len(p.samples) {
		p.filled++
	}
}

// PerfStats summarises the ticks currently in the window.
type PerfStats struct {
	Ticks int

	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Average duration per phase and its share of the average tick, in percent.
	PhaseAvg PhaseTimes
	PhasePct [numPhases]float64

	TicksPerSecond float64
}

// Stats aggregates the window. An empty window yields zero stats.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Ticks: p.filled}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phaseSum PhaseTimes
	for i, sample := range p.samples[:p.filled] {
		total += sample.total
		if i == 0 || sample.total < s.MinTickDuration {
			s.MinTickDuration = sample.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, sample.total)
		for ph, d := range sample.phases {
			phaseSum[ph] += d
		}
	}

	n := time.Duration(p.filled)
	s.AvgTickDuration = total / n
	for ph := range phaseSum {
		s.PhaseAvg[ph] = phaseSum[ph] / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTickDuration) * 100
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	return s
}

// LogStats logs performance statistics. Phases under 0.1% are omitted.
func (s PerfStats) LogStats() {
	attrs := []any{
		"ticks", s.Ticks,
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	for ph, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, Phase(ph).String()+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	for ph, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(Phase(ph).String()+"_pct", pct))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    uint64  `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	DecidePct    float64 `csv:"decide_pct"`
	ApplyPct     float64 `csv:"apply_pct"`
	SpawnPct     float64 `csv:"spawn_pct"`
	FoodPct      float64 `csv:"food_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd uint64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		DecidePct:    s.PhasePct[PhaseDecide],
		ApplyPct:     s.PhasePct[PhaseApply],
		SpawnPct:     s.PhasePct[PhaseSpawn],
		FoodPct:      s.PhasePct[PhaseFood],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
