package game

import (
	"github.com/pthm-cable/gridlife/config"
	"github.com/pthm-cable/gridlife/telemetry"
)

// SettingsFromConfig extracts the per-tick rates.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		FoodRegenRate:          cfg.Settings.FoodRegenRate,
		CreatureGenerationRate: cfg.Settings.CreatureGenerationRate,
	}
}

// NewWorldFromConfig builds a world sized and seeded by cfg. Scheduler fields
// left zero in opts are taken from cfg, and when opts carries no collectors
// the telemetry windows from cfg are used to create them.
func NewWorldFromConfig(cfg *config.Config, opts Options) *World {
	if opts.Seed == 0 {
		opts.Seed = cfg.Scheduler.Seed
	}
	if opts.Workers == 0 {
		opts.Workers = cfg.Scheduler.Workers
	}
	if opts.ParallelThreshold == 0 {
		opts.ParallelThreshold = cfg.Scheduler.ParallelThreshold
	}
	if opts.Collector == nil {
		opts.Collector = telemetry.NewCollector(uint64(cfg.Telemetry.StatsWindow))
	}
	if opts.Perf == nil {
		opts.Perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	}
	if opts.Bookmarks == nil {
		opts.Bookmarks = telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkWindow)
	}

	return NewWorldWithOptions(
		cfg.World.Width,
		cfg.World.Height,
		cfg.Derived.BorderTile,
		SettingsFromConfig(cfg),
		opts,
	)
}
