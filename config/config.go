// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/gridlife/terrain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Settings  SettingsConfig  `yaml:"settings"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Host      HostConfig      `yaml:"host"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the grid dimensions and the tile stamped on its outer ring.
type WorldConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Border string `yaml:"border"` // "impassable", "ground" or "food"
}

// SettingsConfig holds the per-tick attempt counts.
type SettingsConfig struct {
	FoodRegenRate          int `yaml:"food_regen_rate"`
	CreatureGenerationRate int `yaml:"creature_generation_rate"`
}

// SchedulerConfig controls the decide-phase worker pool.
type SchedulerConfig struct {
	Seed              int64 `yaml:"seed"`
	Workers           int   `yaml:"workers"`            // 0 = GOMAXPROCS
	ParallelThreshold int   `yaml:"parallel_threshold"` // below this many creatures decide runs inline
}

// HostConfig controls the interactive host loop.
type HostConfig struct {
	FrameBudgetMS int `yaml:"frame_budget_ms"` // wall time spent ticking between snapshots
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow    int `yaml:"stats_window"`    // ticks per stats window
	PerfWindow     int `yaml:"perf_window"`     // ticks averaged by the perf collector
	BookmarkWindow int `yaml:"bookmark_window"` // windows of history kept for bookmark detection
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	BorderTile  terrain.Tile
	FrameBudget time.Duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the embedded default configuration without derived values.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Finalize validates the config and recomputes derived values. Call it after
// modifying a loaded config in place.
func (c *Config) Finalize() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if c.World.Width < 1 || c.World.Height < 1 {
		return fmt.Errorf("world size %dx%d must be at least 1x1", c.World.Width, c.World.Height)
	}
	if _, err := parseBorder(c.World.Border); err != nil {
		return err
	}
	if c.Settings.FoodRegenRate < 0 || c.Settings.CreatureGenerationRate < 0 {
		return fmt.Errorf("settings rates must be non-negative (food %d, creatures %d)",
			c.Settings.FoodRegenRate, c.Settings.CreatureGenerationRate)
	}
	if c.Scheduler.Workers < 0 {
		return fmt.Errorf("scheduler.workers must be non-negative, got %d", c.Scheduler.Workers)
	}
	if c.Host.FrameBudgetMS < 1 {
		return fmt.Errorf("host.frame_budget_ms must be positive, got %d", c.Host.FrameBudgetMS)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.BorderTile, _ = parseBorder(c.World.Border)
	c.Derived.FrameBudget = time.Duration(c.Host.FrameBudgetMS) * time.Millisecond

	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 1
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
	if c.Telemetry.BookmarkWindow < 5 {
		c.Telemetry.BookmarkWindow = 5
	}
}

func parseBorder(s string) (terrain.Tile, error) {
	switch s {
	case "impassable", "":
		return terrain.Impassable(), nil
	case "ground":
		return terrain.Ground(false), nil
	case "food":
		return terrain.Ground(true), nil
	}
	return terrain.Tile{}, fmt.Errorf("unknown world.border %q (want impassable, ground or food)", s)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
