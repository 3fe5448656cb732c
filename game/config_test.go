package game

import (
	"testing"

	"github.com/pthm-cable/gridlife/config"
	"github.com/pthm-cable/gridlife/spatial"
)

func TestNewWorldFromConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Width = 12
	cfg.World.Height = 9
	cfg.World.Border = "ground"
	cfg.Settings.FoodRegenRate = 3
	cfg.Telemetry.StatsWindow = 5
	if err := cfg.Finalize(); err != nil {
		t.Fatal(err)
	}

	w := NewWorldFromConfig(cfg, Options{})
	defer w.Close()

	if w.Width() != 12 || w.Height() != 9 {
		t.Fatalf("size %dx%d, want 12x9", w.Width(), w.Height())
	}
	if got := w.Settings(); got != SettingsFromConfig(cfg) {
		t.Errorf("settings %+v, want %+v", got, SettingsFromConfig(cfg))
	}
	corner, _ := w.Tile(spatial.Position{})
	if !corner.Passable() {
		t.Error("ground border should be passable")
	}
	if w.collector == nil || w.perf == nil || w.bookmarks == nil {
		t.Error("telemetry collectors should be created from config")
	}
	if w.collector.WindowTicks() != 5 {
		t.Errorf("stats window %d, want 5", w.collector.WindowTicks())
	}
}
