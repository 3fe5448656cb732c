package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridlife/camera"
	"github.com/pthm-cable/gridlife/config"
	"github.com/pthm-cable/gridlife/game"
	"github.com/pthm-cable/gridlife/renderer"
	"github.com/pthm-cable/gridlife/telemetry"
	"github.com/pthm-cable/gridlife/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config, config 0 = time-based)")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Scheduler.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	world := game.NewWorldFromConfig(cfg, game.Options{
		Seed:     rngSeed,
		Logger:   logger,
		Output:   output,
		LogStats: *logStats,
	})
	defer world.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		runHeadless(ctx, world, rngSeed, *maxTicks)
		return
	}
	runWindowed(ctx, cfg, world, *maxTicks)
}

// runHeadless ticks without graphics until max ticks or a signal.
func runHeadless(ctx context.Context, world *game.World, seed int64, maxTicks uint64) {
	slog.Info("starting headless simulation",
		"seed", seed,
		"width", world.Width(),
		"height", world.Height(),
		"max_ticks", maxTicks,
	)

	if maxTicks > 0 {
		if err := world.RunTicks(ctx, maxTicks); err != nil {
			slog.Info("interrupted", "tick", world.CurrentTick())
			return
		}
		slog.Info("max ticks reached", "tick", world.CurrentTick(), "creatures", world.CreatureCount())
		return
	}
	for ctx.Err() == nil {
		world.Tick()
	}
	slog.Info("interrupted", "tick", world.CurrentTick())
}

// runWindowed shows the world in a raylib window while a background
// goroutine ticks it.
func runWindowed(ctx context.Context, cfg *config.Config, world *game.World, maxTicks uint64) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Gridlife")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	screenW, screenH := float32(cfg.Screen.Width), float32(cfg.Screen.Height)
	v := &viewer{
		cam:          camera.New(screenW, screenH, float32(world.Width()), float32(world.Height())),
		view:         renderer.NewWorldView(),
		host:         newSimHost(world, cfg.Derived.FrameBudget),
		screenWidth:  screenW,
		screenHeight: screenH,
	}
	defer v.view.Unload()
	hud := ui.NewHUD()

	// The first frame shows the initial world before any tick completes.
	v.latest = world.Snapshot()
	v.view.Update(v.latest)

	v.host.start(ctx)
	defer v.host.halt()

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if s, ok := v.host.poll(); ok {
			v.latest = s
			v.view.Update(s)
		}
		v.handleInput(ctx)
		hover, onGrid, occupied := v.hover()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		v.view.Draw(v.cam)
		controls := hud.Draw(ui.HUDData{
			Stats:         v.latest.Stats,
			FPS:           rl.GetFPS(),
			Paused:        v.host.paused,
			FrameBudget:   v.host.budget,
			Overlay:       v.view.ShowCreatures,
			Hover:         hover,
			HoverOK:       onGrid,
			HoverOccupied: occupied,
		})
		hud.DrawControls(int32(v.screenHeight))
		rl.EndDrawing()

		if controls.TogglePause {
			v.host.togglePause(ctx)
		}
		if controls.ToggleOverlay {
			v.toggleOverlay()
		}
		if controls.FrameBudget != v.host.budget {
			v.host.setBudget(ctx, controls.FrameBudget)
		}

		if maxTicks > 0 && v.latest.Stats.CurrentTick >= maxTicks {
			slog.Info("max ticks reached", "tick", v.latest.Stats.CurrentTick)
			break
		}
	}
}
