// Package ui draws the heads-up display and host controls.
package ui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridlife/game"
	"github.com/pthm-cable/gridlife/spatial"
)

// Frame budget slider bounds, in milliseconds.
const (
	MinFrameBudgetMS = 1
	MaxFrameBudgetMS = 2000
)

// HUDData holds everything the HUD renders.
type HUDData struct {
	Stats       game.Stats
	FPS         int32
	Paused      bool
	FrameBudget time.Duration
	Overlay     bool

	// Cell under the mouse, if any.
	Hover         spatial.Position
	HoverOK       bool
	HoverOccupied bool
}

// Controls reports what the user changed this frame.
type Controls struct {
	TogglePause   bool
	ToggleOverlay bool
	FrameBudget   time.Duration
}

// HUD renders stats text and the control panel.
type HUD struct {
	x, y int32
}

// NewHUD creates a HUD anchored at the top-left corner.
func NewHUD() *HUD {
	return &HUD{x: 10, y: 10}
}

// Lines returns the stat lines in display order.
func Lines(data HUDData) []string {
	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	lines := []string{
		"Tick: " + humanize.Comma(int64(data.Stats.CurrentTick)),
		"Creatures: " + humanize.Comma(int64(data.Stats.CreatureCount)),
		fmt.Sprintf("Max brain: %d neurons", data.Stats.MaxBrainNeuronCount),
		fmt.Sprintf("FPS: %d | Budget: %s | %s", data.FPS, data.FrameBudget, status),
	}
	if data.HoverOK {
		cell := fmt.Sprintf("Cell: (%d, %d)", data.Hover.X, data.Hover.Y)
		if data.HoverOccupied {
			cell += " occupied"
		}
		lines = append(lines, cell)
	}
	return lines
}

// Draw renders the HUD and returns the control state after user input.
func (h *HUD) Draw(data HUDData) Controls {
	lines := Lines(data)
	rl.DrawRectangle(h.x-5, h.y-5, 330, int32(len(lines))*20+90, rl.Fade(rl.Black, 0.6))
	for i, line := range lines {
		c := rl.LightGray
		if i == 3 && data.Paused {
			c = rl.Yellow
		}
		rl.DrawText(line, h.x, h.y+int32(i)*20, 16, c)
	}

	panelY := float32(h.y + int32(len(lines))*20 + 5)
	out := Controls{FrameBudget: data.FrameBudget}

	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(h.x), Y: panelY, Width: 100, Height: 24}, pauseLabel) {
		out.TogglePause = true
	}
	overlayLabel := "Hide creatures"
	if !data.Overlay {
		overlayLabel = "Show creatures"
	}
	if gui.Button(rl.Rectangle{X: float32(h.x) + 110, Y: panelY, Width: 130, Height: 24}, overlayLabel) {
		out.ToggleOverlay = true
	}

	ms := float32(data.FrameBudget.Milliseconds())
	newMS := gui.SliderBar(
		rl.Rectangle{X: float32(h.x) + 60, Y: panelY + 34, Width: 200, Height: 20},
		"Budget",
		fmt.Sprintf("%dms", int(ms)),
		ms,
		MinFrameBudgetMS,
		MaxFrameBudgetMS,
	)
	out.FrameBudget = ClampBudget(time.Duration(newMS) * time.Millisecond)
	return out
}

// ClampBudget keeps a frame budget inside the slider range.
func ClampBudget(d time.Duration) time.Duration {
	lo := time.Duration(MinFrameBudgetMS) * time.Millisecond
	hi := time.Duration(MaxFrameBudgetMS) * time.Millisecond
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText("SPACE pause | C creatures | wheel zoom | right drag pan | R reset | ESC quit", h.x, screenHeight-25, 14, rl.Gray)
}
