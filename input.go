package main

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridlife/camera"
	"github.com/pthm-cable/gridlife/game"
	"github.com/pthm-cable/gridlife/renderer"
	"github.com/pthm-cable/gridlife/spatial"
)

// viewer holds the windowed host's view state.
type viewer struct {
	cam    *camera.Camera
	view   *renderer.WorldView
	host   *simHost
	latest game.Snapshot

	screenWidth, screenHeight float32
}

// handleInput processes keyboard and mouse input.
func (v *viewer) handleInput(ctx context.Context) {
	v.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		v.host.togglePause(ctx)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		v.toggleOverlay()
	}

	v.handleCameraInput()
}

func (v *viewer) toggleOverlay() {
	v.view.ShowCreatures = !v.view.ShowCreatures
	v.view.Update(v.latest)
}

// handleResize checks for window resize and propagates new dimensions.
func (v *viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == v.screenWidth && h == v.screenHeight {
		return
	}
	v.screenWidth = w
	v.screenHeight = h
	v.cam.Resize(w, h)
}

// handleCameraInput processes camera pan/zoom controls.
func (v *viewer) handleCameraInput() {
	// Screen pixels per frame
	const panSpeed = 8

	if rl.IsKeyDown(rl.KeyRight) {
		v.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		v.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		v.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		v.cam.Pan(0, -panSpeed)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		v.cam.Pan(-d.X, -d.Y)
	}

	// Zoom toward the cursor
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		m := rl.GetMousePosition()
		v.cam.ZoomAt(1+wheel*0.1, m.X, m.Y)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.cam.ZoomAt(1.25, v.screenWidth/2, v.screenHeight/2)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.cam.ZoomAt(0.8, v.screenWidth/2, v.screenHeight/2)
	}

	if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyHome) {
		v.cam.Reset()
	}
}

// hover returns the cell under the mouse and whether a creature stands on it
// in the latest snapshot.
func (v *viewer) hover() (pos spatial.Position, onGrid, occupied bool) {
	m := rl.GetMousePosition()
	pos, onGrid = v.cam.ScreenToCell(m.X, m.Y)
	if !onGrid {
		return pos, false, false
	}
	return pos, true, occupiedIn(v.latest, pos)
}

func occupiedIn(s game.Snapshot, pos spatial.Position) bool {
	for _, p := range s.Creatures {
		if p == pos {
			return true
		}
	}
	return false
}
