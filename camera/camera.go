// Package camera maps between screen pixels and grid cells for the viewer.
package camera

import (
	"math"

	"github.com/pthm-cable/gridlife/spatial"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Camera controls the viewport into a bounded grid.
// Supports pan and zoom; the view is kept over the grid.
type Camera struct {
	// Position is the camera center in cell coordinates
	X, Y float32

	// Zoom is screen pixels per cell
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Grid dimensions in cells
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera that shows the whole grid.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MaxZoom:   32,
	}
	c.MinZoom = fitZoom(viewportW, viewportH, worldW, worldH)
	c.Reset()
	return c
}

// fitZoom is the zoom at which the whole grid just fits the viewport.
func fitZoom(vw, vh, ww, wh float32) float32 {
	return min(vw/ww, vh/wh)
}

// WorldToScreen converts cell coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to cell coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// ScreenToCell returns the cell under a screen point and whether it is on the grid.
func (c *Camera) ScreenToCell(sx, sy float32) (spatial.Position, bool) {
	wx, wy := c.ScreenToWorld(sx, sy)
	p := spatial.Position{
		X: int(math.Floor(float64(wx))),
		Y: int(math.Floor(float64(wy))),
	}
	ok := p.X >= 0 && p.Y >= 0 && float32(p.X) < c.WorldW && float32(p.Y) < c.WorldH
	return p, ok
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = fitZoom(viewportW, viewportH, c.WorldW, c.WorldH)
	c.SetZoom(c.Zoom)
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampCenter()
}

// ZoomAt multiplies the zoom by factor, keeping the cell under (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float32) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = clamp(c.Zoom*factor, c.MinZoom, c.MaxZoom)
	c.X = wx - (sx-c.ViewportW/2)/c.Zoom
	c.Y = wy - (sy-c.ViewportH/2)/c.Zoom
	c.clampCenter()
}

// Reset returns the camera to the whole-grid view.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = c.MinZoom
}

// View returns the visible part of the grid in cells and where it lands on screen.
func (c *Camera) View() (src, dst Rect) {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(c.ViewportW, c.ViewportH)
	x0, y0 = clamp(x0, 0, c.WorldW), clamp(y0, 0, c.WorldH)
	x1, y1 = clamp(x1, 0, c.WorldW), clamp(y1, 0, c.WorldH)

	src = Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	sx, sy := c.WorldToScreen(x0, y0)
	dst = Rect{X: sx, Y: sy, W: src.W * c.Zoom, H: src.H * c.Zoom}
	return src, dst
}

// clampCenter keeps the view over the grid. An axis that fits entirely is centered.
func (c *Camera) clampCenter() {
	c.X = clampAxis(c.X, c.ViewportW/(2*c.Zoom), c.WorldW)
	c.Y = clampAxis(c.Y, c.ViewportH/(2*c.Zoom), c.WorldH)
}

func clampAxis(center, half, size float32) float32 {
	if 2*half >= size {
		return size / 2
	}
	return clamp(center, half, size-half)
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
