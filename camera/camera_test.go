package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/gridlife/spatial"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewFitsWorld(t *testing.T) {
	cam := New(1000, 500, 200, 200)

	if cam.X != 100 || cam.Y != 100 {
		t.Errorf("expected camera at (100, 100), got (%f, %f)", cam.X, cam.Y)
	}
	// min(1000/200, 500/200) = 2.5
	if cam.Zoom != 2.5 || cam.MinZoom != 2.5 {
		t.Errorf("expected zoom 2.5, got %f (min %f)", cam.Zoom, cam.MinZoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(800, 800, 100, 100)

	sx, sy := cam.WorldToScreen(50, 50)
	if !near(sx, 400) || !near(sy, 400) {
		t.Errorf("expected screen center (400, 400), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 300, 200)
	cam.SetZoom(8)
	cam.Pan(100, -40)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenToCell(t *testing.T) {
	cam := New(100, 100, 10, 10) // 10 px per cell

	p, ok := cam.ScreenToCell(25, 99)
	if !ok || p != (spatial.Position{X: 2, Y: 9}) {
		t.Errorf("got %v %v, want (2,9) true", p, ok)
	}
	if _, ok := cam.ScreenToCell(-1, 50); ok {
		t.Error("point left of the grid should be off grid")
	}
}

func TestPanClampsToGrid(t *testing.T) {
	cam := New(100, 100, 100, 100)
	cam.SetZoom(4) // 25 cells visible

	cam.Pan(-10000, 0)
	if !near(cam.X, 12.5) {
		t.Errorf("expected X clamped to 12.5, got %f", cam.X)
	}
	cam.Pan(0, 10000)
	if !near(cam.Y, 87.5) {
		t.Errorf("expected Y clamped to 87.5, got %f", cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// MinZoom should be min(1280/2560, 720/1440) = 0.5
	if cam.MinZoom != 0.5 {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(100) // Above max
	if cam.Zoom != 32 {
		t.Errorf("expected zoom clamped to 32, got %f", cam.Zoom)
	}
}

func TestZoomAtKeepsCursorCell(t *testing.T) {
	cam := New(400, 400, 100, 100)
	wx, wy := cam.ScreenToWorld(300, 120)

	cam.ZoomAt(2, 300, 120)

	gx, gy := cam.ScreenToWorld(300, 120)
	if !near(gx, wx) || !near(gy, wy) {
		t.Errorf("cell under cursor moved: (%f,%f) -> (%f,%f)", wx, wy, gx, gy)
	}
}

func TestViewWholeWorld(t *testing.T) {
	// Wide viewport: the grid fits vertically and is centered horizontally.
	cam := New(800, 400, 100, 100)

	src, dst := cam.View()
	if src != (Rect{X: 0, Y: 0, W: 100, H: 100}) {
		t.Errorf("src %+v, want whole grid", src)
	}
	if !near(dst.X, 200) || !near(dst.Y, 0) || !near(dst.W, 400) || !near(dst.H, 400) {
		t.Errorf("dst %+v, want centered 400x400 at x=200", dst)
	}
}

func TestViewZoomed(t *testing.T) {
	cam := New(100, 100, 100, 100)
	cam.SetZoom(10)

	src, dst := cam.View()
	if !near(src.W, 10) || !near(src.H, 10) {
		t.Errorf("src %+v, want 10x10 cells", src)
	}
	if !near(dst.W, 100) || !near(dst.H, 100) {
		t.Errorf("dst %+v, want full viewport", dst)
	}
}

func TestResizeRaisesMinZoom(t *testing.T) {
	cam := New(100, 100, 100, 100)
	cam.Resize(400, 300)
	if cam.MinZoom != 3 || cam.Zoom != 3 {
		t.Errorf("expected zoom 3 after resize, got %f (min %f)", cam.Zoom, cam.MinZoom)
	}
}

func TestReset(t *testing.T) {
	cam := New(200, 200, 100, 100)
	cam.SetZoom(8)
	cam.Pan(50, 50)

	cam.Reset()

	if cam.X != 50 || cam.Y != 50 {
		t.Errorf("expected position (50, 50), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 2 {
		t.Errorf("expected zoom 2, got %f", cam.Zoom)
	}
}
