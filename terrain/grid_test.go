package terrain

import (
	"testing"

	"github.com/pthm-cable/gridlife/spatial"
)

func TestNewGridBorderRing(t *testing.T) {
	g := NewGrid(6, 4, Impassable())

	if g.Len() != 24 {
		t.Fatalf("expected 24 tiles, got %d", g.Len())
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile, ok := g.At(spatial.Position{X: x, Y: y})
			if !ok {
				t.Fatalf("(%d,%d) should be in bounds", x, y)
			}
			onBorder := x == 0 || y == 0 || x == g.Width()-1 || y == g.Height()-1
			if onBorder && tile != Impassable() {
				t.Errorf("(%d,%d) on border should be impassable, got %s", x, y, tile)
			}
			if !onBorder && tile != Ground(true) {
				t.Errorf("(%d,%d) interior should be fed ground, got %s", x, y, tile)
			}
		}
	}
}

func TestNewGridGroundBorder(t *testing.T) {
	g := NewGrid(3, 3, Ground(false))
	tile, _ := g.At(spatial.Position{X: 0, Y: 1})
	if tile != Ground(false) {
		t.Errorf("border should use configured tile, got %s", tile)
	}
	if g.PassableCount() != 9 {
		t.Errorf("all tiles passable, got %d", g.PassableCount())
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5, Impassable())

	for _, p := range []spatial.Position{{X: 5, Y: 0}, {X: 0, Y: 5}, {X: 100, Y: 100}} {
		if _, ok := g.At(p); ok {
			t.Errorf("%v should be out of bounds", p)
		}
		if g.InBounds(p) {
			t.Errorf("InBounds(%v) should be false", p)
		}
	}
}

func TestEatClearsFoodOnce(t *testing.T) {
	g := NewGrid(5, 5, Impassable())
	p := spatial.Position{X: 2, Y: 2}

	if !g.Eat(p) {
		t.Fatal("first eat should find food")
	}
	if g.Eat(p) {
		t.Error("second eat should find nothing")
	}
	tile, _ := g.At(p)
	if tile.Food {
		t.Error("food flag should stay false")
	}
}

func TestEatImpassable(t *testing.T) {
	g := NewGrid(5, 5, Impassable())
	if g.Eat(spatial.Position{X: 0, Y: 0}) {
		t.Error("impassable tiles carry no food")
	}
}

func TestRegrow(t *testing.T) {
	g := NewGrid(5, 5, Impassable())
	p := spatial.Position{X: 1, Y: 1}
	g.Eat(p)

	if !g.Regrow(p) {
		t.Error("regrow on ground should succeed")
	}
	tile, _ := g.At(p)
	if !tile.Food {
		t.Error("food should be back")
	}

	border := spatial.Position{X: 0, Y: 2}
	if g.Regrow(border) {
		t.Error("regrow on impassable should be a no-op")
	}
	tile, _ = g.At(border)
	if tile != Impassable() {
		t.Errorf("border tile changed: %s", tile)
	}
}

func TestPixels(t *testing.T) {
	g := NewGrid(3, 3, Impassable())
	g.Eat(spatial.Position{X: 1, Y: 1})

	px := g.Pixels()
	if len(px) != 9*4 {
		t.Fatalf("expected %d bytes, got %d", 9*4, len(px))
	}

	// Corner is orange
	if px[0] != 255 || px[1] != 128 || px[2] != 0 || px[3] != 255 {
		t.Errorf("corner pixel: got %v", px[0:4])
	}
	// Center is bare ground (black)
	center := (1*3 + 1) * 4
	if px[center] != 0 || px[center+1] != 0 || px[center+2] != 0 || px[center+3] != 255 {
		t.Errorf("center pixel: got %v", px[center:center+4])
	}
}

func TestColorDominates(t *testing.T) {
	a := Color{R: 10, G: 10, B: 10}

	if a.Dominates(Color{R: 10, G: 5, B: 5}) {
		t.Error("equal channel must not dominate")
	}
	if !a.Dominates(Color{R: 5, G: 5, B: 5}) {
		t.Error("(10,10,10) should dominate (5,5,5)")
	}

	b := Color{R: 20, G: 0, B: 20}
	if a.Dominates(b) || b.Dominates(a) {
		t.Error("mixed colors are incomparable")
	}
}

func TestTileColors(t *testing.T) {
	if Ground(false).Color() != ColorBare {
		t.Error("bare ground should be black")
	}
	if Ground(true).Color() != ColorFood {
		t.Error("fed ground should be green")
	}
	if Impassable().Color() != ColorImpassable {
		t.Error("impassable should be orange")
	}
}

func TestGridSetKeepsBorder(t *testing.T) {
	g := NewGrid(5, 5, Impassable())

	if g.Set(spatial.Position{X: 0, Y: 2}, Ground(true)) {
		t.Error("Set should refuse the border ring")
	}
	if g.Set(spatial.Position{X: 9, Y: 9}, Ground(true)) {
		t.Error("Set should refuse off-grid positions")
	}
	if !g.Set(spatial.Position{X: 2, Y: 2}, Impassable()) {
		t.Fatal("Set should accept interior positions")
	}
	if tile, _ := g.At(spatial.Position{X: 2, Y: 2}); tile != Impassable() {
		t.Errorf("interior tile = %v, want impassable", tile)
	}
}
