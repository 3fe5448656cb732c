package terrain

import (
	"fmt"

	"github.com/pthm-cable/gridlife/spatial"
)

// Grid is a dense row-major tile array whose outer ring is always the border tile.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid builds a width x height grid. Interior tiles start as ground with food;
// row 0, row height-1, column 0 and column width-1 are set to border.
func NewGrid(width, height int, border Tile) *Grid {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("terrain: invalid grid size %dx%d", width, height))
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Ground(true)
	}

	for x := 0; x < width; x++ {
		tiles[x] = border
		tiles[(height-1)*width+x] = border
	}
	for y := 0; y < height; y++ {
		tiles[y*width] = border
		tiles[y*width+width-1] = border
	}

	return &Grid{width: width, height: height, tiles: tiles}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of tiles (always width*height).
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether pos lies on the grid.
func (g *Grid) InBounds(pos spatial.Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < g.width && pos.Y < g.height
}

// At returns the tile at pos, or false when pos is off the grid.
func (g *Grid) At(pos spatial.Position) (Tile, bool) {
	if !g.InBounds(pos) {
		return Tile{}, false
	}
	return g.tiles[pos.Y*g.width+pos.X], true
}

// Eat clears the food at pos and reports whether there was any.
func (g *Grid) Eat(pos spatial.Position) bool {
	if !g.InBounds(pos) {
		return false
	}
	t := &g.tiles[pos.Y*g.width+pos.X]
	if t.Kind != KindGround || !t.Food {
		return false
	}
	t.Food = false
	return true
}

// Regrow places food at pos. Impassable and off-grid positions are no-ops.
func (g *Grid) Regrow(pos spatial.Position) bool {
	if !g.InBounds(pos) {
		return false
	}
	t := &g.tiles[pos.Y*g.width+pos.X]
	if t.Kind != KindGround {
		return false
	}
	t.Food = true
	return true
}

// PassableCount returns the number of tiles a creature may occupy.
func (g *Grid) PassableCount() int {
	n := 0
	for _, t := range g.tiles {
		if t.Passable() {
			n++
		}
	}
	return n
}

// FoodCount returns the number of ground tiles currently carrying food.
func (g *Grid) FoodCount() int {
	n := 0
	for _, t := range g.tiles {
		if t.Kind == KindGround && t.Food {
			n++
		}
	}
	return n
}

// Pixels returns the grid as row-major RGBA bytes, one pixel per tile.
func (g *Grid) Pixels() []byte {
	out := make([]byte, 0, len(g.tiles)*4)
	for _, t := range g.tiles {
		c := t.Color()
		out = append(out, c.R, c.G, c.B, 255)
	}
	return out
}

// OnBorder reports whether pos lies on the outer ring.
func (g *Grid) OnBorder(pos spatial.Position) bool {
	return pos.X == 0 || pos.Y == 0 || pos.X == g.width-1 || pos.Y == g.height-1
}

// Set replaces the tile at pos. The border ring is fixed, so Set refuses
// border and off-grid positions and reports false.
func (g *Grid) Set(pos spatial.Position, t Tile) bool {
	if !g.InBounds(pos) || g.OnBorder(pos) {
		return false
	}
	g.tiles[pos.Y*g.width+pos.X] = t
	return true
}
