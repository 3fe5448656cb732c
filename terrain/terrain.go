// Package terrain provides the tile grid the creatures live on.
package terrain

import (
	"fmt"
	"image/color"
	"math/rand"
)

// Color is an RGB tile color.
type Color struct {
	R, G, B uint8
}

// Tile colors.
var (
	ColorBare       = Color{R: 0, G: 0, B: 0}
	ColorFood       = Color{R: 0, G: 255, B: 0}
	ColorImpassable = Color{R: 255, G: 128, B: 0}
)

// Dominates reports whether every channel of c is strictly greater than o's.
// This is a partial order: two colors can fail to dominate each other.
func (c Color) Dominates(o Color) bool {
	return c.R > o.R && c.G > o.G && c.B > o.B
}

// RGBA returns the color as an opaque RGBA value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RandomColor draws each channel uniformly from [0,255).
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.Intn(255)),
		G: uint8(rng.Intn(255)),
		B: uint8(rng.Intn(255)),
	}
}

// Kind distinguishes tile variants.
type Kind uint8

const (
	KindGround Kind = iota
	KindImpassable
)

// Tile is a single grid cell. Food is only meaningful for ground tiles.
type Tile struct {
	Kind Kind
	Food bool
}

// Ground returns a passable tile.
func Ground(food bool) Tile {
	return Tile{Kind: KindGround, Food: food}
}

// Impassable returns a tile no creature can enter.
func Impassable() Tile {
	return Tile{Kind: KindImpassable}
}

// Passable reports whether a creature may occupy the tile.
func (t Tile) Passable() bool {
	return t.Kind == KindGround
}

// Color returns the tile's display and sensing color.
func (t Tile) Color() Color {
	switch t.Kind {
	case KindGround:
		if t.Food {
			return ColorFood
		}
		return ColorBare
	case KindImpassable:
		return ColorImpassable
	}
	panic(fmt.Sprintf("terrain: unknown tile kind %d", t.Kind))
}

func (t Tile) String() string {
	switch t.Kind {
	case KindGround:
		if t.Food {
			return "ground+food"
		}
		return "ground"
	case KindImpassable:
		return "impassable"
	}
	return fmt.Sprintf("tile(%d)", t.Kind)
}
