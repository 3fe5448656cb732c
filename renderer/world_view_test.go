package renderer

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/gridlife/game"
	"github.com/pthm-cable/gridlife/spatial"
)

func TestFillPixels(t *testing.T) {
	s := game.Snapshot{
		Width:  2,
		Height: 1,
		Pixels: []byte{1, 2, 3, 255, 4, 5, 6, 255},
		Creatures: []spatial.Position{
			{X: 1, Y: 0},
			{X: 5, Y: 5}, // ignored
		},
	}
	dst := make([]color.RGBA, 2)

	FillPixels(dst, s, false)
	if dst[0] != (color.RGBA{1, 2, 3, 255}) || dst[1] != (color.RGBA{4, 5, 6, 255}) {
		t.Fatalf("tile colors not copied: %v", dst)
	}

	FillPixels(dst, s, true)
	if dst[1] != CreatureColor {
		t.Errorf("creature not painted: %v", dst[1])
	}
	if dst[0] != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("empty cell changed: %v", dst[0])
	}
}
