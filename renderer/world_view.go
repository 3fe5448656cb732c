// Package renderer draws world snapshots with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridlife/camera"
	"github.com/pthm-cable/gridlife/game"
)

// CreatureColor marks occupied cells when the overlay is on.
var CreatureColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// WorldView owns a GPU texture with one texel per tile.
type WorldView struct {
	tex         rl.Texture2D
	texW, texH  int
	pixels      []color.RGBA
	initialized bool

	// ShowCreatures paints occupied cells with CreatureColor.
	ShowCreatures bool
}

// NewWorldView creates a view. Init happens lazily on the first Update,
// which must run after the raylib window exists.
func NewWorldView() *WorldView {
	return &WorldView{ShowCreatures: true}
}

func (v *WorldView) init(w, h int) {
	if v.initialized {
		v.Unload()
	}
	img := rl.GenImageColor(w, h, rl.Black)
	v.tex = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(v.tex, rl.FilterPoint)
	rl.UnloadImage(img)

	v.texW, v.texH = w, h
	v.pixels = make([]color.RGBA, w*h)
	v.initialized = true
}

// Update uploads a snapshot to the texture. Snapshots with a mismatched
// pixel buffer are ignored.
func (v *WorldView) Update(s game.Snapshot) {
	if len(s.Pixels) != s.Width*s.Height*4 || s.Width == 0 {
		return
	}
	if !v.initialized || v.texW != s.Width || v.texH != s.Height {
		v.init(s.Width, s.Height)
	}

	FillPixels(v.pixels, s, v.ShowCreatures)
	rl.UpdateTexture(v.tex, v.pixels)
}

// FillPixels converts a snapshot's RGBA bytes into dst, optionally painting
// creatures on top. dst must hold Width*Height entries.
func FillPixels(dst []color.RGBA, s game.Snapshot, creatures bool) {
	for i := range dst {
		o := i * 4
		dst[i] = color.RGBA{R: s.Pixels[o], G: s.Pixels[o+1], B: s.Pixels[o+2], A: s.Pixels[o+3]}
	}
	if !creatures {
		return
	}
	for _, p := range s.Creatures {
		if p.X < 0 || p.Y < 0 || p.X >= s.Width || p.Y >= s.Height {
			continue
		}
		dst[p.Y*s.Width+p.X] = CreatureColor
	}
}

// Draw stretches the part of the grid the camera sees over the screen,
// with nearest-neighbour sampling.
func (v *WorldView) Draw(cam *camera.Camera) {
	if !v.initialized {
		return
	}
	src, dst := cam.View()
	rl.DrawTexturePro(v.tex, toRL(src), toRL(dst), rl.Vector2{}, 0, rl.White)
}

func toRL(r camera.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// Unload frees GPU resources.
func (v *WorldView) Unload() {
	if !v.initialized {
		return
	}
	rl.UnloadTexture(v.tex)
	v.initialized = false
}
