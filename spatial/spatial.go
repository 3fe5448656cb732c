// Package spatial provides grid geometry: positions, facings and relative directions.
package spatial

import (
	"fmt"
	"math"
	"math/rand"
)

// Position is a cell coordinate on the grid.
// Coordinates are never negative: stepping saturates at zero and at math.MaxInt.
type Position struct {
	X, Y int
}

// Step returns the position n cells away in the given cardinal direction.
func (p Position) Step(dir Cardinal, n int) Position {
	switch dir {
	case North:
		return Position{X: p.X, Y: satSub(p.Y, n)}
	case South:
		return Position{X: p.X, Y: satAdd(p.Y, n)}
	case East:
		return Position{X: satAdd(p.X, n), Y: p.Y}
	case West:
		return Position{X: satSub(p.X, n), Y: p.Y}
	}
	panic(fmt.Sprintf("spatial: unknown cardinal %d", dir))
}

// Add returns the component-wise saturating sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: satAdd(p.X, o.X), Y: satAdd(p.Y, o.Y)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// RandomPosition draws a position uniformly from [0,width) x [0,height).
func RandomPosition(rng *rand.Rand, width, height int) Position {
	return Position{X: rng.Intn(width), Y: rng.Intn(height)}
}

func satAdd(a, n int) int {
	if a > math.MaxInt-n {
		return math.MaxInt
	}
	return a + n
}

func satSub(a, n int) int {
	if a < n {
		return 0
	}
	return a - n
}

// Cardinal is an absolute facing on the grid.
type Cardinal uint8

const (
	North Cardinal = iota
	East
	South
	West
)

// Rotate turns the facing 90 degrees in the given sense.
func (c Cardinal) Rotate(r Rotation) Cardinal {
	if r == Clockwise {
		return (c + 1) % 4
	}
	return (c + 3) % 4
}

func (c Cardinal) String() string {
	switch c {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("cardinal(%d)", uint8(c))
}

// RandomCardinal draws one of the four facings uniformly.
func RandomCardinal(rng *rand.Rand) Cardinal {
	return Cardinal(rng.Intn(4))
}

// Relative is a direction expressed relative to a creature's facing.
type Relative uint8

const (
	InFront Relative = iota
	Left
	Right
	Behind
)

// Resolve converts the relative direction into an absolute facing.
func (r Relative) Resolve(facing Cardinal) Cardinal {
	switch r {
	case InFront:
		return facing
	case Left:
		return facing.Rotate(CounterClockwise)
	case Right:
		return facing.Rotate(Clockwise)
	case Behind:
		return (facing + 2) % 4
	}
	panic(fmt.Sprintf("spatial: unknown relative direction %d", r))
}

func (r Relative) String() string {
	switch r {
	case InFront:
		return "front"
	case Left:
		return "left"
	case Right:
		return "right"
	case Behind:
		return "behind"
	}
	return fmt.Sprintf("relative(%d)", uint8(r))
}

// RandomRelative draws one of the four relative directions uniformly.
func RandomRelative(rng *rand.Rand) Relative {
	return Relative(rng.Intn(4))
}

// Rotation is a 90 degree turning sense.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

func (r Rotation) String() string {
	if r == Clockwise {
		return "cw"
	}
	return "ccw"
}

// RandomRotation draws a turning sense with equal probability.
func RandomRotation(rng *rand.Rand) Rotation {
	if rng.Intn(2) == 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Toward returns the cell one step from p in the relative direction,
// resolved against the given facing.
func Toward(p Position, facing Cardinal, dir Relative) Position {
	return p.Step(dir.Resolve(facing), 1)
}
