package turtle

import (
	"fmt"
	"image"
	"math"
)

// State is a snapshot of the turtle's complete state in canvas coordinates.
type State struct {
	X, Y       float64
	Heading    float64 // degrees, 0 = up, clockwise, in [0, 360)
	PenDown    bool
	PenErase   bool
	PenColor   string
	PenSize    float64
	Visible    bool
	BlinkPhase bool
}

// PenStatus is the pen state reported by Status.
type PenStatus string

const (
	PenStatusDown PenStatus = "Down"
	PenStatusUp   PenStatus = "Up"
)

// Status is the coarse view of the turtle polled by user interfaces.
type Status struct {
	Position image.Point
	Heading  int
	Pen      PenStatus
}

// String formats the status the way the info panel shows it.
func (s Status) String() string {
	return fmt.Sprintf("Position: %d, %d  Heading: %d°  Pen: %s",
		s.Position.X, s.Position.Y, s.Heading, s.Pen)
}

// status derives the polled view from a full state.
func (s State) status() Status {
	pen := PenStatusUp
	if s.PenDown {
		pen = PenStatusDown
	}
	return Status{
		Position: image.Pt(roundHalfUp(s.X), roundHalfUp(s.Y)),
		Heading:  roundHalfUp(s.Heading) % 360,
		Pen:      pen,
	}
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Normalize maps an angle in degrees into [0, 360). NaN and infinities
// map to 0.
func Normalize(deg float64) float64 {
	deg = math.Mod(finite(deg), 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// -tiny + 360 rounds up to 360 in float64.
		deg = 0
	}
	return deg
}

// shortestDelta returns the signed rotation in (-180, 180] that takes
// heading from to heading to.
func shortestDelta(from, to float64) float64 {
	d := Normalize(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// finite returns v, or 0 when v is NaN or infinite.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clampPenSize(size float64) float64 {
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 1 {
		return 1
	}
	return size
}
