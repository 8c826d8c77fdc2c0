package turtle

import (
	"math"

	"github.com/gogpu/gg"
)

// Forward moves d units along the heading, animating the glyph. A NaN or
// infinite d moves nowhere.
func (t *Turtle) Forward(d float64) error {
	d = finite(d)
	return t.motion(func() error {
		s := t.State()
		rad := radians(s.Heading)
		return t.moveTo(s.X+math.Sin(rad)*d, s.Y-math.Cos(rad)*d)
	})
}

// Backward moves d units against the heading.
func (t *Turtle) Backward(d float64) error {
	d = finite(d)
	return t.motion(func() error {
		s := t.State()
		rad := radians(s.Heading)
		return t.moveTo(s.X-math.Sin(rad)*d, s.Y+math.Cos(rad)*d)
	})
}

// Right turns clockwise by deg degrees.
func (t *Turtle) Right(deg float64) error {
	deg = finite(deg)
	return t.motion(func() error {
		return t.rotateTo(t.State().Heading + deg)
	})
}

// Left turns counter-clockwise by deg degrees.
func (t *Turtle) Left(deg float64) error {
	deg = finite(deg)
	return t.motion(func() error {
		return t.rotateTo(t.State().Heading - deg)
	})
}

// SetXY moves to the canvas point (x, y), drawing if the pen is down.
// NaN or infinite coordinates are 0.
func (t *Turtle) SetXY(x, y float64) error {
	x, y = finite(x), finite(y)
	return t.motion(func() error {
		return t.moveTo(x, y)
	})
}

// SetHeading turns the shortest way to the absolute heading deg.
func (t *Turtle) SetHeading(deg float64) error {
	deg = finite(deg)
	return t.motion(func() error {
		return t.rotateTo(deg)
	})
}

// Home moves to the canvas center, then turns to heading 0.
func (t *Turtle) Home() error {
	return t.motion(func() error {
		if t.Detached() {
			return ErrDetached
		}
		x, y := t.center()
		if err := t.moveTo(x, y); err != nil {
			return err
		}
		return t.rotateTo(0)
	})
}

// ClearScreen wipes the canvas to the background and puts the turtle back
// at the center facing up. Nothing is animated and no stroke is drawn.
func (t *Turtle) ClearScreen() error {
	return t.motion(func() error {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.detached {
			return ErrDetached
		}
		t.clearLocked()
		return t.renderLocked(FrameStill)
	})
}

// Detached reports whether the turtle has no canvas.
func (t *Turtle) Detached() bool {
	if t == nil {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.detached
}

// motion runs f as the single in-flight animation of t.
func (t *Turtle) motion(f func() error) error {
	if t == nil {
		return ErrDetached
	}
	if !t.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer t.busy.Store(false)
	return f()
}

// moveTo commits the stroke to (tx, ty) when the pen is down, then steps
// the glyph along the segment.
func (t *Turtle) moveTo(tx, ty float64) error {
	t.mu.Lock()
	if t.detached {
		t.mu.Unlock()
		return ErrDetached
	}
	tx, ty = finite(tx), finite(ty)
	sx, sy := t.state.X, t.state.Y
	if sx == tx && sy == ty {
		err := t.renderLocked(FrameAnimation)
		t.mu.Unlock()
		return err
	}
	if t.state.PenDown {
		if err := t.strokeLocked(sx, sy, tx, ty); err != nil {
			t.mu.Unlock()
			return err
		}
	}
	t.mu.Unlock()

	steps := t.opts.moveSteps
	for i := 0; i <= steps; i++ {
		x, y := tx, ty
		if i < steps {
			f := float64(i) / float64(steps)
			x, y = sx+(tx-sx)*f, sy+(ty-sy)*f
		}
		if err := t.frame(func(s *State) { s.X, s.Y = x, y }); err != nil {
			return err
		}
	}
	return nil
}

// rotateTo turns the shortest way to target, in turnSteps frames.
func (t *Turtle) rotateTo(target float64) error {
	t.mu.Lock()
	if t.detached {
		t.mu.Unlock()
		return ErrDetached
	}
	start := t.state.Heading
	delta := shortestDelta(start, target)
	if delta == 0 {
		err := t.renderLocked(FrameAnimation)
		t.mu.Unlock()
		return err
	}
	t.mu.Unlock()

	steps := t.opts.turnSteps
	for i := 0; i <= steps; i++ {
		h := Normalize(start + delta*float64(i)/float64(steps))
		if i == steps {
			h = Normalize(start + delta)
		}
		if err := t.frame(func(s *State) { s.Heading = h }); err != nil {
			return err
		}
	}
	return nil
}

// frame applies one interpolation step, renders it and then pauses for the
// frame delay outside the lock so the blink ticker can run.
func (t *Turtle) frame(step func(*State)) error {
	t.mu.Lock()
	if t.detached {
		t.mu.Unlock()
		return ErrDetached
	}
	step(&t.state)
	err := t.renderLocked(FrameAnimation)
	t.mu.Unlock()
	if err != nil {
		return err
	}
	t.sleep()
	return nil
}

// strokeLocked draws the whole segment at once with the current pen.
func (t *Turtle) strokeLocked(x1, y1, x2, y2 float64) error {
	c := t.canvas
	col := t.bg
	if !t.state.PenErase {
		col = t.penRGBA()
	}
	c.SetColor(col)
	c.SetLineWidth(t.state.PenSize)
	c.SetLineCap(gg.LineCapRound)
	c.SetLineJoin(gg.LineJoinRound)
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
	return c.Stroke()
}

// penRGBA resolves the stored pen color, falling back to the default.
func (t *Turtle) penRGBA() gg.RGBA {
	if col, ok := resolveColor(t.state.PenColor); ok {
		return col
	}
	Logger().Warn("turtle: unknown pen color, using default", "color", t.state.PenColor)
	return gg.Hex(DefaultPenColor)
}
