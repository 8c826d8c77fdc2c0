package turtle

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
)

// Turtle is a pen-carrying agent attached to a Canvas.
//
// All state lives behind one mutex that is also held for every draw on the
// canvas, so the blink ticker and the animation stepper never interleave
// inside a frame. Motions are serialized by the caller; a motion started
// while another is animating fails with ErrBusy.
//
// A nil *Turtle behaves like a detached one.
type Turtle struct {
	mu       sync.Mutex
	canvas   Canvas
	opts     options
	bg       gg.RGBA
	state    State
	seq      uint64
	detached bool

	busy atomic.Bool

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New attaches a turtle to c. The canvas is painted with the background,
// the turtle is placed at its center facing up with the pen down, and the
// idle blink ticker starts.
//
// A nil canvas yields a detached turtle whose operations return
// ErrDetached.
func New(c Canvas, opts ...Option) *Turtle {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bg, ok := resolveColor(o.background)
	if !ok {
		Logger().Warn("turtle: invalid background, using default", "background", o.background)
		bg = gg.Hex(DefaultBackground)
	}

	t := &Turtle{
		canvas: c,
		opts:   o,
		bg:     bg,
		state: State{
			PenDown:    true,
			PenColor:   PenColorValue(o.penColor),
			PenSize:    o.penSize,
			Visible:    true,
			BlinkPhase: true,
		},
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	if c == nil {
		t.detached = true
		close(t.done)
		return t
	}

	t.mu.Lock()
	t.clearLocked()
	if err := t.renderLocked(FrameStill); err != nil {
		Logger().Warn("turtle: initial render failed", "err", err)
	}
	t.mu.Unlock()

	if o.blinkInterval > 0 {
		go t.blink(o.blinkInterval)
	} else {
		close(t.done)
	}

	Logger().Info("turtle: attached", "width", c.Width(), "height", c.Height())
	return t
}

// Close detaches the turtle from its canvas and stops the blink ticker.
// Later operations return ErrDetached. Close is idempotent.
func (t *Turtle) Close() error {
	if t == nil {
		return nil
	}
	t.closeOnce.Do(func() {
		close(t.stop)
		<-t.done

		t.mu.Lock()
		wasAttached := !t.detached
		t.detached = true
		t.mu.Unlock()

		if wasAttached {
			Logger().Info("turtle: detached")
		}
	})
	return nil
}

// State returns a snapshot of the full turtle state.
func (t *Turtle) State() State {
	if t == nil {
		return State{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Status returns position and heading rounded to integers and the pen
// status, for periodic polling by a user interface.
func (t *Turtle) Status() Status {
	return t.State().status()
}

// Animating reports whether a motion is in progress.
func (t *Turtle) Animating() bool {
	return t != nil && t.busy.Load()
}

// PenUp lifts the pen: later moves do not draw.
func (t *Turtle) PenUp() error {
	return t.update(func(s *State) { s.PenDown = false })
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() error {
	return t.update(func(s *State) { s.PenDown = true })
}

// PenErase switches to erase mode: pen-down moves draw in the background
// color. The pen color is kept.
func (t *Turtle) PenErase() error {
	return t.update(func(s *State) { s.PenErase = true })
}

// PenPaint leaves erase mode and lowers the pen.
func (t *Turtle) PenPaint() error {
	return t.update(func(s *State) {
		s.PenErase = false
		s.PenDown = true
	})
}

// SetPenColor sets the color of later strokes. See PenColorValue for how
// name is interpreted.
func (t *Turtle) SetPenColor(name string) error {
	return t.update(func(s *State) { s.PenColor = PenColorValue(name) })
}

// SetPenSize sets the width of later strokes, clamped to at least 1.
func (t *Turtle) SetPenSize(size float64) error {
	return t.update(func(s *State) { s.PenSize = clampPenSize(size) })
}

// Hide stops drawing the glyph and covers the one currently shown.
func (t *Turtle) Hide() error {
	if t == nil {
		return ErrDetached
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.detached {
		return ErrDetached
	}
	wasVisible := t.state.Visible
	t.state.Visible = false
	if wasVisible {
		if err := t.coverLocked(); err != nil {
			return err
		}
	}
	return t.renderLocked(FrameStill)
}

// Show draws the glyph again.
func (t *Turtle) Show() error {
	if t == nil {
		return ErrDetached
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.detached {
		return ErrDetached
	}
	t.state.Visible = true
	return t.renderLocked(FrameStill)
}

// update applies a synchronous state write; nothing is drawn.
func (t *Turtle) update(f func(*State)) error {
	if t == nil {
		return ErrDetached
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.detached {
		return ErrDetached
	}
	f(&t.state)
	return nil
}

// center returns the middle of the canvas.
func (t *Turtle) center() (float64, float64) {
	return float64(t.canvas.Width()) / 2, float64(t.canvas.Height()) / 2
}

// clearLocked paints the background and resets position and heading.
func (t *Turtle) clearLocked() {
	t.canvas.ClearWithColor(t.bg)
	t.state.X, t.state.Y = t.center()
	t.state.Heading = 0
}

func (t *Turtle) sleep() {
	if t.opts.frameDelay > 0 {
		time.Sleep(t.opts.frameDelay)
	}
}
