package turtle

import "time"

// Glyph geometry in turtle-local coordinates, head pointing up.
const (
	glyphSize         = 12.0
	glyphHead         = glyphSize * 0.6 // center to head, and center to base
	glyphTail         = glyphSize * 0.8 // base width
	glyphCover        = 8.0             // radius of the background disc under the glyph
	glyphOutlineWidth = 1.5
)

// FrameSource tells a FrameFunc why a frame was rendered.
type FrameSource int

const (
	// FrameStill is an immediate re-render: attach, clear, show, hide.
	FrameStill FrameSource = iota
	// FrameAnimation is one interpolation step of a move or rotation.
	FrameAnimation
	// FrameBlink is a tick of the idle blink.
	FrameBlink
)

// String returns the name of the frame source.
func (s FrameSource) String() string {
	switch s {
	case FrameStill:
		return "still"
	case FrameAnimation:
		return "animation"
	case FrameBlink:
		return "blink"
	default:
		return "unknown"
	}
}

// Frame describes one rendered frame.
type Frame struct {
	Seq    uint64
	Source FrameSource
	State  State
}

// FrameFunc observes rendered frames. See WithFrameFunc.
type FrameFunc func(Frame)

// renderLocked draws the glyph for the current state. Committed strokes
// are never touched beyond the glyph's covering disc.
func (t *Turtle) renderLocked(src FrameSource) error {
	if t.state.Visible {
		if err := t.drawGlyphLocked(); err != nil {
			return err
		}
	}
	t.seq++
	if t.opts.onFrame != nil {
		t.opts.onFrame(Frame{Seq: t.seq, Source: src, State: t.state})
	}
	if src == FrameAnimation {
		logFrame(t.seq, t.state)
	}
	return nil
}

// drawGlyphLocked paints the covering disc and the heading triangle.
func (t *Turtle) drawGlyphLocked() error {
	c := t.canvas
	c.Push()
	defer c.Pop()
	c.Translate(t.state.X, t.state.Y)
	c.Rotate(radians(t.state.Heading))

	c.SetColor(t.bg)
	c.DrawCircle(0, 0, glyphCover)
	if err := c.Fill(); err != nil {
		return err
	}

	c.MoveTo(0, -glyphHead)
	c.LineTo(-glyphTail/2, glyphHead)
	c.LineTo(glyphTail/2, glyphHead)
	c.ClosePath()
	if t.state.BlinkPhase {
		c.SetColor(glyphFill)
	} else {
		c.SetColor(glyphFillAlt)
	}
	if err := c.FillPreserve(); err != nil {
		return err
	}
	c.SetColor(glyphOutline)
	c.SetLineWidth(glyphOutlineWidth)
	return c.Stroke()
}

// coverLocked paints the background disc over the glyph's position.
func (t *Turtle) coverLocked() error {
	c := t.canvas
	c.SetColor(t.bg)
	c.DrawCircle(t.state.X, t.state.Y, glyphCover)
	return c.Fill()
}

// blink toggles the glyph shade every interval until Close.
func (t *Turtle) blink(interval time.Duration) {
	defer close(t.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if !t.detached {
				t.state.BlinkPhase = !t.state.BlinkPhase
				if err := t.renderLocked(FrameBlink); err != nil {
					Logger().Warn("turtle: blink render failed", "err", err)
				}
			}
			t.mu.Unlock()
		}
	}
}
