package turtle

import (
	"image/color"
	"sync"

	"github.com/gogpu/gg"
)

type point struct{ X, Y float64 }

// strokeRec is one Stroke call. depth is the Push depth at the time, so
// pen strokes (depth 0) can be told apart from glyph outlines.
type strokeRec struct {
	Points []point
	Closed bool
	Color  gg.RGBA
	Width  float64
	Cap    gg.LineCap
	Depth  int
}

// fakeCanvas records what the turtle draws.
type fakeCanvas struct {
	mu sync.Mutex

	w, h int

	clears  []gg.RGBA
	strokes []strokeRec
	fills   int
	circles []point

	color  gg.RGBA
	width  float64
	cap    gg.LineCap
	path   []point
	closed bool
	depth  int

	strokeErr error
}

var _ Canvas = (*fakeCanvas)(nil)

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h}
}

func (c *fakeCanvas) Width() int  { return c.w }
func (c *fakeCanvas) Height() int { return c.h }

func (c *fakeCanvas) ClearWithColor(col gg.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clears = append(c.clears, col)
	c.strokes = nil
}

func (c *fakeCanvas) SetColor(col color.Color) { c.color = gg.FromColor(col) }
func (c *fakeCanvas) SetLineWidth(w float64)   { c.width = w }
func (c *fakeCanvas) SetLineCap(lc gg.LineCap) { c.cap = lc }
func (c *fakeCanvas) SetLineJoin(gg.LineJoin)  {}

func (c *fakeCanvas) MoveTo(x, y float64) { c.path = append(c.path[:0], point{x, y}) }
func (c *fakeCanvas) LineTo(x, y float64) { c.path = append(c.path, point{x, y}) }
func (c *fakeCanvas) ClosePath()          { c.closed = true }

func (c *fakeCanvas) DrawCircle(x, y, r float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.circles = append(c.circles, point{x, y})
	c.path = nil
	c.closed = true
}

func (c *fakeCanvas) Push()                  { c.depth++ }
func (c *fakeCanvas) Pop()                   { c.depth-- }
func (c *fakeCanvas) Translate(x, y float64) {}
func (c *fakeCanvas) Rotate(angle float64)   {}

func (c *fakeCanvas) Fill() error {
	c.FillPreserve()
	c.clearPath()
	return nil
}

func (c *fakeCanvas) FillPreserve() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fills++
	return nil
}

func (c *fakeCanvas) Stroke() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.strokeErr != nil {
		return c.strokeErr
	}
	c.strokes = append(c.strokes, strokeRec{
		Points: append([]point(nil), c.path...),
		Closed: c.closed,
		Color:  c.color,
		Width:  c.width,
		Cap:    c.cap,
		Depth:  c.depth,
	})
	c.path, c.closed = nil, false
	return nil
}

func (c *fakeCanvas) clearPath() {
	c.path, c.closed = nil, false
}

// penStrokes returns the strokes drawn outside the glyph transform.
func (c *fakeCanvas) penStrokes() []strokeRec {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []strokeRec
	for _, s := range c.strokes {
		if s.Depth == 0 {
			out = append(out, s)
		}
	}
	return out
}
