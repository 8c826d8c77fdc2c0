package turtle

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas is the drawing surface a Turtle is attached to. It is the subset
// of *gg.Context the turtle draws with; the turtle never resizes it.
type Canvas interface {
	Width() int
	Height() int
	ClearWithColor(col gg.RGBA)

	SetColor(col color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetLineJoin(join gg.LineJoin)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawCircle(x, y, r float64)

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	Fill() error
	FillPreserve() error
	Stroke() error
}

var _ Canvas = (*gg.Context)(nil)
