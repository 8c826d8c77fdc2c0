// Package turtle provides animated LOGO turtle graphics on a 2D canvas.
//
// # Overview
//
// A Turtle is a pen-carrying cursor that lives on a canvas. It moves and
// turns in small interpolated steps so every motion can be watched, draws
// a line behind itself while its pen is down, and blinks softly while
// idle. The canvas is any [Canvas]; *gg.Context from github.com/gogpu/gg
// satisfies it.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/turtle"
//	)
//
//	dc := gg.NewContext(800, 600)
//	t := turtle.New(dc)
//	defer t.Close()
//
//	for i := 0; i < 4; i++ {
//		t.Forward(100)
//		t.Right(90)
//	}
//	dc.SavePNG("square.png")
//
// The logo sub-package parses and executes LOGO command lines against a
// Turtle; record captures rendered frames into an animated GIF.
//
// # Coordinate System
//
// Positions are canvas pixels:
//   - Origin (0,0) at top-left, Y increases down
//   - The turtle starts at the canvas center
//   - Heading is in degrees, 0 points up, increases clockwise
//   - Headings are always kept in [0, 360)
//
// # Animation
//
// Moves render DefaultMoveSteps+1 frames and rotations DefaultTurnSteps+1,
// pausing DefaultFrameDelay after each. Lines are committed in a single
// stroke before the glyph starts moving, so the drawing never depends on
// which frames were shown. Only one motion runs at a time; a second
// concurrent motion fails with ErrBusy.
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger].
package turtle
