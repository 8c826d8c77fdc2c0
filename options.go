package turtle

import "time"

// Option configures a Turtle during creation.
//
// Example:
//
//	// Defaults: 20 ms per frame, 500 ms blink
//	t := turtle.New(dc)
//
//	// Instant drawing, no idle blink (batch rendering, tests)
//	t := turtle.New(dc, turtle.WithFrameDelay(0), turtle.WithBlinkInterval(0))
type Option func(*options)

// options holds optional configuration for Turtle creation.
type options struct {
	frameDelay    time.Duration
	blinkInterval time.Duration
	moveSteps     int
	turnSteps     int
	background    string
	penColor      string
	penSize       float64
	onFrame       FrameFunc
}

// Defaults used when no Option overrides them.
const (
	DefaultFrameDelay    = 20 * time.Millisecond
	DefaultBlinkInterval = 500 * time.Millisecond
	DefaultMoveSteps     = 20
	DefaultTurnSteps     = 10
	DefaultBackground    = "#f8f9fa"
	DefaultPenColor      = "#667eea"
	DefaultPenSize       = 2.0
)

func defaultOptions() options {
	return options{
		frameDelay:    DefaultFrameDelay,
		blinkInterval: DefaultBlinkInterval,
		moveSteps:     DefaultMoveSteps,
		turnSteps:     DefaultTurnSteps,
		background:    DefaultBackground,
		penColor:      DefaultPenColor,
		penSize:       DefaultPenSize,
	}
}

// WithFrameDelay sets the pause after every interpolated animation frame.
// Zero disables the pause, so motions complete as fast as they render.
// Negative values are treated as zero.
func WithFrameDelay(d time.Duration) Option {
	return func(o *options) {
		o.frameDelay = max(d, 0)
	}
}

// WithBlinkInterval sets how often the idle glyph alternates its fill
// shade. Zero disables the blink ticker.
func WithBlinkInterval(d time.Duration) Option {
	return func(o *options) {
		o.blinkInterval = max(d, 0)
	}
}

// WithMoveSteps sets the number of interpolation steps of a move.
// Values below 1 are ignored.
func WithMoveSteps(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.moveSteps = n
		}
	}
}

// WithTurnSteps sets the number of interpolation steps of a rotation.
// Values below 1 are ignored.
func WithTurnSteps(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.turnSteps = n
		}
	}
}

// WithBackground sets the background fill as a hex string ("#rrggbb").
// Erase-mode strokes are drawn in this color.
func WithBackground(hex string) Option {
	return func(o *options) {
		if hex != "" {
			o.background = hex
		}
	}
}

// WithPenColor sets the initial pen color. The value goes through the same
// lookup as SetPenColor.
func WithPenColor(color string) Option {
	return func(o *options) {
		if color != "" {
			o.penColor = color
		}
	}
}

// WithPenSize sets the initial stroke width, clamped to at least 1.
func WithPenSize(size float64) Option {
	return func(o *options) {
		o.penSize = clampPenSize(size)
	}
}

// WithFrameFunc registers a hook invoked after every rendered frame,
// including blink frames. The hook runs while the turtle holds its render
// lock: it sees a complete frame, and it must not call back into the
// Turtle.
//
// Example:
//
//	rec := record.New(dc)
//	t := turtle.New(dc, turtle.WithFrameFunc(rec.Capture))
func WithFrameFunc(f FrameFunc) Option {
	return func(o *options) {
		o.onFrame = f
	}
}
