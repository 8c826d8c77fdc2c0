package turtle

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled is false, so the per-frame
// debug records of an animation cost a level check and nothing else.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (silentHandler) WithAttrs([]slog.Attr) slog.Handler        { return silentHandler{} }
func (silentHandler) WithGroup(string) slog.Handler             { return silentHandler{} }

var silent = slog.New(silentHandler{})

// current is read by the blink goroutine and by whatever goroutine drives
// the motions, while SetLogger may run on a third.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the records of turtle, logo and record to l. A nil l
// silences them again, which is also the state before the first call.
//
// What gets logged:
//   - [slog.LevelDebug]: every animation frame with position and heading,
//     every executed command, PR text
//   - [slog.LevelInfo]: canvas attached and detached, GIF encoded
//   - [slog.LevelWarn]: pen colors or backgrounds that do not resolve,
//     failed blink renders
//
// Example:
//
//	turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// logFrame records one animation frame. The level is checked first: a
// single move renders DefaultMoveSteps+1 frames.
func logFrame(seq uint64, s State) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("turtle: frame", "seq", seq, "x", s.X, "y", s.Y, "heading", s.Heading)
}
