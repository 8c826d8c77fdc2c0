package turtle

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

// newTestTurtle returns a turtle on an 800x600 fake canvas that animates
// without pauses and does not blink.
func newTestTurtle(t *testing.T, opts ...Option) (*Turtle, *fakeCanvas) {
	t.Helper()
	c := newFakeCanvas(800, 600)
	opts = append([]Option{WithFrameDelay(0), WithBlinkInterval(0)}, opts...)
	tu := New(c, opts...)
	t.Cleanup(func() { _ = tu.Close() })
	return tu, c
}

func TestNewInitialState(t *testing.T) {
	tu, c := newTestTurtle(t)

	want := State{
		X: 400, Y: 300,
		PenDown:    true,
		PenColor:   DefaultPenColor,
		PenSize:    DefaultPenSize,
		Visible:    true,
		BlinkPhase: true,
	}
	if diff := cmp.Diff(want, tu.State()); diff != "" {
		t.Errorf("initial State() mismatch (-want +got):\n%s", diff)
	}
	if len(c.clears) != 1 {
		t.Fatalf("canvas cleared %d times, want 1", len(c.clears))
	}
	if !colorClose(c.clears[0], gg.Hex(DefaultBackground)) {
		t.Errorf("background = %+v, want %s", c.clears[0], DefaultBackground)
	}
	if len(c.circles) != 1 {
		t.Errorf("glyph drawn %d times on attach, want 1", len(c.circles))
	}
}

func TestNewWithOptions(t *testing.T) {
	tu, _ := newTestTurtle(t, WithPenColor("red"), WithPenSize(0.2))
	s := tu.State()
	if s.PenColor != "#ff0000" {
		t.Errorf("PenColor = %q, want #ff0000", s.PenColor)
	}
	if s.PenSize != 1 {
		t.Errorf("PenSize = %v, want 1", s.PenSize)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Status
	}{
		{"center", State{X: 400, Y: 300, PenDown: true}, Status{image.Pt(400, 300), 0, PenStatusDown}},
		{"half rounds up", State{X: 2.5, Y: -2.5, Heading: 89.5}, Status{image.Pt(3, -2), 90, PenStatusUp}},
		{"below half", State{X: 10.49, Y: 7.2, Heading: 12.4, PenDown: true}, Status{image.Pt(10, 7), 12, PenStatusDown}},
		{"heading near 360 wraps", State{Heading: 359.7}, Status{image.Pt(0, 0), 0, PenStatusUp}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.state.status()); diff != "" {
				t.Errorf("status() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	s := Status{Position: image.Pt(400, 300), Heading: 90, Pen: PenStatusUp}
	want := "Position: 400, 300  Heading: 90°  Pen: Up"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPenStateWrites(t *testing.T) {
	tu, c := newTestTurtle(t)
	circles := len(c.circles)

	steps := []struct {
		name  string
		apply func() error
		check func(State) bool
	}{
		{"PenUp", tu.PenUp, func(s State) bool { return !s.PenDown }},
		{"PenDown", tu.PenDown, func(s State) bool { return s.PenDown }},
		{"PenErase", tu.PenErase, func(s State) bool { return s.PenErase && s.PenDown }},
		{"PenPaint after PenUp", func() error {
			if err := tu.PenUp(); err != nil {
				return err
			}
			return tu.PenPaint()
		}, func(s State) bool { return !s.PenErase && s.PenDown }},
		{"SetPenColor", func() error { return tu.SetPenColor("blue") }, func(s State) bool { return s.PenColor == "#0000ff" }},
		{"SetPenSize", func() error { return tu.SetPenSize(5) }, func(s State) bool { return s.PenSize == 5 }},
		{"SetPenSize clamps", func() error { return tu.SetPenSize(-3) }, func(s State) bool { return s.PenSize == 1 }},
	}
	for _, st := range steps {
		if err := st.apply(); err != nil {
			t.Fatalf("%s: %v", st.name, err)
		}
		if !st.check(tu.State()) {
			t.Errorf("%s: unexpected state %+v", st.name, tu.State())
		}
	}
	if len(c.circles) != circles {
		t.Errorf("pen state writes rendered %d times, want 0", len(c.circles)-circles)
	}
}

func TestPenEraseKeepsColor(t *testing.T) {
	tu, _ := newTestTurtle(t)
	if err := tu.SetPenColor("red"); err != nil {
		t.Fatal(err)
	}
	if err := tu.PenErase(); err != nil {
		t.Fatal(err)
	}
	if got := tu.State().PenColor; got != "#ff0000" {
		t.Errorf("PenColor after PenErase = %q, want #ff0000", got)
	}
}

func TestHideShow(t *testing.T) {
	tu, c := newTestTurtle(t)

	circles := len(c.circles)
	if err := tu.Hide(); err != nil {
		t.Fatal(err)
	}
	if tu.State().Visible {
		t.Error("Visible = true after Hide")
	}
	if got := len(c.circles) - circles; got != 1 {
		t.Errorf("Hide drew %d covering discs, want 1", got)
	}

	circles = len(c.circles)
	if err := tu.Hide(); err != nil {
		t.Fatal(err)
	}
	if err := tu.Forward(10); err != nil {
		t.Fatal(err)
	}
	if got := len(c.circles) - circles; got != 0 {
		t.Errorf("hidden turtle drew %d glyphs, want 0", got)
	}

	if err := tu.Show(); err != nil {
		t.Fatal(err)
	}
	if !tu.State().Visible {
		t.Error("Visible = false after Show")
	}
	if got := len(c.circles) - circles; got != 1 {
		t.Errorf("Show drew %d glyphs, want 1", got)
	}
}

func TestCloseDetaches(t *testing.T) {
	tu, _ := newTestTurtle(t)
	if err := tu.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := tu.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if !tu.Detached() {
		t.Error("Detached() = false after Close")
	}

	ops := map[string]func() error{
		"Forward":     func() error { return tu.Forward(10) },
		"Right":       func() error { return tu.Right(10) },
		"Home":        tu.Home,
		"ClearScreen": tu.ClearScreen,
		"PenUp":       tu.PenUp,
		"Show":        tu.Show,
		"Hide":        tu.Hide,
		"SetPenColor": func() error { return tu.SetPenColor("red") },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrDetached) {
			t.Errorf("%s after Close = %v, want ErrDetached", name, err)
		}
	}
}

func TestNewNilCanvas(t *testing.T) {
	tu := New(nil)
	defer tu.Close()
	if !tu.Detached() {
		t.Fatal("New(nil) should be detached")
	}
	if err := tu.Forward(10); !errors.Is(err, ErrDetached) {
		t.Errorf("Forward on detached turtle = %v, want ErrDetached", err)
	}
}

func TestNilTurtle(t *testing.T) {
	var tu *Turtle
	ops := map[string]func() error{
		"Forward":     func() error { return tu.Forward(10) },
		"SetXY":       func() error { return tu.SetXY(1, 2) },
		"Home":        tu.Home,
		"ClearScreen": tu.ClearScreen,
		"PenDown":     tu.PenDown,
		"SetPenSize":  func() error { return tu.SetPenSize(3) },
		"Hide":        tu.Hide,
		"Show":        tu.Show,
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrDetached) {
			t.Errorf("%s on nil turtle = %v, want ErrDetached", name, err)
		}
	}
	if !tu.Detached() || tu.Animating() {
		t.Error("nil turtle should be detached and idle")
	}
	if diff := cmp.Diff(State{}, tu.State()); diff != "" {
		t.Errorf("State() of nil turtle mismatch (-want +got):\n%s", diff)
	}
	if err := tu.Close(); err != nil {
		t.Errorf("Close() on nil turtle = %v", err)
	}
}
