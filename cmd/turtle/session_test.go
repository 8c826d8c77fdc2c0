package main

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/internal/config"
	"github.com/gogpu/turtle/logo"
	"github.com/google/go-cmp/cmp"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 100, 100
	cfg.FrameDelay = 0
	cfg.BlinkInterval = 0
	cfg.MoveSteps, cfg.TurnSteps = 2, 2
	var stdout, stderr bytes.Buffer
	return &session{
		cfg:     cfg,
		pngPath: filepath.Join(t.TempDir(), "out.png"),
		stdout:  &stdout,
		stderr:  &stderr,
	}, &stdout, &stderr
}

func TestScriptReader(t *testing.T) {
	tests := []struct {
		script, want string
	}{
		{"FD 10;RT 90\nPU", "FD 10\nRT 90\nPU"},
		{"REPEAT 4 [FD 10; RT 90]; PU", "REPEAT 4 [FD 10; RT 90]\n PU"},
		{"REPEAT 2 [REPEAT 2 [FD 1; RT 1]; LT 2];HT", "REPEAT 2 [REPEAT 2 [FD 1; RT 1]; LT 2]\nHT"},
		{"PR a]b;FD 1", "PR a]b\nFD 1"},
	}
	for _, tt := range tests {
		got, _ := io.ReadAll(scriptReader(tt.script))
		if string(got) != tt.want {
			t.Errorf("scriptReader(%q) = %q, want %q", tt.script, got, tt.want)
		}
	}
}

func TestRunScriptWithBracketedSemicolons(t *testing.T) {
	s, _, stderr := newTestSession(t)
	if err := s.run(context.Background(), scriptReader("REPEAT 4 [FD 10; RT 90]")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want no errors", stderr.String())
	}
}

func TestLoopStopsOnCancelWhileIdle(t *testing.T) {
	s, _, _ := newTestSession(t)
	in := logo.New(logo.WithTurtle(turtle.New(nil)))

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.loop(ctx, in, nil, nil, pr) }()

	// Blank and HELP lines run nothing; the loop then waits for input.
	if _, err := io.WriteString(pw, "\n\nhelp\n"); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("loop = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop still waiting for input after cancel")
	}
}

func TestRunContinuesAfterErrors(t *testing.T) {
	s, stdout, stderr := newTestSession(t)
	if err := s.run(context.Background(), scriptReader("FD 10;FOO 1;PR hello;REPEAT x [FD 1]")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "hello\n" {
		t.Errorf("stdout = %q, want %q", got, "hello\n")
	}
	for _, want := range []string{"unknown command: FOO", "invalid REPEAT syntax"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr %q does not contain %q", stderr.String(), want)
		}
	}

	f, err := os.Open(s.pngPath)
	if err != nil {
		t.Fatalf("PNG not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("PNG size = %v, want 100x100", b)
	}
}

func TestRunInteractiveStatus(t *testing.T) {
	s, stdout, _ := newTestSession(t)
	s.interactive = true
	s.pngPath = ""
	if err := s.run(context.Background(), strings.NewReader("FD 10\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "? Position: 50, 40  Heading: 0°  Pen: Down\n? "
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunHelp(t *testing.T) {
	s, stdout, _ := newTestSession(t)
	s.pngPath = ""
	if err := s.run(context.Background(), strings.NewReader("help\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"Movement:", "REPEAT n [commands]", "FORWARD, FD"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("help output lacks %q:\n%s", want, stdout.String())
		}
	}
}

func TestRunCanceled(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.run(ctx, strings.NewReader("FD 10\nRT 90\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(s.pngPath); err != nil {
		t.Errorf("PNG not written after cancel: %v", err)
	}
}

func TestHistoryAndReplay(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	s, _, _ := newTestSession(t)
	s.cfg.History = db
	if err := s.run(context.Background(), strings.NewReader("FD 10\nBAD\n\nRT 90\n")); err != nil {
		t.Fatalf("run: %v", err)
	}

	s, stdout, _ := newTestSession(t)
	s.cfg.History = db
	if err := s.printHistory(); err != nil {
		t.Fatalf("printHistory: %v", err)
	}
	if diff := cmp.Diff("    1  FD 10\n    2  RT 90\n", stdout.String()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	s, _, stderr := newTestSession(t)
	s.cfg.History = db
	s.replay = true
	if err := s.run(context.Background(), strings.NewReader("")); err != nil {
		t.Fatalf("replay run: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("replay reported errors: %s", stderr.String())
	}
}

func TestPrintHistoryWithoutDB(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.printHistory(); err == nil {
		t.Error("printHistory without a database succeeded")
	}
}

func TestRunRecordsGIF(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.gifPath = filepath.Join(t.TempDir(), "out.gif")
	if err := s.run(context.Background(), strings.NewReader("FD 10\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(s.gifPath)
	if err != nil {
		t.Fatalf("GIF not written: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("gif.DecodeAll: %v", err)
	}
	// Attach frame plus MoveSteps+1 animation frames.
	if len(g.Image) != 4 {
		t.Errorf("GIF has %d frames, want 4", len(g.Image))
	}
	if b := g.Image[0].Bounds(); b.Dx() != 50 {
		t.Errorf("GIF width = %d, want 50", b.Dx())
	}
}

func TestNewLogger(t *testing.T) {
	var term, file bytes.Buffer
	l := newLogger(&term, &file, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("shown", "k", 1)

	if strings.Contains(term.String(), "hidden") || strings.Contains(file.String(), "hidden") {
		t.Error("debug record passed an info level filter")
	}
	if !strings.Contains(term.String(), "msg=shown k=1") {
		t.Errorf("text handler output = %q", term.String())
	}
	if !strings.Contains(file.String(), `"msg":"shown","k":1`) {
		t.Errorf("JSON handler output = %q", file.String())
	}

	term.Reset()
	newLogger(&term, nil, slog.LevelWarn).Warn("only terminal")
	if !strings.Contains(term.String(), "only terminal") {
		t.Errorf("terminal-only logger output = %q", term.String())
	}
}
