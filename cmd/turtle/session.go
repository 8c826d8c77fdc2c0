package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/gg"
	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/internal/config"
	"github.com/gogpu/turtle/internal/store"
	"github.com/gogpu/turtle/logo"
	"github.com/gogpu/turtle/record"
)

// session is one run of the CLI.
type session struct {
	cfg         config.Config
	pngPath     string
	gifPath     string
	replay      bool
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// scriptReader turns a -c argument into input lines. Commands may be
// separated by newlines or by semicolons outside brackets, so
// "REPEAT 4 [FD 10; RT 90]" stays one line.
func scriptReader(script string) io.Reader {
	var b strings.Builder
	depth := 0
	for _, r := range script {
		switch r {
		case '[':
			depth++
		case ']':
			depth = max(depth-1, 0)
		case ';':
			if depth == 0 {
				r = '\n'
			}
		}
		b.WriteRune(r)
	}
	return strings.NewReader(b.String())
}

// run executes every line of r, then writes the requested outputs.
// Failing commands are reported and do not stop the session.
func (s *session) run(ctx context.Context, r io.Reader) error {
	closeLog, err := s.setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	var hist *store.Store
	if s.cfg.History != "" {
		if hist, err = store.Open(s.cfg.History); err != nil {
			return err
		}
		defer hist.Close()
	}

	dc := gg.NewContext(s.cfg.Width, s.cfg.Height)
	opts := s.cfg.TurtleOptions()
	var rec *record.Recorder
	if s.gifPath != "" {
		rec = record.New(dc, record.WithScale(0.5), record.WithMaxFrames(5000),
			record.WithFrameDelay(s.cfg.FrameDelay))
		opts = append(opts, turtle.WithFrameFunc(rec.Capture))
	}
	if !s.interactive {
		// Nobody watches the blink in batch mode.
		opts = append(opts, turtle.WithBlinkInterval(0))
	}
	t := turtle.New(dc, opts...)
	defer t.Close()

	in := logo.New(logo.WithTurtle(t), logo.WithOutput(s.stdout))

	if s.replay && hist != nil {
		if err := s.replayHistory(ctx, in, hist); err != nil {
			return err
		}
	}
	if err := s.loop(ctx, in, t, hist, r); err != nil {
		return err
	}
	// Stop the blink before reading pixels.
	t.Close()
	return s.save(dc, rec)
}

// loop reads and executes lines until r is exhausted or ctx is done.
// Lines are read on their own goroutine so cancellation does not wait
// for the next line.
func (s *session) loop(ctx context.Context, in *logo.Interpreter, t *turtle.Turtle, hist *store.Store, r io.Reader) error {
	lines, scanErr := scanLines(ctx, r)
	for {
		if ctx.Err() != nil {
			turtle.Logger().Info("turtle: interrupted")
			return nil
		}
		s.prompt()
		var line string
		select {
		case <-ctx.Done():
			turtle.Logger().Info("turtle: interrupted")
			return nil
		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			line = strings.TrimSpace(l)
		}

		switch {
		case line == "":
		case strings.EqualFold(line, "help"):
			printHelp(s.stdout)
		default:
			err := in.Execute(ctx, line)
			if ctx.Err() != nil {
				turtle.Logger().Info("turtle: interrupted", "command", line)
				return nil
			}
			if err != nil {
				fmt.Fprintln(s.stderr, "Error:", err)
				break
			}
			if hist != nil {
				if _, err := hist.AddCmd(line); err != nil {
					turtle.Logger().Warn("turtle: history not saved", "error", err)
				}
			}
			if s.interactive {
				fmt.Fprintln(s.stdout, t.Status())
			}
		}
	}
}

// scanLines sends the lines of r until r is exhausted or ctx is done. The
// error channel receives the scanner error once lines is closed.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

func (s *session) prompt() {
	if s.interactive {
		fmt.Fprint(s.stdout, "? ")
	}
}

// replayHistory re-executes every stored command. Commands that now fail
// are reported and skipped.
func (s *session) replayHistory(ctx context.Context, in *logo.Interpreter, hist *store.Store) error {
	next, err := hist.NextCmdSeq()
	if err != nil {
		return err
	}
	cmds, err := hist.Cmds(0, next)
	if err != nil {
		return err
	}
	turtle.Logger().Info("turtle: replaying history", "commands", len(cmds))
	for _, c := range cmds {
		if err := in.Execute(ctx, c.Text); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Fprintf(s.stderr, "Error: replaying #%d: %v\n", c.Seq, err)
		}
	}
	return nil
}

// save writes the PNG and GIF outputs.
func (s *session) save(dc *gg.Context, rec *record.Recorder) error {
	var errs []error
	if s.pngPath != "" {
		if err := dc.SavePNG(s.pngPath); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", s.pngPath, err))
		} else {
			turtle.Logger().Info("turtle: saved", "path", s.pngPath)
		}
	}
	if rec != nil {
		if err := rec.Save(s.gifPath); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", s.gifPath, err))
		} else {
			turtle.Logger().Info("turtle: recorded", "path", s.gifPath, "frames", rec.Len(), "dropped", rec.Dropped())
		}
	}
	return errors.Join(errs...)
}

// printHistory writes the stored commands with their sequence numbers.
func (s *session) printHistory() error {
	if s.cfg.History == "" {
		return errors.New("no history database configured")
	}
	hist, err := store.Open(s.cfg.History)
	if err != nil {
		return err
	}
	defer hist.Close()
	next, err := hist.NextCmdSeq()
	if err != nil {
		return err
	}
	cmds, err := hist.Cmds(0, next)
	if err != nil {
		return err
	}
	for _, c := range cmds {
		fmt.Fprintf(s.stdout, "%5d  %s\n", c.Seq, c.Text)
	}
	return nil
}

func printHelp(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var last logo.Category
	for _, e := range logo.Help() {
		if e.Category != last {
			fmt.Fprintf(tw, "%s:\n", e.Category)
			last = e.Category
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Usage, e.Summary, strings.Join(e.Names, ", "))
	}
	tw.Flush()
}

// setupLogging installs the turtle logger: text records on stderr, and
// JSON records in the configured log file.
func (s *session) setupLogging() (func(), error) {
	level, err := s.cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	if s.cfg.Log.File == "" {
		turtle.SetLogger(newLogger(s.stderr, nil, level))
		return func() { turtle.SetLogger(nil) }, nil
	}
	file, err := os.OpenFile(s.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	turtle.SetLogger(newLogger(s.stderr, file, level))
	return func() {
		turtle.SetLogger(nil)
		file.Close()
	}, nil
}
