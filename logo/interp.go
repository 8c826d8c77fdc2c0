package logo

import (
	"context"
	"errors"
	"io"

	"github.com/gogpu/turtle"
)

// Turtle is what the interpreter drives. *turtle.Turtle implements it.
type Turtle interface {
	Forward(d float64) error
	Backward(d float64) error
	Right(deg float64) error
	Left(deg float64) error
	SetXY(x, y float64) error
	SetHeading(deg float64) error
	Home() error
	ClearScreen() error

	PenUp() error
	PenDown() error
	PenErase() error
	PenPaint() error
	Hide() error
	Show() error
	SetPenColor(name string) error
	SetPenSize(size float64) error
}

var _ Turtle = (*turtle.Turtle)(nil)

// Interpreter executes command lines against one turtle and owns one
// variable store.
//
// Execute is not safe for concurrent use: callers submit one line at a
// time and wait for it to finish.
type Interpreter struct {
	turtle Turtle
	vars   *Vars
	out    io.Writer
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithTurtle attaches t at creation. See SetTurtle.
func WithTurtle(t Turtle) Option {
	return func(in *Interpreter) { in.turtle = t }
}

// WithOutput sets where PR writes. The default discards.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		if w != nil {
			in.out = w
		}
	}
}

// WithVars makes the interpreter use an existing variable store.
func WithVars(vs *Vars) Option {
	return func(in *Interpreter) {
		if vs != nil {
			in.vars = vs
		}
	}
}

// New creates an interpreter.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{vars: NewVars(), out: io.Discard}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// SetTurtle attaches the turtle that commands act on.
func (in *Interpreter) SetTurtle(t Turtle) {
	in.turtle = t
}

// Vars returns the variable store written by MAKE.
func (in *Interpreter) Vars() *Vars {
	return in.vars
}

// Execute runs one line. A blank line does nothing. Motion commands return
// once their animation has been fully rendered.
//
// ctx is checked before every command, including each command of each
// REPEAT iteration; a motion that has started always runs to completion.
// State changes made before a failure are kept.
func (in *Interpreter) Execute(ctx context.Context, line string) error {
	if in.turtle == nil {
		return &PreconditionError{Reason: "turtle not initialized"}
	}
	cmd, ok := Parse(line)
	if !ok {
		return nil
	}
	return in.run(ctx, cmd)
}

// run dispatches one command and wraps any failure with its mnemonic.
func (in *Interpreter) run(ctx context.Context, cmd Command) error {
	err := ctx.Err()
	if err == nil {
		if b, ok := builtins[cmd.Name]; ok {
			err = b.run(in, ctx, cmd)
		} else {
			err = &UnknownCommandError{Name: cmd.Name}
		}
	}
	if err != nil {
		var pe *PreconditionError
		if errors.Is(err, turtle.ErrDetached) && !errors.As(err, &pe) {
			err = &PreconditionError{Reason: "turtle detached from its canvas", Err: err}
		}
		return &CommandError{Mnemonic: cmd.Name, Err: err}
	}
	turtle.Logger().Debug("logo: executed", "command", cmd.String())
	return nil
}
