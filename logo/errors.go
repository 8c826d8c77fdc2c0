package logo

import "fmt"

// SyntaxError reports a malformed REPEAT or MAKE.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// UnknownCommandError reports a mnemonic that names no command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Name
}

// PreconditionError reports a command run without an attached turtle.
type PreconditionError struct {
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// CommandError wraps any failure of a command with its mnemonic.
type CommandError struct {
	Mnemonic string
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("executing %s: %v", e.Mnemonic, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
