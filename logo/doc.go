// Package logo interprets line-oriented Logo commands against a turtle.
//
// # Commands
//
// One line is one command. Mnemonics are case-insensitive and most have a
// short alias:
//
//	FD n  BK n  RT n  LT n  HOME  SETXY x y  SETH n
//	PU  PD  PE  PPT  SETPC color  SETPENSIZE n
//	CS  HT  ST
//	REPEAT n [commands]  MAKE "name value  PR text
//
// Numeric arguments are lenient: a missing or malformed number counts as 0.
// The body of REPEAT may hold several commands; it is split using each
// command's argument count, and nested REPEATs are matched by brackets.
//
// # Errors
//
// Every failure is returned as a *CommandError naming the mnemonic that
// failed. The cause is a *SyntaxError, an *UnknownCommandError, a
// *PreconditionError or an error from the turtle itself; use errors.As to
// tell them apart.
//
// # Usage
//
//	dc := gg.NewContext(800, 600)
//	t := turtle.New(dc)
//	defer t.Close()
//
//	in := logo.New(logo.WithTurtle(t), logo.WithOutput(os.Stdout))
//	if err := in.Execute(ctx, "REPEAT 4 [FD 100 RT 90]"); err != nil {
//	    log.Fatal(err)
//	}
package logo
