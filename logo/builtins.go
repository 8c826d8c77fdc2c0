package logo

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/turtle"
)

// Category groups commands in help listings.
type Category string

const (
	CategoryMovement Category = "Movement"
	CategoryPen      Category = "Pen Control"
	CategoryScreen   Category = "Screen Control"
	CategoryControl  Category = "Control"
)

// builtin is one command. arity is the number of words it takes when
// commands are split out of a REPEAT body; -1 takes the rest of the body.
type builtin struct {
	names    []string // canonical name first
	usage    string
	summary  string
	category Category
	arity    int
	run      func(in *Interpreter, ctx context.Context, cmd Command) error
}

// builtins maps every mnemonic and alias to its command. It is filled in
// init because REPEAT refers back to the dispatcher.
var (
	builtins map[string]*builtin
	ordered  []*builtin
)

func init() {
	builtins = make(map[string]*builtin)
	for _, b := range []*builtin{
		{
			names: []string{"FORWARD", "FD"}, usage: "FD n", summary: "Forward n steps",
			category: CategoryMovement, arity: 1,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				return in.turtle.Forward(cmd.num(0))
			},
		},
		{
			names: []string{"BACKWARD", "BK", "BACK"}, usage: "BK n", summary: "Backward n steps",
			category: CategoryMovement, arity: 1,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				return in.turtle.Backward(cmd.num(0))
			},
		},
		{
			names: []string{"RIGHT", "RT"}, usage: "RT n", summary: "Right turn n degrees",
			category: CategoryMovement, arity: 1,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				return in.turtle.Right(cmd.num(0))
			},
		},
		{
			names: []string{"LEFT", "LT"}, usage: "LT n", summary: "Left turn n degrees",
			category: CategoryMovement, arity: 1,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				return in.turtle.Left(cmd.num(0))
			},
		},
		{
			names: []string{"HOME"}, usage: "HOME", summary: "Return to center",
			category: CategoryMovement,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.Home()
			},
		},
		{
			names: []string{"SETXY"}, usage: "SETXY x y", summary: "Move to coordinates",
			category: CategoryMovement, arity: 2,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				return in.turtle.SetXY(cmd.num(0), cmd.num(1))
			},
		},
		{
			names: []string{"SETHEADING", "SETH"}, usage: "SETH n", summary: "Set heading to n degrees",
			category: CategoryMovement, arity: 1,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				return in.turtle.SetHeading(cmd.num(0))
			},
		},
		{
			names: []string{"PENUP", "PU"}, usage: "PU", summary: "Pen up (stop drawing)",
			category: CategoryPen,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.PenUp()
			},
		},
		{
			names: []string{"PENDOWN", "PD"}, usage: "PD", summary: "Pen down (start drawing)",
			category: CategoryPen,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.PenDown()
			},
		},
		{
			names: []string{"PENERASE", "PE"}, usage: "PE", summary: "Pen erase mode",
			category: CategoryPen,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.PenErase()
			},
		},
		{
			names: []string{"PENPAINT", "PPT"}, usage: "PPT", summary: "Pen paint mode",
			category: CategoryPen,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.PenPaint()
			},
		},
		{
			names: []string{"SETPENCOLOR", "SETPC"}, usage: "SETPC color", summary: "Set pen color",
			category: CategoryPen, arity: 1,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				if len(cmd.Args) == 0 {
					return nil
				}
				return in.turtle.SetPenColor(cmd.Args[0])
			},
		},
		{
			names: []string{"SETPENSIZE", "SETSW"}, usage: "SETPENSIZE n", summary: "Set pen size",
			category: CategoryPen, arity: 1,
			run: func(in *Interpreter, _ context.Context, cmd Command) error {
				return in.turtle.SetPenSize(cmd.num(0))
			},
		},
		{
			names: []string{"CLEARSCREEN", "CS"}, usage: "CS", summary: "Clear screen",
			category: CategoryScreen,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.ClearScreen()
			},
		},
		{
			names: []string{"HIDETURTLE", "HT"}, usage: "HT", summary: "Hide turtle",
			category: CategoryScreen,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.Hide()
			},
		},
		{
			names: []string{"SHOWTURTLE", "ST"}, usage: "ST", summary: "Show turtle",
			category: CategoryScreen,
			run: func(in *Interpreter, _ context.Context, _ Command) error {
				return in.turtle.Show()
			},
		},
		{
			names: []string{"REPEAT"}, usage: "REPEAT n [commands]", summary: "Repeat commands n times",
			category: CategoryControl, arity: 2,
			run: (*Interpreter).repeat,
		},
		{
			names: []string{"MAKE"}, usage: `MAKE "var value`, summary: "Create variable",
			category: CategoryControl, arity: 2,
			run: (*Interpreter).makeVar,
		},
		{
			names: []string{"PRINT", "PR"}, usage: "PR text", summary: "Print text",
			category: CategoryControl, arity: -1,
			run: (*Interpreter).printText,
		},
	} {
		ordered = append(ordered, b)
		for _, name := range b.names {
			builtins[name] = b
		}
	}
}

// arity returns how many words the command name takes in a block.
// Unknown names take none, so the dispatcher reports them.
func arity(name string) int {
	if b, ok := builtins[name]; ok {
		return b.arity
	}
	return 0
}

var repeatCount = regexp.MustCompile(`^\d+$`)

func (in *Interpreter) repeat(ctx context.Context, cmd Command) error {
	body, ok := cmd.block(1)
	if len(cmd.Args) < 2 || !repeatCount.MatchString(cmd.Args[0]) || !ok {
		return &SyntaxError{Msg: "invalid REPEAT syntax, use: REPEAT n [commands]"}
	}
	n, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return &SyntaxError{Msg: fmt.Sprintf("invalid REPEAT count %s", cmd.Args[0])}
	}
	cmds := splitBlock(body, arity)
	for i := 0; i < n; i++ {
		for _, c := range cmds {
			if err := in.run(ctx, c); err != nil {
				return err
			}
		}
	}
	return nil
}

var makeArgs = regexp.MustCompile(`(?s)^"?(\w+)"?\s+(.+)$`)

func (in *Interpreter) makeVar(_ context.Context, cmd Command) error {
	m := makeArgs.FindStringSubmatch(cmd.Rest)
	if m == nil {
		return &SyntaxError{Msg: `invalid MAKE syntax, use: MAKE "var value`}
	}
	name, v := m[1], valueOf(strings.TrimSpace(m[2]))
	in.vars.Set(name, v)
	turtle.Logger().Debug("logo: variable set", "name", name, "value", v.String())
	return nil
}

func (in *Interpreter) printText(_ context.Context, cmd Command) error {
	text := strings.Join(cmd.Args, " ")
	turtle.Logger().Debug("logo: print", "text", text)
	_, err := fmt.Fprintln(in.out, text)
	return err
}

// HelpEntry describes one command for help listings.
type HelpEntry struct {
	Usage    string
	Summary  string
	Names    []string
	Category Category
}

// Help lists every command in a stable order.
func Help() []HelpEntry {
	entries := make([]HelpEntry, 0, len(ordered))
	for _, b := range ordered {
		entries = append(entries, HelpEntry{
			Usage:    b.usage,
			Summary:  b.summary,
			Names:    append([]string(nil), b.names...),
			Category: b.category,
		})
	}
	return entries
}
