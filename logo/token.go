package logo

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// word is one token of a line. A bracketed group is a single word that
// spans from '[' to its matching ']', kept verbatim.
type word struct {
	text       string
	start, end int
	group      bool
	open       bool // group without its closing ']'
}

// fields splits src into words.
func fields(src string) []word {
	var out []word
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		if src[i] == '[' {
			depth := 0
			closed := false
			for i < len(src) && !closed {
				switch src[i] {
				case '[':
					depth++
				case ']':
					depth--
				}
				i++
				closed = depth == 0
			}
			out = append(out, word{text: src[start:i], start: start, end: i, group: true, open: !closed})
			continue
		}
		for i < len(src) {
			r, size := utf8.DecodeRuneInString(src[i:])
			if unicode.IsSpace(r) || src[i] == '[' {
				break
			}
			i += size
		}
		out = append(out, word{text: src[start:i], start: start, end: i})
	}
	return out
}

// Command is one parsed command.
type Command struct {
	// Name is the mnemonic as typed, upper-cased.
	Name string
	// Args are the raw argument words. A bracketed group is one word.
	Args []string
	// Rest is the verbatim source text of the arguments.
	Rest string

	args []word
}

// Parse splits one line into a command. It reports false for a blank line.
// Words past those a command consumes are kept in Args and ignored by the
// interpreter.
func Parse(line string) (Command, bool) {
	words := fields(line)
	if len(words) == 0 {
		return Command{}, false
	}
	return newCommand(line, words[0], words[1:]), true
}

func newCommand(src string, head word, args []word) Command {
	cmd := Command{Name: mnemonic(head.text), args: args}
	for _, a := range args {
		cmd.Args = append(cmd.Args, a.text)
	}
	if len(args) > 0 {
		cmd.Rest = src[args[0].start:args[len(args)-1].end]
	}
	return cmd
}

// String returns the command as it would be typed.
func (c Command) String() string {
	if c.Rest == "" {
		return c.Name
	}
	return c.Name + " " + c.Rest
}

// mnemonic upper-cases a command keyword.
func mnemonic(s string) string {
	return cases.Upper(language.Und).String(s)
}

// block returns the inner text of the bracketed group at argument i.
func (c Command) block(i int) (string, bool) {
	if i >= len(c.args) {
		return "", false
	}
	w := c.args[i]
	if !w.group || w.open {
		return "", false
	}
	return w.text[1 : len(w.text)-1], true
}

// splitBlock splits the body of a block into commands. arity reports how
// many words a command takes; a negative arity takes the rest of the body.
func splitBlock(body string, arity func(name string) int) []Command {
	words := fields(body)
	var cmds []Command
	for len(words) > 0 {
		n := arity(mnemonic(words[0].text))
		if n < 0 || n > len(words)-1 {
			n = len(words) - 1
		}
		cmds = append(cmds, newCommand(body, words[0], words[1:1+n]))
		words = words[1+n:]
	}
	return cmds
}
