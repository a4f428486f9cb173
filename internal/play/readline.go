package play

import (
	"io"
	"unicode"

	"github.com/chzyer/readline"
)

// ReadlineOptions configures the terminal line editor.
type ReadlineOptions struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// NewReadline opens a line editor that upper-cases letters as they are typed.
func NewReadline(opts ReadlineOptions) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:              opts.Prompt,
		HistoryFile:         opts.HistoryFile,
		InterruptPrompt:     "^C",
		EOFPrompt:           "^D",
		FuncFilterInputRune: upperCase,
		Stdin:               opts.Stdin,
		Stdout:              opts.Stdout,
	})
}

func upperCase(r rune) (rune, bool) {
	return unicode.ToUpper(r), true
}
