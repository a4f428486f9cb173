// Package play runs the line-by-line game loop: read a guess, check it, score
// it and print the result until the player wins or leaves.
package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/lox/wordle/internal/display"
	"github.com/lox/wordle/internal/game"
	"github.com/lox/wordle/internal/words"
)

// LineReader supplies one line of input per call. *readline.Instance
// satisfies it; Readline returns readline.ErrInterrupt on Ctrl-C and io.EOF on
// Ctrl-D.
type LineReader interface {
	Readline() (string, error)
}

// Outcome is how a loop ended without error.
type Outcome int

const (
	OutcomeWon Outcome = iota + 1
	OutcomeInterrupted
	OutcomeEOF
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeEOF:
		return "eof"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Loop drives a single game from an input source to an output stream.
type Loop struct {
	dict     *words.Dictionary
	game     game.Game
	in       LineReader
	out      io.Writer
	render   *display.Renderer
	logger   *log.Logger
	keyboard game.Keyboard

	showKeyboard bool
}

// NewLoop wires a loop together. The game must already hold its answer.
func NewLoop(dict *words.Dictionary, g game.Game, in LineReader, out io.Writer, render *display.Renderer, logger *log.Logger) *Loop {
	return &Loop{
		dict:   dict,
		game:   g,
		in:     in,
		out:    out,
		render: render,
		logger: logger.WithPrefix("play"),
	}
}

// ShowKeyboard turns the letter summary after each guess on or off.
func (l *Loop) ShowKeyboard(show bool) {
	l.showKeyboard = show
}

// Run reads guesses until the game is won, the player interrupts, input ends
// or reading fails. Only a read failure is returned as an error.
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	l.logger.Info("Game started", "variant", l.game.Variant(), "dictionary", l.dict.Len())

	for {
		if ctx.Err() != nil {
			l.reveal()
			return OutcomeInterrupted, nil
		}

		line, err := l.in.Readline()
		switch {
		case err != nil && ctx.Err() != nil:
			// The reader was closed underneath us on shutdown.
			l.reveal()
			return OutcomeInterrupted, nil
		case errors.Is(err, readline.ErrInterrupt):
			l.println("Ctrl-C")
			l.reveal()
			return OutcomeInterrupted, nil
		case errors.Is(err, io.EOF):
			l.println("Ctrl-D")
			l.reveal()
			return OutcomeEOF, nil
		case err != nil:
			l.logger.Error("Failed to read input", "error", err)
			return 0, fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		word, err := Validate(l.dict, line)
		if err != nil {
			l.logger.Debug("Rejected guess", "input", line, "reason", err)
			l.println(l.render.Error.Render("E: " + Message(err)))
			continue
		}

		res := l.game.Guess(word)
		l.keyboard.Record(res)
		l.logger.Debug("Scored guess", "guess", word, "result", res.String(), "tries", l.game.Tries())

		l.println("  " + l.render.Result(res))
		if l.showKeyboard && !res.IsWinning() {
			l.println("  " + l.render.Keyboard(&l.keyboard))
		}

		if res.IsWinning() {
			l.logger.Info("Game won", "tries", l.game.Tries(), "elapsed", l.game.Elapsed())
			l.println(l.render.Success.Render(WinMessage(l.game)))
			return OutcomeWon, nil
		}
	}
}

// WinMessage congratulates the player with their attempt count and time.
func WinMessage(g game.Game) string {
	tries := "tries"
	if g.Tries() == 1 {
		tries = "try"
	}
	return fmt.Sprintf("Congratulations, you have won! (%d %s, %s)",
		g.Tries(), tries, g.Elapsed().Round(time.Second))
}

// RevealMessage tells a departing player what the answer was.
func RevealMessage(g game.Game) string {
	return fmt.Sprintf("The word was %s.", g.Answer())
}

func (l *Loop) reveal() {
	l.logger.Info("Game abandoned", "tries", l.game.Tries())
	l.println(l.render.Info.Render(RevealMessage(l.game)))
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}
