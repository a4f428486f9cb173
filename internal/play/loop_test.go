package play

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/coder/quartz"
	"github.com/lox/wordle/internal/display"
	"github.com/lox/wordle/internal/game"
	"github.com/lox/wordle/internal/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader returns each line in turn and then err (io.EOF if unset).
type scriptedReader struct {
	lines []string
	err   error
	reads int
}

func (s *scriptedReader) Readline() (string, error) {
	s.reads++
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// countingGame records what reaches the session.
type countingGame struct {
	game.Game
	guesses []words.Word
}

func (c *countingGame) Guess(w words.Word) game.GuessResult {
	c.guesses = append(c.guesses, w)
	return c.Game.Guess(w)
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	dict, err := words.Parse("CRANE\nREACT\nSPEED\nERASE\nDOILY\n")
	require.NoError(t, err)
	return dict
}

func newTestLoop(t *testing.T, in LineReader) (*Loop, *countingGame, *bytes.Buffer) {
	t.Helper()
	g := &countingGame{Game: game.NewNormalGame("CRANE", quartz.NewMock(t))}
	out := &bytes.Buffer{}
	loop := NewLoop(testDict(t), g, in, out, display.NewRenderer(out, display.ThemePlain), quietLogger())
	return loop, g, out
}

func TestLoopWin(t *testing.T) {
	in := &scriptedReader{lines: []string{"react", "crane"}}
	loop, g, out := newTestLoop(t, in)

	outcome, err := loop.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeWon, outcome)
	assert.Equal(t, 2, g.Tries())
	assert.Contains(t, out.String(), "(R) (E) [A] (C)  t ")
	assert.Contains(t, out.String(), "[C] [R] [A] [N] [E]")
	assert.Contains(t, out.String(), "Congratulations, you have won! (2 tries, 0s)")
	assert.Equal(t, 2, in.reads, "loop stops reading after the win")
}

func TestLoopRejectsBeforeScoring(t *testing.T) {
	in := &scriptedReader{lines: []string{"cran", "cranes", "abcde", "", "   ", "crane"}}
	loop, g, out := newTestLoop(t, in)

	outcome, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, outcome)

	assert.Equal(t, []words.Word{"CRANE"}, g.guesses, "only the valid guess reaches the game")
	assert.Equal(t, 1, g.Tries())

	text := out.String()
	assert.Contains(t, text, "E: Too short")
	assert.Contains(t, text, "E: Too long")
	assert.Contains(t, text, "E: Not a valid word")
	assert.Contains(t, text, "1 try,")
}

func TestLoopKeyboard(t *testing.T) {
	in := &scriptedReader{lines: []string{"react"}}
	loop, _, out := newTestLoop(t, in)
	loop.ShowKeyboard(true)

	outcome, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeEOF, outcome)
	assert.Contains(t, out.String(), "[A] B (C) D (E)")
}

func TestLoopQuitConditions(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    Outcome
		message string
	}{
		{name: "interrupt", err: readline.ErrInterrupt, want: OutcomeInterrupted, message: "Ctrl-C"},
		{name: "end of input", err: io.EOF, want: OutcomeEOF, message: "Ctrl-D"},
		{name: "wrapped end of input", err: errors.Join(io.EOF), want: OutcomeEOF, message: "Ctrl-D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &scriptedReader{lines: []string{"react"}, err: tt.err}
			loop, g, out := newTestLoop(t, in)

			outcome, err := loop.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, 1, g.Tries())
			assert.Contains(t, out.String(), tt.message)
			assert.Contains(t, out.String(), "The word was CRANE.")
		})
	}
}

func TestLoopReadError(t *testing.T) {
	boom := errors.New("terminal went away")
	in := &scriptedReader{err: boom}
	loop, _, _ := newTestLoop(t, in)

	_, err := loop.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestLoopCancelledContext(t *testing.T) {
	in := &scriptedReader{lines: []string{"crane"}}
	loop, g, out := newTestLoop(t, in)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := loop.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInterrupted, outcome)
	assert.Zero(t, g.Tries())
	assert.Zero(t, in.reads)
	assert.Contains(t, out.String(), "The word was CRANE.")
}

// cancellingReader cancels the context and then fails, as a closed terminal
// does during shutdown.
type cancellingReader struct {
	cancel context.CancelFunc
}

func (c *cancellingReader) Readline() (string, error) {
	c.cancel()
	return "", errors.New("readline: closed")
}

func TestLoopReadErrorAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop, _, out := newTestLoop(t, &cancellingReader{cancel: cancel})

	outcome, err := loop.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInterrupted, outcome)
	assert.Contains(t, out.String(), "The word was CRANE.")
}

func TestWinMessage(t *testing.T) {
	clock := quartz.NewMock(t)
	g := game.NewNormalGame("CRANE", clock)
	clock.Advance(83 * time.Second).MustWait(context.Background())
	g.Guess("CRANE")

	assert.Equal(t, "Congratulations, you have won! (1 try, 1m23s)", WinMessage(g))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "won", OutcomeWon.String())
	assert.Equal(t, "interrupted", OutcomeInterrupted.String())
	assert.Equal(t, "eof", OutcomeEOF.String())
	assert.Equal(t, "Outcome(0)", Outcome(0).String())
}
