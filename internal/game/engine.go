package game

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/wordle/internal/words"
)

// Variant names a rule set.
type Variant string

const (
	VariantNormal Variant = "normal"
)

// Variants lists every playable variant.
var Variants = []Variant{VariantNormal}

// ParseVariant converts a name into a Variant.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", name)
}

// Game is one play-through against a single hidden answer.
type Game interface {
	// Guess scores a validated word and counts it as an attempt.
	Guess(guess words.Word) GuessResult
	// Tries is the number of guesses accepted so far.
	Tries() int
	// Won reports whether a guess has matched the answer.
	Won() bool
	// History returns every result in the order it was guessed.
	History() []GuessResult
	// Elapsed is the time played, frozen once the game is won.
	Elapsed() time.Duration
	// Answer returns the hidden word.
	Answer() words.Word
	Variant() Variant
}

// New creates a game of the given variant. The clock stamps start and finish
// times.
func New(variant Variant, answer words.Word, clock quartz.Clock) (Game, error) {
	switch variant {
	case VariantNormal:
		return NewNormalGame(answer, clock), nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

// NormalGame is the classic rule set: any dictionary word may be guessed and
// there is no limit on attempts.
type NormalGame struct {
	answer  words.Word
	tries   int
	won     bool
	history []GuessResult

	clock    quartz.Clock
	started  time.Time
	finished time.Time
}

var _ Game = (*NormalGame)(nil)

// NewNormalGame starts a session for answer.
func NewNormalGame(answer words.Word, clock quartz.Clock) *NormalGame {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &NormalGame{
		answer:  answer,
		clock:   clock,
		started: clock.Now(),
	}
}

func (g *NormalGame) Guess(guess words.Word) GuessResult {
	res := Score(guess, g.answer)
	g.tries++
	g.history = append(g.history, res)

	if res.IsWinning() && !g.won {
		g.won = true
		g.finished = g.clock.Now()
	}
	return res
}

func (g *NormalGame) Tries() int {
	return g.tries
}

func (g *NormalGame) Won() bool {
	return g.won
}

func (g *NormalGame) History() []GuessResult {
	out := make([]GuessResult, len(g.history))
	copy(out, g.history)
	return out
}

func (g *NormalGame) Elapsed() time.Duration {
	if g.won {
		return g.finished.Sub(g.started)
	}
	return g.clock.Since(g.started)
}

func (g *NormalGame) Answer() words.Word {
	return g.answer
}

func (g *NormalGame) Variant() Variant {
	return VariantNormal
}
