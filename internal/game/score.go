package game

import (
	"fmt"
	"strings"

	"github.com/lox/wordle/internal/words"
)

// LetterScore is the feedback for a single guessed letter.
type LetterScore uint8

const (
	Absent LetterScore = iota
	PresentElsewhere
	Correct
)

func (s LetterScore) String() string {
	switch s {
	case Correct:
		return "correct"
	case PresentElsewhere:
		return "present"
	case Absent:
		return "absent"
	default:
		return fmt.Sprintf("LetterScore(%d)", uint8(s))
	}
}

// GuessResult pairs a guess with one score per letter position.
type GuessResult struct {
	Guess  words.Word
	Scores []LetterScore
}

// IsWinning reports whether every letter is Correct.
func (r GuessResult) IsWinning() bool {
	return IsWinning(r)
}

// String renders the result with plain markers: [C] correct, (C) present
// and a lower-case letter for absent.
func (r GuessResult) String() string {
	var b strings.Builder
	for i, score := range r.Scores {
		if i > 0 {
			b.WriteByte(' ')
		}
		letter := r.Guess[i]
		switch score {
		case Correct:
			fmt.Fprintf(&b, "[%c]", letter)
		case PresentElsewhere:
			fmt.Fprintf(&b, "(%c)", letter)
		default:
			fmt.Fprintf(&b, " %c ", letter+('a'-'A'))
		}
	}
	return b.String()
}

// IsWinning reports whether every letter of res is Correct. A result with no
// scores is not a win.
func IsWinning(res GuessResult) bool {
	if len(res.Scores) == 0 {
		return false
	}
	for _, s := range res.Scores {
		if s != Correct {
			return false
		}
	}
	return true
}

// Score labels each letter of guess against answer.
//
// Exact matches are taken first and their answer positions are consumed. Each
// remaining guess letter, left to right, then consumes the leftmost answer
// position that still holds the same letter, or is Absent if none is left.
//
// Score panics if the words differ in length: callers must validate input
// before it gets here.
func Score(guess, answer words.Word) GuessResult {
	if len(guess) != len(answer) {
		panic(fmt.Sprintf("game: score %q against %q: length mismatch %d != %d",
			guess, answer, len(guess), len(answer)))
	}

	n := len(answer)
	scores := make([]LetterScore, n)
	consumed := make([]bool, n)

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			scores[i] = Correct
			consumed[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if scores[i] == Correct {
			continue
		}
		scores[i] = Absent
		for j := 0; j < n; j++ {
			if !consumed[j] && answer[j] == guess[i] {
				scores[i] = PresentElsewhere
				consumed[j] = true
				break
			}
		}
	}

	return GuessResult{Guess: guess, Scores: scores}
}
