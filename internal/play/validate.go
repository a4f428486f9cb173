package play

import (
	"errors"

	"github.com/lox/wordle/internal/words"
)

// ErrNotAWord rejects input of the right length that is not in the dictionary.
var ErrNotAWord = errors.New("not a valid word")

// Validate checks a line of player input before it is allowed anywhere near
// the game. Length is checked first, then dictionary membership.
func Validate(dict *words.Dictionary, input string) (words.Word, error) {
	w, err := words.ParseWord(input)
	switch {
	case errors.Is(err, words.ErrTooShort), errors.Is(err, words.ErrTooLong):
		return "", err
	case err != nil:
		return "", ErrNotAWord
	case !dict.Contains(string(w)):
		return "", ErrNotAWord
	}
	return w, nil
}

// Message is the text shown to the player for a validation error.
func Message(err error) string {
	switch {
	case errors.Is(err, words.ErrTooShort):
		return "Too short"
	case errors.Is(err, words.ErrTooLong):
		return "Too long"
	case errors.Is(err, ErrNotAWord):
		return "Not a valid word"
	default:
		return err.Error()
	}
}
