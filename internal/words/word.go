package words

import (
	"errors"
	"strings"
)

// Length is the number of letters in every playable word.
const Length = 5

var (
	ErrTooShort   = errors.New("too short")
	ErrTooLong    = errors.New("too long")
	ErrNotLetters = errors.New("only letters A-Z are allowed")
)

// Word is a canonical, upper-case word of exactly Length ASCII letters.
type Word string

// ParseWord normalises s into a Word. Surrounding whitespace is ignored and
// case is folded to upper.
func ParseWord(s string) (Word, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case len(w) < Length:
		return "", ErrTooShort
	case len(w) > Length:
		return "", ErrTooLong
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", ErrNotLetters
		}
	}
	return Word(w), nil
}

// MustParseWord is ParseWord for literals known to be valid.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic("words: invalid word literal " + s + ": " + err.Error())
	}
	return w
}

func (w Word) String() string {
	return string(w)
}
