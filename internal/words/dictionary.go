// Package words provides the playable dictionary: a fixed list of five-letter
// words bundled into the binary at build time.
//
// A Dictionary is built once at startup and is read-only afterwards, so it can
// be shared freely between the game session and the input validator.
//
//	dict, err := words.Load()
//	if err != nil {
//	    // the word list is broken, there is no game to play
//	}
//	answer := dict.RandomWord(randutil.New(seed))
//	ok := dict.Contains("crane")
package words

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed words.txt
var embedded string

// ErrEmpty is returned when a word list contains no words at all.
var ErrEmpty = errors.New("words: word list is empty")

// MalformedError reports a word list line that is not a valid Word.
type MalformedError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("words: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Source is the random source used to pick answers. *math/rand/v2.Rand
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Dictionary is an immutable, ordered set of distinct words.
type Dictionary struct {
	list []Word
	set  map[Word]struct{}
}

// Load parses the word list embedded in the binary.
func Load() (*Dictionary, error) {
	return Parse(embedded)
}

// Parse builds a Dictionary from a newline-delimited list. Blank lines are
// skipped and duplicates keep their first position; any other line that is not
// a valid Word fails the whole load.
func Parse(blob string) (*Dictionary, error) {
	d := &Dictionary{set: make(map[Word]struct{})}

	for i, line := range strings.Split(blob, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		w, err := ParseWord(line)
		if err != nil {
			return nil, &MalformedError{Line: i + 1, Text: line, Err: err}
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}

	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Contains reports whether candidate, compared case-insensitively, is in the
// dictionary.
func (d *Dictionary) Contains(candidate string) bool {
	_, ok := d.set[Word(strings.ToUpper(strings.TrimSpace(candidate)))]
	return ok
}

// RandomWord returns a uniformly chosen word, drawing once from rng.
func (d *Dictionary) RandomWord(rng Source) Word {
	return d.list[rng.IntN(len(d.list))]
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.list)
}

// Words returns a copy of the words in load order.
func (d *Dictionary) Words() []Word {
	out := make([]Word, len(d.list))
	copy(out, d.list)
	return out
}
