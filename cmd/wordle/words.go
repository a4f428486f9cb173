package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/wordle/internal/randutil"
	"github.com/lox/wordle/internal/words"
)

type WordsCmd struct {
	Random bool  `help:"Print a random word instead of statistics"`
	Seed   int64 `default:"0" help:"Random seed (0 picks one)"`
}

func (c *WordsCmd) Run() error {
	dict, err := words.Load()
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	return c.run(os.Stdout, dict)
}

func (c *WordsCmd) run(w io.Writer, dict *words.Dictionary) error {
	if c.Random {
		fmt.Fprintln(w, dict.RandomWord(randutil.New(c.Seed)))
		return nil
	}

	var letters [26]int
	for _, word := range dict.Words() {
		for i := 0; i < len(word); i++ {
			letters[word[i]-'A']++
		}
	}

	fmt.Fprintf(w, "words:   %d\n", dict.Len())
	fmt.Fprintf(w, "length:  %d\n", words.Length)
	fmt.Fprint(w, "letters:")
	for i, n := range letters {
		fmt.Fprintf(w, " %c=%d", 'A'+i, n)
	}
	fmt.Fprintln(w)
	return nil
}
