package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/wordle/internal/play"
	"github.com/lox/wordle/internal/words"
)

type CheckCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

func (c *CheckCmd) Run() error {
	dict, err := words.Load()
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	return c.run(os.Stdout, dict)
}

func (c *CheckCmd) run(w io.Writer, dict *words.Dictionary) error {
	word, err := play.Validate(dict, c.Word)
	if err != nil {
		return fmt.Errorf("%s: %s", c.Word, play.Message(err))
	}
	fmt.Fprintf(w, "%s is a valid word\n", word)
	return nil
}
