package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/wordle/internal/display"
	"github.com/lox/wordle/internal/game"
	"github.com/lox/wordle/internal/words"
)

type ScoreCmd struct {
	Guess  string `arg:"" help:"Guessed word"`
	Answer string `arg:"" help:"Answer to score against"`
	Theme  string `default:"color" help:"Color theme (color|plain)"`
}

func (c *ScoreCmd) Run() error {
	return c.run(os.Stdout, display.NewRenderer(os.Stdout, c.Theme))
}

func (c *ScoreCmd) run(w io.Writer, render *display.Renderer) error {
	guess, err := words.ParseWord(c.Guess)
	if err != nil {
		return fmt.Errorf("guess %q: %w", c.Guess, err)
	}
	answer, err := words.ParseWord(c.Answer)
	if err != nil {
		return fmt.Errorf("answer %q: %w", c.Answer, err)
	}

	res := game.Score(guess, answer)
	fmt.Fprintln(w, render.Result(res))
	for i, s := range res.Scores {
		fmt.Fprintf(w, "%c %s\n", res.Guess[i], s)
	}
	if res.IsWinning() {
		fmt.Fprintln(w, render.Success.Render("winning guess"))
	}
	return nil
}
