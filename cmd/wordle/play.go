package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wordle/cmd/wordle/shared"
	"github.com/lox/wordle/internal/config"
	"github.com/lox/wordle/internal/display"
	"github.com/lox/wordle/internal/game"
	"github.com/lox/wordle/internal/play"
	"github.com/lox/wordle/internal/randutil"
	"github.com/lox/wordle/internal/tui"
	"github.com/lox/wordle/internal/words"
)

type PlayCmd struct {
	Config     string `default:"${config_path}" help:"HCL config file"`
	Seed       int64  `default:"0" help:"Random seed for the answer (0 picks one)"`
	Theme      string `help:"Color theme (color|plain)"`
	Frontend   string `help:"Front end (line|tui)"`
	Variant    string `help:"Rule variant (normal)"`
	LogLevel   string `help:"Log level (debug|info|warn|error)"`
	LogFile    string `help:"Write a diagnostic log to this file"`
	NoKeyboard bool   `help:"Hide the letter summary"`
	Answer     string `hidden:"" help:"Fix the answer instead of drawing one"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := shared.SetupLogger(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer closeLog()

	dict, err := words.Load()
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	g, err := c.newGame(cfg, dict)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	render := display.NewRenderer(os.Stdout, cfg.UI.Theme)

	var outcome play.Outcome
	switch cfg.UI.Frontend {
	case config.FrontendTUI:
		outcome, err = runTUI(ctx, dict, g, render, logger, cfg.KeyboardEnabled())
	default:
		outcome, err = runLine(ctx, dict, g, render, logger, cfg)
	}
	if err != nil {
		return err
	}

	logger.Info("Game over", "outcome", outcome, "tries", g.Tries())
	return nil
}

// loadConfig reads the config file and lets flags override it.
func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.Theme != "" {
		cfg.UI.Theme = c.Theme
	}
	if c.Frontend != "" {
		cfg.UI.Frontend = c.Frontend
	}
	if c.Variant != "" {
		cfg.UI.Variant = c.Variant
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.NoKeyboard {
		show := false
		cfg.UI.ShowKeyboard = &show
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newGame picks the answer and starts a session.
func (c *PlayCmd) newGame(cfg *config.Config, dict *words.Dictionary) (game.Game, error) {
	variant, err := game.ParseVariant(cfg.UI.Variant)
	if err != nil {
		return nil, err
	}

	answer := dict.RandomWord(randutil.New(c.Seed))
	if c.Answer != "" {
		answer, err = play.Validate(dict, c.Answer)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %s", c.Answer, play.Message(err))
		}
	}

	return game.New(variant, answer, quartz.NewReal())
}

func runLine(ctx context.Context, dict *words.Dictionary, g game.Game, render *display.Renderer, logger *log.Logger, cfg *config.Config) (play.Outcome, error) {
	rl, err := play.NewReadline(play.ReadlineOptions{
		Prompt:      render.Prompt.Render("> "),
		HistoryFile: cfg.UI.HistoryFile,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to open terminal: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), render.Title.Render("WORDLE"))
	fmt.Fprintln(rl.Stdout(), render.Info.Render(
		fmt.Sprintf("Guess the %d letter word. Ctrl-C or Ctrl-D to give up.", words.Length)))

	loop := play.NewLoop(dict, g, rl, rl.Stdout(), render, logger)
	loop.ShowKeyboard(cfg.KeyboardEnabled())

	var outcome play.Outcome
	done := make(chan struct{})
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(done)
		var err error
		outcome, err = loop.Run(egCtx)
		return err
	})
	eg.Go(func() error {
		select {
		case <-egCtx.Done():
			// Unblock a pending Readline.
			return rl.Close()
		case <-done:
			return nil
		}
	})

	err = eg.Wait()
	return outcome, err
}

func runTUI(ctx context.Context, dict *words.Dictionary, g game.Game, render *display.Renderer, logger *log.Logger, showKeyboard bool) (play.Outcome, error) {
	model := tui.NewModel(dict, g, render, logger)
	model.ShowKeyboard(showKeyboard)

	program := tea.NewProgram(model)

	done := make(chan struct{})
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(done)
		_, err := program.Run()
		return err
	})
	eg.Go(func() error {
		select {
		case <-egCtx.Done():
			program.Quit()
		case <-done:
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}

	outcome := model.Outcome()
	if outcome == 0 {
		// Quit from outside the model, by signal.
		outcome = play.OutcomeInterrupted
	}
	return outcome, nil
}
