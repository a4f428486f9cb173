// Package config loads the optional HCL settings file for the game.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	ThemeColor = "color"
	ThemePlain = "plain"

	FrontendLine = "line"
	FrontendTUI  = "tui"
)

// Config is the complete game configuration.
type Config struct {
	UI  UISettings
	Log LogSettings
}

// UISettings controls how the game is presented.
type UISettings struct {
	Theme        string `hcl:"theme,optional"`
	Frontend     string `hcl:"frontend,optional"`
	Variant      string `hcl:"variant,optional"`
	ShowKeyboard *bool  `hcl:"show_keyboard,optional"`
	HistoryFile  string `hcl:"history_file,optional"`
}

// LogSettings controls the diagnostic log. An empty File discards it.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// fileConfig mirrors the file layout; both blocks may be omitted.
type fileConfig struct {
	UI  *UISettings  `hcl:"ui,block"`
	Log *LogSettings `hcl:"log,block"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	show := true
	return &Config{
		UI: UISettings{
			Theme:        ThemeColor,
			Frontend:     FrontendLine,
			Variant:      "normal",
			ShowKeyboard: &show,
		},
		Log: LogSettings{
			Level: "warn",
		},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wordle", "config.hcl")
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.UI != nil {
		if raw.UI.Theme != "" {
			cfg.UI.Theme = raw.UI.Theme
		}
		if raw.UI.Frontend != "" {
			cfg.UI.Frontend = raw.UI.Frontend
		}
		if raw.UI.Variant != "" {
			cfg.UI.Variant = raw.UI.Variant
		}
		if raw.UI.ShowKeyboard != nil {
			cfg.UI.ShowKeyboard = raw.UI.ShowKeyboard
		}
		cfg.UI.HistoryFile = raw.UI.HistoryFile
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			cfg.Log.Level = raw.Log.Level
		}
		cfg.Log.File = raw.Log.File
	}

	return cfg, nil
}

// Validate checks that every enumerated setting has a known value.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case ThemeColor, ThemePlain:
	default:
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	switch c.UI.Frontend {
	case FrontendLine, FrontendTUI:
	default:
		return fmt.Errorf("invalid frontend: %s", c.UI.Frontend)
	}

	if c.UI.Variant == "" {
		return fmt.Errorf("variant is required")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}

// KeyboardEnabled reports whether the letter summary is shown after guesses.
func (c *Config) KeyboardEnabled() bool {
	return c.UI.ShowKeyboard == nil || *c.UI.ShowKeyboard
}

// LogLevel returns the parsed log level, falling back to warn.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
