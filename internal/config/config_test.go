package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.KeyboardEnabled())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	src := `
ui {
  theme         = "plain"
  frontend      = "tui"
  show_keyboard = false
  history_file  = "/tmp/wordle_history"
}

log {
  level = "debug"
  file  = "wordle.log"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ThemePlain, cfg.UI.Theme)
	assert.Equal(t, FrontendTUI, cfg.UI.Frontend)
	assert.Equal(t, "normal", cfg.UI.Variant)
	assert.False(t, cfg.KeyboardEnabled())
	assert.Equal(t, "/tmp/wordle_history", cfg.UI.HistoryFile)
	assert.Equal(t, "wordle.log", cfg.Log.File)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestParsePartialBlocks(t *testing.T) {
	cfg, err := Parse([]byte(`log { level = "error" }`), "partial.hcl")
	require.NoError(t, err)

	assert.Equal(t, ThemeColor, cfg.UI.Theme)
	assert.Equal(t, FrontendLine, cfg.UI.Frontend)
	assert.True(t, cfg.KeyboardEnabled())
	assert.Equal(t, log.ErrorLevel, cfg.LogLevel())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "syntax", src: `ui {`, want: "failed to parse HCL file"},
		{name: "unknown attribute", src: `ui { colour = "red" }`, want: "failed to decode HCL"},
		{name: "wrong type", src: `ui { show_keyboard = "sometimes" }`, want: "failed to decode HCL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad theme", mutate: func(c *Config) { c.UI.Theme = "neon" }, wantErr: "invalid theme"},
		{name: "bad frontend", mutate: func(c *Config) { c.UI.Frontend = "web" }, wantErr: "invalid frontend"},
		{name: "missing variant", mutate: func(c *Config) { c.UI.Variant = "" }, wantErr: "variant is required"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
