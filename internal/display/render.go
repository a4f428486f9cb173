// Package display turns game results into terminal text.
//
// The color theme gives each letter score its own bold foreground (green for
// correct, yellow for present, red for absent). The plain theme uses bracket
// markers instead so the three scores stay distinguishable without color.
package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/wordle/internal/game"
	"github.com/muesli/termenv"
)

const (
	ThemeColor = "color"
	ThemePlain = "plain"
)

// Renderer formats results, keyboards and messages for one output stream.
type Renderer struct {
	theme string
	lr    *lipgloss.Renderer

	correct lipgloss.Style
	present lipgloss.Style
	absent  lipgloss.Style
	unknown lipgloss.Style

	Title   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Prompt  lipgloss.Style
}

// NewRenderer builds a renderer for out. The plain theme forces the ASCII
// color profile regardless of what the terminal supports.
func NewRenderer(out io.Writer, theme string) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if theme != ThemeColor {
		theme = ThemePlain
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		theme: theme,
		lr:    lr,

		correct: lr.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		present: lr.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		absent:  lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		unknown: lr.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),

		Title: lr.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Success: lr.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Info:    lr.NewStyle().Foreground(lipgloss.Color("#626262")),
		Prompt:  lr.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
	}
}

// SetColorProfile overrides the detected terminal profile. Only meaningful
// for the color theme.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	if r.theme == ThemeColor {
		r.lr.SetColorProfile(p)
	}
}

// Theme returns ThemeColor or ThemePlain.
func (r *Renderer) Theme() string {
	return r.theme
}

// Result renders one guess.
func (r *Renderer) Result(res game.GuessResult) string {
	if r.theme == ThemePlain {
		return res.String()
	}

	var b strings.Builder
	for i, score := range res.Scores {
		b.WriteString(r.styleFor(score).Render(string(res.Guess[i])))
	}
	return b.String()
}

// Keyboard renders the alphabet with each guessed letter marked by its best
// score so far.
func (r *Renderer) Keyboard(k *game.Keyboard) string {
	parts := make([]string, 0, 26)
	for letter := byte('A'); letter <= 'Z'; letter++ {
		score, known := k.Lookup(letter)
		parts = append(parts, r.key(letter, score, known))
	}
	sep := ""
	if r.theme == ThemePlain {
		sep = " "
	}
	return strings.Join(parts, sep)
}

func (r *Renderer) key(letter byte, score game.LetterScore, known bool) string {
	s := string(letter)
	if r.theme == ThemePlain {
		switch {
		case !known:
			return s
		case score == game.Correct:
			return "[" + s + "]"
		case score == game.PresentElsewhere:
			return "(" + s + ")"
		default:
			return "-"
		}
	}
	if !known {
		return r.unknown.Render(s)
	}
	return r.styleFor(score).Render(s)
}

func (r *Renderer) styleFor(score game.LetterScore) lipgloss.Style {
	switch score {
	case game.Correct:
		return r.correct
	case game.PresentElsewhere:
		return r.present
	default:
		return r.absent
	}
}
