package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/wordle/internal/display"
	"github.com/lox/wordle/internal/game"
	"github.com/lox/wordle/internal/play"
	"github.com/lox/wordle/internal/words"
)

// Model is the Bubble Tea model for a full-screen game.
type Model struct {
	dict   *words.Dictionary
	game   game.Game
	render *display.Renderer
	logger *log.Logger

	input        textinput.Model
	keyboard     game.Keyboard
	showKeyboard bool

	// State
	status    string
	statusErr bool
	history   []string
	outcome   play.Outcome
	quitting  bool

	width int
}

// NewModel creates a model for a game that already holds its answer.
func NewModel(dict *words.Dictionary, g game.Game, render *display.Renderer, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type a five letter word"
	ti.Focus()
	ti.CharLimit = words.Length * 2
	ti.Width = 20
	ti.Prompt = "> "
	ti.PromptStyle = render.Prompt

	return &Model{
		dict:   dict,
		game:   g,
		render: render,
		logger: logger.WithPrefix("tui"),
		input:  ti,
	}
}

// ShowKeyboard turns the letter summary on or off.
func (m *Model) ShowKeyboard(show bool) {
	m.showKeyboard = show
}

// Outcome reports how the program ended; zero while still running.
func (m *Model) Outcome() play.Outcome {
	return m.outcome
}

// Messages returns every status line shown so far, oldest first.
func (m *Model) Messages() []string {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, m.finish(play.OutcomeInterrupted, play.RevealMessage(m.game))
		case "ctrl+d":
			if m.input.Value() == "" {
				return m, m.finish(play.OutcomeEOF, play.RevealMessage(m.game))
			}
			return m, nil
		case "enter":
			value := m.input.Value()
			m.input.SetValue("")
			return m, m.submit(value)
		}

		if msg.Type == tea.KeyRunes {
			msg.Runes = upperRunes(msg.Runes)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates and scores one line of input.
func (m *Model) submit(value string) tea.Cmd {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	word, err := play.Validate(m.dict, value)
	if err != nil {
		m.logger.Debug("Rejected guess", "input", value, "reason", err)
		m.setStatus("E: "+play.Message(err), true)
		return nil
	}

	res := m.game.Guess(word)
	m.keyboard.Record(res)
	m.logger.Debug("Scored guess", "guess", word, "result", res.String())

	if res.IsWinning() {
		m.logger.Info("Game won", "tries", m.game.Tries(), "elapsed", m.game.Elapsed())
		return m.finish(play.OutcomeWon, play.WinMessage(m.game))
	}
	m.setStatus("", false)
	return nil
}

func (m *Model) finish(outcome play.Outcome, message string) tea.Cmd {
	m.outcome = outcome
	m.quitting = true
	m.setStatus(message, false)
	m.input.Blur()
	return tea.Quit
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	if s != "" {
		m.history = append(m.history, s)
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.render.Title.Render("WORDLE"))
	b.WriteString("\n\n")

	for _, res := range m.game.History() {
		b.WriteString("  ")
		b.WriteString(m.render.Result(res))
		b.WriteString("\n")
	}
	if len(m.game.History()) > 0 {
		b.WriteString("\n")
	}

	if m.showKeyboard {
		b.WriteString("  ")
		b.WriteString(m.render.Keyboard(&m.keyboard))
		b.WriteString("\n\n")
	}

	if m.status != "" {
		style := m.render.Info
		switch {
		case m.statusErr:
			style = m.render.Error
		case m.outcome == play.OutcomeWon:
			style = m.render.Success
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.render.Info.Render("Enter to guess • Esc or Ctrl+C to quit"))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func upperRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToUpper(r)
	}
	return out
}
