// Package tui renders scales and runs the interactive scale browser
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oisee/scalecli/pkg/note"
	"github.com/oisee/scalecli/pkg/theory"
)

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	PrevMode key.Binding
	NextMode key.Binding
	Spelling key.Binding
	Sevenths key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.NextMode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up},
		{k.PrevMode, k.NextMode},
		{k.Spelling, k.Sevenths},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Down:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "semitone down")),
	Up:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "semitone up")),
	PrevMode: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous mode")),
	NextMode: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next mode")),
	Spelling: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "sharps/flats")),
	Sevenths: key.NewBinding(key.WithKeys("7"), key.WithHelp("7", "triads/sevenths")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the scale browser state
type Model struct {
	Root     note.Note
	Mode     int // Index into theory.Modes()
	Spelling note.Spelling
	Sevenths bool

	Width  int
	Height int

	help help.Model
	log  *slog.Logger
}

// NewModel starts the browser on root in mode
func NewModel(root note.Note, mode theory.Mode, sevenths bool, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	m := Model{
		Root:     root,
		Spelling: note.SpellingOf(root),
		Sevenths: sevenths,
		Width:    80,
		Height:   24,
		help:     help.New(),
		log:      log,
	}
	for i, md := range theory.Modes() {
		if md.Name == mode.Name {
			m.Mode = i
		}
	}
	return m
}

// CurrentMode returns the selected mode
func (m Model) CurrentMode() theory.Mode {
	return theory.Modes()[m.Mode]
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.Down):
		m.Root = theory.Transpose(m.Root, -1, m.Spelling)

	case key.Matches(msg, keys.Up):
		m.Root = theory.Transpose(m.Root, 1, m.Spelling)

	case key.Matches(msg, keys.PrevMode):
		n := len(theory.Modes())
		m.Mode = (m.Mode + n - 1) % n

	case key.Matches(msg, keys.NextMode):
		m.Mode = (m.Mode + 1) % len(theory.Modes())

	case key.Matches(msg, keys.Spelling):
		if m.Spelling == note.Sharps {
			m.Spelling = note.Flats
		} else {
			m.Spelling = note.Sharps
		}
		// respell the current root in place
		m.Root = theory.Transpose(m.Root, 0, m.Spelling)

	case key.Matches(msg, keys.Sevenths):
		m.Sevenths = !m.Sevenths

	default:
		return m, nil
	}

	m.log.Debug("browser: state changed", "root", m.Root, "mode", m.CurrentMode().Name, "sevenths", m.Sevenths)
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(Render(NewView(m.Root, m.CurrentMode(), m.Sevenths)))
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}
