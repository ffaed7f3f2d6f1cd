// Package tui renders the navigation state machine in the terminal using
// Bubble Tea. It only reads the view model the navigator produces; all
// XML-derived state lives behind the navigator and its explorer.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/xmlnav/pkg/config"
	"github.com/yaklabco/xmlnav/pkg/nav"
)

// chromeRows is the vertical space taken by the title, borders and help
// footer around the entry list.
const chromeRows = 5

// tickMsg drives the steady redraw cadence between input events.
type tickMsg time.Time

// Model is the Bubble Tea model wrapping a navigator.
type Model struct {
	nav    *nav.Navigator
	cfg    *config.Config
	keys   keyMap
	help   help.Model
	styles styles

	width   int
	height  int
	scroll  int
	started bool
}

// NewModel builds the TUI model. colorEnabled selects the styled or
// plain palette.
func NewModel(navigator *nav.Navigator, cfg *config.Config, colorEnabled bool) Model {
	helpModel := help.New()
	helpModel.ShowAll = cfg.ShowHelp

	return Model{
		nav:    navigator,
		cfg:    cfg,
		keys:   defaultKeyMap(),
		help:   helpModel,
		styles: newStyles(colorEnabled),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	interval := time.Duration(m.cfg.PollIntervalMS) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model. Every transition runs to completion before
// the next message is read, so no torn state is ever observable.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.nav.SetPageSize(m.listHeight())
		m.started = true
		return m, nil

	case tickMsg:
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.nav.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.nav.MoveDown()
		case key.Matches(msg, m.keys.PageUp):
			m.nav.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.nav.PageDown()
		case key.Matches(msg, m.keys.Home):
			m.nav.First()
		case key.Matches(msg, m.keys.End):
			m.nav.Last()
		case key.Matches(msg, m.keys.Descend):
			m.nav.Descend()
			m.scroll = 0
		case key.Matches(msg, m.keys.Ascend):
			m.nav.Ascend()
		case key.Matches(msg, m.keys.Detail):
			m.nav.ToggleDetail()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.scroll = clampScroll(m.scroll, m.nav.Selected(), m.nav.View(0).Count, m.listHeight())
		return m, nil
	}

	return m, nil
}

// listHeight is the number of entry rows that fit the current window.
func (m Model) listHeight() int {
	rows := m.height - chromeRows
	if m.nav.DetailOpen() {
		rows -= m.detailHeight()
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) detailHeight() int {
	return m.height / 3
}

// Run starts the program on the alternate screen and blocks until the
// user quits.
func Run(navigator *nav.Navigator, cfg *config.Config, colorEnabled bool) error {
	program := tea.NewProgram(
		NewModel(navigator, cfg, colorEnabled),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
