package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/xmlnav/pkg/config"
	"github.com/yaklabco/xmlnav/pkg/explore"
	"github.com/yaklabco/xmlnav/pkg/nav"
)

const sampleDoc = `<library>
  <book id="1"><title>First</title></book>
  <book id="2"><title>Second</title></book>
  <shelf/>
</library>`

func newTestModel(t *testing.T, doc string) Model {
	t.Helper()

	navigator := nav.New(explore.New([]byte(doc)))
	model := NewModel(navigator, config.Default(), false)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	sized, ok := updated.(Model)
	require.True(t, ok)
	return sized
}

func keyPress(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func TestModelQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, sampleDoc)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, sampleDoc)

	m = keyPress(t, m, "enter")
	vm := m.nav.View(0)
	assert.Equal(t, []string{"library"}, vm.Path)
	assert.Equal(t, 3, vm.Count)

	m = keyPress(t, m, "j", "j")
	assert.Equal(t, 2, m.nav.Selected())

	m = keyPress(t, m, "k")
	assert.Equal(t, 1, m.nav.Selected())

	m = keyPress(t, m, "enter")
	vm = m.nav.View(0)
	assert.Equal(t, []string{"library", "book"}, vm.Path)
	assert.Equal(t, 1, vm.Count)

	m = keyPress(t, m, "backspace")
	assert.Equal(t, 1, m.nav.Selected())
}

func TestModelDetailToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, sampleDoc)
	m = keyPress(t, m, "enter")

	m = keyPress(t, m, " ")
	assert.True(t, m.nav.DetailOpen())

	m = keyPress(t, m, " ")
	assert.False(t, m.nav.DetailOpen())
}

func TestModelViewContents(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, sampleDoc)
	m = keyPress(t, m, "enter")

	out := m.View()
	assert.Contains(t, out, "library")
	assert.Contains(t, out, "[3 children]")
	assert.Contains(t, out, "<book>")
	assert.Contains(t, out, "<shelf>")
	assert.Contains(t, out, `id="1"`)
}

func TestModelViewDetail(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, sampleDoc)
	m = keyPress(t, m, "enter", " ")

	out := m.View()
	assert.Contains(t, out, "children:")
	assert.Contains(t, out, "attributes:")
}

func TestModelViewBeforeSize(t *testing.T) {
	t.Parallel()

	navigator := nav.New(explore.New([]byte(sampleDoc)))
	m := NewModel(navigator, config.Default(), false)

	assert.Equal(t, "loading...", m.View())
}

func TestModelEmptyLevel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, `<root><leaf/></root>`)
	m = keyPress(t, m, "enter", "enter")

	out := m.View()
	assert.Contains(t, out, "(no children)")
}

func TestModelHelpToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, sampleDoc)
	assert.True(t, m.help.ShowAll)

	m = keyPress(t, m, "?")
	assert.False(t, m.help.ShowAll)
}

func TestModelResizeUpdatesPageSize(t *testing.T) {
	t.Parallel()

	doc := "<root>" + strings.Repeat("<item/>", 40) + "</root>"
	m := newTestModel(t, doc)
	m = keyPress(t, m, "enter")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = updated.(Model)

	m = keyPress(t, m, "pgdown")
	assert.Equal(t, m.listHeight(), m.nav.Selected())
}

func TestClampScroll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scroll   int
		selected int
		total    int
		rows     int
		want     int
	}{
		{name: "selection visible", scroll: 0, selected: 3, total: 10, rows: 5, want: 0},
		{name: "selection below window", scroll: 0, selected: 7, total: 10, rows: 5, want: 3},
		{name: "selection above window", scroll: 5, selected: 2, total: 10, rows: 5, want: 2},
		{name: "window past end", scroll: 9, selected: 9, total: 10, rows: 5, want: 5},
		{name: "fewer rows than window", scroll: 0, selected: 1, total: 3, rows: 5, want: 0},
		{name: "empty list", scroll: 0, selected: 0, total: 0, rows: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clampScroll(tt.scroll, tt.selected, tt.total, tt.rows))
		})
	}
}
