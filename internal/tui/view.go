package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/xmlnav/pkg/nav"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.started {
		return "loading..."
	}

	vm := m.nav.View(m.cfg.PreviewWidth)

	var b strings.Builder
	b.WriteString(m.renderTitle(vm.Path, vm.Tag, vm.Count))
	b.WriteString("\n")
	b.WriteString(m.renderList(vm))
	if vm.Detail != nil {
		b.WriteString("\n")
		b.WriteString(m.renderDetail(vm))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTitle(path []string, tag string, count int) string {
	crumb := strings.Join(path, " > ")
	if crumb == "" {
		if crumb = tag; crumb == "" {
			crumb = "(document)"
		}
	}
	title := fmt.Sprintf("%s  [%d children]", crumb, count)
	return m.styles.TitleBar.Width(m.width).Render(title)
}

// renderList draws the visible window of entries, keeping the selection
// on screen by sliding the scroll offset.
func (m Model) renderList(vm nav.ViewModel) string {
	rows := m.listHeight()
	scroll := clampScroll(m.scroll, vm.Selected, len(vm.Entries), rows)

	lines := make([]string, 0, rows)
	for i := scroll; i < len(vm.Entries) && i < scroll+rows; i++ {
		lines = append(lines, m.renderEntry(vm, i))
	}
	if len(vm.Entries) == 0 {
		lines = append(lines, m.styles.Dim.Render("  (no children)"))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	body := strings.Join(lines, "\n")
	return m.styles.Border.Width(maxInt(m.width-2, 1)).Render(body)
}

func (m Model) renderEntry(vm nav.ViewModel, i int) string {
	entry := vm.Entries[i]

	tag := m.styles.Tag.Render("<" + entry.Tag + ">")
	line := tag
	if entry.Text != "" {
		line += " " + m.styles.LeafText.Render(entry.Text)
	}
	if entry.AttrPreview != "" {
		line += " " + m.styles.AttrHint.Render(entry.AttrPreview)
	}

	if i == vm.Selected {
		return m.styles.Cursor.Render("> ") + m.styles.Selected.Render(line)
	}
	return "  " + line
}

func (m Model) renderDetail(vm nav.ViewModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		m.styles.DetailKey.Render("children:"),
		m.styles.DetailVal.Render(fmt.Sprintf("%d", vm.Detail.ChildCount)))
	b.WriteString(m.styles.DetailKey.Render("attributes:"))
	if len(vm.Detail.Attrs) == 0 {
		b.WriteString(" " + m.styles.Dim.Render("(none)"))
	} else {
		for _, attr := range vm.Detail.Attrs {
			b.WriteString("\n  ")
			b.WriteString(m.styles.DetailKey.Render(string(attr.Key)))
			b.WriteString("=")
			b.WriteString(m.styles.DetailVal.Render(`"` + string(attr.Value) + `"`))
		}
	}

	height := maxInt(m.detailHeight()-2, 1)
	body := lipgloss.NewStyle().MaxHeight(height).Render(b.String())
	return m.styles.Border.Width(maxInt(m.width-2, 1)).Render(body)
}

// clampScroll slides the window so the selection stays visible.
func clampScroll(scroll, selected, total, rows int) int {
	if selected < scroll {
		scroll = selected
	}
	if selected >= scroll+rows {
		scroll = selected - rows + 1
	}
	if scroll > total-rows {
		scroll = total - rows
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
