package tui

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss renderers for the navigator screen.
type styles struct {
	TitleBar  lipgloss.Style
	Border    lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Tag       lipgloss.Style
	LeafText  lipgloss.Style
	AttrHint  lipgloss.Style
	DetailKey lipgloss.Style
	DetailVal lipgloss.Style
	Dim       lipgloss.Style
}

func newStyles(colorEnabled bool) styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		bordered := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
		return styles{
			TitleBar:  plain,
			Border:    bordered,
			Cursor:    plain,
			Selected:  plain,
			Tag:       plain,
			LeafText:  plain,
			AttrHint:  plain,
			DetailKey: plain,
			DetailVal: plain,
			Dim:       plain,
		}
	}

	return styles{
		TitleBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4")).
			Bold(true).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Reverse(true),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		LeafText:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		AttrHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		DetailKey: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		DetailVal: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
