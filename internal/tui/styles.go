package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header      lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style

	tableHeader lipgloss.Style
	row         lipgloss.Style
	rowSelected lipgloss.Style

	statusActive   lipgloss.Style
	statusArchived lipgloss.Style

	modal  lipgloss.Style
	label  lipgloss.Style
	help   lipgloss.Style
	notice lipgloss.Style
}

// newStyles builds the style set for the light or dark preference.
func newStyles(dark bool) styles {
	accent := lipgloss.Color("25") // blue
	muted := lipgloss.Color("240")
	warn := lipgloss.Color("166")
	text := lipgloss.Color("235")
	if dark {
		accent = lipgloss.Color("39")
		muted = lipgloss.Color("245")
		text = lipgloss.Color("252")
	}

	return styles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		tabActive:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1),
		tabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),

		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(muted),
		row:         lipgloss.NewStyle().Foreground(text),
		rowSelected: lipgloss.NewStyle().Bold(true).Foreground(accent),

		statusActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		statusArchived: lipgloss.NewStyle().Foreground(muted),

		modal:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		label:  lipgloss.NewStyle().Bold(true).Foreground(muted),
		help:   lipgloss.NewStyle().Foreground(muted),
		notice: lipgloss.NewStyle().Bold(true).Foreground(warn),
	}
}
