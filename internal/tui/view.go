package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/reportdesk/internal/models"
	"github.com/dmitrijs2005/reportdesk/internal/repositories/reports"
)

const (
	titleColWidth = 24
	descColWidth  = 40
	dateColWidth  = 10
)

func truncate(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	if w <= 1 {
		return string(runes[:w])
	}
	return string(runes[:w-1]) + "…"
}

func pad(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func (m Model) View() string {
	var body string
	switch {
	case m.modal == modalForm:
		body = m.viewForm()
	case m.modal == modalConfirmDelete:
		body = m.viewConfirmDelete()
	case m.view == viewSettings:
		body = m.viewSettings()
	default:
		body = m.viewReports()
	}

	return strings.Join([]string{m.viewTabs(), body, m.viewFooter()}, "\n\n")
}

func (m Model) viewTabs() string {
	reportsTab := m.styles.tabInactive.Render("Reports")
	settingsTab := m.styles.tabInactive.Render("Settings")
	if m.view == viewSettings {
		settingsTab = m.styles.tabActive.Render("Settings")
	} else {
		reportsTab = m.styles.tabActive.Render("Reports")
	}
	return m.styles.header.Render("ReportDesk") + " " + reportsTab + " " + settingsTab
}

func (m Model) viewReports() string {
	var b strings.Builder

	filter := string(m.statusFilter)
	if m.statusFilter == reports.FilterAll || m.statusFilter == "" {
		filter = "all"
	}
	b.WriteString(m.search.View())
	b.WriteString("   ")
	b.WriteString(m.styles.label.Render("Status: " + filter))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.help.Render("Loading..."))
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString(m.styles.help.Render("No reports. Press n to create one."))
		return b.String()
	}

	header := pad("Title", titleColWidth) + pad("Description", descColWidth) +
		pad("Date", dateColWidth) + "Status"
	b.WriteString(m.styles.tableHeader.Render(header))
	b.WriteString("\n")

	for i, item := range m.items {
		status := m.styles.statusActive.Render(string(item.Status))
		if item.Status == models.StatusArchived {
			status = m.styles.statusArchived.Render(string(item.Status))
		}
		line := pad(truncate(item.Title, titleColWidth-2), titleColWidth) +
			pad(truncate(item.Description, descColWidth-2), descColWidth) +
			pad(item.Date.Format("2006-01-02"), dateColWidth) +
			status

		if i == m.cursor {
			b.WriteString(m.styles.rowSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewForm() string {
	title := "Create Report"
	if m.form.isEdit() {
		title = "Edit Report"
	}

	statusLine := string(m.form.status)
	if m.form.focus == fieldStatus {
		statusLine = "◂ " + statusLine + " ▸"
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.label.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.form.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.label.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.form.description.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.label.Render("Status: "))
	b.WriteString(statusLine)
	if m.saving {
		b.WriteString("\n\n")
		b.WriteString(m.styles.help.Render("Saving..."))
	}

	return m.styles.modal.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	title := m.deleteID
	for _, it := range m.items {
		if it.Id == m.deleteID {
			title = it.Title
			break
		}
	}
	content := fmt.Sprintf("Delete report %q?\n\n%s",
		truncate(title, 40),
		m.styles.help.Render("y: delete    n: cancel"))
	return m.styles.modal.Render(content)
}

func (m Model) viewSettings() string {
	rows := []struct {
		label string
		value bool
	}{
		{"Email Notifications", m.prefs.EmailNotifications},
		{"Dark Mode", m.prefs.DarkMode},
		{"Auto Save", m.prefs.AutoSave},
	}

	var b strings.Builder
	for i, row := range rows {
		mark := "[ ]"
		if row.value {
			mark = "[x]"
		}
		line := mark + " " + row.label
		if i == m.settingsCursor {
			b.WriteString(m.styles.rowSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewFooter() string {
	if m.notice != "" {
		return m.styles.notice.Render(m.notice)
	}

	var help string
	switch {
	case m.modal == modalForm:
		help = "tab: next field    ctrl+s: save    esc: cancel"
	case m.modal == modalConfirmDelete:
		help = "y: delete    n: cancel"
	case m.view == viewSettings:
		help = "↑/↓: move    enter: toggle    tab: reports    q: quit"
	case m.searchFocus:
		help = "type to search    esc: done"
	default:
		help = "n: new    e: edit    d: delete    f: filter    /: search    tab: settings    q: quit"
	}
	return m.styles.help.Render(help)
}
