package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/reportdesk/internal/common"
)

// setNotice shows a transient status-bar message and schedules its removal.
func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeSeq++
	return expireNotice(m.noticeSeq, m.noticeTimeout)
}

// failNotice logs the failure and surfaces it as a non-blocking notice.
// The view state is left exactly as it was before the failed operation.
func (m *Model) failNotice(op string, err error) tea.Cmd {
	m.logger.Error(context.Background(), op, "error", err)
	text := "Error: " + op
	switch {
	case errors.Is(err, common.ErrStorageUnavailable):
		text = "Error: storage unavailable"
	case errors.Is(err, common.ErrDuplicateKey):
		text = "Error: a report with this id already exists"
	case errors.Is(err, common.ErrInvalidStatus):
		text = "Error: invalid status"
	}
	return m.setNotice(text)
}

// reload issues a fresh composed query, invalidating any in-flight one.
func (m *Model) reload(withSpinner bool) tea.Cmd {
	if withSpinner {
		m.loading = true
	}
	m.querySeq++
	return loadReports(m.reports, m.query(), m.querySeq)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportsLoadedMsg:
		if msg.seq != m.querySeq {
			// a newer query is already in flight; this result is stale
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.failNotice("loading reports failed", msg.err)
		}
		m.items = msg.items
		m.clampCursor()
		return m, nil

	case reportSavedMsg:
		m.saving = false
		if msg.err != nil {
			// keep the dialog open so nothing typed is lost
			return m, m.failNotice("saving report failed", msg.err)
		}
		m.modal = modalNone
		if msg.created {
			m.items = append(m.items, *msg.report)
			return m, nil
		}
		for i := range m.items {
			if m.items[i].Id == msg.report.Id {
				m.items[i] = *msg.report
				break
			}
		}
		return m, nil

	case reportDeletedMsg:
		m.modal = modalNone
		if msg.err != nil {
			return m, m.failNotice("deleting report failed", msg.err)
		}
		kept := m.items[:0]
		for _, it := range m.items {
			if it.Id != msg.id {
				kept = append(kept, it)
			}
		}
		m.items = kept
		m.clampCursor()
		return m, nil

	case settingsLoadedMsg:
		if msg.err != nil {
			return m, m.failNotice("loading settings failed", msg.err)
		}
		m.prefs = msg.prefs
		m.styles = newStyles(m.prefs.DarkMode)
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			return m, m.failNotice("saving settings failed", msg.err)
		}
		m.prefs = msg.prefs
		m.styles = newStyles(m.prefs.DarkMode)
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		switch m.view {
		case viewSettings:
			return m.updateSettings(msg)
		default:
			return m.updateReports(msg)
		}
	}

	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal == modalConfirmDelete {
		switch msg.String() {
		case "y", "enter":
			return m, deleteReport(m.reports, m.deleteID)
		case "n", "esc":
			m.modal = modalNone
			return m, nil
		}
		return m, nil
	}

	// create/edit form
	if m.saving {
		// the submit's storage call must finish before the dialog reacts again
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab":
		return m, m.form.nextField()
	case "shift+tab":
		return m, m.form.prevField()
	case "enter":
		if m.form.focus == fieldTitle {
			return m, m.form.focusField(fieldDescription)
		}
	case "ctrl+s":
		m.saving = true
		title := m.form.title.Value()
		description := m.form.description.Value()
		if m.form.isEdit() {
			return m, updateReport(m.reports, m.form.editingID, title, description, m.form.status)
		}
		return m, createReport(m.reports, title, description, m.form.status)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateReports(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocus {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocus = false
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			// every keystroke issues a new composed query; stale results
			// are discarded by the sequence check
			return m, tea.Batch(cmd, m.reload(false))
		}
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil
	case "/":
		m.searchFocus = true
		return m, m.search.Focus()
	case "f":
		m.statusFilter = nextStatusFilter(m.statusFilter)
		m.cursor = 0
		return m, m.reload(true)
	case "r":
		return m, m.reload(true)
	case "n":
		m.modal = modalForm
		m.form = newFormModel(nil)
		return m, textinput.Blink
	case "enter", "e":
		if sel := m.selected(); sel != nil {
			m.modal = modalForm
			m.form = newFormModel(sel)
		}
		return m, nil
	case "d":
		if sel := m.selected(); sel != nil {
			m.modal = modalConfirmDelete
			m.deleteID = sel.Id
		}
		return m, nil
	case "tab":
		m.view = viewSettings
		return m, nil
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "esc":
		m.view = viewReports
		return m, nil
	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil
	case "down", "j":
		if m.settingsCursor < 2 {
			m.settingsCursor++
		}
		return m, nil
	case "enter", " ":
		prefs := m.prefs
		switch m.settingsCursor {
		case 0:
			prefs.EmailNotifications = !prefs.EmailNotifications
		case 1:
			prefs.DarkMode = !prefs.DarkMode
		case 2:
			prefs.AutoSave = !prefs.AutoSave
		}
		return m, saveSettings(m.settings, prefs)
	}
	return m, nil
}
