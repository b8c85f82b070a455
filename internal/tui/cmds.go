package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/reportdesk/internal/models"
	"github.com/dmitrijs2005/reportdesk/internal/repositories/reports"
	"github.com/dmitrijs2005/reportdesk/internal/services"
)

// loadReports issues a composed list query tagged with seq. The tag lets the
// model drop results that were overtaken by a newer query, so overlapping
// loads cannot overwrite fresher data regardless of arrival order.
func loadReports(svc services.ReportService, q reports.Query, seq uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := svc.List(context.Background(), q)
		return reportsLoadedMsg{seq: seq, items: items, err: err}
	}
}

func createReport(svc services.ReportService, title, description string, status models.Status) tea.Cmd {
	return func() tea.Msg {
		r, err := svc.Create(context.Background(), title, description, status)
		return reportSavedMsg{report: r, created: true, err: err}
	}
}

func updateReport(svc services.ReportService, id, title, description string, status models.Status) tea.Cmd {
	return func() tea.Msg {
		r, err := svc.Update(context.Background(), id, title, description, status)
		return reportSavedMsg{report: r, created: false, err: err}
	}
}

func deleteReport(svc services.ReportService, id string) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(context.Background(), id)
		return reportDeletedMsg{id: id, err: err}
	}
}

func loadSettings(svc *services.SettingsService) tea.Cmd {
	return func() tea.Msg {
		prefs, err := svc.Load(context.Background())
		return settingsLoadedMsg{prefs: prefs, err: err}
	}
}

func saveSettings(svc *services.SettingsService, prefs services.Settings) tea.Cmd {
	return func() tea.Msg {
		err := svc.Save(context.Background(), prefs)
		return settingsSavedMsg{prefs: prefs, err: err}
	}
}

// expireNotice schedules the removal of the notice identified by seq.
func expireNotice(seq uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
