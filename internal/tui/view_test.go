package tui

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/reportdesk/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestView_LoadingState(t *testing.T) {
	m, _ := testModel(t)

	out := m.View()
	assert.Contains(t, out, "Loading...")
}

func TestView_RendersReportRows(t *testing.T) {
	m, _ := testModel(t)
	m.loading = false
	m.items = []models.Report{
		{Id: "a", Title: "Audit", Description: "Q1 audit", Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Status: models.StatusActive},
		{Id: "b", Title: "Draft", Description: "internal notes", Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Status: models.StatusArchived},
	}

	out := m.View()
	assert.Contains(t, out, "Audit")
	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, "2026-03-14")
	assert.Contains(t, out, "archived")
}

func TestView_EmptyState(t *testing.T) {
	m, _ := testModel(t)
	m.loading = false

	out := m.View()
	assert.Contains(t, out, "No reports")
}

func TestView_FormModal(t *testing.T) {
	m, _ := testModel(t)
	m.loading = false
	m.modal = modalForm
	m.form = newFormModel(nil)

	out := m.View()
	assert.Contains(t, out, "Create Report")

	m.form = newFormModel(&models.Report{Id: "x", Title: "Audit", Status: models.StatusActive})
	out = m.View()
	assert.Contains(t, out, "Edit Report")
}

func TestView_SettingsToggles(t *testing.T) {
	m, _ := testModel(t)
	m.loading = false
	m.view = viewSettings
	m.prefs.DarkMode = true

	out := m.View()
	assert.Contains(t, out, "[x] Dark Mode")
	assert.Contains(t, out, "Email Notifications")
	assert.Contains(t, out, "Auto Save")
}

func TestView_NoticeReplacesHelp(t *testing.T) {
	m, _ := testModel(t)
	m.loading = false
	_ = m.setNotice("Error: storage unavailable")

	out := m.View()
	assert.Contains(t, out, "Error: storage unavailable")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "multi line", truncate("multi\nline", 20))
	assert.Equal(t, "long tex…", truncate("long text here", 9))
}
