package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/reportdesk/internal/logging"
	"github.com/dmitrijs2005/reportdesk/internal/models"
	"github.com/dmitrijs2005/reportdesk/internal/repositories/reports"
	"github.com/dmitrijs2005/reportdesk/internal/services"
)

type view int

const (
	viewReports view = iota
	viewSettings
)

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalConfirmDelete
)

// Messages produced by the asynchronous commands.

// reportsLoadedMsg carries the result of a list query. seq tags the query so
// the model can discard results from queries that are no longer the most
// recent one (latest-request-wins).
type reportsLoadedMsg struct {
	seq   uint64
	items []models.Report
	err   error
}

type reportSavedMsg struct {
	report  *models.Report
	created bool
	err     error
}

type reportDeletedMsg struct {
	id  string
	err error
}

type settingsLoadedMsg struct {
	prefs services.Settings
	err   error
}

type settingsSavedMsg struct {
	prefs services.Settings
	err   error
}

// noticeExpiredMsg clears the status-bar notice it was scheduled for.
type noticeExpiredMsg struct {
	seq uint64
}

// Model is the Bubble Tea model for the whole application: the reports list
// with its search/filter state, the create/edit form and the settings screen.
type Model struct {
	reports  services.ReportService
	settings *services.SettingsService
	logger   logging.Logger

	noticeTimeout time.Duration

	width  int
	height int

	view view

	// reports view state
	items        []models.Report
	loading      bool
	statusFilter reports.StatusFilter
	search       textinput.Model
	searchFocus  bool
	cursor       int

	// querySeq is incremented for every issued list query; only the result
	// carrying the latest value is applied.
	querySeq uint64

	// modal state
	modal    modalKind
	form     formModel
	saving   bool
	deleteID string

	// settings view state
	prefs          services.Settings
	settingsCursor int

	notice    string
	noticeSeq uint64

	styles styles
}

// NewModel wires the model to its services. The caller supplies the logger
// and the notice timeout from config.
func NewModel(rs services.ReportService, ss *services.SettingsService, logger logging.Logger, noticeTimeout time.Duration) Model {
	search := textinput.New()
	search.Placeholder = "Search reports..."
	search.CharLimit = 200
	search.Width = 36
	search.Prompt = "/ "

	return Model{
		reports:       rs,
		settings:      ss,
		logger:        logger,
		noticeTimeout: noticeTimeout,
		view:          viewReports,
		statusFilter:  reports.FilterAll,
		search:        search,
		loading:       true,
		querySeq:      1,
		prefs:         services.DefaultSettings(),
		styles:        newStyles(false),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadReports(m.reports, m.query(), m.querySeq),
		loadSettings(m.settings),
		textinput.Blink,
	)
}

// query builds the composed predicate from the current filter and search
// state. Status and search always apply together.
func (m *Model) query() reports.Query {
	return reports.Query{
		Status: m.statusFilter,
		Search: strings.TrimSpace(m.search.Value()),
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *models.Report {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// nextStatusFilter cycles all -> active -> archived -> all.
func nextStatusFilter(f reports.StatusFilter) reports.StatusFilter {
	switch f {
	case reports.FilterAll:
		return reports.FilterActive
	case reports.FilterActive:
		return reports.FilterArchived
	default:
		return reports.FilterAll
	}
}
