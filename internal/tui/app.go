// Package tui implements the terminal user interface of ReportDesk: the
// reports list with search and status filtering, the create/edit dialog and
// the settings screen.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/reportdesk/internal/config"
	"github.com/dmitrijs2005/reportdesk/internal/logging"
	"github.com/dmitrijs2005/reportdesk/internal/services"
	"github.com/dmitrijs2005/reportdesk/internal/storage"
)

// App ties configuration, logging and storage together. The store is opened
// once here and closed on shutdown; everything that needs it receives it
// explicitly.
type App struct {
	config  *config.Config
	logger  logging.Logger
	store   *storage.Store
	logFile *os.File
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	// stdout belongs to the terminal UI, so logs go to a file when
	// configured and are discarded otherwise
	var w io.Writer = io.Discard
	var logFile *os.File
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		logFile = f
		w = f
	}
	logger := logging.NewJSONFileLogger(w, parseLevel(cfg.LogLevel))

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	logger.Info(ctx, "database ready", "dsn", cfg.DatabaseDSN)

	return &App{config: cfg, logger: logger, store: store, logFile: logFile}, nil
}

func (a *App) Run(ctx context.Context) error {
	rs := services.NewReportService(a.store.Reports)
	ss := services.NewSettingsService(a.store.DB)

	model := NewModel(rs, ss, a.logger, a.config.NoticeTimeout)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// Close releases the database and the log file.
func (a *App) Close() error {
	err := a.store.Close()
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
	return err
}
