// Package storage opens the local SQLite database, applies schema migrations
// and wires up the repositories. The returned Store owns the *sql.DB handle:
// it is opened once at application start and closed on shutdown, and passed
// explicitly to whoever needs it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/reportdesk/internal/repositories/reports"
	"github.com/dmitrijs2005/reportdesk/internal/repositories/settings"
	"github.com/dmitrijs2005/reportdesk/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store bundles the database handle with the repositories built on top of it.
type Store struct {
	DB       *sql.DB
	Reports  reports.Repository
	Settings settings.Repository
}

// RunMigrations applies all embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens the SQLite database at dsn, migrates it to the current schema
// and returns a ready Store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{
		DB:       db,
		Reports:  reports.NewSQLiteRepository(db),
		Settings: settings.NewSQLiteRepository(db),
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
