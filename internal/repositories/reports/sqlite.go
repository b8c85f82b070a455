package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/reportdesk/internal/common"
	"github.com/dmitrijs2005/reportdesk/internal/dbx"
	"github.com/dmitrijs2005/reportdesk/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// dateFormat is the ISO-8601 layout used for the date column.
const dateFormat = time.RFC3339Nano

func scanReports(rows *sql.Rows) ([]models.Report, error) {
	result := []models.Report{}
	for rows.Next() {
		var item models.Report
		var date, status string
		if err := rows.Scan(&item.Id, &item.Title, &item.Description, &date, &status); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse report date: %w", err)
		}
		item.Date = parsed
		item.Status = models.Status(status)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAll lists every report, newest first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	query := `SELECT id, title, description, date, status FROM reports ORDER BY date DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// GetByID returns a single report or common.ErrNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	query := `SELECT id, title, description, date, status FROM reports WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item := &models.Report{}
	var date, status string
	if err := row.Scan(&item.Id, &item.Title, &item.Description, &date, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	parsed, err := time.Parse(dateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report date: %w", err)
	}
	item.Date = parsed
	item.Status = models.Status(status)
	return item, nil
}

// GetByStatus lists the reports with the given status, newest first.
// The status column is indexed.
func (r *SQLiteRepository) GetByStatus(ctx context.Context, status models.Status) ([]models.Report, error) {
	query := `SELECT id, title, description, date, status FROM reports WHERE status = ? ORDER BY date DESC, id`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to select reports by status: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// Search scans all reports and keeps those whose title or description
// contains the query, compared case-insensitively in Go. SQLite's lower()
// only folds ASCII, so the fold happens here to handle non-ASCII titles.
func (r *SQLiteRepository) Search(ctx context.Context, query string) ([]models.Report, error) {
	return r.List(ctx, Query{Status: FilterAll, Search: query})
}

// List applies the composed predicate: the status constraint runs in SQL
// (indexed), the substring match runs over the fetched rows.
func (r *SQLiteRepository) List(ctx context.Context, q Query) ([]models.Report, error) {
	var (
		all []models.Report
		err error
	)
	if q.Status == FilterAll || q.Status == "" {
		all, err = r.GetAll(ctx)
	} else {
		all, err = r.GetByStatus(ctx, models.Status(q.Status))
	}
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(q.Search)
	if needle == "" {
		return all, nil
	}

	matched := []models.Report{}
	for _, item := range all {
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Insert adds a new report. A colliding id yields common.ErrDuplicateKey.
func (r *SQLiteRepository) Insert(ctx context.Context, e *models.Report) error {
	query := `INSERT OR IGNORE INTO reports (id, title, description, date, status) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.Id, e.Title, e.Description, e.Date.UTC().Format(dateFormat), string(e.Status))
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("report %s: %w", e.Id, common.ErrDuplicateKey)
	}
	return nil
}

// Update upserts a report by id. On conflict the full record, date included,
// is replaced; preserving the creation date on edits is the service's job.
func (r *SQLiteRepository) Update(ctx context.Context, e *models.Report) error {
	query := `INSERT INTO reports (id, title, description, date, status)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET title = excluded.title,
				description = excluded.description,
				date = excluded.date,
				status = excluded.status
	`
	_, err := r.db.ExecContext(ctx, query,
		e.Id, e.Title, e.Description, e.Date.UTC().Format(dateFormat), string(e.Status))
	if err != nil {
		return fmt.Errorf("failed to upsert report: %w", err)
	}
	return nil
}

// DeleteByID removes a report. It is idempotent: deleting an id that does
// not exist succeeds.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM reports WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}
