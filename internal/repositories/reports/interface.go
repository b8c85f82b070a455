package reports

import (
	"context"

	"github.com/dmitrijs2005/reportdesk/internal/models"
)

// StatusFilter widens models.Status with the "all" value used by list queries.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = StatusFilter(models.StatusActive)
	FilterArchived StatusFilter = StatusFilter(models.StatusArchived)
)

// Query is the composed read-side predicate: a status constraint AND a
// case-insensitive substring match on title or description. An empty Search
// is vacuously true, FilterAll matches every status. Both constraints are
// always applied together so filtered results respect the active search and
// vice versa.
type Query struct {
	Status StatusFilter
	Search string
}

// Repository describes CRUD and query operations for Report records.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// GetAll returns every stored report. An empty store yields an empty
	// slice, not an error.
	GetAll(ctx context.Context) ([]models.Report, error)

	// GetByID returns a report by its identifier, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Report, error)

	// GetByStatus returns the reports whose status equals the given value.
	GetByStatus(ctx context.Context, status models.Status) ([]models.Report, error)

	// Search returns the reports whose title or description contains the
	// query case-insensitively. Callers route empty queries to GetAll.
	Search(ctx context.Context, query string) ([]models.Report, error)

	// List returns the reports matching the composed query predicate.
	List(ctx context.Context, q Query) ([]models.Report, error)

	// Insert adds a new report; common.ErrDuplicateKey when the id exists.
	Insert(ctx context.Context, r *models.Report) error

	// Update upserts a report by id: the full record is replaced when
	// present and inserted when absent.
	Update(ctx context.Context, r *models.Report) error

	// DeleteByID removes a report. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id string) error
}
