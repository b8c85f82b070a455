// Package services contains the application logic between the view and the
// repositories: identifier/timestamp assignment, date preservation on edits
// and error classification.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/reportdesk/internal/common"
	"github.com/dmitrijs2005/reportdesk/internal/models"
	"github.com/dmitrijs2005/reportdesk/internal/repositories/reports"
)

// ReportService is the operation surface the view consumes.
type ReportService interface {
	// Create builds a report with a fresh id and creation timestamp and
	// stores it.
	Create(ctx context.Context, title, description string, status models.Status) (*models.Report, error)

	// Update edits the report with the given id, preserving its creation
	// date. When no such report exists the record is inserted (upsert).
	Update(ctx context.Context, id, title, description string, status models.Status) (*models.Report, error)

	// Delete removes a report; deleting an absent id succeeds.
	Delete(ctx context.Context, id string) error

	// List runs the composed status+search query.
	List(ctx context.Context, q reports.Query) ([]models.Report, error)

	// GetAll returns every stored report.
	GetAll(ctx context.Context) ([]models.Report, error)

	// GetByStatus returns the reports with the given status.
	GetByStatus(ctx context.Context, status models.Status) ([]models.Report, error)

	// Search returns the reports matching the query, regardless of status.
	Search(ctx context.Context, query string) ([]models.Report, error)
}

type reportService struct {
	repo reports.Repository
}

func NewReportService(repo reports.Repository) ReportService {
	return &reportService{repo: repo}
}

// classifyStorage maps unexpected repository failures to
// common.ErrStorageUnavailable while letting the known sentinels through.
func classifyStorage(err error) error {
	if err == nil ||
		errors.Is(err, common.ErrDuplicateKey) ||
		errors.Is(err, common.ErrNotFound) ||
		errors.Is(err, common.ErrInvalidStatus) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
}

func (s *reportService) Create(ctx context.Context, title, description string, status models.Status) (*models.Report, error) {
	r := models.NewReport(title, description, status)

	if err := s.repo.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("saving error: %w", classifyStorage(err))
	}
	return r, nil
}

func (s *reportService) Update(ctx context.Context, id, title, description string, status models.Status) (*models.Report, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error retrieving report: %w", classifyStorage(err))
	}

	var r *models.Report
	if existing != nil {
		// keep Id and Date, replace the rest
		r = existing
		if err := r.ApplyEdit(title, description, status); err != nil {
			return nil, err
		}
	} else {
		// upsert semantics: absent id becomes a fresh record with that id
		r = models.NewReport(title, description, status)
		r.Id = id
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("saving error: %w", classifyStorage(err))
	}
	return r, nil
}

func (s *reportService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting report: %w", classifyStorage(err))
	}
	return nil
}

func (s *reportService) List(ctx context.Context, q reports.Query) ([]models.Report, error) {
	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", classifyStorage(err))
	}
	return rows, nil
}

func (s *reportService) GetAll(ctx context.Context) ([]models.Report, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", classifyStorage(err))
	}
	return rows, nil
}

func (s *reportService) GetByStatus(ctx context.Context, status models.Status) ([]models.Report, error) {
	rows, err := s.repo.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", classifyStorage(err))
	}
	return rows, nil
}

func (s *reportService) Search(ctx context.Context, query string) ([]models.Report, error) {
	rows, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching reports: %w", classifyStorage(err))
	}
	return rows, nil
}
