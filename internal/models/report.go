// Package models defines the data types persisted by ReportDesk.
package models

import (
	"time"

	"github.com/dmitrijs2005/reportdesk/internal/common"
	"github.com/google/uuid"
)

// Status is the two-valued lifecycle tag of a report.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// ParseStatus validates a raw status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusArchived:
		return Status(s), nil
	default:
		return "", common.ErrInvalidStatus
	}
}

// Valid reports whether s is one of the two known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusArchived
}

// Report is the persisted record.
//
// Id is assigned once at creation and never changes. Date is the creation
// time; edits must not touch it.
type Report struct {
	// Id is a globally unique identifier for the report.
	Id string

	// Title is a short, free-form caption.
	Title string

	// Description is the free-form body text.
	Description string

	// Date is the creation time in UTC.
	Date time.Time

	// Status is either StatusActive or StatusArchived.
	Status Status
}

// NewReport builds a report with a fresh random identifier and the current
// UTC time. An invalid status falls back to StatusActive, mirroring the
// create-form default.
func NewReport(title, description string, status Status) *Report {
	if !status.Valid() {
		status = StatusActive
	}
	return &Report{
		Id:          uuid.NewString(),
		Title:       title,
		Description: description,
		Date:        time.Now().UTC(),
		Status:      status,
	}
}

// ApplyEdit replaces every mutable field. Id and Date are preserved.
func (r *Report) ApplyEdit(title, description string, status Status) error {
	if !status.Valid() {
		return common.ErrInvalidStatus
	}
	r.Title = title
	r.Description = description
	r.Status = status
	return nil
}
