// Package common defines shared sentinel errors used across the ReportDesk
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")

	// ErrStorageUnavailable classifies any lower-level storage engine
	// failure (locked file, corruption, disk full). The underlying cause
	// is wrapped and reachable via errors.Unwrap.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Validation errors.
	ErrInvalidStatus = errors.New("invalid status")
)
