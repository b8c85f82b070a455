// Package reports provides the persistence layer for report records.
//
// # Overview
//
// The package defines a Repository interface for CRUD and query operations on
// Report models (see internal/models). A SQLite-backed implementation
// (SQLiteRepository) persists data using a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Queries
//
// Besides the primitive read shapes (GetAll, GetByStatus, Search), List runs a
// composed predicate: status constraint AND substring search, applied together
// so the two filters never fall out of sync.
//
// # Concurrency
//
// Implementations are expected to be safe for concurrent use when backed by a
// properly configured *sql.DB. When using *sql.Tx (DBTX), follow normal
// transaction scoping rules. Each call is atomic and independent; there are no
// multi-record transactions.
//
// Key Types
//
//   - type Repository        — interface used by higher-level services
//   - type SQLiteRepository  — SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := reports.NewSQLiteRepository(db)
//	_ = repo.Insert(ctx, report)
package reports
