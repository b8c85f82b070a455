// Package config loads runtime configuration for the ReportDesk TUI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string       path to the SQLite database file
//	-l string       path to the log file
//	-level string   minimum log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "4s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "reports.db",
//	  "log_file": "reportdesk.log",
//	  "log_level": "debug",
//	  "notice_timeout": "4s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
