package config

import "time"

// Config holds runtime settings for the ReportDesk TUI.
//
// Fields:
//   - DatabaseDSN: path to the local SQLite database file.
//   - LogFile: path for the JSON application log ("" disables file logging).
//   - LogLevel: minimum log level (debug, info, warn, error).
//   - NoticeTimeout: how long a status-bar notification stays visible.
type Config struct {
	DatabaseDSN   string
	LogFile       string
	LogLevel      string
	NoticeTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "reports.db"
	c.LogFile = ""
	c.LogLevel = "info"
	c.NoticeTimeout = 4 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
