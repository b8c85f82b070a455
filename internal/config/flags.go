package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/reportdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file (default from Config)
//	-l string   path to the log file (default from Config)
//	-level string   minimum log level: debug, info, warn, error
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-level"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the database file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "path to the log file")
	fs.StringVar(&cfg.LogLevel, "level", cfg.LogLevel, "minimum log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
