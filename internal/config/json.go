package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/reportdesk/internal/flagx"
	"github.com/dmitrijs2005/reportdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "4s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN   string         `json:"database_dsn"`
	LogFile       string         `json:"log_file"`
	LogLevel      string         `json:"log_level"`
	NoticeTimeout timex.Duration `json:"notice_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current values. Panics on read
// or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.NoticeTimeout.Duration != 0 {
		cfg.NoticeTimeout = time.Duration(jc.NoticeTimeout.Duration)
	}
}
