package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_dsn":   "from-json.db",
		"log_level":      "debug",
		"notice_timeout": "10s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "from-json.db", cfg.DatabaseDSN)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 10*time.Second, cfg.NoticeTimeout)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			DatabaseDSN:   "defaults.db",
			NoticeTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults.db", cfg.DatabaseDSN)
		assert.Equal(t, 42*time.Second, cfg.NoticeTimeout)
	})

	t.Run("missing fields keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"log_file": "only-log.json",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{DatabaseDSN: "keep.db", LogLevel: "warn"}
		parseJson(cfg)

		assert.Equal(t, "only-log.json", cfg.LogFile)
		assert.Equal(t, "keep.db", cfg.DatabaseDSN)
		assert.Equal(t, "warn", cfg.LogLevel)
	})
}

func Test_parseJson_PanicsOnUnreadableFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "missing.json")}

	assert.Panics(t, func() { parseJson(&Config{}) })
}
