package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "reports.db", c.DatabaseDSN)
	assert.Equal(t, "", c.LogFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 4*time.Second, c.NoticeTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "reports.db", cfg.DatabaseDSN)
	assert.Equal(t, 4*time.Second, cfg.NoticeTimeout)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "alt.db", "-level", "debug"}

	cfg := LoadConfig()

	assert.Equal(t, "alt.db", cfg.DatabaseDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}
