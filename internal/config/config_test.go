package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "database:\n  mysql:\n    dsn: root@tcp(localhost:3306)/linkhub\n"))
		require.NoError(t, err)

		assert.Equal(t, 3001, cfg.Server.Port)
		assert.Equal(t, "/api", cfg.Server.BasePath)
		assert.Equal(t, 30, cfg.Analytics.DailyRetention)
		assert.Equal(t, 12, cfg.Analytics.WeeklyRetention)
		assert.Equal(t, 24*time.Hour, cfg.Analytics.RollupInterval)
		assert.Equal(t, 10*time.Minute, cfg.Analytics.LinksCacheTTL)
		assert.Equal(t, "from-blue-500 to-purple-600", cfg.Links.DefaultGradient)
		assert.Equal(t, int64(10000000), cfg.Bloom.Capacity)
	})

	t.Run("reads seed links and expands secrets", func(t *testing.T) {
		t.Setenv("TEST_LINKHUB_DSN", "user:pw@tcp(db:3306)/linkhub")
		cfg, err := Load(writeConfig(t, `
database:
  mysql:
    dsn: ${TEST_LINKHUB_DSN}
analytics:
  timezone: America/New_York
  daily_retention: 7
links:
  seed:
    - title: Email Me
      url: mailto:me@example.com
      type: email
`))
		require.NoError(t, err)

		assert.Equal(t, "user:pw@tcp(db:3306)/linkhub", cfg.Database.MySQL.DSN)
		assert.Equal(t, 7, cfg.Analytics.DailyRetention)
		assert.Equal(t, "America/New_York", cfg.Analytics.Location().String())
		require.Len(t, cfg.Links.Seed, 1)
		assert.Equal(t, "email", cfg.Links.Seed[0].Type)
	})

	t.Run("rejects an unknown time zone", func(t *testing.T) {
		_, err := Load(writeConfig(t, "analytics:\n  timezone: Mars/Olympus\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestAnalyticsConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, AnalyticsConfig{}.Location())
	assert.Equal(t, time.Local, AnalyticsConfig{Timezone: "local"}.Location())
	assert.Equal(t, time.UTC, AnalyticsConfig{Timezone: "UTC"}.Location())
}
