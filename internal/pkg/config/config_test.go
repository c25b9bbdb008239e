package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  host: "127.0.0.1"
  port: 8081
  shutdown_timeout_seconds: 20
  max_upload_size_mb: 25
processing:
  task_timeout_seconds: 120
  cache_ttl_minutes: 30
logging:
  level: "debug"
`

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLoadFromYAML(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := createTempConfigFile(t, sampleYAML)
		cfg, err := loadFromYAML(path)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, 20, cfg.Server.ShutdownTimeoutSeconds)
		assert.Equal(t, 25, cfg.Server.MaxUploadSizeMB)
		assert.Equal(t, "127.0.0.1:8081", cfg.Address())

		assert.Equal(t, 120, cfg.Processing.TaskTimeoutSeconds)
		assert.Equal(t, 30, cfg.Processing.CacheTTLMinutes)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loadFromYAML("non_existent_file.yml")
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := createTempConfigFile(t, "invalid yaml: {")
		_, err := loadFromYAML(path)
		assert.Error(t, err)
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, DefaultServerHost, cfg.Server.Host)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultShutdownTimeoutSeconds, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, DefaultMaxUploadSizeMB, cfg.Server.MaxUploadSizeMB)
	assert.Equal(t, DefaultTaskTimeoutSeconds, cfg.Processing.TaskTimeoutSeconds)
	assert.Equal(t, DefaultCacheTTLMinutes, cfg.Processing.CacheTTLMinutes)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestDurations(t *testing.T) {
	cfg := &Config{
		Server:     Server{ShutdownTimeoutSeconds: 15},
		Processing: Processing{TaskTimeoutSeconds: 120, CacheTTLMinutes: 30},
	}

	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, 120*time.Second, cfg.TaskTimeout())
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL())
}

func TestValidate(t *testing.T) {
	validConfig := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	testCases := []struct {
		name    string
		mutator func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero task_timeout is allowed", func(c *Config) { c.Processing.TaskTimeoutSeconds = 0 }, false},
		{"invalid port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"invalid shutdown timeout", func(c *Config) { c.Server.ShutdownTimeoutSeconds = 0 }, true},
		{"invalid max upload size", func(c *Config) { c.Server.MaxUploadSizeMB = -1 }, true},
		{"negative task_timeout", func(c *Config) { c.Processing.TaskTimeoutSeconds = -1 }, true},
		{"invalid cache_ttl", func(c *Config) { c.Processing.CacheTTLMinutes = 0 }, true},
		{"invalid logging level", func(c *Config) { c.Logging.Level = "wrong" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutator(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
