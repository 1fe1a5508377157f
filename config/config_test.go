package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Radarr: InstanceConfig{
			Enabled: true,
			URL:     "http://localhost:7878",
			APIKey:  "valid-api-key",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name: "disabled instance without key",
			modify: func(c *Config) {
				c.Sonarr = InstanceConfig{Enabled: false}
			},
		},
		{
			name: "enabled instance without url",
			modify: func(c *Config) {
				c.Lidarr = InstanceConfig{Enabled: true, APIKey: "key"}
			},
			wantErr: "lidarr.url is required",
		},
		{
			name: "placeholder api key",
			modify: func(c *Config) {
				c.Radarr.APIKey = "your-api-key-here"
			},
			wantErr: "radarr.api_key",
		},
		{
			name: "negative retries",
			modify: func(c *Config) {
				c.HTTP.RetryMax = -1
			},
			wantErr: "http.retry_max",
		},
		{
			name: "invalid level",
			modify: func(c *Config) {
				c.Logging.Level = "verbose"
			},
			wantErr: "invalid logging level: verbose",
		},
		{
			name: "invalid format",
			modify: func(c *Config) {
				c.Logging.Format = "xml"
			},
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
sonarr:
  enabled: true
  url: http://sonarr:8989
  api_key: sonarr-key
  timeout: 5s
http:
  retry_max: 2
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Sonarr.Enabled)
	assert.Equal(t, "http://sonarr:8989", cfg.Sonarr.URL)
	assert.Equal(t, "sonarr-key", cfg.Sonarr.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Sonarr.Timeout)
	assert.Equal(t, 2, cfg.HTTP.RetryMax)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// defaults
	assert.False(t, cfg.Radarr.Enabled)
	assert.Equal(t, "http://localhost:7878", cfg.Radarr.URL)
	assert.Equal(t, 30*time.Second, cfg.Radarr.Timeout)
	assert.Equal(t, "arrkit", cfg.HTTP.UserAgent)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("radarr:\n  enabled: true\n  api_key: from-file\n"), 0o600))

	t.Setenv("ARRKIT_RADARR_API_KEY", "from-env")
	t.Setenv("ARRKIT_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Radarr.APIKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("readarr:\n  enabled: true\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readarr.api_key")
}

func TestInstances(t *testing.T) {
	cfg := validConfig()
	instances := cfg.Instances()
	require.Len(t, instances, 4)
	assert.Equal(t, "radarr", instances[1].Name)
	assert.True(t, instances[1].Enabled)
}
