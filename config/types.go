package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Sonarr  InstanceConfig `mapstructure:"sonarr"`
	Radarr  InstanceConfig `mapstructure:"radarr"`
	Readarr InstanceConfig `mapstructure:"readarr"`
	Lidarr  InstanceConfig `mapstructure:"lidarr"`
	HTTP    HTTPConfig     `mapstructure:"http"`
	Logging LoggingConfig  `mapstructure:"logging"`
}

// InstanceConfig holds the connection details of one manager instance
type InstanceConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	URL      string        `mapstructure:"url"`
	APIKey   string        `mapstructure:"api_key"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// HTTPConfig contains settings shared by every client
type HTTPConfig struct {
	RetryMax     int           `mapstructure:"retry_max"`
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
	UserAgent    string        `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Color      bool   `mapstructure:"color"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Instances returns the instance sections keyed by application name, in a
// stable order.
func (c *Config) Instances() []NamedInstance {
	return []NamedInstance{
		{Name: "sonarr", InstanceConfig: c.Sonarr},
		{Name: "radarr", InstanceConfig: c.Radarr},
		{Name: "readarr", InstanceConfig: c.Readarr},
		{Name: "lidarr", InstanceConfig: c.Lidarr},
	}
}

// NamedInstance is an instance section together with its application name
type NamedInstance struct {
	Name string
	InstanceConfig
}
