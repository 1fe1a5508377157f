package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ARRKIT_RADARR_API_KEY
const EnvPrefix = "ARRKIT"

// Load loads the configuration from file and environment. A .env file in the
// working directory is applied to the environment first. A missing config
// file is not an error when the environment supplies the settings.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".arrkit"))
		}

		// Check /etc
		v.AddConfigPath("/etc/arrkit/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key is registered
// here so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	defaultURLs := map[string]string{
		"sonarr":  "http://localhost:8989",
		"radarr":  "http://localhost:7878",
		"readarr": "http://localhost:8787",
		"lidarr":  "http://localhost:8686",
	}
	for name, url := range defaultURLs {
		v.SetDefault(name+".enabled", false)
		v.SetDefault(name+".url", url)
		v.SetDefault(name+".api_key", "")
		v.SetDefault(name+".username", "")
		v.SetDefault(name+".password", "")
		v.SetDefault(name+".timeout", "30s")
	}

	// HTTP defaults
	v.SetDefault("http.retry_max", 0)
	v.SetDefault("http.retry_wait_min", "1s")
	v.SetDefault("http.retry_wait_max", "30s")
	v.SetDefault("http.user_agent", "arrkit")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	for _, inst := range cfg.Instances() {
		if !inst.Enabled {
			continue
		}
		if inst.URL == "" {
			return fmt.Errorf("%s.url is required", inst.Name)
		}
		if inst.APIKey == "" || inst.APIKey == "your-api-key-here" {
			return fmt.Errorf("%s.api_key must be set to a valid API key", inst.Name)
		}
	}

	if cfg.HTTP.RetryMax < 0 {
		return fmt.Errorf("http.retry_max must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
