package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete PowerTrack client configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the client reaches the PowerTrack backend
type APIConfig struct {
	// BaseURL is the backend origin, e.g. "http://localhost:5000"
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request HTTP timeout (0 = no timeout)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// SessionConfig controls token storage
type SessionConfig struct {
	// TokenFile is the path of the stored JWT. Empty means
	// {configDir}/token.
	TokenFile string `mapstructure:"token_file"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	Theme string `mapstructure:"theme"`
	// CompactTables renders list screens without row padding
	CompactTables bool `mapstructure:"compact_tables"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns file logging on or off
	Enabled bool `mapstructure:"enabled"`
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Dir is the log directory. Empty means {configDir}/logs.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with all default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 30,
		},
		Session: SessionConfig{
			TokenFile: "",
		},
		TUI: TUIConfig{
			Theme:         "default",
			CompactTables: false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "INFO",
			Dir:     "",
		},
	}
}

// Timeout returns the HTTP timeout as a duration
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	// Session defaults
	viper.SetDefault("session.token_file", defaults.Session.TokenFile)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.compact_tables", defaults.TUI.CompactTables)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// Validate checks the configuration for invalid values and returns a list
// of human-readable problems. An empty list means the config is valid.
func (c *Config) Validate() []string {
	var errs []string

	if c.API.BaseURL == "" {
		errs = append(errs, "api.base_url must not be empty")
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("api.base_url %q is not an absolute URL", c.API.BaseURL))
	}

	if c.API.TimeoutSeconds < 0 {
		errs = append(errs, "api.timeout_seconds must not be negative")
	}

	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of DEBUG, INFO, WARN, ERROR", c.Logging.Level))
	}

	return errs
}

// TokenFile returns the resolved token path, applying the default location
// when session.token_file is unset.
func (c *Config) TokenFile() string {
	if c.Session.TokenFile != "" {
		return c.Session.TokenFile
	}
	return filepath.Join(ConfigDir(), "token")
}

// LogDir returns the resolved log directory, applying the default location
// when logging.dir is unset. Returns "" when logging is disabled.
func (c *Config) LogDir() string {
	if !c.Logging.Enabled {
		return ""
	}
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "powertrack")
	}
	// Fall back to ~/.config/powertrack
	home, err := os.UserHomeDir()
	if err != nil {
		return ".powertrack"
	}
	return filepath.Join(home, ".config", "powertrack")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
