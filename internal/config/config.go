// Package config loads appbrowser settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults.
const (
	DefaultBaseURL        = "http://localhost:3001/api/applications"
	DefaultPageSize       = 5
	DefaultCurrencySymbol = "£"
	DefaultTimezone       = "UTC"
	DefaultLogLevel       = "info"
	configDirName         = ".appbrowser"
	configFileName        = "config.yaml"
)

// Environment variable names.
const (
	EnvConfigPath = "APPBROWSER_CONFIG"
	EnvAPIURL     = "APPBROWSER_API_URL"
	EnvPageSize   = "APPBROWSER_PAGE_SIZE"
	EnvLogLevel   = "APPBROWSER_LOG_LEVEL"
	EnvLogFile    = "APPBROWSER_LOG_FILE"
)

// Validation errors.
var (
	ErrEmptyBaseURL    = errors.New("api.base_url must not be empty")
	ErrInvalidPageSize = errors.New("api.page_size must be >= 1")
	ErrInvalidTimeout  = errors.New("api.timeout_seconds must be >= 0")
)

// Config is the root configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig describes the paged applications endpoint.
type APIConfig struct {
	BaseURL  string `yaml:"base_url"`
	PageSize int    `yaml:"page_size"`
	// TimeoutSeconds bounds each HTTP request. 0 disables the client timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DisplayConfig controls record formatting.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	// Timezone is the IANA zone used to pick the calendar day of zoned timestamps.
	Timezone string `yaml:"timezone"`
}

// LoggingConfig controls log level and destination.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			PageSize: DefaultPageSize,
		},
		Display: DisplayConfig{
			CurrencySymbol: DefaultCurrencySymbol,
			Timezone:       DefaultTimezone,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// DefaultPath returns the config file location, honouring APPBROWSER_CONFIG.
func DefaultPath(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfigPath); ok && p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load builds a Config from defaults, the YAML file at path (if it exists) and
// environment overrides, then validates it.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				return nil, mergeErr
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.applyEnv(lookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults restores defaults for fields a replaced section left at their zero value.
func (c *Config) applyDefaults() {
	def := New()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = def.API.PageSize
	}
	if c.Display.CurrencySymbol == "" {
		c.Display.CurrencySymbol = def.Display.CurrencySymbol
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = def.Display.Timezone
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvPageSize, v, err)
		}
		c.API.PageSize = n
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok && v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks the configuration for values the loader cannot work with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrEmptyBaseURL
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url %q: %w", c.API.BaseURL, err)
	}
	if c.API.PageSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.API.PageSize)
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeout, c.API.TimeoutSeconds)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Display.Timezone, defaulting to UTC when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("display.timezone %q: %w", c.Display.Timezone, err)
	}
	return loc, nil
}

// Timeout returns the per-request HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
