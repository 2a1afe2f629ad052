package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/url"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names.
const (
	ConfigFileName      = "config.toml"  // Name of the global config file
	LocalConfigFileName = ".stackq.toml" // Name of the per-directory config file
	LogFileName         = "stackq.log"
)

// Default configuration values.
const (
	DefaultBaseURL  = "https://api.stackexchange.com/2.2"
	DefaultSite     = "stackoverflow"
	DefaultPageSize = 20
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "info"

	MaxPageSize = 100
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string  `toml:"-"`
	API      APIConfig `toml:"api"`
	Log      LogConfig `toml:"log"`
}

// APIConfig holds settings for the Stack Exchange API from [api] section.
type APIConfig struct {
	BaseURL  string        `toml:"base_url"`
	Site     string        `toml:"site"`
	Key      string        `toml:"key,omitempty"` // Optional application key (raises the request quota)
	Timeout  time.Duration `toml:"timeout"`
	PageSize int           `toml:"page_size"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"`          // debug, info, warn, error
	File  string `toml:"file,omitempty"` // Log file path (empty = default location)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			Site:     DefaultSite,
			PageSize: DefaultPageSize,
			Timeout:  DefaultTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks that the configuration can be used to talk to the API.
func (c *Config) Validate() error {
	if c.API.PageSize < 1 || c.API.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.API.PageSize)
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// GlobalConfigDir returns the stackq directory under the given config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "stackq")
}

// DefaultLogPath returns the default log file path under the global config directory.
func DefaultLogPath(globalDir string) string {
	return filepath.Join(globalDir, "logs", LogFileName)
}

// templateData holds the values rendered into the config template.
type templateData struct {
	BaseURL  string
	Site     string
	Timeout  string
	LogLevel string
	PageSize int
}

// RenderConfigTemplate renders the commented config file written by `stackq config init`.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		BaseURL:  cfg.API.BaseURL,
		Site:     cfg.API.Site,
		Timeout:  cfg.API.Timeout.String(),
		LogLevel: cfg.Log.Level,
		PageSize: cfg.API.PageSize,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
