// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/stackq/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Environment variables that override file configuration.
const (
	EnvAPIKey   = "STACKQ_API_KEY"
	EnvLogLevel = "STACKQ_LOG_LEVEL"
)

// Loader loads configuration from TOML files.
type Loader struct {
	getenv        func(string) string
	localDir      string // Directory holding .stackq.toml (usually the working directory)
	globalConfDir string // Path to global config directory (e.g., ~/.config/stackq)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: DefaultGlobalConfigDir(),
		getenv:        os.Getenv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
		getenv:        func(string) string { return "" },
	}
}

// WithGetenv replaces the environment lookup used for overrides.
func (l *Loader) WithGetenv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// DefaultGlobalConfigDir returns the default global config directory.
// Returns empty string if home directory cannot be determined.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalDir returns the global config directory used by this loader.
func (l *Loader) GlobalDir() string {
	return l.globalConfDir
}

// Load returns the merged configuration (defaults <- global <- local <- env).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the local configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	if l.localDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.localDir, domain.LocalConfigFileName))
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, local *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreLocal {
		local, err = l.LoadLocal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	applyEnv(base, l.getenv)
	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Unset values stay zero so that merging keeps lower-precedence values.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "api":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "[api] must be a table")
				continue
			}
			for k, v := range m {
				switch k {
				case "base_url":
					if s, ok := v.(string); ok {
						res.API.BaseURL = s
					}
				case "site":
					if s, ok := v.(string); ok {
						res.API.Site = s
					}
				case "key":
					if s, ok := v.(string); ok {
						res.API.Key = s
					}
				case "page_size":
					if n, ok := v.(int64); ok {
						res.API.PageSize = int(n)
					} else {
						warnings = append(warnings, "invalid value in [api]: page_size must be an integer")
					}
				case "timeout":
					d, err := parseTimeout(v)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid value in [api]: timeout: %v", err))
						continue
					}
					res.API.Timeout = d
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [api]: %s", k))
				}
			}
		case "log":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "[log] must be a table")
				continue
			}
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				case "file":
					if s, ok := v.(string); ok {
						res.Log.File = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseTimeout accepts a Go duration string ("10s") or a number of seconds.
func parseTimeout(v any) (time.Duration, error) {
	switch t := v.(type) {
	case string:
		return time.ParseDuration(t)
	case int64:
		return time.Duration(t) * time.Second, nil
	case float64:
		return time.Duration(t * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		API:      base.API,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.API.BaseURL != "" {
		result.API.BaseURL = override.API.BaseURL
	}
	if override.API.Site != "" {
		result.API.Site = override.API.Site
	}
	if override.API.Key != "" {
		result.API.Key = override.API.Key
	}
	if override.API.PageSize != 0 {
		result.API.PageSize = override.API.PageSize
	}
	if override.API.Timeout != 0 {
		result.API.Timeout = override.API.Timeout
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}

	return result
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *domain.Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if key := getenv(EnvAPIKey); key != "" {
		cfg.API.Key = key
	}
	if level := getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
}
