// Package config provides hierarchical configuration management for kacl
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.kacl.yml) > user config (~/.config/kacl/config.yml) >
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides (KACL_PLAIN=1).
const envPrefix = "KACL_"

// Configuration holds the kacl CLI settings.
type Configuration struct {
	// Changelog is the path of the changelog document to extract from.
	// Can be set via the KACL_CHANGELOG env var.
	Changelog string `koanf:"changelog"`

	// Plain disables colors in terminal output.
	Plain bool `koanf:"plain"`

	// MaxWidth caps formatted output width in columns (0 = auto-detect).
	MaxWidth int `koanf:"max_width"`

	// RemoteTimeout is the timeout in seconds for --url fetches.
	RemoteTimeout int `koanf:"remote_timeout"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .kacl.yml)
	ProjectConfigPath string
	// UserConfigPath overrides the user config path (for testing)
	UserConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom paths.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = userConfigPath()
	}
	if err := loadFileIfExists(k, userPath, "user"); err != nil {
		return nil, err
	}

	projectPath := opts.ProjectConfigPath
	if projectPath == "" {
		projectPath = ".kacl.yml"
	}
	if err := loadFileIfExists(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	defaults := map[string]any{
		"changelog":      "CHANGELOG.md",
		"plain":          false,
		"max_width":      0,
		"remote_timeout": 10,
	}
	for key, value := range defaults {
		_ = k.Set(key, value)
	}
}

// loadFileIfExists loads a YAML config file when present. A missing file is
// not an error; a malformed one is.
func loadFileIfExists(k *koanf.Koanf, path, scope string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", scope, path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// userConfigPath returns the XDG-style user config location.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "kacl", "config.yml")
}
