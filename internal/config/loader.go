package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".gnvclient"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file shape. Every field is optional; CLI
// flags override whatever the file sets.
//
// Example:
//
//	email: someone@example.org
//	timeout: 1m
//	batch-size: 200
//	no-cache: false
//	sources:
//	  - Catalogue of Life
//	  - GBIF
type File struct {
	// Email is the contact address for the User-Agent header.
	Email string `yaml:"email"`

	// Timeout is the per-request timeout as a Go duration string.
	Timeout Duration `yaml:"timeout"`

	// BatchSize is the maximum number of names per engine call.
	BatchSize int `yaml:"batch-size"`

	// NoCache disables the on-disk catalog cache.
	NoCache bool `yaml:"no-cache"`

	// Sources are default data source titles applied to every verify call
	// that does not name its own sources.
	Sources []string `yaml:"sources"`
}

// Duration decodes YAML duration values given either as Go duration strings
// ("30s", "1m") or as plain nanosecond integers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(n)
	return nil
}

// LoadConfigFile loads settings from a YAML file. If the file does not
// exist, it returns ErrConfigNotFound; callers decide whether that matters
// based on whether the path was explicitly given.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &f, nil
}

// Apply copies the file's settings into the config. Flags are applied after
// the file, so anything the user sets on the command line wins.
func (f *File) Apply(cfg *Config) {
	if f.Email != "" {
		cfg.Email = f.Email
	}
	if f.Timeout > 0 {
		cfg.Timeout = time.Duration(f.Timeout)
	}
	if f.BatchSize > 0 {
		cfg.BatchSize = f.BatchSize
	}
	if f.NoCache {
		cfg.NoCache = true
	}
	if len(f.Sources) > 0 && len(cfg.SourceTitles) == 0 {
		cfg.SourceTitles = append(cfg.SourceTitles, f.Sources...)
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .gnvclient in the current directory
// 3. Look for .gnvclient in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
