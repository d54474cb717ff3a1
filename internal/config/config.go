// Package config loads host-side defaults for document generation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexgen/go-reviewdoc/internal/dateutil"
	"github.com/lexgen/go-reviewdoc/internal/fileutil"
	"github.com/lexgen/go-reviewdoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidFormat   = errors.New("invalid output format")
)

// configDirName is the subdirectory searched under the user config dir.
const configDirName = "reviewdoc"

// Config holds all configuration for document generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Footer   FooterConfig   `yaml:"footer"`
	Style    StyleConfig    `yaml:"style"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Format     string `yaml:"format"`     // "docx", "pdf", or "html"
	Base64     bool   `yaml:"base64"`     // Emit the transport payload instead of raw bytes
}

// DocumentConfig defines document metadata options.
type DocumentConfig struct {
	Name      string `yaml:"name"`      // Empty = derive from input filename
	Defendant bool   `yaml:"defendant"` // Defendant report variant
}

// FooterConfig defines footer timestamp options.
type FooterConfig struct {
	DateFormat string `yaml:"dateFormat"` // Token format or preset (iso, us, long, timestamp)
}

// StyleConfig defines HTML styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Embedded style name for HTML output
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: "docx"},
		Footer: FooterConfig{DateFormat: "timestamp"},
		Style:  StyleConfig{Name: "report"},
	}
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "docx", "pdf", "html":
	default:
		return fmt.Errorf("%w: %q (must be docx, pdf, or html)", ErrInvalidFormat, c.Output.Format)
	}
	if c.Footer.DateFormat != "" {
		if _, err := dateutil.ResolveLayout(c.Footer.DateFormat); err != nil {
			return fmt.Errorf("footer.dateFormat: %w", err)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches standard locations for <name>.yaml:
// the current directory, then the user config dir.
func resolveConfigPath(name string) (string, error) {
	candidates := []string{name + ".yaml"}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userDir, configDirName, name+".yaml"))
	}

	for _, c := range candidates {
		if fileutil.FileExists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched %v)", ErrConfigNotFound, name, candidates)
}
