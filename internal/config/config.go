// Package config loads the YAML build configuration for litweave.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/averel/go-litweave/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Generous, but bounded so a corrupt config
// cannot balloon the front matter or asset lookups.
const (
	MaxTitleLength  = 200
	MaxAuthorLength = 100
	MaxDateLength   = 30
	MaxNameLength   = 100  // style/template asset names
	MaxPathLength   = 2048 // filesystem paths
)

// Config holds all configuration for building a report.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
	Style       StyleConfig       `yaml:"style"`
	Template    TemplateConfig    `yaml:"template"`
	Assets      AssetsConfig      `yaml:"assets"`
	PDF         PDFConfig         `yaml:"pdf"`
}

// InputConfig defines the annotated source document to build.
type InputConfig struct {
	Path string `yaml:"path"` // Annotated source path (empty = CLI default)
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = alongside input)
}

// FrontMatterConfig defines the header prepended before weaving.
type FrontMatterConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Date    string `yaml:"date"` // "auto" = today (YYYY-MM-DD)
}

// StyleConfig defines CSS styling.
type StyleConfig struct {
	// Name is an embedded style name, a CSS file path, or raw CSS.
	Name string `yaml:"name"`
}

// TemplateConfig defines the page template.
type TemplateConfig struct {
	// Name is an embedded template name or an HTML file path.
	Name string `yaml:"name"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PDFConfig defines the optional PDF export.
type PDFConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns a neutral configuration: no front matter
// override, embedded default assets, no PDF.
func DefaultConfig() *Config {
	return &Config{
		FrontMatter: FrontMatterConfig{Enabled: true},
	}
}

// Validate checks field lengths. Called automatically by LoadConfig,
// but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"frontMatter.title", c.FrontMatter.Title, MaxTitleLength},
		{"frontMatter.author", c.FrontMatter.Author, MaxAuthorLength},
		{"frontMatter.date", c.FrontMatter.Date, MaxDateLength},
		{"style.name", c.Style.Name, MaxPathLength},
		{"template.name", c.Template.Name, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, check := range checks {
		if err := validateFieldLength(check.field, check.value, check.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/litweave/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "litweave", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
