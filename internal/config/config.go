package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/sheetshow/internal/export"
	"github.com/harrison/sheetshow/internal/fileutil"
	"github.com/harrison/sheetshow/internal/scanner"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = ".sheetshow.yaml"


// Config represents sheetshow configuration options
type Config struct {
	// Extensions lists the file extensions to search (".txt" or "txt")
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs lists directory names skipped while walking
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// MaxDisplay is the number of results printed before truncating
	MaxDisplay int `yaml:"max_display"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Format is the export format used when none is given on the command line
	Format string `yaml:"format"`

	// MaxLineBytes is the longest line the text scanner accepts
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Extensions:   append([]string(nil), fileutil.DefaultExtensions...),
		ExcludeDirs:  nil,
		MaxDisplay:   20,
		LogLevel:     "info",
		Format:       string(export.FormatXLSX),
		MaxLineBytes: scanner.DefaultMaxLineBytes,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Lists and max_display may legitimately be empty or zero, so presence
	// is detected on the raw document rather than by zero value.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, exists := rawMap["extensions"]; exists {
		cfg.Extensions = yamlCfg.Extensions
	}
	if _, exists := rawMap["exclude_dirs"]; exists {
		cfg.ExcludeDirs = yamlCfg.ExcludeDirs
	}
	if _, exists := rawMap["max_display"]; exists {
		cfg.MaxDisplay = yamlCfg.MaxDisplay
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	if yamlCfg.MaxLineBytes != 0 {
		cfg.MaxLineBytes = yamlCfg.MaxLineBytes
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(extensions *[]string, excludeDirs *[]string, maxDisplay *int, logLevel *string, format *string) {
	if extensions != nil {
		c.Extensions = *extensions
	}
	if excludeDirs != nil {
		c.ExcludeDirs = *excludeDirs
	}
	if maxDisplay != nil {
		c.MaxDisplay = *maxDisplay
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if format != nil {
		c.Format = *format
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.MaxDisplay < 0 {
		return fmt.Errorf("max_display must be >= 0, got %d", c.MaxDisplay)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be > 0, got %d", c.MaxLineBytes)
	}

	for _, ext := range c.Extensions {
		if strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "" {
			return fmt.Errorf("extensions cannot contain an empty entry")
		}
	}

	return nil
}
