package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/harrison/sheetshow/internal/export"
	"github.com/harrison/sheetshow/internal/fileutil"
	"github.com/harrison/sheetshow/internal/scanner"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !reflect.DeepEqual(cfg.Extensions, fileutil.DefaultExtensions) {
		t.Errorf("Extensions = %v, want %v", cfg.Extensions, fileutil.DefaultExtensions)
	}
	if len(cfg.ExcludeDirs) != 0 {
		t.Errorf("ExcludeDirs = %v, want none", cfg.ExcludeDirs)
	}
	if cfg.MaxDisplay != 20 {
		t.Errorf("MaxDisplay = %d, want 20", cfg.MaxDisplay)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Format != "xlsx" {
		t.Errorf("Format = %q, want %q", cfg.Format, "xlsx")
	}
	if cfg.MaxLineBytes != scanner.DefaultMaxLineBytes {
		t.Errorf("MaxLineBytes = %d, want %d", cfg.MaxLineBytes, scanner.DefaultMaxLineBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	cfg.Extensions[0] = ".changed"
	if fileutil.DefaultExtensions[0] == ".changed" {
		t.Error("DefaultConfig must not share the default extension slice")
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	configPath := writeConfig(t, `extensions: [txt, .log]
exclude_dirs:
  - node_modules
  - .git
max_display: 5
log_level: debug
format: csv
max_line_bytes: 4096
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Extensions, []string{"txt", ".log"}) {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if !reflect.DeepEqual(cfg.ExcludeDirs, []string{"node_modules", ".git"}) {
		t.Errorf("ExcludeDirs = %v", cfg.ExcludeDirs)
	}
	if cfg.MaxDisplay != 5 {
		t.Errorf("MaxDisplay = %d, want 5", cfg.MaxDisplay)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Format != "csv" {
		t.Errorf("Format = %q, want %q", cfg.Format, "csv")
	}
	if cfg.MaxLineBytes != 4096 {
		t.Errorf("MaxLineBytes = %d, want 4096", cfg.MaxLineBytes)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/.sheetshow.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if cfg.MaxDisplay != 20 {
		t.Errorf("MaxDisplay = %d, want 20 (default)", cfg.MaxDisplay)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q (default)", cfg.LogLevel, "info")
	}
}

// TestLoadConfigInvalidYAML tests error handling for malformed YAML
func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `
max_display: 5
extensions: [this is not valid
log_level: debug
`)

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() expected error for invalid YAML, got nil")
	}
}

// TestLoadConfigPartialValues tests that partial config merges with defaults
func TestLoadConfigPartialValues(t *testing.T) {
	configPath := writeConfig(t, `log_level: warn
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.MaxDisplay != 20 {
		t.Errorf("MaxDisplay = %d, want 20 (default)", cfg.MaxDisplay)
	}
	if !reflect.DeepEqual(cfg.Extensions, fileutil.DefaultExtensions) {
		t.Errorf("Extensions = %v, want defaults", cfg.Extensions)
	}
	if cfg.Format != "xlsx" {
		t.Errorf("Format = %q, want xlsx (default)", cfg.Format)
	}
}

// TestLoadConfigExplicitZeroValues tests that present-but-zero keys override defaults
func TestLoadConfigExplicitZeroValues(t *testing.T) {
	configPath := writeConfig(t, `max_display: 0
extensions: []
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxDisplay != 0 {
		t.Errorf("MaxDisplay = %d, want 0", cfg.MaxDisplay)
	}
	if len(cfg.Extensions) != 0 {
		t.Errorf("Extensions = %v, want empty", cfg.Extensions)
	}
}

// TestMergeWithFlags tests CLI flag precedence over config values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	extensions := []string{"py"}
	excludeDirs := []string{"vendor"}
	maxDisplay := 3
	logLevel := "error"
	format := "json"

	cfg.MergeWithFlags(&extensions, &excludeDirs, &maxDisplay, &logLevel, &format)

	if !reflect.DeepEqual(cfg.Extensions, []string{"py"}) {
		t.Errorf("Extensions = %v, want [py]", cfg.Extensions)
	}
	if !reflect.DeepEqual(cfg.ExcludeDirs, []string{"vendor"}) {
		t.Errorf("ExcludeDirs = %v, want [vendor]", cfg.ExcludeDirs)
	}
	if cfg.MaxDisplay != 3 {
		t.Errorf("MaxDisplay = %d, want 3", cfg.MaxDisplay)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "error")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
}

// TestMergeWithFlagsNil tests that nil flags don't override config
func TestMergeWithFlagsNil(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDisplay = 7

	cfg.MergeWithFlags(nil, nil, nil, nil, nil)

	if cfg.MaxDisplay != 7 {
		t.Errorf("MaxDisplay = %d, want 7 (original)", cfg.MaxDisplay)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q (original)", cfg.LogLevel, "info")
	}
}

// TestMergeWithFlagsZeroValues tests that zero-value flags are treated as set
func TestMergeWithFlagsZeroValues(t *testing.T) {
	cfg := DefaultConfig()

	maxDisplay := 0
	cfg.MergeWithFlags(nil, nil, &maxDisplay, nil, nil)

	if cfg.MaxDisplay != 0 {
		t.Errorf("MaxDisplay = %d, want 0", cfg.MaxDisplay)
	}
}

// TestConfigValidation tests validation of config values
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		config    string
		wantError bool
	}{
		{name: "valid config", config: "max_display: 10\nlog_level: info\nformat: md\n"},
		{name: "negative max_display", config: "max_display: -1\n", wantError: true},
		{name: "invalid log_level", config: "log_level: invalid\n", wantError: true},
		{name: "unknown format", config: "format: pdf\n", wantError: true},
		{name: "negative max_line_bytes", config: "max_line_bytes: -5\n", wantError: true},
		{name: "blank extension", config: "extensions: [txt, \"\"]\n", wantError: true},
		{name: "empty file", config: ""},
		{name: "comments only", config: "# nothing configured\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.config))
			if err != nil {
				t.Fatalf("LoadConfig() unexpected error = %v", err)
			}

			err = cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

// TestValidateFormatError tests the unsupported format sentinel is preserved
func TestValidateFormatError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "pdf"

	err := cfg.Validate()
	if !errors.Is(err, export.ErrUnsupportedFormat) {
		t.Errorf("Validate() error = %v, want ErrUnsupportedFormat", err)
	}
}

// TestLoadConfigPermissionDenied tests handling of permission errors
func TestLoadConfigPermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can read files regardless of mode")
	}

	configPath := writeConfig(t, "max_display: 5")
	if err := os.Chmod(configPath, 0000); err != nil {
		t.Fatalf("failed to chmod config: %v", err)
	}
	defer os.Chmod(configPath, 0644)

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() expected error for unreadable file, got nil")
	}
}

// TestInvalidLogLevels tests that invalid log levels are rejected
func TestInvalidLogLevels(t *testing.T) {
	for _, level := range []string{"invalid", "TRACE", "warning", "fatal", ""} {
		t.Run(level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LogLevel = level
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() expected error for invalid level %q", level)
			}
		})
	}
}
