package logger

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestNewColorScheme(t *testing.T) {
	scheme := newColorScheme()

	if scheme == nil {
		t.Fatal("Expected non-nil color scheme")
	}
	if scheme.success == nil || scheme.warn == nil || scheme.value == nil {
		t.Error("Expected every color to be initialized")
	}
}

func TestFormatCount(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	scheme := newColorScheme()

	zero := formatCount(0, scheme)
	if !strings.Contains(zero, "\x1b[33m") {
		t.Errorf("zero count should be yellow, got %q", zero)
	}
	if !strings.Contains(zero, "0") {
		t.Errorf("zero count missing value: %q", zero)
	}

	some := formatCount(7, scheme)
	if !strings.Contains(some, "32") {
		t.Errorf("non-zero count should be green, got %q", some)
	}
	if !strings.Contains(some, "7") {
		t.Errorf("count missing value: %q", some)
	}
}

func TestFormatCountNoColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := formatCount(3, newColorScheme()); got != "3" {
		t.Errorf("formatCount() = %q, want %q", got, "3")
	}
}
