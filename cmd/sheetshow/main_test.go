package main

import (
	"testing"

	"github.com/harrison/sheetshow/internal/cmd"
)

func TestVersionSet(t *testing.T) {
	if cmd.Version == "" {
		t.Error("Version should not be empty")
	}
	if got := cmd.NewRootCommand().Version; got != cmd.Version {
		t.Errorf("root command version = %q, want %q", got, cmd.Version)
	}
}
