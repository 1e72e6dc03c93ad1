package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestProgressBarRender tests bar rendering at several positions
func TestProgressBarRender(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		steps    int
		expected string
	}{
		{"empty", 10, 0, "[          ] 0/10 (0%)"},
		{"half", 10, 5, "[=====     ] 5/10 (50%)"},
		{"full", 10, 10, "[==========] 10/10 (100%)"},
		{"clamped", 2, 5, "[==========] 2/2 (100%)"},
		{"zero total", 0, 0, "[          ] 0/0 (0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewProgressBar(tt.total, 10, false)
			for i := 0; i < tt.steps; i++ {
				pb.Increment()
			}
			if got := pb.Render(); got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestProgressBarWidth tests different bar widths
func TestProgressBarWidth(t *testing.T) {
	for _, width := range []int{1, 5, 20} {
		pb := NewProgressBar(10, width, false)
		pb.Increment()
		result := pb.Render()

		start := strings.Index(result, "[")
		end := strings.Index(result, "]")
		if start < 0 || end <= start {
			t.Fatalf("Render() missing brackets: %q", result)
		}
		if got := end - start - 1; got != width {
			t.Errorf("bar width = %d, want %d", got, width)
		}
	}

	if pb := NewProgressBar(10, 0, false); pb.width != 10 {
		t.Errorf("expected default width 10, got %d", pb.width)
	}
}

// TestProgressBarColors tests color rendering
func TestProgressBarColors(t *testing.T) {
	pb := NewProgressBar(2, 10, true)
	pb.Increment()
	if got := pb.Render(); !strings.HasPrefix(got, "\033[36m") {
		t.Errorf("expected cyan while in progress, got %q", got)
	}
	pb.Increment()
	if got := pb.Render(); !strings.HasPrefix(got, "\033[32m") {
		t.Errorf("expected green when complete, got %q", got)
	}

	plain := NewProgressBar(2, 10, false)
	if strings.Contains(plain.Render(), "\033[") {
		t.Error("expected no ANSI codes without colour")
	}
}

// TestProgressBarPrefix tests the label drawn before the bar
func TestProgressBarPrefix(t *testing.T) {
	pb := NewProgressBar(4, 4, false)
	pb.SetPrefix("Searching files ")
	pb.Increment()
	if got := pb.Render(); got != "Searching files [=   ] 1/4 (25%)" {
		t.Errorf("Render() = %q", got)
	}
	if pb.Current() != 1 || pb.Percentage() != 25 {
		t.Errorf("Current()=%d Percentage()=%d", pb.Current(), pb.Percentage())
	}
}

// TestFileProgress tests in-place redraws of the file bar
func TestFileProgress(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewFileProgress(buf, 2, false)
	p.Step()
	p.Step()
	p.Finish()

	out := buf.String()
	if strings.Count(out, "\r") != 3 {
		t.Errorf("expected 3 redraws, got %q", out)
	}
	if !strings.Contains(out, "Searching files [") || !strings.HasSuffix(out, "2/2 (100%)\n") {
		t.Errorf("unexpected progress output %q", out)
	}

	var nilProgress *FileProgress
	nilProgress.Step()
	nilProgress.Finish()
}
