package logger

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("expected colour disabled for a non-terminal writer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}
		if logger.writer != nil {
			t.Error("expected nil writer")
		}
	})
}

// TestLogLineFormat verifies the "[HH:MM:SS] [LEVEL] message" layout
func TestLogLineFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "trace")

	logger.LogInfo("Searching for 2 term(s) in /data...")
	logger.LogWarn("Warning: Could not read file a.xlsx: boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[(INFO|WARN)\] `)
	for _, line := range lines {
		if !pattern.MatchString(line) {
			t.Errorf("line %q does not match %s", line, pattern)
		}
	}
	if !strings.HasSuffix(lines[0], "Searching for 2 term(s) in /data...") {
		t.Errorf("unexpected info line %q", lines[0])
	}
	if !strings.Contains(lines[1], "[WARN] Warning: Could not read file a.xlsx: boom") {
		t.Errorf("unexpected warn line %q", lines[1])
	}
}

// TestLogSearchComplete verifies the end-of-search summary message.
func TestLogSearchComplete(t *testing.T) {
	tests := []struct {
		name         string
		searched     int
		matched      int
		matches      int
		elapsed      time.Duration
		expectedText string
	}{
		{
			name:         "matches found",
			searched:     12,
			matched:      3,
			matches:      7,
			elapsed:      1500 * time.Millisecond,
			expectedText: "Search complete. Found 7 matches in 3 files out of 12 files searched. (1.5s)",
		},
		{
			name:         "nothing found",
			searched:     4,
			matched:      0,
			matches:      0,
			elapsed:      250 * time.Millisecond,
			expectedText: "Search complete. Found 0 matches in 0 files out of 4 files searched. (250ms)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, "info")
			logger.LogSearchComplete(tt.searched, tt.matched, tt.matches, tt.elapsed)

			output := buf.String()
			if !strings.Contains(output, tt.expectedText) {
				t.Errorf("expected output to contain %q, got %q", tt.expectedText, output)
			}
			if strings.Contains(output, "\033[") {
				t.Errorf("expected no ANSI codes for a buffer writer, got %q", output)
			}
		})
	}
}

// TestTimestampFormat verifies timestamp is in HH:MM:SS format.
func TestTimestampFormat(t *testing.T) {
	ts := timestamp()

	if len(ts) != 8 {
		t.Errorf("expected timestamp length 8, got %d: %s", len(ts), ts)
	}
	if ts[2] != ':' || ts[5] != ':' {
		t.Errorf("expected colons at positions 2 and 5, got %s", ts)
	}

	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts separated by colons, got %d", len(parts))
	}
	for i, part := range parts {
		if len(part) != 2 {
			t.Errorf("expected part %d to have length 2, got %d", i, len(part))
		}
		for _, ch := range part {
			if ch < '0' || ch > '9' {
				t.Errorf("expected digit in timestamp, got %c", ch)
			}
		}
	}
}

// TestConcurrentLogging verifies thread safety with concurrent logging.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	numGoroutines := 10
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()
			logger.LogInfo(fmt.Sprintf("file-%d.txt scanned", index))
			logger.LogSearchComplete(index, 0, 0, time.Second)
		}(i)
	}
	wg.Wait()

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != numGoroutines*2 {
		t.Errorf("expected %d lines, got %d", numGoroutines*2, len(lines))
	}
	for i := 0; i < numGoroutines; i++ {
		name := fmt.Sprintf("file-%d.txt scanned", i)
		if !strings.Contains(output, name) {
			t.Errorf("expected output to contain %q", name)
		}
	}
}

// TestNilWriter verifies that nil writer is handled gracefully.
func TestNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")

	logger.LogTrace("trace")
	logger.LogDebug("debug")
	logger.LogInfo("info")
	logger.LogWarn("warn")
	logger.LogError("error")
	logger.LogSearchComplete(1, 1, 1, time.Second)
}

// TestDurationFormatting verifies duration formatting for various time ranges.
func TestDurationFormatting(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0ms"},
		{350 * time.Millisecond, "350ms"},
		{time.Second, "1.0s"},
		{5500 * time.Millisecond, "5.5s"},
		{time.Minute, "1m"},
		{90 * time.Second, "1m30s"},
		{time.Hour, "1h"},
		{2*time.Hour + 15*time.Minute, "2h15m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.expected {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

// TestNoOpLogger verifies NoOpLogger methods don't panic.
func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	logger.LogTrace("trace")
	logger.LogDebug("debug")
	logger.LogInfo("info")
	logger.LogWarn("warn")
	logger.LogError("error")
	logger.LogSearchComplete(1, 1, 1, time.Second)
}

type searchLogger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogSearchComplete(searched, matched, matches int, elapsed time.Duration)
}

// TestConsoleLoggerSatisfiesInterface verifies ConsoleLogger can drive a search.
func TestConsoleLoggerSatisfiesInterface(t *testing.T) {
	var _ searchLogger = NewConsoleLogger(nil, "info")
}

// TestNoOpLoggerSatisfiesInterface verifies NoOpLogger can drive a search.
func TestNoOpLoggerSatisfiesInterface(t *testing.T) {
	var _ searchLogger = NewNoOpLogger()
}
