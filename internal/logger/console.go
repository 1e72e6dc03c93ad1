// Package logger provides console logging for sheetshow searches.
//
// Messages are prefixed with [HH:MM:SS] timestamps and a level tag, filtered
// by a minimum level, and coloured when the destination is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ValidLevels lists the accepted log level names, most verbose first
var ValidLevels = []string{"trace", "debug", "info", "warn", "error"}

// ConsoleLogger logs search progress to a writer with timestamps and thread safety.
// Color output is enabled automatically when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is a TTY that should receive colour.
// NO_COLOR (via fatih/color) always wins.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsValidLevel reports whether level names a known log level
func IsValidLevel(level string) bool {
	normalized := strings.ToLower(strings.TrimSpace(level))
	for _, l := range ValidLevels {
		if l == normalized {
			return true
		}
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	if !IsValidLevel(level) {
		return "info"
	}
	return strings.ToLower(strings.TrimSpace(level))
}

// Level returns the effective minimum level
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message.
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := level
	if cl.colorOutput {
		tag = colorizeLevel(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), tag, message)
}

// colorizeLevel wraps a level tag in its ANSI colour
func colorizeLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// LogSearchComplete logs the end-of-search totals at INFO level.
// Format: "[HH:MM:SS] [INFO] Search complete. Found N matches in M files out of T files searched. (1.2s)"
func (cl *ConsoleLogger) LogSearchComplete(searched, matched, matches int, elapsed time.Duration) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	counts := [3]string{fmt.Sprint(matches), fmt.Sprint(matched), fmt.Sprint(searched)}
	if cl.colorOutput {
		scheme := newColorScheme()
		counts = [3]string{
			formatCount(matches, scheme),
			scheme.value.Sprint(matched),
			scheme.value.Sprint(searched),
		}
	}

	cl.logWithLevel("INFO", fmt.Sprintf("Search complete. Found %s matches in %s files out of %s files searched. (%s)",
		counts[0], counts[1], counts[2], formatDuration(elapsed)))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a short human-readable string.
// Examples: "350ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger discards all log messages.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogTrace is a no-op implementation.
func (n *NoOpLogger) LogTrace(message string) {}

// LogDebug is a no-op implementation.
func (n *NoOpLogger) LogDebug(message string) {}

// LogInfo is a no-op implementation.
func (n *NoOpLogger) LogInfo(message string) {}

// LogWarn is a no-op implementation.
func (n *NoOpLogger) LogWarn(message string) {}

// LogError is a no-op implementation.
func (n *NoOpLogger) LogError(message string) {}

// LogSearchComplete is a no-op implementation.
func (n *NoOpLogger) LogSearchComplete(searched, matched, matches int, elapsed time.Duration) {}
