package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when out is a terminal
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, Sanitize(file)))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	// Rendered per line: lipgloss pads multi-line blocks to a common width
	style := lipgloss.NewRenderer(out).NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	for _, line := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
		fmt.Fprintln(out, style.Render(line))
	}
}

// SkippedFilesWarning summarises files and sheets that could not be read.
// The zero Warning is returned when nothing was skipped.
func SkippedFilesWarning(files []string) (Warning, bool) {
	if len(files) == 0 {
		return Warning{}, false
	}
	noun := "files"
	if len(files) == 1 {
		noun = "file"
	}
	return Warning{
		Title:      fmt.Sprintf("%d %s could not be fully read", len(files), noun),
		Message:    "Matches from these files may be missing from the results.",
		Files:      files,
		Suggestion: "Check that the files are not open elsewhere or corrupted, or run with --log-level debug for details.",
	}, true
}
