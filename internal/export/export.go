// Package export writes search results to disk as a formatted workbook or as
// one of the secondary report formats (JSON, CSV, Markdown, HTML, SQLite).
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/harrison/sheetshow/internal/filelock"
	"github.com/harrison/sheetshow/internal/models"
)

// ErrUnsupportedFormat is returned for an unknown export format name
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format names an export file format
type Format string

const (
	FormatXLSX     Format = "xlsx"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatSQLite   Format = "sqlite"
)

// Formats lists every supported format, workbook first
var Formats = []Format{FormatXLSX, FormatJSON, FormatCSV, FormatMarkdown, FormatHTML, FormatSQLite}

// maxNameLength bounds the term-derived part of a default file name
const maxNameLength = 50

// ParseFormat validates and normalizes a format name.
// An empty name selects the workbook format; "md" is an alias for markdown.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return FormatXLSX, nil
	case "md":
		return FormatMarkdown, nil
	case "db", "sqlite3":
		return FormatSQLite, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (supported: xlsx, json, csv, markdown, html, sqlite)", ErrUnsupportedFormat, name)
}

// FormatFromPath infers a format from a file extension.
// The second result is false when the extension is not recognised.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", false
	}
	return f, true
}

// Extension returns the file extension (without dot) used for the format
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// Exporter renders a report into file contents
type Exporter interface {
	Export(report *Report) ([]byte, error)
}

// Options configures Export
type Options struct {
	Path   string // Output file; empty derives one from the search terms
	Format Format // Empty means FormatXLSX
}

// Export writes results to disk and returns the path written.
//
// Nothing is written for an empty result set and the returned path is "".
// Files are written atomically under a lock so a partially written export is
// never left behind.
func Export(results *models.SearchResults, opts Options) (string, error) {
	if results == nil || results.IsEmpty() {
		return "", nil
	}

	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return "", err
	}

	path := opts.Path
	if path == "" {
		path = DefaultFileName(results.SearchTerms(), format)
	}

	report := NewReport(results)

	if format == FormatSQLite {
		err = filelock.LockAndBuild(path, func(tempPath string) error {
			return writeSQLite(report, tempPath)
		})
	} else {
		var data []byte
		data, err = exporterFor(format).Export(report)
		if err != nil {
			return "", fmt.Errorf("export failed: %w", err)
		}
		err = filelock.LockAndWrite(path, data)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

func exporterFor(format Format) Exporter {
	switch format {
	case FormatJSON:
		return &JSONExporter{Pretty: true}
	case FormatCSV:
		return &CSVExporter{}
	case FormatMarkdown:
		return &MarkdownExporter{}
	case FormatHTML:
		return &HTMLExporter{}
	default:
		return &XLSXExporter{}
	}
}

// DefaultFileName derives "search_results_<terms>.<ext>" from the search terms.
// Each term keeps only letters, digits, spaces and underscores, is trimmed and
// has spaces turned into underscores; terms are joined with "_" and the result
// is cut to 50 characters.
func DefaultFileName(terms []string, format Format) string {
	if format == "" {
		format = FormatXLSX
	}

	parts := make([]string, len(terms))
	for i, term := range terms {
		var sb strings.Builder
		for _, r := range term {
			if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '_' {
				sb.WriteRune(r)
			}
		}
		parts[i] = strings.ReplaceAll(strings.TrimSpace(sb.String()), " ", "_")
	}

	name := strings.Join(parts, "_")
	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}

	return fmt.Sprintf("search_results_%s.%s", name, format.Extension())
}
