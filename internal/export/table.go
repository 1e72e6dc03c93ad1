package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harrison/sheetshow/internal/models"
)

// Fixed result columns
const (
	ColFilePath    = "file_path"
	ColLineNumber  = "line_number"
	ColLineContent = "line_content"
	ColMatchedTerm = "matched_term"
	ColSheetName   = "sheet_name"
	ColColumnName  = "column_name"
)

// SummaryHeaders are the column names of the summary table
var SummaryHeaders = []string{"Search Terms", "Search Location", "Total Results", "Unique Files"}

// Spreadsheet columns whose names clash with result columns get "orig_";
// every other spreadsheet column gets "source_".
var reservedColumns = map[string]bool{
	ColFilePath:    true,
	ColLineNumber:  true,
	ColLineContent: true,
	ColSheetName:   true,
	ColColumnName:  true,
}

// Report is the export-ready view of a result set
type Report struct {
	RunID          string
	GeneratedAt    time.Time
	SearchTerms    []string
	SearchLocation string
	TotalResults   int
	UniqueFiles    int

	Records []models.Match
	Columns []string
	Rows    [][]any // One per record, aligned with Columns; nil marks an absent cell
}

// NewReport builds a Report, deriving columns and rows from the records
func NewReport(results *models.SearchResults) *Report {
	records := results.Results()
	columns := Columns(records)

	rows := make([][]any, len(records))
	for i, m := range records {
		rows[i] = Row(m, columns)
	}

	return &Report{
		RunID:          results.RunID(),
		GeneratedAt:    time.Now(),
		SearchTerms:    results.SearchTerms(),
		SearchLocation: results.SearchLocation(),
		TotalResults:   len(records),
		UniqueFiles:    results.UniqueFiles(),
		Records:        records,
		Columns:        columns,
		Rows:           rows,
	}
}

// SummaryRow returns the summary values in SummaryHeaders order
func (r *Report) SummaryRow() []any {
	return []any{strings.Join(r.SearchTerms, ", "), r.SearchLocation, r.TotalResults, r.UniqueFiles}
}

// SourceColumnName maps a spreadsheet header to its export column name
func SourceColumnName(header string) string {
	if reservedColumns[header] {
		return "orig_" + header
	}
	return "source_" + header
}

// Columns returns the union of record keys in first-seen order.
func Columns(records []models.Match) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, m := range records {
		for _, f := range fields(m) {
			if !seen[f.Name] {
				seen[f.Name] = true
				columns = append(columns, f.Name)
			}
		}
	}
	return columns
}

// Row renders one record against columns. line_number is an int, every
// other present value a string, and absent cells are nil.
func Row(m models.Match, columns []string) []any {
	values := make(map[string]any)
	for _, f := range fields(m) {
		values[f.Name] = f.Value
	}

	row := make([]any, len(columns))
	for i, col := range columns {
		row[i] = values[col]
	}
	return row
}

type field struct {
	Name  string
	Value any
}

// fields lists a record's keys in export order
func fields(m models.Match) []field {
	out := []field{
		{ColFilePath, m.FilePath},
		{ColLineNumber, m.LineNumber},
		{ColLineContent, m.LineContent},
	}
	if m.HasTerm() {
		out = append(out, field{ColMatchedTerm, m.MatchedTerm})
	}
	if m.IsTabular() {
		out = append(out,
			field{ColSheetName, m.Tabular.SheetName},
			field{ColColumnName, m.Tabular.ColumnName},
		)
		for _, rf := range m.Tabular.FullRow {
			out = append(out, field{SourceColumnName(rf.Name), rf.Value})
		}
	}
	return out
}

// cellText renders a cell value for text formats
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
