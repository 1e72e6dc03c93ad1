package models

import "strings"

// RowField is one column of a spreadsheet row, kept in sheet column order.
type RowField struct {
	Name  string
	Value string
}

// TabularContext locates a match inside a spreadsheet and carries the full
// row it was found in. Sheet, column and row data are always set together.
type TabularContext struct {
	SheetName  string     // Sheet the cell belongs to
	ColumnName string     // Header of the matched column
	FullRow    []RowField // Every column of the matched row, missing cells as ""
}

// Match represents one located occurrence of a search term
type Match struct {
	FilePath    string          // Base name (single file search) or path relative to the search root
	LineNumber  int             // 1-based line, or sheet row including the header offset
	LineContent string          // Matched line or cell value, whitespace trimmed
	MatchedTerm string          // Term that matched (optional)
	Tabular     *TabularContext // Spreadsheet location (nil for text matches)
}

// MatchOption sets an optional field on a Match
type MatchOption func(*Match)

// WithTerm records which search term produced the match.
// An empty term leaves the field absent.
func WithTerm(term string) MatchOption {
	return func(m *Match) {
		m.MatchedTerm = term
	}
}

// WithCell marks the match as a spreadsheet cell match.
// The option is ignored unless both sheet and column are non-empty.
func WithCell(sheet, column string, fullRow []RowField) MatchOption {
	return func(m *Match) {
		if sheet == "" || column == "" {
			return
		}
		row := make([]RowField, len(fullRow))
		copy(row, fullRow)
		m.Tabular = &TabularContext{
			SheetName:  sheet,
			ColumnName: column,
			FullRow:    row,
		}
	}
}

// NewMatch builds a Match, trimming surrounding whitespace from the content
func NewMatch(filePath string, lineNumber int, lineContent string, opts ...MatchOption) Match {
	m := Match{
		FilePath:    filePath,
		LineNumber:  lineNumber,
		LineContent: strings.TrimSpace(lineContent),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// HasTerm returns true if the matched term is known
func (m Match) HasTerm() bool {
	return m.MatchedTerm != ""
}

// IsTabular returns true if the match came from a spreadsheet cell
func (m Match) IsTabular() bool {
	return m.Tabular != nil
}
