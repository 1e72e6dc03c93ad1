package scanner

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/harrison/sheetshow/internal/models"
	"github.com/harrison/sheetshow/internal/sheet"
)

// headerRowOffset converts a 0-based data row index to the row number shown
// in a spreadsheet application: one for 1-based numbering, one for the header.
const headerRowOffset = 2

// Table is a sheet split into a named header and data rows
type Table struct {
	Columns []string
	Rows    [][]sheet.Cell
}

// NewTable treats the first grid row as the header. Blank header cells are
// named "Unnamed: <index>" and repeated names get ".1", ".2", ... suffixes.
// The table is as wide as the widest row.
func NewTable(grid *sheet.Grid) Table {
	if grid == nil || len(grid.Rows) == 0 {
		return Table{}
	}

	width := 0
	for _, row := range grid.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	header := grid.Rows[0]
	columns := make([]string, width)
	used := make(map[string]bool, width)
	counts := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i].Value
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if used[name] {
			n := max(counts[name], 1)
			candidate := fmt.Sprintf("%s.%d", name, n)
			for used[candidate] {
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
			}
			counts[name] = n + 1
			name = candidate
		} else {
			counts[name] = 1
		}
		used[name] = true
		columns[i] = name
	}

	return Table{Columns: columns, Rows: grid.Rows[1:]}
}

// cell returns the cell at row r, column c, or an empty cell when the row is short
func (t Table) cell(r, c int) sheet.Cell {
	row := t.Rows[r]
	if c < len(row) {
		return row[c]
	}
	return sheet.Cell{}
}

// IsTextColumn reports whether any data cell in column c holds text.
// Numeric, date and boolean columns are never searched.
func (t Table) IsTextColumn(c int) bool {
	for r := range t.Rows {
		if t.cell(r, c).Kind == sheet.KindText {
			return true
		}
	}
	return false
}

// FullRow returns every column of data row r, missing cells as ""
func (t Table) FullRow(r int) []models.RowField {
	fields := make([]models.RowField, len(t.Columns))
	for c, name := range t.Columns {
		fields[c] = models.RowField{Name: name, Value: t.cell(r, c).Value}
	}
	return fields
}

// MatchTable searches every text column of a table. Matches are ordered by
// column, then term, then row, one per (column, term, row) hit.
func MatchTable(filePath, sheetName string, table Table, terms []string) []models.Match {
	lowered := lowerTerms(terms)
	var matches []models.Match

	for c, column := range table.Columns {
		if !table.IsTextColumn(c) {
			continue
		}
		for i, term := range terms {
			for r := range table.Rows {
				value := table.cell(r, c).Value
				if value == "" || !strings.Contains(strings.ToLower(value), lowered[i]) {
					continue
				}
				matches = append(matches, models.NewMatch(
					filePath,
					r+headerRowOffset,
					value,
					models.WithTerm(term),
					models.WithCell(sheetName, column, table.FullRow(r)),
				))
			}
		}
	}
	return matches
}

// ScanWorkbook scans every sheet of a spreadsheet file. A workbook that
// cannot be opened is skipped; a sheet that cannot be read is recorded in
// SheetErrors and the remaining sheets are still scanned.
func ScanWorkbook(fs billy.Filesystem, path, displayPath string, terms []string) Outcome {
	wb, err := sheet.Open(fs, path)
	if err != nil {
		return skipped(displayPath, err)
	}
	defer wb.Close()

	return scanBook(wb, displayPath, terms)
}

func scanBook(wb sheet.Workbook, displayPath string, terms []string) Outcome {
	out := Outcome{File: displayPath}
	for _, name := range wb.SheetNames() {
		grid, err := wb.Grid(name)
		if err != nil {
			out.SheetErrors = append(out.SheetErrors, SheetError{File: displayPath, Sheet: name, Err: err})
			continue
		}
		out.Matches = append(out.Matches, MatchTable(displayPath, name, NewTable(grid), terms)...)
	}
	return out
}
