package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	ResultsSheet = "Search Results"
	SummarySheet = "Summary"
)

// maxResultsWidth caps result column widths; summary widths are uncapped
const maxResultsWidth = 50

// XLSXExporter renders a report as a workbook with a results sheet and a
// summary sheet, both with styled headers and fitted column widths.
type XLSXExporter struct{}

// Export converts a Report to workbook bytes
func (xe *XLSXExporter) Export(report *Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ResultsSheet); err != nil {
		return nil, fmt.Errorf("failed to name results sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSheet(f, ResultsSheet, report.Columns, report.Rows, headerStyle, maxResultsWidth); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SummarySheet, SummaryHeaders, [][]any{report.SummaryRow()}, headerStyle, 0); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheet writes a header row plus data rows, styles the header and sizes
// every column to its longest non-empty value plus two. widthCap <= 0 means
// no cap.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle, widthCap int) error {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}

	for r, row := range append([][]any{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", r+1, sheet, err)
		}
	}

	if len(headers) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for c := range headers {
		longest := utf8.RuneCountInString(headers[c])
		for _, row := range rows {
			if c < len(row) {
				longest = max(longest, displayLength(row[c]))
			}
		}
		width := longest + 2
		if widthCap > 0 {
			width = min(width, widthCap)
		}

		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return fmt.Errorf("failed to size column %s of %s: %w", name, sheet, err)
		}
	}
	return nil
}

// displayLength is the character count of a rendered value; empty and zero
// values count as nothing.
func displayLength(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case int:
		if val == 0 {
			return 0
		}
	case string:
		return utf8.RuneCountInString(val)
	}
	return utf8.RuneCountInString(cellText(v))
}
