package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter exports the results table as CSV, using the workbook's columns
type CSVExporter struct{}

// Export converts a Report to CSV
func (ce *CSVExporter) Export(report *Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(report.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(report.Columns))
	for _, row := range report.Rows {
		for i, v := range row {
			record[i] = cellText(v)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
