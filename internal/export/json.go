package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harrison/sheetshow/internal/models"
)

// JSONExporter exports a report as a single JSON document
type JSONExporter struct {
	Pretty bool // Enable pretty printing with indentation
}

type jsonReport struct {
	RunID          string       `json:"run_id"`
	GeneratedAt    time.Time    `json:"generated_at"`
	SearchTerms    []string     `json:"search_terms"`
	SearchLocation string       `json:"search_location"`
	TotalResults   int          `json:"total_results"`
	UniqueFiles    int          `json:"unique_files"`
	Results        []jsonRecord `json:"results"`
}

type jsonRecord struct {
	FilePath    string     `json:"file_path"`
	LineNumber  int        `json:"line_number"`
	LineContent string     `json:"line_content"`
	MatchedTerm string     `json:"matched_term,omitempty"`
	SheetName   string     `json:"sheet_name,omitempty"`
	ColumnName  string     `json:"column_name,omitempty"`
	FullRowData orderedRow `json:"full_row_data,omitempty"`
}

// orderedRow marshals as a JSON object that keeps sheet column order
type orderedRow []models.RowField

func (o orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Export converts a Report to JSON
func (je *JSONExporter) Export(report *Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}

	doc := jsonReport{
		RunID:          report.RunID,
		GeneratedAt:    report.GeneratedAt,
		SearchTerms:    report.SearchTerms,
		SearchLocation: report.SearchLocation,
		TotalResults:   report.TotalResults,
		UniqueFiles:    report.UniqueFiles,
		Results:        make([]jsonRecord, 0, len(report.Records)),
	}
	for _, m := range report.Records {
		rec := jsonRecord{
			FilePath:    m.FilePath,
			LineNumber:  m.LineNumber,
			LineContent: m.LineContent,
			MatchedTerm: m.MatchedTerm,
		}
		if m.IsTabular() {
			rec.SheetName = m.Tabular.SheetName
			rec.ColumnName = m.Tabular.ColumnName
			rec.FullRowData = orderedRow(m.Tabular.FullRow)
		}
		doc.Results = append(doc.Results, rec)
	}

	var data []byte
	var err error
	if je.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return append(data, '\n'), nil
}
