package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownExporter exports a summary list followed by the results table
type MarkdownExporter struct {
	IncludeTimestamp bool // Include export timestamp in header
}

// Export converts a Report to Markdown
func (me *MarkdownExporter) Export(report *Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}

	var sb strings.Builder

	sb.WriteString("# Search Results\n\n")
	if me.IncludeTimestamp {
		sb.WriteString(fmt.Sprintf("**Generated**: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	}

	sb.WriteString("## Summary\n\n")
	for i, value := range report.SummaryRow() {
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", SummaryHeaders[i], escapeMarkdown(cellText(value))))
	}
	sb.WriteString("\n")

	sb.WriteString("## Matches\n\n")
	writeMarkdownRow(&sb, report.Columns)
	sb.WriteString("|")
	for range report.Columns {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	cells := make([]string, len(report.Columns))
	for _, row := range report.Rows {
		for i, v := range row {
			cells[i] = cellText(v)
		}
		writeMarkdownRow(&sb, cells)
	}

	return []byte(sb.String()), nil
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(escapeMarkdown(c))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"<", `\<`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escapeMarkdown keeps a value on one table line and stops it from being
// read as a cell separator or raw HTML
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// HTMLExporter renders the Markdown report to a standalone HTML page
type HTMLExporter struct{}

// Export converts a Report to HTML via goldmark with GitHub tables
func (he *HTMLExporter) Export(report *Report) ([]byte, error) {
	md, err := (&MarkdownExporter{IncludeTimestamp: true}).Export(report)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	renderer := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := renderer.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Search Results</title>\n")
	page.WriteString("<style>table{border-collapse:collapse}th{background:#366092;color:#fff}th,td{border:1px solid #ccc;padding:2px 6px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
