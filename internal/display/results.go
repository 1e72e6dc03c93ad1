package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harrison/sheetshow/internal/models"
)

const (
	headerRule = 60
	entryRule  = 40
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	term    lipgloss.Style
	rule    lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
}

// newStyles binds styles to w so colour follows w's terminal capabilities
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Bold(true),
		term:    r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}

// Results prints up to maxDisplay matches followed by the total match count.
// An empty result set prints "No results found.".
func Results(w io.Writer, results *models.SearchResults, maxDisplay int) {
	st := newStyles(w)

	if results == nil || results.IsEmpty() {
		fmt.Fprintln(w, st.warning.Render("No results found."))
		return
	}

	quoted := make([]string, 0, len(results.SearchTerms()))
	for _, term := range results.SearchTerms() {
		quoted = append(quoted, "'"+Sanitize(term)+"'")
	}
	fmt.Fprintf(w, "\n%s\n", st.title.Render("Search Results for: "+strings.Join(quoted, ", ")))
	fmt.Fprintln(w, st.rule.Render(strings.Repeat("=", headerRule)))

	matches := results.Results()
	shown := matches
	if maxDisplay >= 0 && len(matches) > maxDisplay {
		shown = matches[:maxDisplay]
	}
	for _, m := range shown {
		writeMatch(w, st, m)
	}

	if remaining := len(matches) - len(shown); remaining > 0 {
		fmt.Fprintln(w, st.muted.Render(fmt.Sprintf("... and %d more results", remaining)))
	}

	fmt.Fprintf(w, "\n%s\n", st.success.Render(fmt.Sprintf("Total: %d matches found", len(matches))))
}

func writeMatch(w io.Writer, st styles, m models.Match) {
	fmt.Fprintf(w, "%s %s\n", st.label.Render("File:"), Sanitize(m.FilePath))
	if m.HasTerm() {
		fmt.Fprintf(w, "%s %s\n", st.label.Render("Matched term:"), st.term.Render("'"+Sanitize(m.MatchedTerm)+"'"))
	}
	if m.IsTabular() {
		fmt.Fprintf(w, "%s %s, Row %d, %s %s\n",
			st.label.Render("Sheet:"), Sanitize(m.Tabular.SheetName), m.LineNumber,
			st.label.Render("Column:"), Sanitize(m.Tabular.ColumnName))
		fmt.Fprintf(w, "%s %s\n", st.label.Render("Value:"), Sanitize(m.LineContent))
	} else {
		fmt.Fprintf(w, "%s %s\n", st.label.Render(fmt.Sprintf("Line %d:", m.LineNumber)), Sanitize(m.LineContent))
	}
	fmt.Fprintln(w, st.rule.Render(strings.Repeat("-", entryRule)))
}
