package logger

import (
	"github.com/fatih/color"
)

// colorScheme defines consistent colors for counts in summary lines.
// Green: matches found
// Yellow: nothing found
// White: plain values
type colorScheme struct {
	success *color.Color
	warn    *color.Color
	value   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		value:   color.New(color.FgWhite),
	}
}

// formatCount colours a match count: green when something matched, yellow for zero
func formatCount(n int, scheme *colorScheme) string {
	if n == 0 {
		return scheme.warn.Sprint(n)
	}
	return scheme.success.Sprint(n)
}
