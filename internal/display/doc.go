// Package display renders search output for the terminal.
//
// # Result Listing
//
// Results prints the classic listing: one block per match, truncated after
// maxDisplay entries, followed by the total:
//
//	display.Results(os.Stdout, results, 20)
//
// # Warning Messages
//
// Warnings summarise problems that did not stop the search:
//
//	warning := display.SkippedFilesWarning(report)
//	warning.Display(os.Stderr)
//
// # Colors
//
// Styles are built with lipgloss against the destination writer, so colour is
// emitted only when that writer is a terminal. File content is passed through
// Sanitize before printing so control sequences inside searched files cannot
// drive the terminal.
package display
