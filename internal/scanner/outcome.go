// Package scanner finds search terms inside individual files.
//
// Plain files are scanned line by line; spreadsheets cell by cell. Either way
// the result of scanning one file is an Outcome: the matches found, or the
// reason the file was skipped. Scanning a file never panics or aborts a
// larger search.
package scanner

import (
	"fmt"

	"github.com/harrison/sheetshow/internal/models"
)

// SheetError records a sheet that could not be read. The other sheets of the
// workbook are still scanned.
type SheetError struct {
	File  string
	Sheet string
	Err   error
}

func (e SheetError) Error() string {
	return fmt.Sprintf("could not read sheet '%s' in %s: %v", e.Sheet, e.File, e.Err)
}

func (e SheetError) Unwrap() error {
	return e.Err
}

// Outcome is the result of scanning one file
type Outcome struct {
	File        string         // Display path of the file
	Matches     []models.Match // Matches in discovery order
	Err         error          // Non-nil when the whole file was skipped
	SheetErrors []SheetError   // Sheets skipped inside a readable workbook
}

// Skipped returns true if the file could not be scanned at all
func (o Outcome) Skipped() bool {
	return o.Err != nil
}

// Matched returns true if the file contributed at least one match
func (o Outcome) Matched() bool {
	return len(o.Matches) > 0
}

func skipped(file string, err error) Outcome {
	return Outcome{File: file, Err: err}
}
