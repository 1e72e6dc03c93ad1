// Package sheet reads spreadsheet workbooks into typed grids.
//
// Two formats are supported: Office Open XML (.xlsx) through excelize and the
// legacy BIFF format (.xls) through extrame/xls. Both produce the same Grid so
// the scanner does not care which one it got.
package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"

	"github.com/harrison/sheetshow/internal/fileutil"
)

// ErrUnsupported is returned for extensions no reader handles
var ErrUnsupported = errors.New("unsupported spreadsheet format")

// Kind classifies a cell value
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindBool
	KindDate
	KindError
	// KindFormula is a formula whose cached result the reader cannot see.
	// Its Value is empty.
	KindFormula
)

// Cell is one spreadsheet cell rendered as text
type Cell struct {
	Value string
	Kind  Kind
}

// Grid is the raw content of one sheet, header row included, in row order.
// Rows may be ragged; interior blank rows are kept as empty slices.
type Grid struct {
	Rows [][]Cell
}

// Workbook is an open spreadsheet file
type Workbook interface {
	// SheetNames lists the sheets in workbook order
	SheetNames() []string
	// Grid reads one sheet
	Grid(name string) (*Grid, error)
	io.Closer
}

// Extensions lists the spreadsheet extensions this package can read
var Extensions = []string{".xlsx", ".xls"}

// IsSpreadsheet reports whether path has a spreadsheet extension
func IsSpreadsheet(path string) bool {
	ext := fileutil.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Open opens the workbook at path inside fs, choosing the reader by extension.
// The returned workbook owns the underlying file and must be closed.
func Open(fs billy.Filesystem, path string) (Workbook, error) {
	ext := fileutil.Ext(path)
	if ext != ".xlsx" && ext != ".xls" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	var wb Workbook
	if ext == ".xlsx" {
		wb, err = openXLSX(f)
	} else {
		wb, err = openXLS(f)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return wb, nil
}
