package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	file   *excelize.File
	source io.Closer
}

func openXLSX(r io.ReadCloser) (Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx workbook: %w", err)
	}
	return &xlsxWorkbook{file: f, source: r}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *xlsxWorkbook) Grid(name string) (*Grid, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	grid := &Grid{Rows: make([][]Cell, len(rows))}
	for r, row := range rows {
		cells := make([]Cell, len(row))
		for c, value := range row {
			kind := KindEmpty
			if value != "" {
				ref, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return nil, fmt.Errorf("invalid cell position in sheet %q: %w", name, err)
				}
				cellType, err := w.file.GetCellType(name, ref)
				if err != nil {
					return nil, fmt.Errorf("failed to read cell %s in sheet %q: %w", ref, name, err)
				}
				kind = xlsxKind(cellType)
			}
			cells[c] = Cell{Value: value, Kind: kind}
		}
		grid.Rows[r] = cells
	}
	return grid, nil
}

func (w *xlsxWorkbook) Close() error {
	err := w.file.Close()
	if cerr := w.source.Close(); err == nil {
		err = cerr
	}
	return err
}

// xlsxKind maps a stored cell type to a Kind. Cells without a type attribute
// hold numbers (dates are numbers with a date format).
func xlsxKind(t excelize.CellType) Kind {
	switch t {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return KindText
	case excelize.CellTypeBool:
		return KindBool
	case excelize.CellTypeDate:
		return KindDate
	case excelize.CellTypeError:
		return KindError
	default:
		return KindNumber
	}
}
