package sheet

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
)

type readSeekCloser interface {
	io.ReadSeeker
	io.Closer
}

type xlsWorkbook struct {
	book   *xls.WorkBook
	source io.Closer
	sheets map[string]int
	names  []string
}

func openXLS(r io.ReadCloser) (wb Workbook, err error) {
	rs, ok := r.(readSeekCloser)
	if !ok {
		return nil, fmt.Errorf("failed to read xls workbook: source is not seekable")
	}

	// The BIFF decoder panics on some malformed files
	defer func() {
		if p := recover(); p != nil {
			wb = nil
			err = fmt.Errorf("failed to read xls workbook: %v", p)
		}
	}()

	book, err := xls.OpenReader(rs, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to read xls workbook: %w", err)
	}

	w := &xlsWorkbook{
		book:   book,
		source: r,
		sheets: make(map[string]int),
	}
	for i := 0; i < book.NumSheets(); i++ {
		s := book.GetSheet(i)
		if s == nil {
			continue
		}
		w.sheets[s.Name] = i
		w.names = append(w.names, s.Name)
	}
	return w, nil
}

func (w *xlsWorkbook) SheetNames() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

func (w *xlsWorkbook) Grid(name string) (grid *Grid, err error) {
	idx, ok := w.sheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", name)
	}

	defer func() {
		if p := recover(); p != nil {
			grid = nil
			err = fmt.Errorf("failed to read sheet %q: %v", name, p)
		}
	}()

	s := w.book.GetSheet(idx)
	if s == nil {
		return nil, fmt.Errorf("sheet %q not found", name)
	}

	rows := make([][]Cell, 0, int(s.MaxRow)+1)
	last := -1
	for r := 0; r <= int(s.MaxRow); r++ {
		row := sheetRow(s, r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cells []Cell
		for c := 0; c <= row.LastCol(); c++ {
			cells = append(cells, xlsCell(row.Col(c)))
		}
		cells = trimEmpty(cells)
		rows = append(rows, cells)
		if len(cells) > 0 {
			last = r
		}
	}
	return &Grid{Rows: rows[:last+1]}, nil
}

func (w *xlsWorkbook) Close() error {
	return w.source.Close()
}

// sheetRow returns row r, or nil when the sheet has no record for it.
// The decoder dereferences missing rows, so the lookup is guarded.
func sheetRow(s *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return s.Row(r)
}

// formulaPlaceholder is what the decoder renders for every FORMULA record;
// the cached result is not exposed.
const formulaPlaceholder = "FormulaCol"

// Date cells are rendered as RFC 3339 timestamps (user-defined formats) or
// as "2006.01" (built-in date formats).
var builtinDatePattern = regexp.MustCompile(`^[0-9]{4}\.(0[1-9]|1[0-2])$`)

func xlsCell(value string) Cell {
	if value == formulaPlaceholder {
		return Cell{Kind: KindFormula}
	}
	return Cell{Value: value, Kind: inferKind(value)}
}

// inferKind classifies a rendered BIFF value. The decoder only exposes
// formatted strings, so kinds are recognised by their text.
func inferKind(value string) Kind {
	v := strings.TrimSpace(value)
	if v == "" {
		return KindEmpty
	}
	if builtinDatePattern.MatchString(v) {
		return KindDate
	}
	if _, err := time.Parse(time.RFC3339, v); err == nil {
		return KindDate
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return KindNumber
	}
	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		return KindBool
	}
	return KindText
}

func trimEmpty(cells []Cell) []Cell {
	n := len(cells)
	for n > 0 && cells[n-1].Kind == KindEmpty {
		n--
	}
	return cells[:n]
}
