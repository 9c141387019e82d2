package dex

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet is read access to one worksheet by A1 address.
type Sheet interface {
	// Value returns the normalized cell text, nil when empty.
	Value(addr string) (*string, error)
	// Link returns the cell's hyperlink target, "" when there is none.
	Link(addr string) (string, error)
}

// Workbook is an opened xlsx file positioned on its first sheet.
type Workbook struct {
	f     *excelize.File
	sheet string
}

// OpenWorkbook opens path and selects the first worksheet.
func OpenWorkbook(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, workbookNotFoundError{path: path}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	return &Workbook{f: f, sheet: sheets[0]}, nil
}

// Close releases the file.
func (w *Workbook) Close() error { return w.f.Close() }

// SheetName is the worksheet being read.
func (w *Workbook) SheetName() string { return w.sheet }

// Value reads addr unformatted. Numbers are rendered in their shortest
// form so 0.85 stays "0.85" whatever display format the cell carries.
func (w *Workbook) Value(addr string) (*string, error) {
	raw, err := w.f.GetCellValue(w.sheet, addr, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cell %s: %w", addr, err)
	}
	if raw == "" {
		return nil, nil
	}
	typ, err := w.f.GetCellType(w.sheet, addr)
	if err != nil {
		return nil, fmt.Errorf("cell %s: %w", addr, err)
	}
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			raw = strconv.FormatFloat(f, 'f', -1, 64)
		}
	case excelize.CellTypeBool:
		if raw == "1" {
			raw = "true"
		} else {
			raw = "false"
		}
	}
	return normalize(raw), nil
}

// Link returns the hyperlink target of addr.
func (w *Workbook) Link(addr string) (string, error) {
	ok, target, err := w.f.GetCellHyperLink(w.sheet, addr)
	if err != nil {
		return "", fmt.Errorf("hyperlink %s: %w", addr, err)
	}
	if !ok {
		return "", nil
	}
	return target, nil
}
