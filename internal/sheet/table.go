// Package sheet reads the hand-maintained results spreadsheet exported as CSV.
//
// The export carries a title line above the header, repeated header names and
// spreadsheet-style placeholders for missing values. Table normalizes those
// into named, position-addressable rows; interpreting cell text is left to
// package cells.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// naTokens are the cell texts treated as missing, matching the defaults of
// the pandas reader the sheet was originally prepared for.
var naTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// Cell is one spreadsheet value. Present is false for missing cells.
type Cell struct {
	Raw     string
	Present bool
}

// NewCell classifies raw text as present or missing.
func NewCell(raw string) Cell {
	_, na := naTokens[raw]
	return Cell{Raw: raw, Present: !na}
}

// Missing is the zero value for absent cells.
var Missing = Cell{}

// String returns the raw text, or "" for missing cells.
func (c Cell) String() string {
	if !c.Present {
		return ""
	}
	return c.Raw
}

// Table is a parsed sheet: de-duplicated header plus data rows.
type Table struct {
	Header []string
	Rows   []Row
	exact  map[string]int
	loose  map[string]int
}

// Row is one data record. Line is the 1-based record number in the source,
// counting the title and header records.
type Row struct {
	Line  int
	cells []Cell
	table *Table
}

// At returns the cell at position i, or Missing if the row is short.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r.cells) {
		return Missing
	}
	return r.cells[i]
}

// Get returns the cell under column name. Names are matched exactly first,
// then with whitespace collapsed and case folded.
func (r Row) Get(name string) Cell {
	if r.table == nil {
		return Missing
	}
	if i, ok := r.table.Index(name); ok {
		return r.At(i)
	}
	return Missing
}

// Len reports the number of cells in the row.
func (r Row) Len() int { return len(r.cells) }

// Index returns the column position of name.
func (t *Table) Index(name string) (int, bool) {
	if i, ok := t.exact[name]; ok {
		return i, true
	}
	i, ok := t.loose[looseKey(name)]
	return i, ok
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, inputNotFoundError{path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV from r. The first record is a title and is discarded, the
// second is the header. A leading byte-order mark is dropped before parsing,
// and UTF-16 input marked with one is decoded to UTF-8.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var header []string
	t := &Table{}
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		switch {
		case line == 1:
			continue
		case line == 2:
			header = rec
			continue
		}
		cells := make([]Cell, len(header))
		for i := range cells {
			if i < len(rec) {
				cells[i] = NewCell(rec[i])
			}
		}
		t.Rows = append(t.Rows, Row{Line: line, cells: cells, table: t})
	}
	if header == nil {
		return nil, missingHeaderError{records: line}
	}
	t.setHeader(header)
	return t, nil
}

func (t *Table) setHeader(raw []string) {
	t.Header = dedupNames(raw)
	t.exact = make(map[string]int, len(t.Header))
	t.loose = make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		t.exact[h] = i
		k := looseKey(h)
		if _, ok := t.loose[k]; !ok {
			t.loose[k] = i
		}
	}
}

// dedupNames names empty headers "Unnamed: i" and suffixes repeats as
// "name.1", "name.2", skipping suffixes that collide with real headers.
func dedupNames(raw []string) []string {
	names := make([]string, len(raw))
	counts := make(map[string]int, len(raw))
	for i, col := range raw {
		if col == "" {
			col = "Unnamed: " + strconv.Itoa(i)
		}
		cur := counts[col]
		for cur > 0 {
			counts[col] = cur + 1
			col = col + "." + strconv.Itoa(cur)
			cur = counts[col]
		}
		names[i] = col
		counts[col] = cur + 1
	}
	return names
}

func looseKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
