// Package cells interprets individual spreadsheet cells. Every parser is
// total: text that cannot be understood yields nil or false, never an error.
package cells

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/MINT-SJTU/Evo-SOTA.io/internal/sheet"
)

var (
	// reNumber accepts the literal float forms a spreadsheet export produces,
	// including digit-group underscores.
	reNumber    = regexp.MustCompile(`^[+-]?(?:\d+(?:_\d+)*(?:\.(?:\d+(?:_\d+)*)?)?|\.\d+(?:_\d+)*)(?:[eE][+-]?\d+(?:_\d+)*)?$`)
	reYearMonth = regexp.MustCompile(`^(\d{2})\.(\d{1,2})$`)
	reURL       = regexp.MustCompile(`https?://[^\s\v\p{Z}\x{85}]+`)
)

// placeholders are annotations entered in place of a score.
var placeholders = map[string]struct{}{
	"-": {}, "": {}, "(未写)": {}, "未写": {}, "有结果": {},
}

// Value parses a score. Text after an opening parenthesis (ASCII or
// full-width) is an annotation and is dropped: "79(30个子任务）" is 79.
func Value(c sheet.Cell) *float64 {
	if !c.Present || c.Raw == "" || c.Raw == "-" {
		return nil
	}
	s := strings.TrimSpace(c.Raw)
	if i := strings.IndexAny(s, "(（"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if _, ok := placeholders[s]; ok {
		return nil
	}
	f, ok := number(s)
	if !ok {
		return nil
	}
	return &f
}

// number parses s as a finite float. Full-width digits are narrowed first.
func number(s string) (float64, bool) {
	s = width.Narrow.String(strings.TrimSpace(s))
	if !reNumber.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Date normalizes a publication month. "24.10" and "24.3" become "2024-10"
// and "2024-03"; two-digit years from 50 map to the 1900s. Any other text is
// returned trimmed.
func Date(c sheet.Cell) *string {
	if !c.Present || c.Raw == "" {
		return nil
	}
	s := strings.TrimSpace(c.Raw)
	if m := reYearMonth.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		month := m[2]
		if len(month) == 1 {
			month = "0" + month
		}
		out := strconv.Itoa(year) + "-" + month
		return &out
	}
	return &s
}

// PaperURL extracts a paper link. Citation cells ("from …") carry no link of
// their own; free text wrapping a link yields the embedded URL.
func PaperURL(c sheet.Cell) *string {
	if !c.Present || c.Raw == "" {
		return nil
	}
	s := strings.TrimSpace(c.Raw)
	if strings.HasPrefix(s, "http") {
		if i := strings.Index(s, "（"); i >= 0 {
			s = strings.TrimSpace(s[:i])
		}
		return &s
	}
	if strings.HasPrefix(strings.ToLower(s), "from") {
		return nil
	}
	if strings.Contains(s, "http") {
		if m := reURL.FindString(s); m != "" {
			return &m
		}
	}
	return nil
}

// OpenSourceURL returns the repository link of the open-source column. The
// bare markers "0" and "1" carry no link.
func OpenSourceURL(c sheet.Cell) *string {
	if !c.Present || c.Raw == "" {
		return nil
	}
	s := strings.TrimSpace(c.Raw)
	if s == "0" || s == "1" {
		return nil
	}
	if strings.HasPrefix(s, "http") {
		return &s
	}
	return nil
}

// IsOpenSource reports whether the open-source column marks the model as
// released: the marker "1" or any link.
func IsOpenSource(c sheet.Cell) bool {
	if !c.Present || c.Raw == "" {
		return false
	}
	s := strings.TrimSpace(c.Raw)
	return s == "1" || strings.HasPrefix(s, "http")
}

// IsStandardEval reports whether a standard-evaluation cell is set, i.e. is
// numerically 1 ("1", "1.0", " 1 ").
func IsStandardEval(c sheet.Cell) bool {
	if !c.Present || c.Raw == "" {
		return false
	}
	f, ok := number(c.Raw)
	return ok && f == 1
}

// IsCitation reports whether the paper cell says the row's results are
// quoted from another paper. The raw text is tested, untrimmed.
func IsCitation(c sheet.Cell) bool {
	return strings.HasPrefix(strings.ToLower(c.String()), "from")
}

// Text returns the raw cell text, "" when missing.
func Text(c sheet.Cell) string { return c.String() }

// NonEmpty reports whether p holds a non-empty string.
func NonEmpty(p *string) bool { return p != nil && *p != "" }
