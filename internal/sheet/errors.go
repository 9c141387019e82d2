package sheet

import (
	"errors"
	"fmt"
)

// inputNotFoundError signals that the sheet file does not exist.
type inputNotFoundError struct{ path string }

func (e inputNotFoundError) Error() string { return "input not found: " + e.path }

// IsInputNotFound reports whether err indicates a missing input file.
func IsInputNotFound(err error) bool {
	var e inputNotFoundError
	return errors.As(err, &e)
}

// missingHeaderError signals a sheet with fewer than two records.
type missingHeaderError struct{ records int }

func (e missingHeaderError) Error() string {
	return fmt.Sprintf("header row missing: sheet has %d record(s), need a title row and a header row", e.records)
}

// IsMissingHeader reports whether err indicates the header row is absent.
func IsMissingHeader(err error) bool {
	var e missingHeaderError
	return errors.As(err, &e)
}
