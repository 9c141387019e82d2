package dex

import (
	"errors"
	"fmt"
)

// workbookNotFoundError is returned when the source workbook is missing.
type workbookNotFoundError struct{ path string }

func (e workbookNotFoundError) Error() string {
	return fmt.Sprintf("missing Excel file: %s", e.path)
}

// IsWorkbookNotFound reports whether err means the workbook does not exist.
func IsWorkbookNotFound(err error) bool {
	var e workbookNotFoundError
	return errors.As(err, &e)
}
