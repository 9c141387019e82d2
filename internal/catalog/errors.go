package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// notFoundError names an unknown benchmark, category or setting.
type notFoundError struct{ kind, name string }

func (e notFoundError) Error() string   { return fmt.Sprintf("unknown %s: %s", e.kind, e.name) }
func (e notFoundError) StatusCode() int { return http.StatusNotFound }

// IsNotFound reports whether err names an unknown benchmark, category or
// setting.
func IsNotFound(err error) bool {
	var e notFoundError
	return errors.As(err, &e)
}
