package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeError maps err to a status: its own code when it carries one, 500
// otherwise.
func writeError(w http.ResponseWriter, err error) {
	if he, ok := err.(HTTPError); ok {
		writeJSONError(w, he.StatusCode(), he.Error())
		return
	}
	writeJSONError(w, http.StatusInternalServerError, err.Error())
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
