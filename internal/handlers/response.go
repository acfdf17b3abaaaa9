package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikitsoni/expense-system/internal/apperror"
)

// ErrorResponse is the body shape for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps an error to its HTTP status and writes the
// {"error": ...} body. Uncoded errors fall through to 500 with the raw
// underlying message exposed.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperror.HTTPStatus(err), ErrorResponse{Error: err.Error()})
}
