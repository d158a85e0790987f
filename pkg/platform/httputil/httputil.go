// Package httputil centralizes JSON response writing so every handler emits
// the same envelope shapes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "filmgate/pkg/domain-errors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the API's error envelope:
// the status comes from the error code, the body is {"error": "<message>"}.
// Errors that are not domain errors become 500s with their message intact.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		message = de.Message
	}

	WriteJSON(w, status, map[string]string{"error": message})
}
