package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"finconsult/business"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusForError maps a tagged business-rule failure to 422 and everything
// else (validation) to 400.
func statusForError(err error) int {
	var domainErr business.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
