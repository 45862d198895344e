package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"seances/internal/weekly"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps compaction errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, weekly.ErrScheduleRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, weekly.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
