package handler

import (
	"encoding/json"
	"net/http"

	apperrors "legal-ai-analyzer/pkg/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps an application error onto its HTTP representation
func writeAppError(w http.ResponseWriter, err *apperrors.AppError) {
	writeError(w, err.StatusCode, err.Message)
}
