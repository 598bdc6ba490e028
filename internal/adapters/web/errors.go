package web

import (
	"encoding/json"
	"net/http"

	"offer-agent/internal/app"
)

type errorResponse struct {
	Error     string   `json:"error"`
	Code      string   `json:"code"`
	Missing   []string `json:"missing,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeValidationError writes a 422 response listing the required offer fields
// still missing, by their Greek display names in field order.
func writeValidationError(w http.ResponseWriter, r *http.Request, verr *app.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	resp := errorResponse{
		Error:     verr.Error(),
		Code:      "MISSING_FIELDS",
		Missing:   verr.Missing,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
