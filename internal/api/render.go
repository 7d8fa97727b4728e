package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tripsplit/internal/fault"
)

// errorResponse is the JSON body for every error: a machine-readable
// kind and a human-readable detail.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// writeJSON renders v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps a fault kind to an HTTP status and renders the error.
func writeError(w http.ResponseWriter, err error) {
	kind := fault.KindOf(err)
	if kind == fault.Internal {
		slog.Error("Internal error", "error", err)
	}
	if kind == fault.Unauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, statusFor(kind), errorResponse{
		Error:  string(kind),
		Detail: fault.DetailOf(err),
	})
}

func statusFor(kind fault.Kind) int {
	switch kind {
	case fault.BadRequest:
		return http.StatusBadRequest
	case fault.Unauthorized:
		return http.StatusUnauthorized
	case fault.Forbidden:
		return http.StatusForbidden
	case fault.NotFound:
		return http.StatusNotFound
	case fault.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
