package shared

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/medcamphq/medcamp-api/internal/redact"
)

// ErrorResponse is the standard error shape for validation and server
// failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// MessageResponse matches the wire shape the auth gates and a handful of
// legacy endpoints respond with: a single "message" key.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent; the most we can do is log.
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a standardized JSON error response.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := ErrorResponse{
		Error:   message,
		TraceID: GetTraceID(r.Context()),
	}
	RespondWithJSON(w, status, resp)
}

// RespondWithMessage writes a message-shaped JSON body. The 401 and 403
// bodies emitted by the auth gates must keep this exact shape for existing
// clients.
func RespondWithMessage(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, MessageResponse{Message: message})
}

// RespondWithErrorAndLog writes a standardized JSON error response and logs
// the underlying error at a level appropriate to the status code.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	logger *slog.Logger,
	err error,
	status int,
	message string,
) {
	logError(r.Context(), logger, err, status, message)
	RespondWithError(w, r, status, message)
}

// logError records an error with severity scaled to the response status:
// server errors at ERROR, client errors at DEBUG.
func logError(ctx context.Context, logger *slog.Logger, err error, status int, message string) {
	if logger == nil {
		logger = slog.Default()
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	attrs := []any{
		"status", status,
		"message", message,
		"trace_id", GetTraceID(ctx),
	}
	if err != nil {
		attrs = append(attrs, "error", redact.Error(err))
	}

	logger.Log(ctx, level, "request failed", attrs...)
}
