package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"bookclub/internal/domain"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// errorBody is the envelope every failure is returned in: a stable
// machine-readable code plus a human-readable message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeDomainError maps a typed domain error onto its HTTP status and
// envelope. Anything outside the taxonomy is a 500 and gets logged.
func writeDomainError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		slog.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code:    "internal",
			Message: "An unexpected error occurred. Please try again.",
		})
		return
	}

	status := http.StatusInternalServerError
	switch derr.Code {
	case domain.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case domain.CodePermissionDenied:
		status = http.StatusForbidden
	case domain.CodeInvalidArgument:
		status = http.StatusBadRequest
	case domain.CodeAlreadyExists:
		status = http.StatusConflict
	case domain.CodeFailedPrecondition:
		status = http.StatusPreconditionFailed
	}

	writeJSON(w, status, errorBody{Code: string(derr.Code), Message: derr.Message})
}

// maxRequestBody bounds every JSON request body. The largest legal
// payload is a book with a 10MB cover, which base64 inflates to about
// 14MB; anything past 16MB cannot be valid.
const maxRequestBody = 16 << 20

// readPayload decodes the request body into a field map for closed-world
// schema validation. An unreadable, oversized, or non-object body is an
// invalid argument.
func readPayload(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, domain.NewError(domain.CodeInvalidArgument, "Request body exceeds the size limit")
		}
		return nil, domain.NewError(domain.CodeInvalidArgument, "Request body must be a JSON object")
	}
	return payload, nil
}
