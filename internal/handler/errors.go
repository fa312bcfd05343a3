package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yalrayes/rihla/internal/domain"
)

// ErrorDetail is the machine-readable part of every error response.
// Fields carries per-field messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse is the envelope for all non-2xx JSON responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a plain error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeFieldErrors writes a 400 with one message per offending field.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
		Code:    "validation_error",
		Message: "invalid request",
		Fields:  fields,
	}})
}

// writeServiceError maps a service error onto the HTTP error taxonomy:
// validation 400, unauthenticated 401, forbidden 403, not-found 404,
// conflict 409. Everything else is a 500 with a generic message; the real
// error is logged server-side only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated", "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "you do not have permission to access this record")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrConflict):
		// The only uniqueness rule in the system is the username.
		writeError(w, http.StatusConflict, "conflict", "username already taken")
	default:
		slog.ErrorContext(r.Context(), "internal error", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// decodeJSON decodes the request body into v, handling the two transport
// failures the middleware stack can surface: an over-limit body (413 from
// http.MaxBytesReader) and plain malformed JSON (400). Returns false after
// writing the response when decoding failed.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return false
	}
	return true
}

// checkStruct runs validator tags over the decoded payload and writes the
// field-level 400 on failure. Returns false when the response was written.
func (s *Server) checkStruct(w http.ResponseWriter, v any) bool {
	err := s.validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request")
		return false
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = "failed " + fe.Tag() + " validation"
	}
	writeFieldErrors(w, fields)
	return false
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g.
// "service.PreferenceService.Submit: validation error: budget must be between 200 and 10000"
// → "budget must be between 200 and 10000".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
