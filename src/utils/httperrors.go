package utils

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Error kinds reported in the `error` field of the response envelope.
const (
	KindValidation    = "validation_error"
	KindNotFound      = "not_found"
	KindUpstreamRange = "upstream_range_error"
	KindUpstreamAuth  = "upstream_auth_error"
	KindRateLimited   = "rate_limited"
	KindUnauthorized  = "unauthorized"
	KindInternal      = "internal_error"
)

// HTTPError defines a custom error structure that includes an HTTP status code,
// an error kind and a message
type HTTPError struct {
	Code    int    `json:"-"`
	Kind    string `json:"error"`
	Message string `json:"message"`
}

// Implement the Error() method to satisfy the error interface
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError instance with a custom status code, kind and message
func NewHTTPError(code int, kind, message string) error {
	return &HTTPError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// BadRequest creates a 400 validation error
func BadRequest(message string) error {
	return NewHTTPError(http.StatusBadRequest, KindValidation, message)
}

// NotFound flags a missing record. Missing records are surfaced as a generic
// failure rather than a per-record 404, but keep their own kind so callers can
// tell them apart in the envelope.
func NotFound(message string) error {
	return NewHTTPError(http.StatusInternalServerError, KindNotFound, message)
}

// UpstreamRange creates a 400 error for a missing or malformed named range in
// the backing spreadsheet. It is a client-reachable misconfiguration.
func UpstreamRange(message string) error {
	return NewHTTPError(http.StatusBadRequest, KindUpstreamRange, message)
}

// UpstreamAuth creates a 500 error for rejected spreadsheet credentials.
func UpstreamAuth(message string) error {
	return NewHTTPError(http.StatusInternalServerError, KindUpstreamAuth, message)
}

// InternalServerError creates a 500 Internal Server Error
func InternalServerError(message string) error {
	return NewHTTPError(http.StatusInternalServerError, KindInternal, message)
}

// ClassifyUpstreamError maps a raw row-store failure onto the error taxonomy by
// substring matching on the error text. Returns nil when the error carries no
// recognizable upstream signature.
func ClassifyUpstreamError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "unable to parse range"),
		strings.Contains(text, "named range"),
		strings.Contains(text, "range not found"):
		return &HTTPError{Code: http.StatusBadRequest, Kind: KindUpstreamRange, Message: err.Error()}
	case strings.Contains(text, "unauthorized"),
		strings.Contains(text, "unauthenticated"),
		strings.Contains(text, "invalid credentials"),
		strings.Contains(text, "permission denied"),
		strings.Contains(text, "401"),
		strings.Contains(text, "403"):
		return &HTTPError{Code: http.StatusInternalServerError, Kind: KindUpstreamAuth, Message: err.Error()}
	}
	return nil
}

// ErrorResponse is the uniform envelope shared by every error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// WriteError sends the error response as JSON using the envelope shape.
// When devMode is false, messages of unclassified errors are suppressed.
func WriteError(w http.ResponseWriter, err error, devMode bool) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		if classified := ClassifyUpstreamError(err); classified != nil {
			httpErr = classified
		} else {
			message := "Internal Server Error"
			if devMode && err != nil {
				message = err.Error()
			}
			httpErr = &HTTPError{
				Code:    http.StatusInternalServerError,
				Kind:    KindInternal,
				Message: message,
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:     httpErr.Kind,
		Message:   httpErr.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
