package studysdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ============================================================================
// Sentinel errors
// ============================================================================

var (
	// ErrMalformedCredential is returned when a stored bearer credential
	// cannot be structurally decoded. Callers treat it as "unauthenticated,
	// attempt refresh" rather than a hard failure.
	ErrMalformedCredential = errors.New("studysdk: malformed bearer credential")

	// ErrInvalidCredentials is returned when a login attempt is rejected by
	// the backend.
	ErrInvalidCredentials = errors.New("studysdk: invalid credentials")

	// ErrSessionExpired is returned when a request still receives a 401
	// after a completed refresh-and-retry cycle, or when the refresh call
	// itself fails. It is terminal: the local session has been logged out.
	ErrSessionExpired = errors.New("studysdk: session expired")

	// ErrNoCredential is returned by refresh when there is no session to
	// recover (the backend rejected the refresh cookie).
	ErrNoCredential = errors.New("studysdk: no credential")
)

// ============================================================================
// APIError - non-2xx backend responses
// ============================================================================

// APIError represents a non-2xx response from the StudyHub API. The backend
// reports failures as {"message": "..."} or {"error": "..."}; both shapes are
// parsed, with the raw status line as a fallback.
type APIError struct {
	// StatusCode is the HTTP status code of the failed response.
	StatusCode int

	// Message is the human-readable message extracted from the body.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("studysdk: api error %d: %s", e.StatusCode, e.Message)
}

// ============================================================================
// RequestError - transport failures
// ============================================================================

// RequestError wraps a transport-level failure (DNS, refused connection,
// timeout). Requests that fail this way are surfaced directly and never
// retried automatically; only the 401 path has a recovery attempt.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("studysdk: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *RequestError) Unwrap() error { return e.Err }

// ============================================================================
// ProviderError - social login failures
// ============================================================================

// ProviderError is returned when a social login result is unusable (popup
// cancelled, provider returned no account id). No session state changes.
type ProviderError struct {
	Provider string
	Reason   string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("studysdk: %s login failed: %s", e.Provider, e.Reason)
}

// ============================================================================
// ValidationError - form-level failures, kept local
// ============================================================================

// ValidationError reports request fields that failed local validation. It is
// produced before any network call is made.
type ValidationError struct {
	// Fields maps a field name to the reason it was rejected.
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, field+": "+reason)
	}
	return "studysdk: validation failed: " + strings.Join(parts, "; ")
}

// ============================================================================
// Error parsing helpers
// ============================================================================

// parseAPIError builds a typed error from a non-2xx response body. It tries
// the backend's {"message"} and {"error"} shapes before falling back to the
// HTTP status text.
func parseAPIError(resp *http.Response, body []byte) error {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
		if errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
