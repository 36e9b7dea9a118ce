package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorKind is the fixed classification of client failures.
type ErrorKind string

const (
	KindAuth            ErrorKind = "auth"
	KindNotFound        ErrorKind = "not_found"
	KindTimeout         ErrorKind = "timeout"
	KindValidation      ErrorKind = "validation"
	KindServer          ErrorKind = "server"
	KindNetwork         ErrorKind = "network"
	KindMissingLocation ErrorKind = "missing_location"
)

// APIError is the single error type surfaced by the client. Every
// failed request maps to exactly one kind; the HTTP status and server
// message are preserved for diagnostics.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// After is set only on wall-clock timeouts and carries the
	// configured execution timeout, distinguishing them from a
	// server-reported 408/504.
	After time.Duration
	// Err is the underlying cause for network failures.
	Err error
}

func (e *APIError) Error() string {
	switch {
	case e.Kind == KindTimeout && e.After > 0:
		return fmt.Sprintf("jupyter: execution timed out after %s", e.After)
	case e.Kind == KindNetwork && e.Err != nil:
		return fmt.Sprintf("jupyter: network error: %v", e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("jupyter: %s error (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("jupyter: %s error: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// NewNetworkError wraps a transport-level connection failure.
func NewNetworkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// NewTimeoutError reports an execution that outlived its deadline.
func NewTimeoutError(after time.Duration) *APIError {
	return &APIError{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("execution timed out after %s", after),
		After:   after,
	}
}

// NewMissingLocationError reports a submit response without the
// Location header the protocol requires.
func NewMissingLocationError() *APIError {
	return &APIError{
		Kind:    KindMissingLocation,
		Message: "Location header not found in execute response",
	}
}

// Classify maps a non-success HTTP response to exactly one error kind.
func Classify(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: messageFromBody(status, body)}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		apiErr.Kind = KindAuth
	case status == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout || hasTimeoutMarker(body):
		apiErr.Kind = KindTimeout
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		apiErr.Kind = KindValidation
	default:
		apiErr.Kind = KindServer
	}
	return apiErr
}

// IsKind reports whether err is an *APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == kind
}

// AsAPIError unwraps err into an *APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// messageFromBody pulls the server message out of a JSON error body,
// falling back to the raw body and then the status text.
func messageFromBody(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Reason != "" {
			return payload.Reason
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return http.StatusText(status)
}

func hasTimeoutMarker(body []byte) bool {
	return strings.Contains(strings.ToLower(string(body)), "timeout")
}
