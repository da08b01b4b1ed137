package client

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRegistration         = errors.New("registration failed")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRequestFailed        = errors.New("request failed")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrMalformedResponse    = errors.New("malformed response")
	ErrUnavailable          = errors.New("server unavailable")
)

// Generic messages used when the backend gives no detail.
const (
	MsgRequestFailed        = "Request failed"
	MsgAuthenticationFailed = "Authentication failed"
	MsgLoginFailed          = "Login failed"
	MsgRegistrationFailed   = "Registration failed"
	MsgUserInfoFailed       = "Failed to get user info"
)

// APIError is a non-2xx backend answer.
type APIError struct {
	Status    int
	Detail    string
	Message   string
	RequestID string
	Kind      error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

func newAPIError(status int, detail, requestID string, kind error, fallback string) *APIError {
	msg := detail
	if msg == "" {
		msg = fallback
	}
	return &APIError{Status: status, Detail: detail, Message: msg, RequestID: requestID, Kind: kind}
}

// Reclassify re-tags a backend rejection with another kind. The message
// stays the backend detail when there is one, otherwise it becomes
// fallback. Errors that are not *APIError are returned unchanged.
func Reclassify(err error, kind error, fallback string) error {
	var ae *APIError
	if !errors.As(err, &ae) {
		return err
	}
	return newAPIError(ae.Status, ae.Detail, ae.RequestID, kind, fallback)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
