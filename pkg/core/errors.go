package core

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorType represents the category of a server-side error.
type ErrorType int

// Error type constants categorize server errors for programmatic handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeRateLimit indicates the rate limit was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates missing, invalid or expired credentials or signature.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates the requested resource does not exist.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates a server-side failure or maintenance.
	ErrorTypeServerError
	// ErrorTypeInvalidOrder indicates the order violates exchange rules.
	ErrorTypeInvalidOrder
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"SERVER_ERROR",
		"INVALID_ORDER",
	}[t]
}

// ErrorClass tells a caller which of the three failure buckets an error belongs to.
type ErrorClass int

const (
	// ClassLocal means the request was never sent.
	ClassLocal ErrorClass = iota
	// ClassRequest means the request was sent but no response arrived.
	ClassRequest
	// ClassResponse means the server answered with a non-success status.
	ClassResponse
)

// String returns the string representation of the error class.
func (c ErrorClass) String() string {
	return [...]string{"LOCAL", "REQUEST", "RESPONSE"}[c]
}

// Credential field names reported by MissingCredentialError.
const (
	FieldAPIKey    = "apiKey"
	FieldAPISecret = "apiSecret"
	FieldAPIMemo   = "apiMemo"
)

// Sentinel errors for errors.Is matching.
var (
	// ErrMissingCredential matches every MissingCredentialError.
	ErrMissingCredential = errors.New("missing credential")
	// ErrValidation matches every ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNotConnected is returned when a websocket operation needs an open connection.
	ErrNotConnected = errors.New("websocket not connected")
)

// MissingCredentialError is returned before dispatch when a KEYED or SIGNED call
// lacks a credential it needs.
type MissingCredentialError struct {
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("bitmart: your %s is empty", e.Field)
}

func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// ValidationError is returned before dispatch when a parameter is absent, empty
// or out of range.
type ValidationError struct {
	Endpoint string
	Param    string
	// Reason replaces "is required" in the message when set.
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	if e.Endpoint == "" {
		return fmt.Sprintf("bitmart: parameter %q %s", e.Param, reason)
	}
	return fmt.Sprintf("bitmart: %s: parameter %q %s", e.Endpoint, e.Param, reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransportError means the request left the client but no response came back:
// timeouts, connection resets and DNS failures.
type TransportError struct {
	Method  string
	URL     string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("bitmart: %s %s: timeout: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("bitmart: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response. Body holds the payload exactly as received;
// Code, Message and Trace are decoded from it when it is a BitMart envelope.
type ServerError struct {
	Type       ErrorType   `json:"type"`
	StatusCode int         `json:"status_code"`
	Code       int         `json:"code"`
	Message    string      `json:"message"`
	Trace      string      `json:"trace,omitempty"`
	Body       []byte      `json:"-"`
	Header     http.Header `json:"-"`
	Timestamp  time.Time   `json:"timestamp"`
}

func (e *ServerError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("bitmart: %s (%d/%d): %s", e.Type, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("bitmart: %s (%d): %s", e.Type, e.StatusCode, e.Message)
}

// NewServerError builds a ServerError from a raw response, decoding the BitMart
// envelope when possible.
func NewServerError(statusCode int, header http.Header, body []byte) *ServerError {
	e := &ServerError{
		StatusCode: statusCode,
		Body:       body,
		Header:     header,
		Timestamp:  time.Now(),
	}

	var env Envelope
	if err := decodeJSON(body, &env); err == nil {
		e.Code = env.Code
		e.Message = env.Message
		e.Trace = env.Trace
	}
	if e.Message == "" {
		e.Message = http.StatusText(statusCode)
	}
	e.Type = classifyServerError(statusCode, e.Code)
	return e
}

// Classify places err into one of the three failure buckets.
// Errors that are neither a TransportError nor a ServerError are local.
func Classify(err error) ErrorClass {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return ClassResponse
	}
	var trErr *TransportError
	if errors.As(err, &trErr) {
		return ClassRequest
	}
	return ClassLocal
}

// IsMissingCredential reports whether err is a MissingCredentialError.
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsTimeoutError reports whether err is a TransportError caused by a timeout.
func IsTimeoutError(err error) bool {
	var trErr *TransportError
	if errors.As(err, &trErr) {
		return trErr.Timeout
	}
	return false
}

// IsRateLimitError reports whether the server rejected the call for exceeding a rate limit.
func IsRateLimitError(err error) bool {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Type == ErrorTypeRateLimit
	}
	return false
}

// IsAuthenticationError reports whether the server rejected the credentials or signature.
func IsAuthenticationError(err error) bool {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Type == ErrorTypeAuthentication
	}
	return false
}
