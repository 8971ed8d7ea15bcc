package core

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

// Response is a successful (2xx) HTTP response, passed through unmodified.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Body contains the raw response body bytes.
	Body []byte

	// Header contains the response headers.
	Header http.Header
}

// Envelope is the wrapper BitMart puts around every REST payload.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Trace   string          `json:"trace"`
	Data    json.RawMessage `json:"data"`
}

// Success reports whether the envelope carries the BitMart success code.
func (e *Envelope) Success() bool {
	return e.Code == CodeSuccess
}

// RateLimit is the quota information BitMart returns in X-BM-RateLimit-* headers.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     int
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return decodeJSON(r.Body, v)
}

// Envelope decodes the BitMart envelope from the body.
func (r *Response) Envelope() (*Envelope, error) {
	var env Envelope
	if err := decodeJSON(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// UnmarshalData decodes the envelope's data field into v.
func (r *Response) UnmarshalData(v any) error {
	env, err := r.Envelope()
	if err != nil {
		return err
	}
	return decodeJSON(env.Data, v)
}

// RateLimit reads the rate limit headers. ok is false when the server sent none.
func (r *Response) RateLimit() (rl RateLimit, ok bool) {
	if r.Header == nil || r.Header.Get("X-BM-RateLimit-Limit") == "" {
		return rl, false
	}
	rl.Limit, _ = strconv.Atoi(r.Header.Get("X-BM-RateLimit-Limit"))
	rl.Remaining, _ = strconv.Atoi(r.Header.Get("X-BM-RateLimit-Remaining"))
	rl.Reset, _ = strconv.Atoi(r.Header.Get("X-BM-RateLimit-Reset"))
	return rl, true
}

func decodeJSON(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}
