package core

import (
	"maps"
	"net/http"
)

// Request describes one outbound call: auth level, method, path and parameters.
// It is built per call and must not be modified once dispatched.
type Request struct {
	Auth   AuthLevel `json:"auth"`
	Method string    `json:"method"`
	Path   string    `json:"path"`
	Params Params    `json:"params,omitempty"`
}

// NewRequest creates a request descriptor with an empty parameter set.
func NewRequest(auth AuthLevel, method, path string) *Request {
	return &Request{
		Auth:   auth,
		Method: method,
		Path:   path,
		Params: make(Params),
	}
}

func (r *Request) SetParam(key string, value any) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	r.Params[key] = value
	return r
}

func (r *Request) SetParams(params Params) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	maps.Copy(r.Params, params)
	return r
}

// IsGet reports whether the parameters travel in the query string.
func (r *Request) IsGet() bool {
	return r.Method == http.MethodGet
}

// Prepared is a request after normalization, serialization and signing:
// exactly what the dispatcher puts on the wire.
type Prepared struct {
	Method string
	// Path is the endpoint path including the query string, if any.
	Path    string
	Headers map[string]string
	// Body is nil for GET requests.
	Body []byte
	// Timestamp is the X-BM-TIMESTAMP value for signed requests.
	Timestamp string
}
