package core

import "context"

// Endpoint is one row of the declarative endpoint catalog.
type Endpoint struct {
	Name   string
	Auth   AuthLevel
	Method string
	Path   string
	// Required lists wire parameter names that must be present and non-empty.
	Required []string
}

// NewRequest validates params against the endpoint's required set and returns
// the request descriptor. Validation happens before anything is serialized.
func (e Endpoint) NewRequest(params Params) (*Request, error) {
	for _, key := range e.Required {
		if IsEmptyValue(params[key]) {
			return nil, &ValidationError{Endpoint: e.Name, Param: key}
		}
	}
	return NewRequest(e.Auth, e.Method, e.Path).SetParams(params), nil
}

// Caller is the single primitive endpoint groups are built on.
type Caller interface {
	Call(ctx context.Context, endpoint Endpoint, params Params) (*Response, error)
}
