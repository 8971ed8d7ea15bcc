package spot

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// System exposes the public system endpoints.
type System struct {
	caller core.Caller
}

func NewSystem(caller core.Caller) *System {
	return &System{caller: caller}
}

// ServerTime returns the exchange clock in milliseconds.
func (s *System) ServerTime(ctx context.Context) (*core.Response, error) {
	return s.caller.Call(ctx, getSystemTime, nil)
}

// ServiceStatus returns the maintenance state of each service.
func (s *System) ServiceStatus(ctx context.Context) (*core.Response, error) {
	return s.caller.Call(ctx, getSystemService, nil)
}
