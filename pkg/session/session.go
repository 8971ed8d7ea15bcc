// Package session holds the shared core every BitMart endpoint group calls through:
// the immutable credentials, the request builder and a single-attempt HTTP dispatcher.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/HbarSuite/bitmart-go-sdk-api/internal/ratelimit"
	"github.com/HbarSuite/bitmart-go-sdk-api/internal/transport"
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// State represents the lifecycle state of a Session.
type State int

const (
	// StateActive indicates a session that is ready to process requests.
	StateActive State = iota
	// StateClosed indicates a session that has been shut down and can no longer be used.
	StateClosed
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Session is the request primitive shared by all endpoint groups of one client.
// Its credentials never change after New, so it is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	config    *core.Config
	baseURL   string
	builder   *core.Builder
	transport *transport.Client
	limiter   *ratelimit.Limiter
	logger    zerolog.Logger
	state     State
	createdAt time.Time
	lastUsed  time.Time
}

// New creates a Session. A nil config means DefaultConfig. defaultBaseURL is used
// when config.BaseURL is empty.
func New(config *core.Config, defaultBaseURL string) (*Session, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	copied := *config
	config = &copied
	if config.Credentials != nil {
		creds := *config.Credentials
		config.Credentials = &creds
	}
	if config.Timeout == 0 {
		config.Timeout = core.DefaultTimeout
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	logger := config.ResolvedLogger()

	client := transport.NewClient(config, logger)
	client.SetBaseURL(baseURL)

	var limiter *ratelimit.Limiter
	if config.RateLimitRequests > 0 {
		limiter = ratelimit.New(config.RateLimitRequests, config.RateLimitPeriod)
	}

	now := time.Now()
	return &Session{
		config:    config,
		baseURL:   baseURL,
		builder:   core.NewBuilderFromConfig(config),
		transport: client,
		limiter:   limiter,
		logger:    logger,
		state:     StateActive,
		createdAt: now,
		lastUsed:  now,
	}, nil
}

// Do builds, signs and dispatches req exactly once.
//
// Every local failure (missing credential, unserializable parameters, closed
// session) is returned before any network I/O takes place.
func (s *Session) Do(ctx context.Context, req *core.Request) (*core.Response, error) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil, core.ErrClientClosed
	}
	s.lastUsed = time.Now()
	s.mu.Unlock()

	if err := s.builder.Check(req); err != nil {
		s.logRejected(req, err)
		return nil, err
	}

	// X-BM-TIMESTAMP must be the send time, so Build runs after the wait.
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, req.Path); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	prepared, err := s.builder.Build(req)
	if err != nil {
		s.logRejected(req, err)
		return nil, err
	}

	resp, err := s.transport.Do(ctx, prepared)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if rl, ok := resp.RateLimit(); ok {
			s.limiter.Observe(req.Path, rl.Limit, rl.Reset)
		}
	}

	return resp, nil
}

func (s *Session) logRejected(req *core.Request, err error) {
	s.logger.Debug().Err(err).
		Str("path", req.Path).
		Str("auth", req.Auth.String()).
		Msg("request rejected locally")
}

// Request is the generic entry point: any path at any auth level.
func (s *Session) Request(ctx context.Context, auth core.AuthLevel, method, path string, params core.Params) (*core.Response, error) {
	return s.Do(ctx, core.NewRequest(auth, method, path).SetParams(params))
}

// Call validates params against endpoint and dispatches it.
func (s *Session) Call(ctx context.Context, endpoint core.Endpoint, params core.Params) (*core.Response, error) {
	req, err := endpoint.NewRequest(params)
	if err != nil {
		return nil, err
	}
	return s.Do(ctx, req)
}

// SetClock replaces the time source used to stamp signed requests.
func (s *Session) SetClock(now func() time.Time) {
	s.builder.SetClock(now)
}

// Close releases idle connections. Later calls fail with core.ErrClientClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	if s.limiter != nil {
		stats := s.limiter.Stats()
		s.logger.Debug().
			Int64("waits", stats.Waits).
			Int64("granted", stats.Granted).
			Int64("cancelled", stats.Cancelled).
			Int32("endpoints", stats.Endpoints).
			Msg("rate limiter stats")
	}
	return s.transport.Close()
}

// State returns the current lifecycle state of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Config returns a copy of the configuration the session was created with.
func (s *Session) Config() *core.Config {
	config := *s.config
	if config.Credentials != nil {
		creds := *config.Credentials
		config.Credentials = &creds
	}
	return &config
}

// BaseURL returns the REST endpoint this session talks to.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Logger returns the logger requests are traced on.
func (s *Session) Logger() zerolog.Logger {
	return s.logger
}

// CreatedAt returns the timestamp when the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// LastUsed returns the timestamp of the last request executed by the session.
func (s *Session) LastUsed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUsed
}

var _ core.Caller = (*Session)(nil)
