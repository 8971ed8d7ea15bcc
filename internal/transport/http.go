// Package transport provides the HTTP and WebSocket transports used to talk to BitMart.
package transport

import (
	"context"
	"errors"
	"net"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Client wraps a resty HTTP client and performs exactly one attempt per call.
// It is safe for concurrent use once configured.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
}

// NewClient creates an HTTP client with the configured timeout and retries
// disabled. Response bodies are returned as raw bytes; callers decode them.
func NewClient(config *core.Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}
}

// Do sends a prepared request once.
//
// A 2xx answer is returned as a core.Response. A non-2xx answer becomes a
// *core.ServerError carrying the body untouched, and a failure with no answer
// becomes a *core.TransportError.
func (c *Client) Do(ctx context.Context, req *core.Prepared) (*core.Response, error) {
	r := c.client.R().SetContext(ctx).SetHeaders(req.Headers)
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("http request failed")
		return nil, &core.TransportError{
			Method:  req.Method,
			URL:     req.Path,
			Timeout: isTimeout(err),
			Err:     err,
		}
	}

	body := resp.Bytes()

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Int("size", len(body)).
		Msg("http response")

	if !resp.IsSuccess() {
		srvErr := core.NewServerError(resp.StatusCode(), resp.Header(), body)
		c.logger.Warn().
			Str("method", req.Method).
			Str("path", req.Path).
			Int("status", srvErr.StatusCode).
			Int("code", srvErr.Code).
			Str("trace", srvErr.Trace).
			Msg(srvErr.Message)
		return nil, srvErr
	}

	return &core.Response{
		StatusCode: resp.StatusCode(),
		Body:       body,
		Header:     resp.Header(),
	}, nil
}

// SetBaseURL sets the base URL for all subsequent requests.
func (c *Client) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
}

// Close releases idle connections held by the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
