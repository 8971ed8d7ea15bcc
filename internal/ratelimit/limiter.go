// Package ratelimit throttles outbound REST calls on the client side.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces requests through one global token bucket plus one bucket per
// endpoint path whose quota the server has advertised. It only delays calls;
// it never repeats one.
type Limiter struct {
	global  *rate.Limiter
	buckets sync.Map
	stats   *stats
}

type stats struct {
	waits     atomic.Int64
	granted   atomic.Int64
	cancelled atomic.Int64
	endpoints atomic.Int32
}

// New creates a Limiter allowing requests per period across all endpoints.
func New(requests int, period time.Duration) *Limiter {
	return &Limiter{
		global: rate.NewLimiter(perSecond(requests, period), requests),
		stats:  &stats{},
	}
}

func perSecond(requests int, period time.Duration) rate.Limit {
	return rate.Limit(float64(requests) / period.Seconds())
}

// Wait blocks until the global bucket and the bucket of path both grant a token,
// or ctx is done. Both tokens are reserved together, and a call refused up front
// because its wait would outlast ctx charges neither bucket.
func (l *Limiter) Wait(ctx context.Context, path string) error {
	l.stats.waits.Add(1)

	now := time.Now()
	reservations, delay, err := l.reserve(path, now)
	if err != nil {
		l.stats.cancelled.Add(1)
		return err
	}
	if delay == 0 {
		l.stats.granted.Add(1)
		return nil
	}

	if deadline, ok := ctx.Deadline(); ok && deadline.Before(now.Add(delay)) {
		cancelAll(reservations, now)
		l.stats.cancelled.Add(1)
		return fmt.Errorf("rate limit: wait of %s exceeds deadline: %w", delay, context.DeadlineExceeded)
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		l.stats.granted.Add(1)
		return nil
	case <-ctx.Done():
		cancelAll(reservations, time.Now())
		l.stats.cancelled.Add(1)
		return ctx.Err()
	}
}

func (l *Limiter) reserve(path string, now time.Time) ([]*rate.Reservation, time.Duration, error) {
	reservations := []*rate.Reservation{l.global.ReserveN(now, 1)}
	if bucket, ok := l.bucket(path); ok {
		reservations = append(reservations, bucket.ReserveN(now, 1))
	}

	var delay time.Duration
	for _, r := range reservations {
		if !r.OK() {
			cancelAll(reservations, now)
			return nil, 0, fmt.Errorf("rate limit: %s has no capacity", path)
		}
		delay = max(delay, r.DelayFrom(now))
	}
	return reservations, delay, nil
}

func cancelAll(reservations []*rate.Reservation, at time.Time) {
	for _, r := range reservations {
		r.CancelAt(at)
	}
}

func (l *Limiter) bucket(path string) (*rate.Limiter, bool) {
	if path == "" {
		return nil, false
	}
	v, ok := l.buckets.Load(path)
	if !ok {
		return nil, false
	}
	return v.(*rate.Limiter), true
}

// Observe narrows the bucket of path to the quota the server advertised in its
// X-BM-RateLimit headers: limit requests per window seconds.
func (l *Limiter) Observe(path string, limit, window int) {
	if path == "" || limit <= 0 || window <= 0 {
		return
	}

	every := perSecond(limit, time.Duration(window)*time.Second)
	if bucket, ok := l.bucket(path); ok {
		bucket.SetLimit(every)
		bucket.SetBurst(limit)
		return
	}

	if _, loaded := l.buckets.LoadOrStore(path, rate.NewLimiter(every, limit)); !loaded {
		l.stats.endpoints.Add(1)
	}
}

// Stats returns a snapshot of the limiter counters.
func (l *Limiter) Stats() Stats {
	return Stats{
		Waits:     l.stats.waits.Load(),
		Granted:   l.stats.granted.Load(),
		Cancelled: l.stats.cancelled.Load(),
		Endpoints: l.stats.endpoints.Load(),
	}
}

// Stats is a point-in-time capture of limiter counters.
type Stats struct {
	Waits     int64
	Granted   int64
	Cancelled int64
	// Endpoints is the number of per-path buckets created from server quotas.
	Endpoints int32
}
