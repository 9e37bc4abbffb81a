// Package timeouts provides centralized timeout values for backend calls.
//
// Every request liftadmin makes to the elevator-parts API is bound to the
// incoming request context plus one of these budgets, so a page that is
// abandoned by the browser never leaves a fetch running.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults below are used.
//
// Guidelines for choosing a timeout:
//   - Probe: the reachability check and the /health endpoint
//   - Fetch: list reads (categories, elevator types, dashboard slices)
//   - Submit: form submissions forwarded to the backend
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultProbe  = 2 * time.Second
	DefaultFetch  = 8 * time.Second
	DefaultSubmit = 10 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	probe  = DefaultProbe
	fetch  = DefaultFetch
	submit = DefaultSubmit
)

// Probe returns the timeout for the backend reachability probe.
func Probe() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return probe
}

// Fetch returns the timeout for a single backend list read.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Submit returns the timeout for forwarding a form submission to the backend.
func Submit() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return submit
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Probe  time.Duration
	Fetch  time.Duration
	Submit time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. Call it during startup before
// handlers are registered.
//
// Example:
//
//	timeouts.Configure(timeouts.Config{
//	    Fetch: 15 * time.Second,
//	})
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Probe > 0 {
		probe = cfg.Probe
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Submit > 0 {
		submit = cfg.Submit
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	probe = DefaultProbe
	fetch = DefaultFetch
	submit = DefaultSubmit
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Probe:  probe,
		Fetch:  fetch,
		Submit: submit,
	}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context ended because the deadline passed.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "parts categories")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
