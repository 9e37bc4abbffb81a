// Package notify is the dashboard's toast sink.
//
// Pages report outcomes through the Notifier interface. A Collector keeps
// toasts for the page being rendered right now; a FlashStore keeps them in
// the session cookie so they survive a POST/redirect/GET round trip.
package notify

import (
	"sync"

	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
)

// Level is the severity of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is one user-facing notification.
type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier receives user-facing notifications.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Collector records toasts in memory. Safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	toasts  []Toast
	metrics *metrics.Metrics
}

// NewCollector returns an empty Collector. m may be nil.
func NewCollector(m *metrics.Metrics) *Collector {
	return &Collector{metrics: m}
}

func (c *Collector) Success(msg string) { c.add(LevelSuccess, msg) }
func (c *Collector) Warning(msg string) { c.add(LevelWarning, msg) }
func (c *Collector) Error(msg string)   { c.add(LevelError, msg) }

func (c *Collector) add(level Level, msg string) {
	c.mu.Lock()
	c.toasts = append(c.toasts, Toast{Level: level, Message: msg})
	c.mu.Unlock()
	c.metrics.ObserveNotification(string(level))
}

// Toasts returns a copy of everything recorded so far, oldest first.
func (c *Collector) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Count returns how many toasts of level were recorded.
func (c *Collector) Count(level Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.toasts {
		if t.Level == level {
			n++
		}
	}
	return n
}
