package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Probe() != DefaultProbe {
		t.Errorf("Probe() = %v, want %v", Probe(), DefaultProbe)
	}
	if Fetch() != DefaultFetch {
		t.Errorf("Fetch() = %v, want %v", Fetch(), DefaultFetch)
	}
	if Submit() != DefaultSubmit {
		t.Errorf("Submit() = %v, want %v", Submit(), DefaultSubmit)
	}
}

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Fetch: 15 * time.Second})

	got := Current()
	if got.Fetch != 15*time.Second {
		t.Errorf("Fetch: got %v, want 15s", got.Fetch)
	}
	if got.Probe != DefaultProbe {
		t.Errorf("Probe: got %v, want default %v", got.Probe, DefaultProbe)
	}
	if got.Submit != DefaultSubmit {
		t.Errorf("Submit: got %v, want default %v", got.Submit, DefaultSubmit)
	}
}

func TestWithTimeout_ExpiresContext(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
	}
}
