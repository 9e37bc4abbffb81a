package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// PostCall records one Post made against a FakeBackend.
type PostCall struct {
	Path string
	Body any
}

// FakeBackend is an in-memory stand-in for the elevator-parts API client.
// Unset paths answer with an empty object.
type FakeBackend struct {
	mu sync.Mutex

	Responses map[string]map[string]any
	Errors    map[string]error
	PostErr   error
	Available bool
	Delay     time.Duration

	calls map[string]int
	posts []PostCall
	probe int
}

// NewFakeBackend returns a reachable FakeBackend with no canned responses.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		Responses: map[string]map[string]any{},
		Errors:    map[string]error{},
		Available: true,
		calls:     map[string]int{},
	}
}

// Respond sets the canned response for path and clears any canned error.
func (f *FakeBackend) Respond(path string, body map[string]any) *FakeBackend {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[path] = body
	delete(f.Errors, path)
	return f
}

// Fail makes every Get of path return err.
func (f *FakeBackend) Fail(path string, err error) *FakeBackend {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors[path] = err
	return f
}

func (f *FakeBackend) Get(ctx context.Context, path string) (map[string]any, error) {
	if f.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.Delay):
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[path]++
	if err, ok := f.Errors[path]; ok {
		return nil, err
	}
	if body, ok := f.Responses[path]; ok {
		return body, nil
	}
	return map[string]any{}, nil
}

func (f *FakeBackend) Post(ctx context.Context, path string, body any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, PostCall{Path: path, Body: body})
	if f.PostErr != nil {
		return nil, f.PostErr
	}
	return map[string]any{"ok": true}, nil
}

func (f *FakeBackend) CheckAPIStatus(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probe++
	return f.Available
}

// Calls returns how many times path was fetched.
func (f *FakeBackend) Calls(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

// ProbeCalls returns how many times CheckAPIStatus ran.
func (f *FakeBackend) ProbeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probe
}

// Posts returns every Post made so far.
func (f *FakeBackend) Posts() []PostCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]PostCall, len(f.posts))
	copy(out, f.posts)
	return out
}

// NewAPIServer starts an httptest server that answers path → raw JSON body
// with 200. Unknown paths get 404. The server is closed when the test ends.
func NewAPIServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, body := range routes {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestContext returns a context with a short timeout for tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
