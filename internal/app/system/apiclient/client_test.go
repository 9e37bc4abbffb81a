package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// testHandler captures the incoming request and returns a canned response.
type testHandler struct {
	method      string
	path        string
	auth        string
	requestID   string
	contentType string
	body        string

	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.auth = r.Header.Get("Authorization")
	h.requestID = r.Header.Get("X-Request-ID")
	h.contentType = r.Header.Get("Content-Type")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

func newTestClient(t *testing.T, h http.Handler, cfg Config) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg.BaseURL = srv.URL
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://example.com", "http://"} {
		if _, err := New(Config{BaseURL: raw}, nil); err == nil {
			t.Errorf("New(%q) succeeded, want error", raw)
		}
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New(Config{BaseURL: "https://api.example.com/v1/"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "https://api.example.com/v1" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}

func TestGet_DecodesObject(t *testing.T) {
	h := &testHandler{responseBody: `{"categories":[{"id":1},{"id":2}]}`}
	c := newTestClient(t, h, Config{Token: "secret"})

	got, err := c.Get(context.Background(), "/admin/parts-categories")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h.method != http.MethodGet || h.path != "/admin/parts-categories" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if h.auth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", h.auth)
	}
	if _, err := uuid.Parse(h.requestID); err != nil {
		t.Errorf("X-Request-ID %q is not a uuid: %v", h.requestID, err)
	}
	items, ok := got["categories"].([]any)
	if !ok || len(items) != 2 {
		t.Errorf("categories = %#v", got["categories"])
	}
}

func TestGet_WrapsBareArray(t *testing.T) {
	h := &testHandler{responseBody: `[{"id":1}]`}
	c := newTestClient(t, h, Config{})

	got, err := c.Get(context.Background(), "admin/elevator-types")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h.path != "/admin/elevator-types" {
		t.Errorf("path = %q, want leading slash added", h.path)
	}
	if items, ok := got["data"].([]any); !ok || len(items) != 1 {
		t.Errorf("data = %#v", got["data"])
	}
}

func TestGet_EmptyBody(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c := newTestClient(t, h, Config{})

	got, err := c.Get(context.Background(), "/x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty map", got)
	}
}

func TestGet_ScalarBodyIsOther(t *testing.T) {
	h := &testHandler{responseBody: `"hello"`}
	c := newTestClient(t, h, Config{})

	_, err := c.Get(context.Background(), "/x")
	if Classify(err) != KindOther {
		t.Errorf("Classify = %q, want other", Classify(err))
	}
}

func TestGet_StatusClassification(t *testing.T) {
	tests := []struct {
		status int
		body   string
		kind   Kind
		msg    string
	}{
		{http.StatusUnauthorized, `{"message":"token expired"}`, KindAuth, "token expired"},
		{http.StatusForbidden, `{"error":"forbidden"}`, KindAuth, "forbidden"},
		{http.StatusUnprocessableEntity, `{"detail":"name is required"}`, KindValidation, "name is required"},
		{http.StatusBadRequest, `{}`, KindValidation, "Bad Request"},
		{http.StatusInternalServerError, `internal server error`, KindServer, "internal server error"},
		{http.StatusBadGateway, ``, KindServer, "Bad Gateway"},
		{http.StatusNotFound, `{"error":"not found"}`, KindOther, "not found"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			h := &testHandler{statusCode: tt.status, responseBody: tt.body}
			c := newTestClient(t, h, Config{})

			_, err := c.Get(context.Background(), "/admin/parts-categories")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			if apiErr.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", apiErr.Kind, tt.kind)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.msg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.msg)
			}
			if StatusCode(err) != tt.status || BackendMessage(err) != tt.msg {
				t.Errorf("helpers = %d %q", StatusCode(err), BackendMessage(err))
			}
		})
	}
}

func TestGet_UnreachableIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(Config{BaseURL: base}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Get(context.Background(), "/admin/parts-categories")
	if Classify(err) != KindNetwork {
		t.Errorf("Classify = %q, want network (err=%v)", Classify(err), err)
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode = %d, want 0", StatusCode(err))
	}
}

func TestGet_DeadlineIsNetwork(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c := newTestClient(t, h, Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Get(ctx, "/slow")
	if Classify(err) != KindNetwork {
		t.Errorf("Classify = %q, want network", Classify(err))
	}
}

func TestPost_SendsJSON(t *testing.T) {
	h := &testHandler{statusCode: http.StatusCreated, responseBody: `{"id":9,"name":"Door motors"}`}
	c := newTestClient(t, h, Config{})

	got, err := c.Post(context.Background(), "/admin/parts-categories", map[string]any{"name": "Door motors"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if h.method != http.MethodPost {
		t.Errorf("method = %s", h.method)
	}
	if h.contentType != "application/json" {
		t.Errorf("Content-Type = %q", h.contentType)
	}
	if !strings.Contains(h.body, `"name":"Door motors"`) {
		t.Errorf("body = %s", h.body)
	}
	if got["name"] != "Door motors" {
		t.Errorf("response = %v", got)
	}
}

func TestCheckAPIStatus(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusUnauthorized, true},
		{http.StatusNotFound, true},
		{http.StatusServiceUnavailable, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			h := &testHandler{statusCode: tt.status}
			c := newTestClient(t, h, Config{Token: "secret", StatusPath: "ping"})

			if got := c.CheckAPIStatus(context.Background()); got != tt.want {
				t.Errorf("CheckAPIStatus = %v, want %v", got, tt.want)
			}
			if h.path != "/ping" {
				t.Errorf("probe path = %q, want /ping", h.path)
			}
			if h.auth != "" {
				t.Errorf("probe sent credentials %q", h.auth)
			}
		})
	}
}

func TestCheckAPIStatus_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(Config{BaseURL: base}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.CheckAPIStatus(context.Background()) {
		t.Error("CheckAPIStatus = true for a closed server")
	}
}

func TestOAuthClientCredentials(t *testing.T) {
	var dataAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/admin/elevator-types", func(w http.ResponseWriter, r *http.Request) {
		dataAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Token:   "ignored",
		OAuth: &OAuthConfig{
			ClientID:     "liftadmin",
			ClientSecret: "s3cret",
			TokenURL:     srv.URL + "/oauth/token",
		},
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Get(context.Background(), "/admin/elevator-types"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if dataAuth != "Bearer issued-token" {
		t.Errorf("Authorization = %q, want Bearer issued-token", dataAuth)
	}
}

func TestOAuthTokenFailureIsAuth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		OAuth: &OAuthConfig{
			ClientID:     "liftadmin",
			ClientSecret: "wrong",
			TokenURL:     srv.URL + "/oauth/token",
		},
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Get(context.Background(), "/admin/elevator-types")
	if Classify(err) != KindAuth {
		t.Errorf("Classify = %q, want auth (err=%v)", Classify(err), err)
	}
}

func TestMetricsRecorded(t *testing.T) {
	m := metrics.New()
	h := &testHandler{responseBody: `{}`}
	c := newTestClient(t, h, Config{Metrics: m})

	if _, err := c.Get(context.Background(), "/admin/parts-categories?page=1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	got := testutil.ToFloat64(m.BackendRequests.WithLabelValues(http.MethodGet, "/admin/parts-categories", "ok"))
	if got != 1 {
		t.Errorf("ok counter = %v, want 1", got)
	}
}

func TestClassify_ForeignErrors(t *testing.T) {
	if Classify(nil) != "" {
		t.Error("Classify(nil) should be empty")
	}
	if Classify(errors.New("plain")) != KindOther {
		t.Error("plain error should classify as other")
	}
	if Classify(context.DeadlineExceeded) != KindNetwork {
		t.Error("deadline should classify as network")
	}
}

func TestGet_LongPersianErrorBodyStaysValidUTF8(t *testing.T) {
	body := "x" + strings.Repeat("خطا", 200)
	h := &testHandler{statusCode: http.StatusInternalServerError, responseBody: body}
	c := newTestClient(t, h, Config{})

	_, err := c.Get(context.Background(), "/admin/parts-categories")
	msg := BackendMessage(err)
	if len(msg) > maxErrorBody {
		t.Errorf("message is %d bytes, want at most %d", len(msg), maxErrorBody)
	}
	if !utf8.ValidString(msg) {
		t.Errorf("message is not valid UTF-8: %q", msg)
	}
	if !strings.HasPrefix(body, msg) || len(msg) < maxErrorBody-utf8.UTFMax {
		t.Errorf("message %q is not a near-full prefix of the body", msg)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 3, "abc"},
		{"خطا", 3, "خ"},
		{"خطا", 1, ""},
		{"aخ", 2, "a"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
