// Package apiclient talks to the elevator-parts REST API.
//
// The backend is an external collaborator whose response shapes are only
// loosely defined, so the client returns decoded JSON objects and leaves
// field selection to the normalize package. Every failure comes back as an
// *Error carrying a Kind from the dashboard's error taxonomy.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dalemusser/liftadmin/internal/app/system/limits"
	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
	"github.com/dalemusser/liftadmin/internal/app/system/normalize"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultStatusPath is probed by CheckAPIStatus when no path is configured.
const DefaultStatusPath = "/health"

// maxErrorBody bounds how much of a non-JSON error body is kept as a message.
const maxErrorBody = 512

// OAuthConfig enables the client-credentials flow for backend calls.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// Config holds everything needed to build a Client.
type Config struct {
	BaseURL    string
	Token      string // static bearer token; ignored when OAuth is set
	StatusPath string
	OAuth      *OAuthConfig

	// HTTPClient overrides the transport used for data calls. Tests use it;
	// production leaves it nil.
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
}

// Client implements the data and reachability calls used by the pages.
type Client struct {
	baseURL    string
	token      string
	statusPath string

	httpClient  *http.Client // data calls (may carry OAuth)
	probeClient *http.Client // unauthenticated probe

	metrics *metrics.Metrics
	log     *zap.Logger
}

// New builds a Client. BaseURL must be an absolute http(s) URL.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be an absolute http(s) URL", cfg.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	statusPath := cfg.StatusPath
	if statusPath == "" {
		statusPath = DefaultStatusPath
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	probe := hc
	token := cfg.Token

	if cfg.OAuth != nil {
		cc := clientcredentials.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			TokenURL:     cfg.OAuth.TokenURL,
			Scopes:       cfg.OAuth.Scopes,
		}
		// The oauth2 package fetches tokens with the client stored in this
		// context, so tests can point it at their fake transport.
		tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, hc)
		hc = cc.Client(tokenCtx)
		token = ""
	}

	return &Client{
		baseURL:     strings.TrimRight(u.String(), "/"),
		token:       token,
		statusPath:  ensureLeadingSlash(statusPath),
		httpClient:  hc,
		probeClient: probe,
		metrics:     cfg.Metrics,
		log:         logger,
	}, nil
}

// BaseURL returns the normalised backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Get fetches path and returns the decoded JSON object. A bare JSON array is
// returned as {"data": [...]} so callers can treat both shapes alike.
func (c *Client) Get(ctx context.Context, path string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post sends body as JSON to path and returns the decoded JSON object.
func (c *Client) Post(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// CheckAPIStatus reports whether the backend answers the probe path at all.
// The probe is unauthenticated; any status below 500 counts as reachable.
func (c *Client) CheckAPIStatus(ctx context.Context) bool {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.statusPath, nil)
	if err != nil {
		c.log.Warn("api probe: build request failed", zap.Error(err))
		return false
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.probeClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackend(http.MethodGet, c.statusPath, string(KindNetwork), time.Since(start))
		c.log.Warn("api probe: backend unreachable",
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	ok := resp.StatusCode < 500
	outcome := "ok"
	if !ok {
		outcome = string(KindServer)
	}
	c.metrics.ObserveBackend(http.MethodGet, c.statusPath, outcome, time.Since(start))
	if !ok {
		c.log.Warn("api probe: backend unhealthy", zap.Int("status", resp.StatusCode))
	}
	return ok
}

// do performs one JSON request and maps every failure onto *Error.
func (c *Client) do(ctx context.Context, method, path string, body any) (map[string]any, error) {
	path = ensureLeadingSlash(path)
	start := time.Now()

	fail := func(e *Error) (map[string]any, error) {
		c.metrics.ObserveBackend(method, metricPath(path), string(e.Kind), time.Since(start))
		c.log.Warn("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("kind", string(e.Kind)),
			zap.Int("status", e.StatusCode),
			zap.Error(e.Err))
		return nil, e
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(&Error{Kind: KindOther, Method: method, Path: path, Message: "marshal request body", Err: err})
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fail(&Error{Kind: KindOther, Method: method, Path: path, Message: "create request", Err: err})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "fa-IR")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(&Error{Kind: kindForTransport(err), Method: method, Path: path, Message: "request failed", Err: err})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, limits.MaxBackendBody))
	if err != nil {
		return fail(&Error{Kind: KindNetwork, Method: method, Path: path, StatusCode: resp.StatusCode, Message: "read response", Err: err})
	}

	if resp.StatusCode >= 400 {
		return fail(&Error{
			Kind:       KindForStatus(resp.StatusCode),
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, respBody),
		})
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		c.metrics.ObserveBackend(method, metricPath(path), "ok", time.Since(start))
		return map[string]any{}, nil
	}

	out, err := decodeObject(respBody)
	if err != nil {
		return fail(&Error{Kind: KindOther, Method: method, Path: path, StatusCode: resp.StatusCode, Message: "unexpected response body", Err: err})
	}

	c.metrics.ObserveBackend(method, metricPath(path), "ok", time.Since(start))
	c.log.Debug("api call ok",
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("took", time.Since(start)))
	return out, nil
}

// decodeObject accepts a JSON object or array.
func decodeObject(b []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	switch t := v.(type) {
	case map[string]any:
		return t, nil
	case []any:
		return map[string]any{"data": t}, nil
	default:
		return nil, fmt.Errorf("decode response: expected object or array, got %T", v)
	}
}

// errorMessage pulls a human-readable message out of an error body.
func errorMessage(status int, body []byte) string {
	var obj map[string]any
	if json.Unmarshal(body, &obj) == nil {
		if msg := normalize.String(obj, normalize.MessageKeys...); msg != "" {
			return msg
		}
	}
	text := strings.TrimSpace(string(body))
	if text != "" && !strings.HasPrefix(text, "{") {
		return truncate(text, maxErrorBody)
	}
	return http.StatusText(status)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func ensureLeadingSlash(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

// metricPath drops the query string to keep label cardinality bounded.
func metricPath(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		return p[:i]
	}
	return p
}
