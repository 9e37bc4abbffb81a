package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

// NewFormRequest creates a POST request with a url-encoded form body.
func NewFormRequest(target, form string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
