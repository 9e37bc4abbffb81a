package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// Kind classifies a failed backend call. Pages map each kind to a banner.
type Kind string

const (
	KindNetwork    Kind = "network"    // backend unreachable or too slow
	KindAuth       Kind = "auth"       // credentials rejected or token fetch failed
	KindServer     Kind = "server"     // 5xx
	KindValidation Kind = "validation" // 400 / 422
	KindOther      Kind = "other"
)

// Error is returned by Client for every failed call.
type Error struct {
	Kind       Kind
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: HTTP %d (%s): %s", e.Method, e.Path, e.StatusCode, e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindForStatus maps an HTTP status code onto the error taxonomy.
func KindForStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return KindValidation
	case code >= 500:
		return KindServer
	default:
		return KindOther
	}
}

// kindForTransport classifies an error returned by http.Client.Do.
func kindForTransport(err error) Kind {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		return KindAuth
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindNetwork
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return KindNetwork
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return KindNetwork
	}
	return KindOther
}

// Classify returns the Kind of err, falling back to KindOther for errors
// that did not come from a Client.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return kindForTransport(err)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// BackendMessage returns the message the backend attached to err, if any.
func BackendMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return ""
}
