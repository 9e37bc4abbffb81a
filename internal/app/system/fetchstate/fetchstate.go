// Package fetchstate models one page fetch cycle as a small state machine.
//
//	idle → loading → success | partialSuccess | error
//
// Pages never mutate State directly; they feed events to Reduce and render
// whatever comes out. That keeps the transitions testable without HTTP.
package fetchstate

import (
	"strings"

	"github.com/dalemusser/liftadmin/internal/app/system/apiclient"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
)

// Status is the phase of a fetch cycle.
type Status string

const (
	StatusIdle           Status = "idle"
	StatusLoading        Status = "loading"
	StatusSuccess        Status = "success"
	StatusPartialSuccess Status = "partialSuccess"
	StatusError          Status = "error"
)

// Banner is the dismissible error banner shown above a page.
type Banner struct {
	Kind    apiclient.Kind `json:"kind"`
	Message string         `json:"message"`
}

// Failure names a sub-fetch that rejected.
type Failure struct {
	Slice string
	Err   error
}

// State is everything a page renders about its data.
type State[T any] struct {
	Status       Status   `json:"status"`
	Data         T        `json:"data"`
	APIAvailable *bool    `json:"apiAvailable,omitempty"`
	Banner       *Banner  `json:"banner,omitempty"`
	Failed       []string `json:"failed,omitempty"`
}

// Loading reports whether a cycle is in flight.
func (s State[T]) Loading() bool { return s.Status == StatusLoading }

// Event is an input to Reduce.
type Event interface{ event() }

// Started begins a cycle: loading, with prior error state cleared.
type Started struct{}

// Retried is the user's retry action. It resets to idle and clears errors
// before the next Started.
type Retried struct{}

// Dismissed hides the banner.
type Dismissed struct{}

// ProbeSettled carries the reachability probe result.
type ProbeSettled struct{ Available bool }

// Settled carries the aggregated data and the sub-fetches that failed,
// out of Total sub-fetches.
type Settled[T any] struct {
	Data     T
	Total    int
	Failures []Failure
}

func (Started) event()      {}
func (Retried) event()      {}
func (Dismissed) event()    {}
func (ProbeSettled) event() {}
func (Settled[T]) event()   {}

// New returns an idle State.
func New[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Reduce applies ev to s and returns the next state. It never mutates s.
func Reduce[T any](s State[T], ev Event) State[T] {
	switch e := ev.(type) {
	case Started:
		s.Status = StatusLoading
		s.Banner = nil
		s.Failed = nil
	case Retried:
		s.Status = StatusIdle
		s.Banner = nil
		s.Failed = nil
		s.APIAvailable = nil
	case Dismissed:
		s.Banner = nil
	case ProbeSettled:
		v := e.Available
		s.APIAvailable = &v
		if !v {
			s.Banner = &Banner{Kind: apiclient.KindNetwork, Message: BannerMessage(apiclient.KindNetwork)}
		}
	case Settled[T]:
		s.Data = e.Data
		s.Failed = nil
		for _, f := range e.Failures {
			s.Failed = append(s.Failed, f.Slice)
		}
		switch {
		case len(e.Failures) == 0:
			s.Status = StatusSuccess
		case len(e.Failures) >= e.Total:
			s.Status = StatusError
			if s.Banner == nil {
				kind := apiclient.Classify(e.Failures[0].Err)
				s.Banner = &Banner{Kind: kind, Message: BannerMessage(kind)}
			}
		default:
			s.Status = StatusPartialSuccess
		}
	}
	return s
}

// BannerMessage is the Persian banner text for an error kind.
func BannerMessage(kind apiclient.Kind) string {
	switch kind {
	case apiclient.KindNetwork:
		return i18n.T(i18n.MsgNetworkError)
	case apiclient.KindAuth:
		return i18n.T(i18n.MsgAuthError)
	case apiclient.KindServer:
		return i18n.T(i18n.MsgServerError)
	case apiclient.KindValidation:
		return i18n.T(i18n.MsgValidationError)
	default:
		return i18n.T(i18n.MsgOtherError)
	}
}

// JoinSlices renders failed slice labels as a Persian list.
func JoinSlices(labels []string) string {
	return strings.Join(labels, i18n.T(i18n.MsgListSeparator))
}
