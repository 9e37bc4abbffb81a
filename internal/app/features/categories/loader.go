// internal/app/features/categories/loader.go
package categories

import (
	"context"

	categorystore "github.com/dalemusser/liftadmin/internal/app/store/categories"
	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
	"github.com/dalemusser/liftadmin/internal/app/system/notify"
	"github.com/dalemusser/liftadmin/internal/app/system/settle"
	"github.com/dalemusser/liftadmin/internal/app/system/timeouts"
	"github.com/dalemusser/liftadmin/internal/domain/models"
	"go.uber.org/zap"
)

// State is the category page's fetch state.
type State = fetchstate.State[models.CategoryStats]

// StatsSource aggregates the two category collections.
type StatsSource interface {
	FetchStats(ctx context.Context) categorystore.StatsResult
}

// Prober checks backend reachability.
type Prober interface {
	CheckAPIStatus(ctx context.Context) bool
}

// Loader runs one fetch cycle: the reachability probe and the stats
// aggregation side by side, folded into a State through fetchstate.Reduce.
type Loader struct {
	Stats   StatsSource
	API     Prober
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewLoader(stats StatsSource, api Prober, m *metrics.Metrics, logger *zap.Logger) *Loader {
	return &Loader{Stats: stats, API: api, Metrics: m, Log: logger}
}

// Cycle runs a fetch cycle starting from prev. With retry set, prev is reset
// to idle (clearing its banner and failures) before loading starts. observe,
// if non-nil, sees every intermediate state in order.
//
// Exactly one warning goes to n when any sub-fetch failed. A retry that
// ends in success also reports a success toast.
func (l *Loader) Cycle(ctx context.Context, prev State, retry bool, n notify.Notifier, observe func(State)) State {
	s := prev
	step := func(ev fetchstate.Event) {
		s = fetchstate.Reduce(s, ev)
		if observe != nil {
			observe(s)
		}
	}

	if retry {
		step(fetchstate.Retried{})
	}
	step(fetchstate.Started{})

	probe, stats := settle.Pair(ctx,
		func(ctx context.Context) (bool, error) {
			ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Probe(), l.Log, "api probe")
			defer cancel()
			return l.API.CheckAPIStatus(ctx), nil
		},
		func(ctx context.Context) (categorystore.StatsResult, error) {
			return l.Stats.FetchStats(ctx), nil
		},
	)

	step(fetchstate.ProbeSettled{Available: probe.ValueOr(false)})

	res := stats.Value
	if stats.Rejected() {
		// Only reachable if the aggregator panicked.
		l.Log.Error("category stats aggregation failed", zap.Error(stats.Err))
		res = categorystore.StatsResult{Failures: []fetchstate.Failure{
			{Slice: categorystore.SliceParts, Err: stats.Err},
			{Slice: categorystore.SliceElevators, Err: stats.Err},
		}}
	}
	step(fetchstate.Settled[models.CategoryStats]{Data: res.Stats, Total: 2, Failures: res.Failures})

	l.report(s, res.Failures, retry, n)
	l.Metrics.ObserveCycle("categories", string(s.Status))
	return s
}

func (l *Loader) report(s State, failures []fetchstate.Failure, retry bool, n notify.Notifier) {
	if len(failures) > 0 {
		labels := make([]string, 0, len(failures))
		for _, f := range failures {
			l.Log.Warn("category slice failed",
				zap.String("slice", f.Slice),
				zap.Error(f.Err))
			labels = append(labels, SliceLabel(f.Slice))
		}
		if n != nil {
			n.Warning(i18n.T(i18n.MsgPartialWarning, fetchstate.JoinSlices(labels)))
		}
		return
	}
	if retry && n != nil && s.Status == fetchstate.StatusSuccess {
		n.Success(i18n.T(i18n.MsgRefreshed))
	}
}

// SliceLabel is the Persian name of a category slice.
func SliceLabel(slice string) string {
	switch slice {
	case categorystore.SliceParts:
		return i18n.T(i18n.MsgPartsCategories)
	case categorystore.SliceElevators:
		return i18n.T(i18n.MsgElevatorTypes)
	default:
		return slice
	}
}
