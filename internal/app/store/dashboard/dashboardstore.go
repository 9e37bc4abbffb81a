// internal/app/store/dashboard/dashboardstore.go
package dashboardstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/normalize"
	"github.com/dalemusser/liftadmin/internal/app/system/settle"
	"github.com/dalemusser/liftadmin/internal/app/system/timeouts"
	"github.com/dalemusser/liftadmin/internal/domain/models"
	"go.uber.org/zap"
)

// Slice names, in fetch order.
const (
	SliceStats        = "stats"
	SliceTrend        = "trend"
	SliceDistribution = "distribution"
	SliceActivities   = "activities"
)

// Key orders for the loosely-shaped dashboard payloads. The first present
// key wins, as everywhere else in the app.
var (
	StatsKeys        = []string{"stats", "data"}
	TrendKeys        = []string{"trend", "points", "data"}
	DistributionKeys = []string{"distribution", "slices", "data"}
	ActivityKeys     = []string{"activities", "items", "data"}

	totalPartsKeys      = []string{"total_parts", "totalParts"}
	partsCategoriesKeys = []string{"parts_categories", "partsCategories", "categories"}
	elevatorTypesKeys   = []string{"elevator_types", "elevatorTypes", "types"}
	lowStockKeys        = []string{"low_stock_parts", "lowStockParts", "low_stock"}
	labelKeys           = []string{"label", "month", "name"}
	sliceNameKeys       = []string{"name", "label", "category"}
	valueKeys           = []string{"value", "count", "total"}
	activityIDKeys      = []string{"id", "_id"}
	actionKeys          = []string{"action", "title", "description"}
	userKeys            = []string{"user", "username", "user_name"}
	atKeys              = []string{"created_at", "createdAt", "timestamp", "at"}
)

// Backend is the part of the API client the store needs.
type Backend interface {
	Get(ctx context.Context, path string) (map[string]any, error)
}

// Paths are the backend endpoints for each slice.
type Paths struct {
	Stats        string
	Trend        string
	Distribution string
	Activities   string
}

// DefaultPaths are used for any Paths field left empty.
var DefaultPaths = Paths{
	Stats:        "/admin/dashboard/stats",
	Trend:        "/admin/dashboard/trend",
	Distribution: "/admin/dashboard/distribution",
	Activities:   "/admin/dashboard/activities",
}

type Store struct {
	api   Backend
	paths Paths
	live  bool
	log   *zap.Logger
}

// New builds a Store. With live false, Fetch makes no requests and returns
// an empty dashboard.
func New(api Backend, paths Paths, live bool, logger *zap.Logger) *Store {
	if paths.Stats == "" {
		paths.Stats = DefaultPaths.Stats
	}
	if paths.Trend == "" {
		paths.Trend = DefaultPaths.Trend
	}
	if paths.Distribution == "" {
		paths.Distribution = DefaultPaths.Distribution
	}
	if paths.Activities == "" {
		paths.Activities = DefaultPaths.Activities
	}
	return &Store{api: api, paths: paths, live: live, log: logger}
}

// Live reports whether the store talks to the backend.
func (s *Store) Live() bool { return s.live }

// Result is the outcome of Fetch.
type Result struct {
	Data     models.DashboardData
	Failures []fetchstate.Failure
}

// Fetch loads the four dashboard slices concurrently.
// Intentionally tolerant: a failed slice stays empty/zero and is listed in
// Failures; Fetch itself never fails.
func (s *Store) Fetch(ctx context.Context) Result {
	out := Result{Data: models.EmptyDashboard()}
	if !s.live {
		return out
	}

	slices := []string{SliceStats, SliceTrend, SliceDistribution, SliceActivities}
	outcomes := settle.All(ctx,
		s.getTask(s.paths.Stats),
		s.getTask(s.paths.Trend),
		s.getTask(s.paths.Distribution),
		s.getTask(s.paths.Activities),
	)

	for i, o := range outcomes {
		if o.Rejected() {
			out.Failures = append(out.Failures, fetchstate.Failure{Slice: slices[i], Err: o.Err})
			continue
		}
		switch slices[i] {
		case SliceStats:
			out.Data.Stats = ParseStats(o.Value)
		case SliceTrend:
			out.Data.Trend = ParseTrend(o.Value)
		case SliceDistribution:
			out.Data.Distribution = ParseDistribution(o.Value)
		case SliceActivities:
			out.Data.Activities = ParseActivities(o.Value)
		}
	}
	return out
}

func (s *Store) getTask(path string) settle.Task[map[string]any] {
	return func(ctx context.Context) (map[string]any, error) {
		ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), s.log, "GET "+path)
		defer cancel()

		payload, err := s.api.Get(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", path, err)
		}
		return payload, nil
	}
}

// ParseStats reads the KPI counters. They may sit under "stats"/"data" or
// at the top level of the payload.
func ParseStats(payload map[string]any) models.DashboardStats {
	obj := payload
	if _, ok := normalize.FirstKey(payload, StatsKeys...); ok {
		obj = normalize.Object(payload, StatsKeys...)
	}
	return models.DashboardStats{
		TotalParts:      normalize.Int(obj, totalPartsKeys...),
		PartsCategories: normalize.Int(obj, partsCategoriesKeys...),
		ElevatorTypes:   normalize.Int(obj, elevatorTypesKeys...),
		LowStockParts:   normalize.Int(obj, lowStockKeys...),
	}
}

// ParseTrend reads the trend series. Items without a label are skipped.
func ParseTrend(payload map[string]any) []models.TrendPoint {
	out := []models.TrendPoint{}
	for _, it := range normalize.Collection(payload, TrendKeys...) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		label := normalize.String(m, labelKeys...)
		if label == "" {
			continue
		}
		v, _ := normalize.Number(m, valueKeys...)
		out = append(out, models.TrendPoint{Label: label, Value: v})
	}
	return out
}

// ParseDistribution reads the pie slices. Items without a name are skipped.
func ParseDistribution(payload map[string]any) []models.PieSlice {
	out := []models.PieSlice{}
	for _, it := range normalize.Collection(payload, DistributionKeys...) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		name := normalize.String(m, sliceNameKeys...)
		if name == "" {
			continue
		}
		v, _ := normalize.Number(m, valueKeys...)
		out = append(out, models.PieSlice{Name: name, Value: v})
	}
	return out
}

// ParseActivities reads the activity feed. Unparseable timestamps are left
// zero rather than dropping the row.
func ParseActivities(payload map[string]any) []models.Activity {
	out := []models.Activity{}
	for _, it := range normalize.Collection(payload, ActivityKeys...) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		a := models.Activity{
			ID:     normalize.String(m, activityIDKeys...),
			Action: normalize.String(m, actionKeys...),
			User:   normalize.String(m, userKeys...),
			Status: normalize.String(m, "status"),
		}
		if a.ID == "" {
			if n, ok := normalize.Number(m, activityIDKeys...); ok {
				a.ID = fmt.Sprintf("%d", int64(n))
			}
		}
		if ts := normalize.String(m, atKeys...); ts != "" {
			if t, err := time.Parse(time.RFC3339, ts); err == nil {
				a.At = t
			}
		}
		out = append(out, a)
	}
	return out
}
