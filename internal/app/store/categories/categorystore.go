// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"
	"fmt"

	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/normalize"
	"github.com/dalemusser/liftadmin/internal/app/system/settle"
	"github.com/dalemusser/liftadmin/internal/app/system/timeouts"
	"github.com/dalemusser/liftadmin/internal/domain/models"
	"go.uber.org/zap"
)

// Slice names, used in logs, metrics and fetchstate.Failure.
const (
	SliceParts     = "parts_categories"
	SliceElevators = "elevator_types"
)

// Backend is the part of the API client the store needs.
type Backend interface {
	Get(ctx context.Context, path string) (map[string]any, error)
	Post(ctx context.Context, path string, body any) (map[string]any, error)
}

// Paths are the backend collection endpoints.
type Paths struct {
	PartsCategories string
	ElevatorTypes   string
}

// DefaultPaths are the endpoints the backend exposes today.
var DefaultPaths = Paths{
	PartsCategories: "/admin/parts-categories",
	ElevatorTypes:   "/admin/elevator-types",
}

type Store struct {
	api   Backend
	paths Paths
	log   *zap.Logger
}

func New(api Backend, paths Paths, logger *zap.Logger) *Store {
	if paths.PartsCategories == "" {
		paths.PartsCategories = DefaultPaths.PartsCategories
	}
	if paths.ElevatorTypes == "" {
		paths.ElevatorTypes = DefaultPaths.ElevatorTypes
	}
	return &Store{api: api, paths: paths, log: logger}
}

// StatsResult is the outcome of FetchStats.
type StatsResult struct {
	Stats    models.CategoryStats
	Failures []fetchstate.Failure
}

// SliceCount is the normalised view of one collection response.
type SliceCount struct {
	Count  int
	Active int
}

// FetchStats loads both collections concurrently and combines them.
// Intentionally tolerant: a failed collection counts as zero and is
// reported in Failures; FetchStats itself never fails.
func (s *Store) FetchStats(ctx context.Context) StatsResult {
	parts, elevators := settle.Pair(ctx,
		s.countTask(s.paths.PartsCategories, normalize.PartsCategoryKeys),
		s.countTask(s.paths.ElevatorTypes, normalize.ElevatorTypeKeys),
	)

	var out StatsResult
	if parts.Rejected() {
		out.Failures = append(out.Failures, fetchstate.Failure{Slice: SliceParts, Err: parts.Err})
	}
	if elevators.Rejected() {
		out.Failures = append(out.Failures, fetchstate.Failure{Slice: SliceElevators, Err: elevators.Err})
	}
	out.Stats = Combine(parts.ValueOr(SliceCount{}), elevators.ValueOr(SliceCount{}))
	return out
}

// Combine aggregates two slice counts. The total is a plain sum with no
// de-duplication across collections.
func Combine(parts, elevators SliceCount) models.CategoryStats {
	return models.CategoryStats{
		PartsCategories: parts.Count,
		ElevatorTypes:   elevators.Count,
		ActiveItems:     parts.Active + elevators.Active,
		TotalManagement: parts.Count + elevators.Count,
	}
}

// CountPayload normalises one collection response.
func CountPayload(payload map[string]any, keys []string) SliceCount {
	items := normalize.Collection(payload, keys...)
	return SliceCount{Count: len(items), Active: normalize.CountActive(items)}
}

func (s *Store) countTask(path string, keys []string) settle.Task[SliceCount] {
	return func(ctx context.Context) (SliceCount, error) {
		ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), s.log, "GET "+path)
		defer cancel()

		payload, err := s.api.Get(ctx, path)
		if err != nil {
			return SliceCount{}, fmt.Errorf("fetch %s: %w", path, err)
		}
		return CountPayload(payload, keys), nil
	}
}

// CreatePartsCategory forwards a new parts category to the backend.
func (s *Store) CreatePartsCategory(ctx context.Context, c models.NewCategory) error {
	return s.create(ctx, s.paths.PartsCategories, c)
}

// CreateElevatorType forwards a new elevator type to the backend.
func (s *Store) CreateElevatorType(ctx context.Context, c models.NewCategory) error {
	return s.create(ctx, s.paths.ElevatorTypes, c)
}

func (s *Store) create(ctx context.Context, path string, c models.NewCategory) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Submit(), s.log, "POST "+path)
	defer cancel()

	if _, err := s.api.Post(ctx, path, c); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	s.log.Info("category created", zap.String("path", path), zap.String("name", c.Name))
	return nil
}
