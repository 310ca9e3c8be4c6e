package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/campusnav/pkg/concurrent"
	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
)

type NavigationService struct {
	log          *zap.Logger
	engine       NavigationEngine
	batchWorkers int
	searchRadius float64
}

func NewNavigationService(log *zap.Logger, engine NavigationEngine, batchWorkers int,
	searchRadius float64) *NavigationService {
	return &NavigationService{
		log:          log,
		engine:       engine,
		batchWorkers: batchWorkers,
		searchRadius: searchRadius,
	}
}

// Navigate returns the walking route between two buildings. An unreachable destination
// comes back as util.ErrUnprocessable together with the partial result.
func (ns *NavigationService) Navigate(ctx context.Context, start, destination string) (*engine.NavigationResult, error) {
	res, err := ns.engine.Navigate(ctx, start, destination)
	if err != nil {
		return res, ns.wrapNavigationError(err, start, destination)
	}
	return res, nil
}

func (ns *NavigationService) wrapNavigationError(err error, start, destination string) error {
	switch {
	case errors.Is(err, engine.ErrStartNotFound):
		return util.WrapErrorf(err, util.ErrNotFound, "start building %q not found", start)
	case errors.Is(err, engine.ErrDestinationNotFound):
		return util.WrapErrorf(err, util.ErrNotFound, "destination building %q not found", destination)
	case errors.Is(err, routing.ErrUnreachable):
		return util.WrapErrorf(err, util.ErrUnprocessable, "no walking path from %q to %q", start, destination)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return util.WrapErrorf(err, util.ErrUnprocessable, "navigation from %q to %q was cancelled", start, destination)
	default:
		ns.log.Error("navigation failed", zap.String("start", start), zap.String("destination", destination),
			zap.Error(err))
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
}

// NavigateBatch answers every query on the worker pool. Results keep the order of
// queries; each query has its own dijkstra state.
func (ns *NavigationService) NavigateBatch(ctx context.Context, queries []engine.Query) []engine.QueryResult {
	return concurrent.Run(ns.batchWorkers, queries, func(q engine.Query) engine.QueryResult {
		res, err := ns.Navigate(ctx, q.Start, q.Destination)
		return engine.QueryResult{Result: res, Err: err}
	})
}

// NearbyBuildings uses the configured search radius when radius is zero.
func (ns *NavigationService) NearbyBuildings(lat, lon, radius float64) ([]spatialindex.NearbyBuilding, error) {
	if radius == 0 {
		radius = ns.searchRadius
	}
	if radius < 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "radius must not be negative, got %f", radius)
	}
	return ns.engine.NearbyBuildings(lat, lon, radius), nil
}

func (ns *NavigationService) Stats() engine.Stats {
	return ns.engine.Stats()
}
