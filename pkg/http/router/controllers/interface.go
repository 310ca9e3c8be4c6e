package controllers

import (
	"context"

	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
)

type NavigationService interface {
	Navigate(ctx context.Context, start, destination string) (*engine.NavigationResult, error)
	NavigateBatch(ctx context.Context, queries []engine.Query) []engine.QueryResult
	NearbyBuildings(lat, lon, radius float64) ([]spatialindex.NearbyBuilding, error)
	Stats() engine.Stats
}
