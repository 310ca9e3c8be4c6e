package usecases

import (
	"context"

	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
)

type NavigationEngine interface {
	Navigate(ctx context.Context, start, destination string) (*engine.NavigationResult, error)
	NearbyBuildings(lat, lon, radius float64) []spatialindex.NearbyBuilding
	Stats() engine.Stats
}
