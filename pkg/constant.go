package pkg

import "math"

// INF_WEIGHT is the tentative distance of a vertex not yet reached from the source.
var INF_WEIGHT = math.Inf(1)

const (
	EARTH_RADIUS_MILES = 3963.1676
	EARTH_RADIUS_KM    = 6371.0
	KM_PER_MILE        = 1.609344

	MAX_NEARBY_BUILDINGS = 20
)

// osm tags used by the campus map loader
const (
	HIGHWAY_TAG      = "highway"
	AREA_HIGHWAY_TAG = "area:highway"
	FOOTWAY          = "footway"
	BUILDING_TAG     = "building"
	UNIVERSITY       = "university"
	NAME_TAG         = "name"
	REF_TAG          = "ref"
)

func IsInf(d float64) bool {
	return math.IsInf(d, 1)
}
