package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr       *rtree.RTreeG[datastructure.Building]
	distance geo.DistanceFunc
}

type NearbyBuilding struct {
	Building datastructure.Building `json:"building"`
	Distance float64                `json:"distance_miles"`
}

func NewRtree(distance geo.DistanceFunc) *Rtree {
	var tr rtree.RTreeG[datastructure.Building]
	if distance == nil {
		distance = geo.HaversineMiles
	}
	return &Rtree{
		tr:       &tr,
		distance: distance,
	}
}

// Build indexes every building centroid as a point entry.
func (rt *Rtree) Build(buildings []datastructure.Building, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("buildings", len(buildings)))
	for _, b := range buildings {
		p := [2]float64{b.Coords.Lon, b.Coords.Lat}
		rt.tr.Insert(p, p, b)
	}
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius returns the buildings within radius miles of (qLat, qLon), closest
// first, at most pkg.MAX_NEARBY_BUILDINGS of them.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []NearbyBuilding {
	// the box corners lie on the 45/225 bearings, so its diagonal must be radius*sqrt2
	// for the box to cover the whole circle.
	diag := radius * math.Sqrt2 * pkg.KM_PER_MILE
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, diag)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, diag)

	results := make([]NearbyBuilding, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data datastructure.Building) bool {
			d := rt.distance(qLat, qLon, data.Coords.Lat, data.Coords.Lon)
			if d <= radius {
				results = append(results, NearbyBuilding{Building: data, Distance: d})
			}
			return true
		})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > pkg.MAX_NEARBY_BUILDINGS {
		results = results[:pkg.MAX_NEARBY_BUILDINGS]
	}
	return results
}
