package routing

import (
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/paulmach/osm"
)

// Snap is a network point chosen as the closest to some query coordinate.
type Snap struct {
	ID         osm.NodeID     `json:"id"`
	Coordinate geo.Coordinate `json:"coordinate"`
	Distance   float64        `json:"distance_miles"`
}

// NearestPointLocator finds the footway point closest to a coordinate. Points that lie
// on no footway are never returned.
type NearestPointLocator struct {
	nodes    map[osm.NodeID]geo.Coordinate
	footways []da.Footway
	distance geo.DistanceFunc
}

func NewNearestPointLocator(nodes map[osm.NodeID]geo.Coordinate, footways []da.Footway,
	distance geo.DistanceFunc) *NearestPointLocator {
	if distance == nil {
		distance = geo.HaversineMiles
	}
	return &NearestPointLocator{
		nodes:    nodes,
		footways: footways,
		distance: distance,
	}
}

// NearestPoint scans every (footway, point) pair in footway order. On equal distances
// the point seen first wins.
func (l *NearestPointLocator) NearestPoint(target geo.Coordinate) (Snap, error) {
	best := Snap{}
	found := false

	for _, fw := range l.footways {
		for _, id := range fw.Nodes {
			coord, ok := l.nodes[id]
			if !ok {
				continue
			}

			d := l.distance(target.Lat, target.Lon, coord.Lat, coord.Lon)
			if !found || d < best.Distance {
				best = Snap{ID: id, Coordinate: coord, Distance: d}
				found = true
			}
		}
	}

	if !found {
		return Snap{}, ErrEmptyNetwork
	}
	return best, nil
}
