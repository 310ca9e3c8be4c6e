package geo

import (
	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/campusnav/pkg"
)

// S2DistanceMiles measures the angle between the two points on the s2 unit sphere.
func S2DistanceMiles(latOne, longOne, latTwo, longTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, longOne)
	b := s2.LatLngFromDegrees(latTwo, longTwo)
	return a.Distance(b).Radians() * pkg.EARTH_RADIUS_MILES
}

// Centroid returns the mean of the given coordinates. ok is false for an empty slice.
func Centroid(coords []Coordinate) (Coordinate, bool) {
	if len(coords) == 0 {
		return Coordinate{}, false
	}
	var lat, lon float64
	for _, c := range coords {
		lat += c.Lat
		lon += c.Lon
	}
	n := float64(len(coords))
	return NewCoordinate(lat/n, lon/n), true
}
