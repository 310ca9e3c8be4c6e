package geo

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// DistanceFunc is a pure, non-negative distance between two coordinates.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func centralAngle(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	return 2.0 * math.Asin(math.Sqrt(a))
}

// HaversineMiles is the default campus distance: great-circle distance in miles.
func HaversineMiles(latOne, longOne, latTwo, longTwo float64) float64 {
	return pkg.EARTH_RADIUS_MILES * centralAngle(latOne, longOne, latTwo, longTwo)
}

func DistanceFuncByName(name string) (DistanceFunc, error) {
	switch name {
	case "", "haversine":
		return HaversineMiles, nil
	case "s2":
		return S2DistanceMiles, nil
	default:
		return nil, fmt.Errorf("unknown distance metric %q", name)
	}
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / pkg.EARTH_RADIUS_KM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return radToDeg(lat2), normalizeLongitude(radToDeg(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}
