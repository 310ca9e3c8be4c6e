package geo

import "github.com/twpayne/go-polyline"

// PolylineFromCoords encodes the route with the google polyline algorithm (precision 5).
func PolylineFromCoords(coords []Coordinate) string {
	if len(coords) == 0 {
		return ""
	}
	latLons := make([][]float64, 0, len(coords))
	for _, c := range coords {
		latLons = append(latLons, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(latLons))
}
