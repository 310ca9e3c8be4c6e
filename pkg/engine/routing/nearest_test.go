package routing

import (
	"testing"

	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planar distance keeps expected values exact.
func planar(lat1, lon1, lat2, lon2 float64) float64 {
	dLat, dLon := lat1-lat2, lon1-lon2
	if dLat < 0 {
		dLat = -dLat
	}
	if dLon < 0 {
		dLon = -dLon
	}
	return dLat + dLon
}

func TestNearestPoint(t *testing.T) {
	nodes := map[osm.NodeID]geo.Coordinate{
		1: geo.NewCoordinate(0, 0),
		2: geo.NewCoordinate(0, 2),
		3: geo.NewCoordinate(2, 0),
		4: geo.NewCoordinate(1, 1),  // on no footway
		5: geo.NewCoordinate(0, -2), // same distance from origin as 2
	}
	footways := []da.Footway{
		da.NewFootway(10, []osm.NodeID{1, 2}),
		da.NewFootway(11, []osm.NodeID{3, 5, 99}),
	}

	testCases := []struct {
		name     string
		target   geo.Coordinate
		wantID   osm.NodeID
		wantDist float64
	}{
		{name: "exact point", target: geo.NewCoordinate(2, 0), wantID: 3, wantDist: 0},
		{name: "nearest of several", target: geo.NewCoordinate(0.2, 1.5), wantID: 2, wantDist: 0.7},
		{name: "points on no footway are ignored", target: geo.NewCoordinate(1, 1), wantID: 1, wantDist: 2},
		{name: "tie goes to the first point scanned", target: geo.NewCoordinate(0, 1), wantID: 1, wantDist: 1},
		{name: "tie between footways", target: geo.NewCoordinate(1, 0), wantID: 1, wantDist: 1},
	}

	loc := NewNearestPointLocator(nodes, footways, planar)
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := loc.NearestPoint(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, snap.ID)
			assert.InDelta(t, tt.wantDist, snap.Distance, 1e-9)
			assert.Equal(t, nodes[tt.wantID], snap.Coordinate)
		})
	}
}

func TestNearestPointTieBreak(t *testing.T) {
	nodes := map[osm.NodeID]geo.Coordinate{
		7: geo.NewCoordinate(0, 1),
		3: geo.NewCoordinate(0, -1),
	}

	testCases := []struct {
		name     string
		footways []da.Footway
		wantID   osm.NodeID
	}{
		{
			name:     "A before B in one footway",
			footways: []da.Footway{da.NewFootway(1, []osm.NodeID{7, 3})},
			wantID:   7,
		},
		{
			name:     "B before A in one footway",
			footways: []da.Footway{da.NewFootway(1, []osm.NodeID{3, 7})},
			wantID:   3,
		},
		{
			name: "A in the earlier footway",
			footways: []da.Footway{
				da.NewFootway(1, []osm.NodeID{7}),
				da.NewFootway(2, []osm.NodeID{3}),
			},
			wantID: 7,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			loc := NewNearestPointLocator(nodes, tt.footways, planar)
			snap, err := loc.NearestPoint(geo.NewCoordinate(0, 0))
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, snap.ID)
		})
	}
}

func TestNearestPointEmptyNetwork(t *testing.T) {
	nodes := map[osm.NodeID]geo.Coordinate{1: geo.NewCoordinate(0, 0)}

	testCases := []struct {
		name     string
		footways []da.Footway
	}{
		{name: "no footways", footways: nil},
		{name: "footways without known points", footways: []da.Footway{da.NewFootway(1, []osm.NodeID{42, 43})}},
		{name: "empty footway", footways: []da.Footway{da.NewFootway(1, nil)}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			loc := NewNearestPointLocator(nodes, tt.footways, nil)
			_, err := loc.NearestPoint(geo.NewCoordinate(0, 0))
			assert.ErrorIs(t, err, ErrEmptyNetwork)
		})
	}
}
