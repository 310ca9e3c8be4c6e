package datastructure

import (
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/paulmach/osm"
)

// Footway is a walkable polyline: consecutive nodes are linked in both directions.
type Footway struct {
	ID    osm.WayID
	Nodes []osm.NodeID
}

func NewFootway(id osm.WayID, nodes []osm.NodeID) Footway {
	return Footway{ID: id, Nodes: nodes}
}

// Building is a named point of interest.
type Building struct {
	Abbrev   string         `json:"abbreviation"`
	Fullname string         `json:"name"`
	Coords   geo.Coordinate `json:"coordinate"`
}

func NewBuilding(abbrev, fullname string, coords geo.Coordinate) Building {
	return Building{
		Abbrev:   abbrev,
		Fullname: fullname,
		Coords:   coords,
	}
}

// MapData is everything the loader materialises from a campus map file.
type MapData struct {
	Nodes     map[osm.NodeID]geo.Coordinate
	Footways  []Footway
	Buildings []Building
}

func NewMapData() *MapData {
	return &MapData{
		Nodes:     make(map[osm.NodeID]geo.Coordinate),
		Footways:  make([]Footway, 0),
		Buildings: make([]Building, 0),
	}
}
