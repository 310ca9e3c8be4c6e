package routing

import (
	"golang.org/x/exp/constraints"
)

// Graph is the read-only view of a weighted graph the search routines need.
type Graph[V constraints.Ordered] interface {
	HasVertex(v V) bool
	Vertices() []V
	NumberOfVertices() int
	ForOutEdgesOf(v V, handle func(head V, weight float64))
	GetWeight(from, to V) (float64, bool)
}
