package datastructure

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// WeightedGraph is a directed adjacency-map graph over ordered vertex ids.
// An undirected link is two directed edges with the same weight; inserting both is
// the caller's job.
type WeightedGraph[V constraints.Ordered] struct {
	adjList  map[V]map[V]float64
	vertices []V // insertion order
	numEdges int
}

func NewWeightedGraph[V constraints.Ordered]() *WeightedGraph[V] {
	return &WeightedGraph[V]{
		adjList:  make(map[V]map[V]float64),
		vertices: make([]V, 0),
	}
}

func NewWeightedGraphWithSize[V constraints.Ordered](numVertices int) *WeightedGraph[V] {
	return &WeightedGraph[V]{
		adjList:  make(map[V]map[V]float64, numVertices),
		vertices: make([]V, 0, numVertices),
	}
}

// AddVertex inserts v if absent and reports whether it was newly inserted.
func (g *WeightedGraph[V]) AddVertex(v V) bool {
	if _, ok := g.adjList[v]; ok {
		return false
	}
	g.vertices = append(g.vertices, v)
	g.adjList[v] = make(map[V]float64)
	return true
}

// AddEdge inserts or overwrites the directed edge from->to. It returns false, leaving
// the graph untouched, when either endpoint is not a vertex.
func (g *WeightedGraph[V]) AddEdge(from, to V, weight float64) bool {
	out, ok := g.adjList[from]
	if !ok {
		return false
	}
	if _, ok := g.adjList[to]; !ok {
		return false
	}

	if _, exists := out[to]; !exists {
		g.numEdges++
	}
	out[to] = weight
	return true
}

func (g *WeightedGraph[V]) GetWeight(from, to V) (float64, bool) {
	out, ok := g.adjList[from]
	if !ok {
		return 0, false
	}
	w, ok := out[to]
	return w, ok
}

// Neighbors returns the out-neighbours of v in ascending id order. Unknown vertices
// have no neighbours.
func (g *WeightedGraph[V]) Neighbors(v V) []V {
	out, ok := g.adjList[v]
	if !ok || len(out) == 0 {
		return []V{}
	}
	return slices.Sorted(maps.Keys(out))
}

// ForOutEdgesOf calls handle for each outgoing edge of v in ascending head order.
func (g *WeightedGraph[V]) ForOutEdgesOf(v V, handle func(head V, weight float64)) {
	out := g.adjList[v]
	for _, head := range g.Neighbors(v) {
		handle(head, out[head])
	}
}

func (g *WeightedGraph[V]) HasVertex(v V) bool {
	_, ok := g.adjList[v]
	return ok
}

// Vertices returns a copy of the vertex ids in insertion order.
func (g *WeightedGraph[V]) Vertices() []V {
	return slices.Clone(g.vertices)
}

func (g *WeightedGraph[V]) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *WeightedGraph[V]) NumberOfEdges() int {
	return g.numEdges
}

// Dump writes the vertices and every edge as (from,to,weight), for debugging.
func (g *WeightedGraph[V]) Dump(w io.Writer) error {
	var err error
	printf := func(format string, a ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, a...)
	}

	printf("***************************************************\n")
	printf("********************* GRAPH ***********************\n")
	printf("**Num vertices: %d\n", g.NumberOfVertices())
	printf("**Num edges: %d\n", g.NumberOfEdges())
	printf("\n**Vertices:\n")
	for i, v := range g.vertices {
		printf(" %d. %v\n", i, v)
	}

	printf("\n**Edges:\n")
	for _, from := range slices.Sorted(maps.Keys(g.adjList)) {
		printf("%v: ", from)
		g.ForOutEdgesOf(from, func(to V, weight float64) {
			printf("(%v,%v,%v) ", from, to, weight)
		})
		printf("\n")
	}
	printf("**************************************************\n")
	return err
}
