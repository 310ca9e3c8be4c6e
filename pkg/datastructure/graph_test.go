package datastructure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLineGraph() *WeightedGraph[int64] {
	g := NewWeightedGraph[int64]()
	for _, v := range []int64{1, 2, 3, 4} {
		g.AddVertex(v)
	}
	g.AddEdge(1, 2, 1.0)
	g.AddEdge(2, 3, 1.0)
	g.AddEdge(1, 3, 5.0)
	g.AddEdge(3, 4, 1.0)
	return g
}

func TestAddVertex(t *testing.T) {
	g := NewWeightedGraph[int64]()

	assert.True(t, g.AddVertex(7))
	assert.False(t, g.AddVertex(7))
	assert.True(t, g.AddVertex(3))

	assert.Equal(t, 2, g.NumberOfVertices())
	assert.Equal(t, []int64{7, 3}, g.Vertices())
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(4))
}

func TestAddEdge(t *testing.T) {
	testCases := []struct {
		name      string
		from, to  int64
		weight    float64
		wantOk    bool
		wantEdges int
	}{
		{name: "reverse direction is a new edge", from: 2, to: 1, weight: 2.5, wantOk: true, wantEdges: 5},
		{name: "overwrite existing edge", from: 1, to: 3, weight: 0.5, wantOk: true, wantEdges: 4},
		{name: "unknown source", from: 9, to: 1, weight: 1, wantOk: false, wantEdges: 4},
		{name: "unknown target", from: 1, to: 9, weight: 1, wantOk: false, wantEdges: 4},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := buildLineGraph()
			ok := g.AddEdge(tt.from, tt.to, tt.weight)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantEdges, g.NumberOfEdges())

			w, found := g.GetWeight(tt.from, tt.to)
			assert.Equal(t, tt.wantOk, found)
			if tt.wantOk {
				assert.Equal(t, tt.weight, w)
			}
		})
	}
}

func TestAddEdgeLastWriteWins(t *testing.T) {
	g := buildLineGraph()

	require.True(t, g.AddEdge(1, 2, 4.0))
	require.True(t, g.AddEdge(1, 2, 3.0))

	w, ok := g.GetWeight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 4, g.NumberOfEdges())
}

func TestNeighbors(t *testing.T) {
	g := NewWeightedGraph[int64]()
	for _, v := range []int64{5, 1, 9, 3} {
		g.AddVertex(v)
	}
	g.AddEdge(5, 9, 1)
	g.AddEdge(5, 1, 1)
	g.AddEdge(5, 3, 1)

	assert.Equal(t, []int64{1, 3, 9}, g.Neighbors(5))
	assert.Empty(t, g.Neighbors(1))
	assert.NotNil(t, g.Neighbors(42))
	assert.Empty(t, g.Neighbors(42))
}

func TestForOutEdgesOf(t *testing.T) {
	g := buildLineGraph()

	var heads []int64
	var weights []float64
	g.ForOutEdgesOf(1, func(head int64, weight float64) {
		heads = append(heads, head)
		weights = append(weights, weight)
	})

	assert.Equal(t, []int64{2, 3}, heads)
	assert.Equal(t, []float64{1.0, 5.0}, weights)
}

func TestVerticesReturnsCopy(t *testing.T) {
	g := buildLineGraph()

	vs := g.Vertices()
	vs[0] = 100

	assert.Equal(t, []int64{1, 2, 3, 4}, g.Vertices())
}

func TestDump(t *testing.T) {
	g := buildLineGraph()

	var sb strings.Builder
	require.NoError(t, g.Dump(&sb))

	out := sb.String()
	assert.Contains(t, out, "**Num vertices: 4")
	assert.Contains(t, out, "**Num edges: 4")
	assert.Contains(t, out, "1: (1,2,1) (1,3,5) ")
	assert.Contains(t, out, "3: (3,4,1) ")
}

func TestStringVertices(t *testing.T) {
	g := NewWeightedGraph[string]()
	g.AddVertex("b")
	g.AddVertex("a")
	g.AddVertex("c")
	g.AddEdge("b", "c", 2)
	g.AddEdge("b", "a", 1)

	assert.Equal(t, []string{"a", "c"}, g.Neighbors("b"))
}
