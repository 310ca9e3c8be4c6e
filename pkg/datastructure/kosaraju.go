package datastructure

import (
	"slices"

	"github.com/lintang-b-s/campusnav/pkg/util"
)

// StronglyConnectedComponents runs kosaraju's algorithm. Each component is sorted by
// vertex id and components are ordered by their smallest vertex.
func (g *WeightedGraph[V]) StronglyConnectedComponents() [][]V {
	order := make([]V, 0, len(g.vertices))
	visited := make(map[V]bool, len(g.vertices))
	for _, v := range g.vertices {
		if !visited[v] {
			g.dfs(v, &order, visited, g.Neighbors)
		}
	}

	order = util.ReverseG(order)

	reversed := make(map[V][]V, len(g.vertices))
	for tail, out := range g.adjList {
		for head := range out {
			reversed[head] = append(reversed[head], tail)
		}
	}
	inNeighbors := func(v V) []V {
		return reversed[v]
	}

	// reset visited
	visited = make(map[V]bool, len(g.vertices))
	components := make([][]V, 0, 1)
	for _, v := range order {
		if visited[v] {
			continue
		}
		component := make([]V, 0, 10)
		g.dfs(v, &component, visited, inNeighbors)
		slices.Sort(component)
		components = append(components, component)
	}

	slices.SortFunc(components, func(a, b []V) int {
		switch {
		case a[0] < b[0]:
			return -1
		case a[0] > b[0]:
			return 1
		}
		return 0
	})
	return components
}

func (g *WeightedGraph[V]) dfs(v V, output *[]V, visited map[V]bool, next func(V) []V) {
	visited[v] = true
	for _, w := range next(v) {
		if !visited[w] {
			g.dfs(w, output, visited, next)
		}
	}
	*output = append(*output, v)
}
