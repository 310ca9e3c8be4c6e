package routing

import (
	"context"
	"fmt"
	"slices"

	"github.com/lintang-b-s/campusnav/pkg"
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
	"golang.org/x/exp/constraints"
)

// ShortestPathResult holds single-source shortest paths from one source. It is owned
// by the query that produced it.
type ShortestPathResult[V constraints.Ordered] struct {
	source  V
	dist    map[V]float64
	pred    map[V]V
	visited []V
}

func (r *ShortestPathResult[V]) Source() V {
	return r.source
}

// Distance returns the shortest distance from the source to v, +Inf when v is
// unreachable or not a vertex.
func (r *ShortestPathResult[V]) Distance(v V) float64 {
	d, ok := r.dist[v]
	if !ok {
		return pkg.INF_WEIGHT
	}
	return d
}

// Predecessor returns the vertex preceding v on its shortest path. ok is false for the
// source and for unreached vertices.
func (r *ShortestPathResult[V]) Predecessor(v V) (V, bool) {
	p, ok := r.pred[v]
	return p, ok
}

// Visited returns the vertices in the order they were finalised.
func (r *ShortestPathResult[V]) Visited() []V {
	return slices.Clone(r.visited)
}

func (r *ShortestPathResult[V]) NumSettled() int {
	return len(r.visited)
}

func (r *ShortestPathResult[V]) NumVertices() int {
	return len(r.dist)
}

type Dijkstra[V constraints.Ordered] struct {
	graph Graph[V]
}

func NewDijkstra[V constraints.Ordered](graph Graph[V]) *Dijkstra[V] {
	return &Dijkstra[V]{graph: graph}
}

// ShortestPath runs dijkstra from source over the whole graph.
func (d *Dijkstra[V]) ShortestPath(source V) (*ShortestPathResult[V], error) {
	return d.ShortestPathWithContext(context.Background(), source)
}

// ShortestPathWithContext is ShortestPath that gives up when ctx is done.
//
// Every vertex is queued up front with +Inf (source with 0). Improved labels are pushed
// again instead of decreased in place; stale heap entries are skipped when extracted.
// The search stops as soon as an extracted entry is +Inf: the rest is unreachable.
// Equal distances are settled in ascending vertex order.
func (d *Dijkstra[V]) ShortestPathWithContext(ctx context.Context, source V) (*ShortestPathResult[V], error) {
	if !d.graph.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra source %v: %w", source, ErrVertexNotFound)
	}

	n := d.graph.NumberOfVertices()
	res := &ShortestPathResult[V]{
		source:  source,
		dist:    make(map[V]float64, n),
		pred:    make(map[V]V),
		visited: make([]V, 0, n),
	}
	settled := make(map[V]struct{}, n)

	pq := da.NewFourAryHeap[V](func(a, b V) bool { return a < b })
	pq.Preallocate(n)

	for _, v := range d.graph.Vertices() {
		res.dist[v] = pkg.INF_WEIGHT
	}
	res.dist[source] = 0

	for _, v := range d.graph.Vertices() {
		pq.Insert(da.NewPriorityQueueNode(res.dist[v], v))
	}

	for !pq.IsEmpty() {
		if len(res.visited)%CTX_CHECK_INTERVAL == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		node, _ := pq.ExtractMin()
		u := node.GetItem()
		uDist := node.GetRank()

		if _, ok := settled[u]; ok {
			continue
		}
		if pkg.IsInf(uDist) {
			break
		}

		settled[u] = struct{}{}
		res.visited = append(res.visited, u)

		d.graph.ForOutEdgesOf(u, func(head V, weight float64) {
			candidate := uDist + weight
			if candidate < res.dist[head] {
				res.dist[head] = candidate
				res.pred[head] = u
				pq.Insert(da.NewPriorityQueueNode(candidate, head))
			}
		})
	}

	return res, nil
}
