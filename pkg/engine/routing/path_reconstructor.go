package routing

import (
	"fmt"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"golang.org/x/exp/constraints"
)

// Route is a shortest path from the result's source to a destination.
type Route[V constraints.Ordered] struct {
	Vertices []V
	Distance float64
}

func (r Route[V]) Source() V {
	return r.Vertices[0]
}

func (r Route[V]) Destination() V {
	return r.Vertices[len(r.Vertices)-1]
}

// Reconstruct walks the predecessor chain back from destination. The route distance is
// the one computed by dijkstra, not a re-sum of edge weights.
func Reconstruct[V constraints.Ordered](res *ShortestPathResult[V], destination V) (Route[V], error) {
	dist := res.Distance(destination)
	if pkg.IsInf(dist) {
		return Route[V]{}, fmt.Errorf("from %v to %v: %w", res.Source(), destination, ErrUnreachable)
	}

	path := []V{destination}
	cur := destination
	for cur != res.Source() {
		if len(path) > res.NumVertices() {
			return Route[V]{}, fmt.Errorf("cycle through %v: %w", cur, ErrInconsistentPath)
		}

		prev, ok := res.Predecessor(cur)
		if !ok {
			return Route[V]{}, fmt.Errorf("no predecessor for %v: %w", cur, ErrInconsistentPath)
		}
		path = append(path, prev)
		cur = prev
	}

	return Route[V]{Vertices: util.ReverseG(path), Distance: dist}, nil
}

// PathWeight sums the edge weights along route. ok is false if some consecutive pair
// is not an edge of g.
func PathWeight[V constraints.Ordered](g Graph[V], route []V) (float64, bool) {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		w, ok := g.GetWeight(route[i], route[i+1])
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}
