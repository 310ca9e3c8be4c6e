package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/engine/search"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/metrics"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

var (
	ErrStartNotFound       = errors.New("start building not found")
	ErrDestinationNotFound = errors.New("destination building not found")
	ErrNoMapData           = errors.New("no map data")
)

// NavigationResult is the outcome of one start/destination query. When routing fails
// with routing.ErrUnreachable, everything except the route is still filled in.
type NavigationResult struct {
	Start           datastructure.Building `json:"start"`
	Destination     datastructure.Building `json:"destination"`
	StartSnap       routing.Snap           `json:"start_snap"`
	DestinationSnap routing.Snap           `json:"destination_snap"`
	Distance        float64                `json:"distance_miles"`
	Path            []osm.NodeID           `json:"path"`
	PathCoords      []geo.Coordinate       `json:"path_coords"`
	Polyline        string                 `json:"polyline"`
	SettledVertices int                    `json:"settled_vertices"`
}

func (r *NavigationResult) Reachable() bool {
	return !pkg.IsInf(r.Distance)
}

type Query struct {
	Start       string
	Destination string
}

type QueryResult struct {
	Result *NavigationResult
	Err    error
}

type Stats struct {
	Nodes     int `json:"nodes"`
	Footways  int `json:"footways"`
	Buildings int `json:"buildings"`
	Vertices  int `json:"vertices"`
	Edges     int `json:"edges"`

	// Components counts strongly connected components of the footway graph, points on
	// no footway included.
	Components int `json:"components"`
}

type Engine struct {
	data     *datastructure.MapData
	graph    *datastructure.WeightedGraph[osm.NodeID]
	locator  *routing.NearestPointLocator
	resolver search.NameResolver
	dijkstra *routing.Dijkstra[osm.NodeID]
	rtree    *spatialindex.Rtree
	logger   *zap.Logger

	numComponents int
}

// NewEngine builds the footway graph: every loaded point is a vertex (ascending id
// order) and every pair of consecutive footway points is linked both ways, weighted by
// distance.
func NewEngine(data *datastructure.MapData, distance geo.DistanceFunc, logger *zap.Logger) (*Engine, error) {
	if data == nil {
		return nil, ErrNoMapData
	}
	if distance == nil {
		distance = geo.HaversineMiles
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("Building footway graph...")
	graph := buildGraph(data, distance, logger)
	logger.Info("Footway graph built",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	components := graph.StronglyConnectedComponents()
	logger.Info("Footway components computed", zap.Int("components", len(components)),
		zap.Int("largest", largestComponent(components)))

	rt := spatialindex.NewRtree(distance)
	rt.Build(data.Buildings, logger)

	return &Engine{
		data:     data,
		graph:    graph,
		locator:  routing.NewNearestPointLocator(data.Nodes, data.Footways, distance),
		resolver: search.NewResolver(data.Buildings),
		dijkstra: routing.NewDijkstra[osm.NodeID](graph),
		rtree:    rt,
		logger:   logger,

		numComponents: len(components),
	}, nil
}

func largestComponent(components [][]osm.NodeID) int {
	largest := 0
	for _, c := range components {
		largest = max(largest, len(c))
	}
	return largest
}

func buildGraph(data *datastructure.MapData, distance geo.DistanceFunc,
	logger *zap.Logger) *datastructure.WeightedGraph[osm.NodeID] {
	graph := datastructure.NewWeightedGraphWithSize[osm.NodeID](len(data.Nodes))

	for _, id := range slices.Sorted(maps.Keys(data.Nodes)) {
		graph.AddVertex(id)
	}

	skipped := 0
	for _, fw := range data.Footways {
		for i := 0; i+1 < len(fw.Nodes); i++ {
			from, to := fw.Nodes[i], fw.Nodes[i+1]
			a, okA := data.Nodes[from]
			b, okB := data.Nodes[to]
			if !okA || !okB {
				skipped++
				continue
			}

			w := distance(a.Lat, a.Lon, b.Lat, b.Lon)
			graph.AddEdge(from, to, w)
			graph.AddEdge(to, from, w)
		}
	}
	if skipped > 0 {
		logger.Warn("footway segments refer to unknown points", zap.Int("skipped", skipped))
	}
	return graph
}

// UseResolverCache puts an LRU cache of the given size in front of building lookups.
func (e *Engine) UseResolverCache(size int) error {
	cached, err := search.NewCachedResolver(e.resolver, size)
	if err != nil {
		return err
	}
	e.resolver = cached
	return nil
}

// Navigate resolves both building names, snaps them to the footway network and returns
// the shortest walking route between the snapped points.
func (e *Engine) Navigate(ctx context.Context, start, destination string) (*NavigationResult, error) {
	begin := time.Now()
	res, err := e.navigate(ctx, start, destination)
	metrics.ObserveNavigation(outcomeOf(err), time.Since(begin))
	return res, err
}

func (e *Engine) navigate(ctx context.Context, start, destination string) (*NavigationResult, error) {
	startBuilding, err := e.resolver.Resolve(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartNotFound, err)
	}
	destBuilding, err := e.resolver.Resolve(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDestinationNotFound, err)
	}

	startSnap, err := e.locator.NearestPoint(startBuilding.Coords)
	if err != nil {
		return nil, err
	}
	destSnap, err := e.locator.NearestPoint(destBuilding.Coords)
	if err != nil {
		return nil, err
	}

	res := &NavigationResult{
		Start:           startBuilding,
		Destination:     destBuilding,
		StartSnap:       startSnap,
		DestinationSnap: destSnap,
		Distance:        pkg.INF_WEIGHT,
	}

	sp, err := e.dijkstra.ShortestPathWithContext(ctx, startSnap.ID)
	if err != nil {
		return nil, err
	}
	res.SettledVertices = sp.NumSettled()
	metrics.ObserveSettledVertices(sp.NumSettled())

	route, err := routing.Reconstruct(sp, destSnap.ID)
	if err != nil {
		if errors.Is(err, routing.ErrUnreachable) {
			e.logger.Debug("destination unreachable",
				zap.String("start", startBuilding.Fullname),
				zap.String("destination", destBuilding.Fullname))
			return res, err
		}
		e.logger.Error("path reconstruction failed", zap.Error(err))
		return nil, err
	}

	res.Distance = route.Distance
	res.Path = route.Vertices
	res.PathCoords = make([]geo.Coordinate, 0, len(route.Vertices))
	for _, id := range route.Vertices {
		res.PathCoords = append(res.PathCoords, e.data.Nodes[id])
	}
	res.Polyline = geo.PolylineFromCoords(res.PathCoords)

	return res, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OUTCOME_OK
	case errors.Is(err, ErrStartNotFound):
		return metrics.OUTCOME_START_NOT_FOUND
	case errors.Is(err, ErrDestinationNotFound):
		return metrics.OUTCOME_DESTINATION_NOT_FOUND
	case errors.Is(err, routing.ErrUnreachable):
		return metrics.OUTCOME_UNREACHABLE
	default:
		return metrics.OUTCOME_ERROR
	}
}

// NearbyBuildings lists buildings within radius miles of (lat, lon), closest first.
func (e *Engine) NearbyBuildings(lat, lon, radius float64) []spatialindex.NearbyBuilding {
	return e.rtree.SearchWithinRadius(lat, lon, radius)
}

func (e *Engine) VertexCount() int {
	return e.graph.NumberOfVertices()
}

func (e *Engine) EdgeCount() int {
	return e.graph.NumberOfEdges()
}

func (e *Engine) Dump(w io.Writer) error {
	return e.graph.Dump(w)
}

func (e *Engine) Buildings() []datastructure.Building {
	return slices.Clone(e.data.Buildings)
}

func (e *Engine) Coordinate(id osm.NodeID) (geo.Coordinate, bool) {
	c, ok := e.data.Nodes[id]
	return c, ok
}

func (e *Engine) Stats() Stats {
	return Stats{
		Nodes:     len(e.data.Nodes),
		Footways:  len(e.data.Footways),
		Buildings: len(e.data.Buildings),
		Vertices:  e.VertexCount(),
		Edges:     e.EdgeCount(),

		Components: e.numComponents,
	}
}
