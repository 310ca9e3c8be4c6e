package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

type buildingWay struct {
	id       osm.WayID
	abbrev   string
	fullname string
	nodes    []osm.NodeID
}

// Parse loads a campus map. The format follows the file suffix: .osm.pbf is read with
// the pbf decoder, .bz2 is decompressed first, anything else is OSM XML.
func Parse(ctx context.Context, mapFile string, logger *zap.Logger) (*datastructure.MapData, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logger.Info("Reading campus map", zap.String("mapFile", mapFile))

	switch {
	case strings.HasSuffix(mapFile, ".pbf"):
		scanner := osmpbf.New(ctx, f, 1)
		return parseScanner(scanner, logger)
	case strings.HasSuffix(mapFile, ".bz2"):
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, fmt.Errorf("open bzip2 map %s: %w", mapFile, err)
		}
		defer bz.Close()
		return ParseReader(ctx, bz, logger)
	default:
		return ParseReader(ctx, f, logger)
	}
}

// ParseReader reads an OSM XML document from r.
func ParseReader(ctx context.Context, r io.Reader, logger *zap.Logger) (*datastructure.MapData, error) {
	scanner := osmxml.New(ctx, r)
	return parseScanner(scanner, logger)
}

func parseScanner(scanner osm.Scanner, logger *zap.Logger) (*datastructure.MapData, error) {
	defer scanner.Close()

	data := datastructure.NewMapData()
	buildingWays := make([]buildingWay, 0)

	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()

		switch o.ObjectID().Type() {
		case osm.TypeNode:
			{
				node := o.(*osm.Node)
				data.Nodes[node.ID] = geo.NewCoordinate(node.Lat, node.Lon)
				if (countNodes+1)%100000 == 0 {
					logger.Sugar().Infof("scanning openstreetmap nodes: %d...", countNodes+1)
				}
				countNodes++
			}
		case osm.TypeWay:
			{
				way := o.(*osm.Way)
				switch {
				case isFootway(way.Tags):
					data.Footways = append(data.Footways, datastructure.NewFootway(way.ID, wayNodeIDs(way)))
				case isUniversityBuilding(way.Tags):
					buildingWays = append(buildingWays, buildingWay{
						id:       way.ID,
						abbrev:   way.Tags.Find(pkg.REF_TAG),
						fullname: way.Tags.Find(pkg.NAME_TAG),
						nodes:    wayNodeIDs(way),
					})
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan openstreetmap objects: %w", err)
	}

	for _, bw := range buildingWays {
		coords := make([]geo.Coordinate, 0, len(bw.nodes))
		for _, id := range bw.nodes {
			if c, ok := data.Nodes[id]; ok {
				coords = append(coords, c)
			}
		}
		centroid, ok := geo.Centroid(coords)
		if !ok {
			logger.Warn("skipping building without known nodes", zap.Int64("wayID", int64(bw.id)),
				zap.String("name", bw.fullname))
			continue
		}
		data.Buildings = append(data.Buildings, datastructure.NewBuilding(bw.abbrev, bw.fullname, centroid))
	}

	logger.Info("Campus map loaded",
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("footways", len(data.Footways)),
		zap.Int("buildings", len(data.Buildings)))
	return data, nil
}

func isFootway(tags osm.Tags) bool {
	return tags.Find(pkg.HIGHWAY_TAG) == pkg.FOOTWAY || tags.Find(pkg.AREA_HIGHWAY_TAG) == pkg.FOOTWAY
}

func isUniversityBuilding(tags osm.Tags) bool {
	return tags.Find(pkg.BUILDING_TAG) == pkg.UNIVERSITY
}

func wayNodeIDs(way *osm.Way) []osm.NodeID {
	ids := make([]osm.NodeID, 0, len(way.Nodes))
	for _, wn := range way.Nodes {
		ids = append(ids, wn.ID)
	}
	return ids
}
