package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

const defaultMapFile = "map.osm"

type console struct {
	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger

	// first failed write to out; once set, navigate stops.
	err error
}

func newConsole(in io.Reader, out io.Writer, log *zap.Logger) *console {
	if log == nil {
		log = zap.NewNop()
	}
	return &console{in: bufio.NewScanner(in), out: out, log: log}
}

func (c *console) printf(format string, a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.out, format, a...)
}

func (c *console) println(a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintln(c.out, a...)
}

// prompt prints msg and reads one line. ok is false once input is exhausted.
func (c *console) prompt(msg string) (string, bool) {
	c.printf("%s", msg)
	if c.err != nil || !c.in.Scan() {
		return "", false
	}
	return strings.TrimRight(c.in.Text(), "\r"), true
}

func (c *console) mapFilename() string {
	filename, _ := c.prompt("Enter map filename> ")
	if filename == "" {
		return defaultMapFile
	}
	return filename
}

func (c *console) printStats(stats engine.Stats) {
	c.println()
	c.printf("# of nodes: %d\n", stats.Nodes)
	c.printf("# of footways: %d\n", stats.Footways)
	c.printf("# of buildings: %d\n", stats.Buildings)
	c.printf("# of vertices: %d\n", stats.Vertices)
	c.printf("# of edges: %d\n", stats.Edges)
	c.println()
}

// navigate answers start/destination queries until "#" or end of input. Query failures
// are reported and the loop goes on; it stops early only when ctx is done or output
// can no longer be written.
func (c *console) navigate(ctx context.Context, eng *engine.Engine) error {
	for c.err == nil {
		start, ok := c.prompt("Enter start (partial name or abbreviation), or #> ")
		if !ok || start == "#" {
			break
		}
		destination, ok := c.prompt("Enter destination (partial name or abbreviation)> ")
		if !ok {
			break
		}

		res, err := eng.Navigate(ctx, start, destination)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.report(res, err)
		c.println()
	}

	c.println("** Done **")
	return c.err
}

// report prints one query outcome.
func (c *console) report(res *engine.NavigationResult, err error) {
	switch {
	case errors.Is(err, engine.ErrStartNotFound):
		c.println("Start building not found")
		return
	case errors.Is(err, engine.ErrDestinationNotFound):
		c.println("Destination building not found")
		return
	case errors.Is(err, routing.ErrEmptyNetwork):
		c.log.Warn("navigation without footways", zap.Error(err))
		c.println("**Error: no footway network loaded.")
		return
	case err != nil && !errors.Is(err, routing.ErrUnreachable):
		c.log.Error("navigation failed", zap.Error(err))
		c.println("**Error: internal routing error")
		return
	}

	c.println("Starting point:")
	c.printf(" %s\n", res.Start.Fullname)
	c.printf(" %s\n", formatCoord(res.Start.Coords))
	c.println("Destination point:")
	c.printf(" %s\n", res.Destination.Fullname)
	c.printf(" %s\n", formatCoord(res.Destination.Coords))
	c.println()

	c.println("Nearest start node:")
	c.printf(" %d\n", res.StartSnap.ID)
	c.printf(" %s\n", formatCoord(res.StartSnap.Coordinate))
	c.println("Nearest destination node:")
	c.printf(" %d\n", res.DestinationSnap.ID)
	c.printf(" %s\n", formatCoord(res.DestinationSnap.Coordinate))
	c.println()

	c.println("Navigating with Dijkstra...")
	if errors.Is(err, routing.ErrUnreachable) {
		c.println("Sorry, destination unreachable")
		return
	}
	c.printf("Distance to dest: %s miles\n", formatFloat(res.Distance))
	c.printf("Path: %s\n", formatPath(res.Path))
}

// formatFloat prints 8 significant digits.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}

func formatCoord(c geo.Coordinate) string {
	return fmt.Sprintf("(%s, %s)", formatFloat(c.Lat), formatFloat(c.Lon))
}

func formatPath(path []osm.NodeID) string {
	parts := make([]string, 0, len(path))
	for _, id := range path {
		parts = append(parts, strconv.FormatInt(int64(id), 10))
	}
	return strings.Join(parts, "->")
}
