package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/logger"
	"github.com/lintang-b-s/campusnav/pkg/osmparser"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile = flag.String("map", "", "campus map (.osm, .osm.bz2 or .osm.pbf); prompts when empty")
	dump    = flag.Bool("dump", false, "print the footway graph after loading")
)

func main() {
	flag.Parse()

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, newConsole(os.Stdin, os.Stdout, log), log); err != nil {
		log.Error("navigator stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, c *console, log *zap.Logger) error {
	c.println("** Navigating campus open street map **")
	c.println()

	filename := *mapFile
	if filename == "" {
		filename = c.mapFilename()
	}

	data, err := osmparser.Parse(ctx, filename, log)
	if err != nil {
		c.println("**Error: unable to load open street map.")
		c.println()
		return err
	}

	distance, err := geo.DistanceFuncByName(viper.GetString("DISTANCE_METRIC"))
	if err != nil {
		return err
	}
	eng, err := engine.NewEngine(data, distance, log)
	if err != nil {
		return err
	}

	c.printStats(eng.Stats())
	if *dump {
		if err := eng.Dump(c.out); err != nil {
			return err
		}
	}

	err = c.navigate(ctx, eng)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
