package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/http"
	"github.com/lintang-b-s/campusnav/pkg/http/usecases"
	"github.com/lintang-b-s/campusnav/pkg/logger"
	"github.com/lintang-b-s/campusnav/pkg/osmparser"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile      = flag.String("map", "", "campus map (.osm, .osm.bz2 or .osm.pbf); defaults to MAP_FILE")
	useRateLimit = flag.Bool("rate_limit", true, "per client ip rate limiting")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	filename := *mapFile
	if filename == "" {
		filename = viper.GetString("MAP_FILE")
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	data, err := osmparser.Parse(ctx, filename, logger)
	if err != nil {
		logger.Fatal("unable to load campus map", zap.String("mapFile", filename), zap.Error(err))
	}

	distance, err := geo.DistanceFuncByName(viper.GetString("DISTANCE_METRIC"))
	if err != nil {
		logger.Fatal("invalid DISTANCE_METRIC", zap.Error(err))
	}

	navigationEngine, err := engine.NewEngine(data, distance, logger)
	if err != nil {
		panic(err)
	}
	if err := navigationEngine.UseResolverCache(viper.GetInt("RESOLVER_CACHE_SIZE")); err != nil {
		panic(err)
	}

	navigationService := usecases.NewNavigationService(logger, navigationEngine,
		viper.GetInt("BATCH_WORKERS"), viper.GetFloat64("NEARBY_RADIUS_MILES"))

	api, err := http.NewServer(logger).Use(ctx, logger, *useRateLimit, navigationService)
	if err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()
	logger.Info("campusnav server stopped", zap.String("signal", signal.String()))

	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("http server exited with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
