package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/gridroute/pkg/engine"
	"github.com/lintang-b-s/gridroute/pkg/http"
	"github.com/lintang-b-s/gridroute/pkg/http/usecases"
	"github.com/lintang-b-s/gridroute/pkg/logger"
	"github.com/lintang-b-s/gridroute/pkg/spatialindex"
	"github.com/lintang-b-s/gridroute/pkg/util"
	"go.uber.org/zap"
)

var (
	gridFilePath = flag.String("grid_file", "./data/city_map.txt", "city map grid file path")
	snapRadius   = flag.Int("snap_radius", 3, "max manhattan distance (in cells) when snapping a request endpoint to a free cell")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		logger.Warn("config file not found, using defaults", zap.Error(err))
	}

	routingEngine, err := engine.NewEngine(*gridFilePath, logger)
	if err != nil {
		panic(err)
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(routingEngine.GetGrid(), logger)

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, rtree, *snapRadius)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx,
		logger, false, routingService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("gridroute Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
