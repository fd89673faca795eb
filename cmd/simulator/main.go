package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/costfunction"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"github.com/lintang-b-s/gridroute/pkg/engine"
	"github.com/lintang-b-s/gridroute/pkg/logger"
	"github.com/lintang-b-s/gridroute/pkg/renderer"
	"github.com/lintang-b-s/gridroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	gridFilePath = flag.String("grid_file", "./data/city_map.txt", "city map grid file path")
)

// defaultCityMap is used when no grid file is available on disk.
var defaultCityMap = []string{
	"....#...",
	".##.#.#.",
	"........",
	"##.###..",
	"........",
}

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		logger.Warn("config file not found, using defaults", zap.Error(err))
	}
	viper.SetDefault("START_ROW", 0)
	viper.SetDefault("START_COL", 0)
	viper.SetDefault("GOAL_ROW", 4)
	viper.SetDefault("GOAL_COL", 7)

	grid := loadGrid(*gridFilePath, logger)
	routingEngine, err := engine.NewEngineDirect(grid, costfunction.NewUniformCostFunction(), logger)
	if err != nil {
		panic(err)
	}

	start := datastructure.NewCell(viper.GetInt("START_ROW"), viper.GetInt("START_COL"))
	goal := datastructure.NewCell(viper.GetInt("GOAL_ROW"), viper.GetInt("GOAL_COL"))

	fmt.Println("Autonomous Delivery Agent Simulator")
	fmt.Printf("city map: %dx%d cells, start %s, goal %s\n",
		grid.NumberOfRows(), grid.NumberOfCols(), start, goal)

	in := bufio.NewScanner(os.Stdin)
	for {
		printMenu()
		if !in.Scan() {
			return
		}
		switch strings.TrimSpace(in.Text()) {
		case "1":
			runOne(routingEngine, pkg.ASTAR, start, goal)
		case "2":
			runOne(routingEngine, pkg.BFS, start, goal)
		case "3":
			runOne(routingEngine, pkg.DFS, start, goal)
		case "4":
			runAll(routingEngine, start, goal)
		case "5":
			fmt.Println("exiting simulator")
			return
		default:
			fmt.Println("invalid choice, enter a number from 1 to 5")
		}
	}
}

func loadGrid(path string, log *zap.Logger) *datastructure.Grid {
	grid, err := datastructure.ReadGridFile(path)
	if err != nil {
		log.Warn("cannot read grid file, falling back to the built-in city map",
			zap.String("path", path), zap.Error(err))
		grid, err = datastructure.NewGridFromSymbols(defaultCityMap)
		if err != nil {
			panic(err)
		}
	}
	return grid
}

func printMenu() {
	fmt.Println()
	fmt.Println("1. route with A* (fuel optimal)")
	fmt.Println("2. route with breadth-first search")
	fmt.Println("3. route with depth-first search")
	fmt.Println("4. compare all algorithms")
	fmt.Println("5. exit")
	fmt.Print("choice: ")
}

func algorithmTitle(algorithm pkg.Algorithm) string {
	switch algorithm {
	case pkg.ASTAR:
		return "A* Search"
	case pkg.BFS:
		return "Breadth-First Search"
	default:
		return "Depth-First Search"
	}
}

func runOne(routingEngine *engine.Engine, algorithm pkg.Algorithm, start, goal datastructure.Cell) {
	route, found, err := routingEngine.RunSearch(algorithm, start, goal)
	printResult(routingEngine, algorithm, route, found, err, start, goal)
}

func printResult(routingEngine *engine.Engine, algorithm pkg.Algorithm,
	route datastructure.Route, found bool, err error, start, goal datastructure.Cell) {
	fmt.Printf("\n--- %s ---\n", algorithmTitle(algorithm))
	if err != nil {
		fmt.Printf("search failed: %v\n", err)
		return
	}
	if !found {
		fmt.Printf("no route exists from %s to %s\n", start, goal)
		fmt.Printf("cells expanded: %d\n", route.GetNumExpandedCells())
		return
	}
	fmt.Println("legend: S start, G goal, # obstacle, * route")
	fmt.Print(renderer.Render(routingEngine.GetGrid(), route, start, goal))
	fmt.Printf("route length : %d steps\n", route.GetNumSteps())
	fmt.Printf("fuel consumed: %d units\n", route.GetCost())
	fmt.Printf("cells expanded: %d\n", route.GetNumExpandedCells())
}

func runAll(routingEngine *engine.Engine, start, goal datastructure.Cell) {
	entries, err := routingEngine.CompareAll(start, goal)
	if err != nil {
		fmt.Printf("comparison failed: %v\n", err)
		return
	}
	for _, entry := range entries {
		printResult(routingEngine, entry.Algorithm, entry.Route, entry.Found, entry.Err, start, goal)
	}

	fmt.Println("\n--- Summary ---")
	fmt.Printf("%-22s %-8s %-8s %-10s\n", "algorithm", "steps", "fuel", "expanded")
	for _, entry := range entries {
		if entry.Err != nil || !entry.Found {
			fmt.Printf("%-22s %-8s %-8s %-10d\n", algorithmTitle(entry.Algorithm),
				"-", "-", entry.Route.GetNumExpandedCells())
			continue
		}
		fmt.Printf("%-22s %-8d %-8d %-10d\n", algorithmTitle(entry.Algorithm),
			entry.Route.GetNumSteps(), entry.Route.GetCost(), entry.Route.GetNumExpandedCells())
	}
}
