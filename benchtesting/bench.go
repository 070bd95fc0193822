package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/rodneylab/neighbours/points"
	"github.com/rodneylab/neighbours/util"
)

const (
	universeSize = 10000
	queryCount   = 1000
	gridSize     = 1000
)

func randomUniverse(rng *rand.Rand, size int) []points.Point {
	directions := []points.Direction{points.North, points.East, points.South, points.West}

	universe := make([]points.Point, 0, size)
	for i := 0; i < size; i++ {
		universe = append(universe, points.Point{
			X:         int32(rng.Intn(gridSize)),
			Y:         int32(rng.Intn(gridSize)),
			Number:    uint32(i + 1),
			Direction: directions[rng.Intn(len(directions))],
		})
	}
	return universe
}

func main() {
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	// fixed seed so successive profiling runs see the same workload
	rng := rand.New(rand.NewSource(20))
	universe := randomUniverse(rng, universeSize)
	fmt.Printf("universe of %d points on a %dx%d grid\n", universeSize, gridSize, gridSize)

	var fastest, slowest time.Duration
	visibleTotal := 0

	start := time.Now()
	for count := 0; count < queryCount; count++ {
		number := uint32(rng.Intn(universeSize) + 1)

		queryStart := time.Now()
		visible := points.VisibleFromNeighbours(number, 45, 100, universe)
		elapsed := time.Since(queryStart)

		if count == 0 {
			fastest, slowest = elapsed, elapsed
		} else {
			fastest = util.Min(fastest, elapsed)
			slowest = util.Max(slowest, elapsed)
		}
		visibleTotal += len(visible)
	}
	total := time.Since(start)

	if visibleTotal == 0 {
		log.Warn("no query found any visible points, universe may be degenerate")
	}

	fmt.Printf("%d queries in %d ms, %d visible points found\n", queryCount, total.Milliseconds(), visibleTotal)
	fmt.Printf("fastest query %v, slowest %v, mean %v\n", fastest, slowest, total/time.Duration(queryCount))
}
