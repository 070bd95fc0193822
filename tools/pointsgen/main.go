// Command pointsgen writes a random points file, handy for trying the CLI
// and server against larger universes.
//
// Usage:
//
//	pointsgen [-n count] [-g gridsize] [-s seed] [-o output]
package main

import (
	"encoding/json"
	"math/rand"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/rodneylab/neighbours/points"
)

func parseIntFlag(option rune, value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("-%c must be an integer, got %q", option, value)
	}
	return parsed
}

func main() {
	count := 100
	gridSize := 100
	seed := int64(1)
	output := "points.json"

	opts, _, err := getopt.Getopts(os.Args, "n:g:s:o:")
	if err != nil {
		log.Fatal(err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'n':
			count = parseIntFlag('n', opt.Value)
		case 'g':
			gridSize = parseIntFlag('g', opt.Value)
		case 's':
			seed = int64(parseIntFlag('s', opt.Value))
		case 'o':
			output = opt.Value
		}
	}

	rng := rand.New(rand.NewSource(seed))
	directions := []points.Direction{points.North, points.East, points.South, points.West}

	universe := make([]points.Point, 0, count)
	for i := 0; i < count; i++ {
		universe = append(universe, points.Point{
			X:         int32(rng.Intn(gridSize)),
			Y:         int32(rng.Intn(gridSize)),
			Number:    uint32(i + 1),
			Direction: directions[rng.Intn(len(directions))],
		})
	}

	doc, err := json.MarshalIndent(map[string][]points.Point{"points": universe}, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(output, append(doc, '\n'), 0644); err != nil {
		log.Fatal(err)
	}
	log.Infof("wrote %d points to %s", count, output)
}
