// Command neighbours answers a visibility query from the command line: it
// prints the points visible from a chosen point in a points file, one per
// line, followed by a count.
//
// Usage:
//
//	neighbours [-c config.yaml] [-f points.json] [-p number] [-a halfangle] [-r radius] [-v]
package main

import (
	"fmt"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/rodneylab/neighbours"
	"github.com/rodneylab/neighbours/config"
)

func parseUint32Flag(option rune, value string) uint32 {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		log.Fatalf("-%c must be an unsigned integer, got %q", option, value)
	}
	return uint32(parsed)
}

func main() {
	opts, _, err := getopt.Getopts(os.Args, "a:c:f:p:r:v")
	if err != nil {
		log.Fatal(err)
	}

	// config file first, so the remaining flags override it
	cfg := config.Default()
	for _, opt := range opts {
		if opt.Option == 'c' {
			cfg, err = config.Load(opt.Value)
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	number := uint32(1)
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			cfg.Query.HalfAngle = parseUint32Flag('a', opt.Value)
		case 'f':
			cfg.PointsFile = opt.Value
		case 'p':
			number = parseUint32Flag('p', opt.Value)
		case 'r':
			cfg.Query.Radius = parseUint32Flag('r', opt.Value)
		case 'v':
			cfg.Verbose = true
		}
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	log.Debugf("querying point %d with half angle %d and radius %d from %s",
		number, cfg.Query.HalfAngle, cfg.Query.Radius, cfg.PointsFile)

	visible, err := neighbours.VisiblePoints(cfg.PointsFile, number, cfg.Query.HalfAngle, cfg.Query.Radius)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range visible {
		fmt.Println(p)
	}
	fmt.Printf("%d visible points from point #%d\n", len(visible), number)
}
