// Command neighboursd serves visibility queries over HTTP and WebSocket.
// The points file is loaded once at startup.
//
// Usage:
//
//	neighboursd [-c config.yaml] [-f points.json] [-l listenaddr] [-v]
package main

import (
	"os"
	"os/signal"
	"syscall"

	"git.sr.ht/~sircmpwn/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/rodneylab/neighbours/config"
	"github.com/rodneylab/neighbours/pointsio"
	"github.com/rodneylab/neighbours/server"
)

func main() {
	opts, _, err := getopt.Getopts(os.Args, "c:f:l:v")
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
	for _, opt := range opts {
		switch opt.Option {
		case 'f':
			cfg.PointsFile = opt.Value
		case 'l':
			cfg.ListenAddr = opt.Value
		case 'v':
			cfg.Verbose = true
		}
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	universe, err := pointsio.ReadPointsFile(cfg.PointsFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("loaded %d points from %s", len(universe), cfg.PointsFile)

	srv := server.NewAPIServer(universe, cfg)
	srv.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	srv.Stop()
}
