// Package server exposes visibility queries over HTTP and WebSocket. The
// universe of points is loaded once at startup and shared by every request.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/rodneylab/neighbours/config"
	"github.com/rodneylab/neighbours/points"
)

// APIServer answers visibility queries over a fixed universe of points.
type APIServer struct {
	server   *http.Server
	router   *mux.Router
	universe []points.Point
	defaults config.Query
}

// NewAPIServer builds a server for the given universe. cfg supplies the
// listen address and the fallback query parameters used when a request
// leaves them out.
func NewAPIServer(universe []points.Point, cfg config.Config) *APIServer {
	router := mux.NewRouter()

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
		Handler:      router,
	}

	s := &APIServer{
		server:   srv,
		router:   router,
		universe: universe,
		defaults: cfg.Query,
	}
	s.registerRoutes()

	return s
}

// Start begins serving in a background goroutine.
func (s *APIServer) Start() {
	go func() {
		log.Infof("listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("server error: %v", err)
		}
	}()
}

// Stop shuts the server down, letting in-flight requests finish.
func (s *APIServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Errorf("server shutdown error: %v", err)
	}
	log.Info("server stopped")
}
