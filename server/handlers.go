package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/rodneylab/neighbours/points"
)

type ctxKey int

const requestIDKey ctxKey = 0

func (s *APIServer) registerRoutes() {
	s.router.StrictSlash(true)
	s.router.Use(requestIDMiddleware)

	s.router.HandleFunc("/points", s.handleListPoints).Methods("GET")
	s.router.HandleFunc("/points/{number}", s.handleGetPoint).Methods("GET")
	s.router.HandleFunc("/points/{number}/visible", s.handleVisiblePoints).Methods("GET")
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// requestIDMiddleware tags each request with an id for log correlation.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestIDKey, uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func jsonResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID(r),
			"path":       r.URL.Path,
		}).Errorf("error encoding response: %v", err)
		return
	}

	log.WithFields(log.Fields{
		"request_id": requestID(r),
		"path":       r.URL.Path,
		"status":     status,
	}).Debug("handled request")
}

func (s *APIServer) handleListPoints(w http.ResponseWriter, r *http.Request) {
	items := s.universe
	if items == nil {
		items = []points.Point{}
	}
	jsonResponse(w, r, http.StatusOK, map[string]any{"items": items})
}

func (s *APIServer) handleGetPoint(w http.ResponseWriter, r *http.Request) {
	number, err := parseUint32(mux.Vars(r)["number"])
	if err != nil {
		jsonResponse(w, r, http.StatusUnprocessableEntity,
			map[string]any{"error": "number must be an unsigned integer"})
		return
	}

	for _, p := range s.universe {
		if p.Number == number {
			jsonResponse(w, r, http.StatusOK, map[string]any{"item": p})
			return
		}
	}
	jsonResponse(w, r, http.StatusNotFound, map[string]any{"error": "point not found"})
}

func (s *APIServer) handleVisiblePoints(w http.ResponseWriter, r *http.Request) {
	number, err := parseUint32(mux.Vars(r)["number"])
	if err != nil {
		jsonResponse(w, r, http.StatusUnprocessableEntity,
			map[string]any{"error": "number must be an unsigned integer"})
		return
	}

	halfAngle := s.defaults.HalfAngle
	if raw := r.URL.Query().Get("half_angle"); raw != "" {
		halfAngle, err = parseUint32(raw)
		if err != nil {
			jsonResponse(w, r, http.StatusUnprocessableEntity,
				map[string]any{"error": "half_angle must be an unsigned integer"})
			return
		}
	}

	radius := s.defaults.Radius
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = parseUint32(raw)
		if err != nil {
			jsonResponse(w, r, http.StatusUnprocessableEntity,
				map[string]any{"error": "radius must be an unsigned integer"})
			return
		}
	}

	visible := points.VisibleFromNeighbours(number, halfAngle, radius, s.universe)
	if visible == nil {
		visible = []points.Point{}
	}
	jsonResponse(w, r, http.StatusOK, map[string]any{"items": visible})
}

func parseUint32(raw string) (uint32, error) {
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(value), nil
}
