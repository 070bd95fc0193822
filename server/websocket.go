package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/rodneylab/neighbours/points"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsQuery is a visibility query received over a websocket connection.
// number is required; half_angle and radius fall back to the configured
// defaults when left out.
type wsQuery struct {
	Number    *uint32 `json:"number"`
	HalfAngle *uint32 `json:"half_angle"`
	Radius    *uint32 `json:"radius"`
}

// handleWebSocket answers visibility queries over a single connection until
// the client goes away. Malformed queries get an error frame; the
// connection stays open.
func (s *APIServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("error upgrading websocket connection: %v", err)
		return
	}
	defer conn.Close()

	log.WithField("request_id", requestID(r)).Debug("websocket client connected")

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debugf("websocket client disconnected: %v", err)
			}
			return
		}

		var query wsQuery
		if err := json.Unmarshal(message, &query); err != nil {
			writeWS(conn, map[string]any{"error": "malformed query"})
			continue
		}
		if query.Number == nil {
			writeWS(conn, map[string]any{"error": "number is required"})
			continue
		}

		halfAngle := s.defaults.HalfAngle
		if query.HalfAngle != nil {
			halfAngle = *query.HalfAngle
		}
		radius := s.defaults.Radius
		if query.Radius != nil {
			radius = *query.Radius
		}

		visible := points.VisibleFromNeighbours(*query.Number, halfAngle, radius, s.universe)
		if visible == nil {
			visible = []points.Point{}
		}
		writeWS(conn, map[string]any{"items": visible})
	}
}

func writeWS(conn *websocket.Conn, body any) {
	if err := conn.WriteJSON(body); err != nil {
		log.Errorf("error writing websocket message: %v", err)
	}
}
