package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodneylab/neighbours/config"
	"github.com/rodneylab/neighbours/points"
	"github.com/rodneylab/neighbours/testcommon"
)

type itemsReply struct {
	Items []points.Point `json:"items"`
	Error string         `json:"error"`
}

func newTestServer() *APIServer {
	return NewAPIServer(testcommon.TwentyPointUniverse(), config.Default())
}

func doRequest(t *testing.T, s *APIServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest("GET", path, nil))
	return recorder
}

func replyNumbers(reply itemsReply) []uint32 {
	numbers := make([]uint32, 0, len(reply.Items))
	for _, p := range reply.Items {
		numbers = append(numbers, p.Number)
	}
	return numbers
}

func TestListPoints(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points")
	require.Equal(t, http.StatusOK, recorder.Code)

	var reply itemsReply
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reply))
	assert.Len(t, reply.Items, 20)
	assert.Equal(t, uint32(1), reply.Items[0].Number)
}

func TestGetPoint(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points/10")
	require.Equal(t, http.StatusOK, recorder.Code)

	var reply struct {
		Item points.Point `json:"item"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reply))
	assert.Equal(t, points.Point{X: 36, Y: 20, Number: 10, Direction: points.East}, reply.Item)
}

func TestGetPointNotFound(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points/999")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var reply itemsReply
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reply))
	assert.Equal(t, "point not found", reply.Error)
}

func TestGetPointBadNumber(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points/banana")
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestVisiblePointsDefaults(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points/1/visible")
	require.Equal(t, http.StatusOK, recorder.Code)

	var reply itemsReply
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reply))
	assert.Equal(t, []uint32{2}, replyNumbers(reply))
}

func TestVisiblePointsWithParams(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points/1/visible?half_angle=180&radius=20")
	require.Equal(t, http.StatusOK, recorder.Code)

	var reply itemsReply
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reply))
	assert.Equal(t, []uint32{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, replyNumbers(reply))
}

func TestVisiblePointsSmallerRadius(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points/1/visible?half_angle=180&radius=16")
	require.Equal(t, http.StatusOK, recorder.Code)

	var reply itemsReply
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reply))
	assert.Equal(t, []uint32{2, 3, 4, 6, 7, 9, 11}, replyNumbers(reply))
}

func TestVisiblePointsUnknownNumber(t *testing.T) {
	recorder := doRequest(t, newTestServer(), "/points/999/visible")
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Contains(t, recorder.Body.String(), `"items":[]`)
}

func TestVisiblePointsBadParams(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"half angle not a number", "/points/1/visible?half_angle=wide"},
		{"negative radius", "/points/1/visible?radius=-1"},
		{"bad point number", "/points/banana/visible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, newTestServer(), tt.path)
			assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		})
	}
}

func TestWebSocketQueries(t *testing.T) {
	testServer := httptest.NewServer(newTestServer().router)
	defer testServer.Close()

	url := "ws" + strings.TrimPrefix(testServer.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var reply itemsReply

	// query with default half angle and radius
	require.NoError(t, conn.WriteJSON(map[string]any{"number": 1}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, []uint32{2}, replyNumbers(reply))

	// malformed frame gets an error without closing the connection
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	reply = itemsReply{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "malformed query", reply.Error)

	// query without a number
	require.NoError(t, conn.WriteJSON(map[string]any{"half_angle": 90}))
	reply = itemsReply{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "number is required", reply.Error)

	// connection still answers queries after the errors
	require.NoError(t, conn.WriteJSON(map[string]any{"number": 1, "half_angle": 180, "radius": 20}))
	reply = itemsReply{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, []uint32{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, replyNumbers(reply))
}
