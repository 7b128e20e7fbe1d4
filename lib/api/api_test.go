package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dashgl/gltriangle/lib/config"
	"github.com/dashgl/gltriangle/lib/stats"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	shutdowns atomic.Int32
	reloads   atomic.Int32
	redraws   atomic.Int32
	cfg       *config.Config
}

func (f *fakeController) RequestShutdown()       { f.shutdowns.Add(1) }
func (f *fakeController) RequestReload()         { f.reloads.Add(1) }
func (f *fakeController) RequestRedraw()         { f.redraws.Add(1) }
func (f *fakeController) Config() *config.Config { return f.cfg }

func newTestServer(t *testing.T) (*httptest.Server, *fakeController, *stats.Stats) {
	t.Helper()
	ctrl := &fakeController{cfg: config.Default()}
	s := stats.New()
	a := New(&config.ApiCfg{Bind: "127.0.0.1:0"}, ctrl, s)
	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)
	return srv, ctrl, s
}

func TestStats(t *testing.T) {
	srv, _, s := newTestServer(t)
	s.Update(time.Millisecond)
	s.Update(time.Millisecond)

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap stats.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, uint64(2), snap.Frames)
}

func TestConfig(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/config")
	require.NoError(t, err)
	defer resp.Body.Close()

	var cfg Config
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cfg))
	assert.Equal(t, Config{
		Title:          "OpenGL Basics",
		Width:          640,
		Height:         480,
		ClearColour:    "#ffffffff",
		TriangleColour: "#0000ffff",
		Attribute:      "coord2d",
		RenderMode:     "on_demand",
	}, cfg)
}

func TestControlEndpoints(t *testing.T) {
	srv, ctrl, _ := newTestServer(t)

	for _, path := range []string{"/api/kill", "/api/reload", "/api/redraw"} {
		resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(""))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
	assert.Equal(t, int32(1), ctrl.shutdowns.Load())
	assert.Equal(t, int32(1), ctrl.reloads.Load())
	assert.Equal(t, int32(1), ctrl.redraws.Load())

	resp, err := http.Get(srv.URL + "/api/kill")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, int32(1), ctrl.shutdowns.Load())
}

func TestMetrics(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProfilerDisabled(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/prof")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWebsocketPushesStats(t *testing.T) {
	srv, _, s := newTestServer(t)
	s.Update(time.Millisecond)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)

	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal(msg, &snap))
	assert.Equal(t, uint64(1), snap.Frames)
	assert.Equal(t, 1, snap.WsClients)
}

func TestServeInBackgroundDisabled(t *testing.T) {
	assert.Nil(t, ServeInBackground(nil, &fakeController{}, stats.New()))
}
