package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/dashgl/gltriangle/lib/config"
	"github.com/dashgl/gltriangle/lib/metrics"
	"github.com/dashgl/gltriangle/lib/stats"
	"github.com/gorilla/websocket"
)

// Controller is the part of the viewer the API may poke at. All methods
// must be safe to call from HTTP handler goroutines.
type Controller interface {
	RequestShutdown()
	RequestReload()
	RequestRedraw()
	Config() *config.Config
}

type Api struct {
	srv  http.Server
	mux  *http.ServeMux
	cfg  *config.ApiCfg
	ctrl Controller

	Stats *stats.Stats

	wsClients   map[*websocket.Conn]bool
	wsClientsMu sync.Mutex
}

func New(cfg *config.ApiCfg, ctrl Controller, s *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.ctrl = ctrl
	a.Stats = s
	a.mux = http.NewServeMux()
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)

	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("GET /prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("POST /api/reload", a.reload)
	a.mux.HandleFunc("POST /api/redraw", a.redraw)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("GET /api/ws", a.handleWebsocket)
	a.mux.Handle("GET /metrics", metrics.Handler())
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	err := a.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	log("shutting down as per api request")
	a.ctrl.RequestShutdown()
	writeOK(w)
}

func (a *Api) reload(w http.ResponseWriter, _ *http.Request) {
	log("reloading shaders as per api request")
	a.ctrl.RequestReload()
	writeOK(w)
}

func (a *Api) redraw(w http.ResponseWriter, _ *http.Request) {
	a.ctrl.RequestRedraw()
	writeOK(w)
}

func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

type Config struct {
	Title          string `json:"title"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	ClearColour    string `json:"clear_colour"`
	TriangleColour string `json:"triangle_colour"`
	Attribute      string `json:"attribute"`
	RenderMode     string `json:"render_mode"`
}

func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	cfg := a.ctrl.Config()
	result := &Config{
		Title:          cfg.Window.Title,
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		ClearColour:    cfg.ClearColour,
		TriangleColour: cfg.TriangleColour,
		Attribute:      cfg.Attribute,
		RenderMode:     string(cfg.RenderMode),
	}
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

func writeOK(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		log("could not write response: %s", err)
	}
}

// ServeInBackground starts the API if cfg is set. It returns nil
// otherwise.
func ServeInBackground(cfg *config.ApiCfg, ctrl Controller, s *stats.Stats) *Api {
	if cfg == nil {
		return nil
	}
	theApi := New(cfg, ctrl, s)

	log("starting web server on %s", cfg.Bind)
	go func() {
		err := theApi.Serve()
		if err != nil {
			slog.Error(fmt.Sprintf("web server failed: %s", err), slog.String("module", "api"))
		}
	}()
	return theApi
}

func log(msg string, args ...interface{}) {
	slog.Info(fmt.Sprintf(msg, args...), slog.String("module", "api"))
}
