package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gltriangle_frames_drawn_total",
		Help: "Total number of frames drawn and presented",
	})
	InitFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gltriangle_init_failures_total",
		Help: "Total number of initialisation failures, by stage",
	}, []string{"stage"})
	ProgramReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gltriangle_program_reloads_total",
		Help: "Total number of shader program reloads, by result",
	}, []string{"result"})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
