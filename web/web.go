// Package web provides the status and operations HTTP server: liveness,
// router activity counters, and the Prometheus scrape endpoint.
package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/fifteenlabs/tdlib-go/core/client"
)

// Deps contains dependencies for the status handler.
type Deps struct {
	// Routers to report on, keyed by a display name.
	Routers map[string]*client.Router

	// Registry backs GET /metrics. Nil disables the endpoint.
	Registry prometheus.Gatherer

	Logger zerolog.Logger
}

// Handler serves the status endpoints.
type Handler struct {
	routers   map[string]*client.Router
	registry  prometheus.Gatherer
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates a status handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		routers:   deps.Routers,
		registry:  deps.Registry,
		logger:    deps.Logger,
		startTime: time.Now(),
	}
}

// Router returns the status router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.Healthz)
	r.Get("/status", h.Status)
	if h.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		}))
	}

	return r
}

// StatusResponse is the GET /status payload.
type StatusResponse struct {
	Status  string                  `json:"status"`
	Uptime  string                  `json:"uptime"`
	Routers map[string]RouterStatus `json:"routers"`
}

// RouterStatus reports one router's activity counters.
type RouterStatus struct {
	Pending    int    `json:"pending"`
	Dispatched uint64 `json:"dispatched"`
	Fulfilled  uint64 `json:"fulfilled"`
}

// Healthz returns a plain liveness check.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Status reports uptime and per-router activity.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Status:  "ok",
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Routers: make(map[string]RouterStatus, len(h.routers)),
	}
	for name, rt := range h.routers {
		resp.Routers[name] = RouterStatus{
			Pending:    rt.Pending(),
			Dispatched: rt.Dispatched(),
			Fulfilled:  rt.Fulfilled(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
