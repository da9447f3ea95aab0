// Package metrics provides Prometheus metrics collection for router
// activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fifteenlabs/tdlib-go/core/client"
)

// Collector holds all Prometheus metrics recorded by a router. It
// implements client.Stats, so it plugs straight into client.Options.
type Collector struct {
	Dispatches          prometheus.Counter
	DispatchDuration    prometheus.Histogram
	Responses           prometheus.Counter
	OrphanResponses     prometheus.Counter
	Events              prometheus.Counter
	EventDecodeFailures prometheus.Counter
	PendingRequests     prometheus.Gauge
}

// New creates a new metrics collector registered on the default
// registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a new metrics collector with a custom registry.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Dispatches: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tdlib",
				Name:      "dispatches_total",
				Help:      "Total number of requests dispatched to the engine",
			},
		),
		DispatchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "tdlib",
				Name:      "dispatch_duration_seconds",
				Help:      "Round-trip time from dispatch to matched response",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		Responses: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tdlib",
				Name:      "responses_total",
				Help:      "Total number of responses delivered to waiting callers",
			},
		),
		OrphanResponses: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tdlib",
				Name:      "orphan_responses_total",
				Help:      "Total number of responses dropped for lack of a waiter",
			},
		),
		Events: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tdlib",
				Name:      "events_total",
				Help:      "Total number of events decoded and surfaced",
			},
		),
		EventDecodeFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tdlib",
				Name:      "event_decode_failures_total",
				Help:      "Total number of events dropped because decoding failed",
			},
		),
		PendingRequests: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "tdlib",
				Name:      "pending_requests",
				Help:      "Number of dispatched requests still awaiting a response",
			},
		),
	}
}

// ObserveDispatch records one completed dispatch and its round-trip
// duration.
func (c *Collector) ObserveDispatch(d time.Duration) {
	c.Dispatches.Inc()
	c.DispatchDuration.Observe(d.Seconds())
}

// ObserveResponse records one response delivered to a waiter.
func (c *Collector) ObserveResponse() {
	c.Responses.Inc()
}

// ObserveOrphan records one response that arrived with no waiter.
func (c *Collector) ObserveOrphan() {
	c.OrphanResponses.Inc()
}

// ObserveEvent records one event surfaced to the driver.
func (c *Collector) ObserveEvent() {
	c.Events.Inc()
}

// ObserveEventDecodeFailure records one event dropped undecoded.
func (c *Collector) ObserveEventDecodeFailure() {
	c.EventDecodeFailures.Inc()
}

// SetPending reports the current pending request count.
func (c *Collector) SetPending(n int) {
	c.PendingRequests.Set(float64(n))
}

var _ client.Stats = (*Collector)(nil)
