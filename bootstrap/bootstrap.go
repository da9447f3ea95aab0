// Package bootstrap wires configured adapters into a running client
// runtime: the engine named by configuration, a correlation router over
// it, and optional Prometheus instrumentation.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/fifteenlabs/tdlib-go/adapters/enginetest"
	"github.com/fifteenlabs/tdlib-go/adapters/enginews"
	"github.com/fifteenlabs/tdlib-go/adapters/metrics"
	"github.com/fifteenlabs/tdlib-go/config"
	"github.com/fifteenlabs/tdlib-go/core/client"
	"github.com/fifteenlabs/tdlib-go/ports"
)

// App is a wired runtime: one engine and one router pumping it.
type App struct {
	Logger zerolog.Logger
	Engine ports.Engine
	Router *client.Router

	// Metrics and Registry are set when metrics are enabled; the
	// registry is what a status server gathers from.
	Metrics  *metrics.Collector
	Registry *prometheus.Registry

	receiveTimeout time.Duration
}

// New wires an engine, router and instrumentation from cfg. Generated
// bindings register their event constructors on events before Run
// starts; a nil events registry drops every unsolicited payload.
func New(cfg *config.Config, events *client.EventRegistry, logger zerolog.Logger) (*App, error) {
	engine, err := NewEngine(cfg.Runtime, logger)
	if err != nil {
		return nil, fmt.Errorf("init engine: %w", err)
	}

	a := &App{
		Logger:         logger,
		Engine:         engine,
		receiveTimeout: cfg.Runtime.ReceiveTimeout,
	}
	if a.receiveTimeout <= 0 {
		a.receiveTimeout = time.Second
	}

	opts := client.Options{Events: events, Logger: logger}
	if cfg.Metrics.Enabled {
		a.Registry = prometheus.NewRegistry()
		a.Metrics = metrics.NewWithRegistry(a.Registry)
		opts.Stats = a.Metrics
		logger.Info().Msg("prometheus metrics enabled")
	}
	a.Router = client.NewRouter(engine, opts)

	logger.Info().Str("engine", cfg.Runtime.Engine).Msg("engine initialized")
	return a, nil
}

// Run drives the router's pump loop until ctx is done, delivering
// events to handler. It blocks; callers run it on its own goroutine
// alongside the goroutines calling Dispatch.
func (a *App) Run(ctx context.Context, handler func(*client.Event)) {
	a.Router.Run(ctx, a.receiveTimeout, handler)
}

// Close releases the engine's resources. Stop the Run loop first by
// cancelling its context.
func (a *App) Close() error {
	if c, ok := a.Engine.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// NewEngine constructs the engine named by cfg.
func NewEngine(cfg config.RuntimeConfig, logger zerolog.Logger) (ports.Engine, error) {
	switch cfg.Engine {
	case "test":
		return enginetest.New(), nil
	case "websocket":
		if cfg.URL == "" {
			return nil, fmt.Errorf("websocket engine requires a url")
		}
		return enginews.New(cfg.URL, logger), nil
	case "tdjson":
		return newTDJSONEngine()
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}
