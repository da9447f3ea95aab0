package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/fifteenlabs/tdlib-go/ports"
)

// Event is an unsolicited payload decoded through the event registry.
type Event struct {
	// ClientID is the client the engine addressed the event to.
	ClientID int32

	// Type is the payload's schema type name.
	Type string

	// Value is the decoded constructor instance, as registered.
	Value any
}

// Stats receives router activity. Implemented by the metrics adapter;
// the zero Options wires a no-op.
type Stats interface {
	// ObserveDispatch records one completed dispatch and its duration.
	ObserveDispatch(d time.Duration)

	// ObserveResponse records one response delivered to a waiter.
	ObserveResponse()

	// ObserveOrphan records one response dropped for lack of a waiter.
	ObserveOrphan()

	// ObserveEvent records one event surfaced to the driver.
	ObserveEvent()

	// ObserveEventDecodeFailure records one event dropped undecoded.
	ObserveEventDecodeFailure()

	// SetPending reports the current pending request count.
	SetPending(n int)
}

// Options configures a Router. The zero value is usable.
type Options struct {
	// Events decodes unsolicited payloads. Nil means an empty registry:
	// every event is dropped as unregistered.
	Events *EventRegistry

	// Logger receives router diagnostics. The zero value logs nowhere.
	Logger zerolog.Logger

	// Stats receives activity counts. Nil means no recording.
	Stats Stats
}

// Router correlates requests with responses over one engine. Dispatch
// may be called from any number of goroutines; exactly one goroutine
// drives Pump or Run per engine, since the engine's poll is single
// consumer. Each Router owns its own counter and pending table, so
// independent routers never share correlation state.
type Router struct {
	engine ports.Engine
	events *EventRegistry
	logger zerolog.Logger
	stats  Stats

	next      atomic.Uint64
	fulfilled atomic.Uint64

	mu      sync.Mutex
	pending map[uint64]chan []byte
}

// NewRouter creates a router over the given engine.
func NewRouter(engine ports.Engine, opts Options) *Router {
	events := opts.Events
	if events == nil {
		events = NewEventRegistry()
	}
	stats := opts.Stats
	if stats == nil {
		stats = nopStats{}
	}
	return &Router{
		engine:  engine,
		events:  events,
		logger:  opts.Logger,
		stats:   stats,
		pending: make(map[uint64]chan []byte),
	}
}

// CreateClient allocates a new client on the underlying engine.
func (r *Router) CreateClient() int32 {
	return r.engine.CreateClient()
}

// Dispatch sends one request and blocks until its response arrives or
// ctx is done. The payload must carry "@type"; Dispatch stamps the
// correlation id into it under "@extra" before marshaling.
//
// The waiter is registered before the request is transmitted, so a
// response can never arrive ahead of the entry it fulfills. There is no
// internal timeout: a request the engine never answers stays pending
// until ctx expires, at which point the waiter is deregistered. If
// cancellation races with delivery, the delivered response wins.
func (r *Router) Dispatch(ctx context.Context, clientID int32, payload map[string]any) ([]byte, error) {
	id := r.next.Add(1)
	payload["@extra"] = id

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ch := make(chan []byte, 1)
	r.register(id, ch)

	start := time.Now()
	if err := r.engine.Send(clientID, raw); err != nil {
		r.deregister(id)
		return nil, fmt.Errorf("send request: %w", err)
	}

	reqType, _ := payload["@type"].(string)
	r.logger.Debug().
		Str("type", reqType).
		Int32("client_id", clientID).
		Uint64("extra", id).
		Msg("request dispatched")

	select {
	case resp := <-ch:
		r.stats.ObserveDispatch(time.Since(start))
		return resp, nil
	case <-ctx.Done():
		if resp, delivered := r.abandon(id, ch); delivered {
			r.stats.ObserveDispatch(time.Since(start))
			return resp, nil
		}
		return nil, ctx.Err()
	}
}

// Pump performs one poll step: receive at most one payload and route
// it. Returns the decoded event when the payload was one, and whether
// any payload arrived within the timeout. Responses and orphans are
// handled internally and report (nil, true).
func (r *Router) Pump(timeout time.Duration) (*Event, bool) {
	raw := r.engine.Receive(timeout)
	if raw == nil {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		r.logger.Warn().Err(err).Msg("discarding unparseable payload")
		return nil, true
	}

	if env.Extra != nil {
		r.fulfill(*env.Extra, raw)
		return nil, true
	}

	if env.ClientID != nil {
		value, err := r.events.Decode(env.Type, raw)
		if err != nil {
			r.stats.ObserveEventDecodeFailure()
			r.logger.Warn().
				Err(err).
				Str("type", env.Type).
				Int32("client_id", *env.ClientID).
				Msg("discarding undecodable event")
			return nil, true
		}
		r.stats.ObserveEvent()
		return &Event{ClientID: *env.ClientID, Type: env.Type, Value: value}, true
	}

	r.logger.Warn().Str("type", env.Type).Msg("discarding payload without @extra or @client_id")
	return nil, true
}

// Run drives the router until ctx is done, invoking handler for every
// event. Handler may be nil when only request/response correlation is
// needed. Exactly one Run loop may be active per engine.
func (r *Router) Run(ctx context.Context, timeout time.Duration, handler func(*Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev, _ := r.Pump(timeout)
		if ev != nil && handler != nil {
			handler(ev)
		}
	}
}

// Pending returns the number of requests awaiting responses.
func (r *Router) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Dispatched returns the number of requests dispatched so far.
func (r *Router) Dispatched() uint64 {
	return r.next.Load()
}

// Fulfilled returns the number of responses delivered to waiters.
func (r *Router) Fulfilled() uint64 {
	return r.fulfilled.Load()
}

// register installs a waiter. A still-pending entry under the same id
// means the id space was reused while a request was in flight, which
// can only follow from internal state corruption.
func (r *Router) register(id uint64, ch chan []byte) {
	r.mu.Lock()
	if _, exists := r.pending[id]; exists {
		r.mu.Unlock()
		panic(fmt.Sprintf("client: correlation id %d already pending", id))
	}
	r.pending[id] = ch
	n := len(r.pending)
	r.mu.Unlock()

	r.stats.SetPending(n)
}

// deregister removes a waiter that will never be fulfilled.
func (r *Router) deregister(id uint64) {
	r.mu.Lock()
	delete(r.pending, id)
	n := len(r.pending)
	r.mu.Unlock()

	r.stats.SetPending(n)
}

// abandon removes the waiter after cancellation. If fulfillment already
// claimed the entry the response is moments from the channel, so it is
// collected and delivered instead of dropped.
func (r *Router) abandon(id uint64, ch chan []byte) ([]byte, bool) {
	r.mu.Lock()
	_, still := r.pending[id]
	if still {
		delete(r.pending, id)
	}
	n := len(r.pending)
	r.mu.Unlock()

	r.stats.SetPending(n)
	if still {
		return nil, false
	}
	return <-ch, true
}

// fulfill hands a response to its waiter. The channel send happens
// outside the lock; the buffer guarantees it never blocks. Responses
// without a waiter were abandoned or misdirected and are dropped
// without error.
func (r *Router) fulfill(id uint64, raw []byte) {
	r.mu.Lock()
	ch, ok := r.pending[id]
	if ok {
		delete(r.pending, id)
	}
	n := len(r.pending)
	r.mu.Unlock()

	r.stats.SetPending(n)
	if !ok {
		r.stats.ObserveOrphan()
		r.logger.Debug().Uint64("extra", id).Msg("orphan response dropped")
		return
	}
	ch <- raw
	r.fulfilled.Add(1)
	r.stats.ObserveResponse()
}

// nopStats is the Stats used when none is configured.
type nopStats struct{}

func (nopStats) ObserveDispatch(time.Duration) {}
func (nopStats) ObserveResponse()              {}
func (nopStats) ObserveOrphan()                {}
func (nopStats) ObserveEvent()                 {}
func (nopStats) ObserveEventDecodeFailure()    {}
func (nopStats) SetPending(int)                {}
