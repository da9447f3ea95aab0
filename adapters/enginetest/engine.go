// Package enginetest provides an in-memory Engine test double.
// Tests script responses, inspect recorded requests, and inject
// failures without a native engine.
//
// Usage:
//
//	eng := enginetest.New()
//	eng.Respond(func(clientID int32, request []byte) [][]byte {
//		return [][]byte{enginetest.Echo(request, map[string]any{"@type": "ok"})}
//	})
//
//	// Run tests...
//
//	if eng.SendCalls() != 1 { ... }
package enginetest

import (
	"encoding/json"
	"sync"
	"time"
)

// SentRequest is one recorded Send call.
type SentRequest struct {
	ClientID int32
	Raw      []byte
}

// Engine is an in-memory engine. Any number of goroutines may Send;
// one goroutine may Receive, matching the real boundary's contract.
type Engine struct {
	mu sync.Mutex

	// State
	nextClient int32
	inbox      [][]byte
	sent       []SentRequest

	// Reply scripting
	reply func(clientID int32, request []byte) [][]byte

	// Call tracking
	sendCalls    int
	receiveCalls int

	// Error injection
	sendErr error

	notify chan struct{}
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{
		notify: make(chan struct{}, 1),
	}
}

// CreateClient allocates the next client identifier, starting at 1.
func (e *Engine) CreateClient() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextClient++
	return e.nextClient
}

// Send records the request and enqueues any scripted replies.
func (e *Engine) Send(clientID int32, request []byte) error {
	e.mu.Lock()
	e.sendCalls++

	if e.sendErr != nil {
		err := e.sendErr
		e.mu.Unlock()
		return err
	}

	e.sent = append(e.sent, SentRequest{ClientID: clientID, Raw: request})
	reply := e.reply
	e.mu.Unlock()

	if reply != nil {
		for _, resp := range reply(clientID, request) {
			e.Enqueue(resp)
		}
	}
	return nil
}

// Receive pops the next queued payload, waiting up to timeout for one
// to arrive. Returns nil on timeout.
func (e *Engine) Receive(timeout time.Duration) []byte {
	e.mu.Lock()
	e.receiveCalls++
	e.mu.Unlock()

	deadline := time.Now().Add(timeout)
	for {
		e.mu.Lock()
		if len(e.inbox) > 0 {
			raw := e.inbox[0]
			e.inbox = e.inbox[1:]
			e.mu.Unlock()
			return raw
		}
		e.mu.Unlock()

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}
		select {
		case <-e.notify:
		case <-time.After(remaining):
			return nil
		}
	}
}

// Enqueue queues a payload for Receive to yield.
func (e *Engine) Enqueue(raw []byte) {
	e.mu.Lock()
	e.inbox = append(e.inbox, raw)
	e.mu.Unlock()

	select {
	case e.notify <- struct{}{}:
	default:
	}
}

// Respond installs a scripted reply: every Send enqueues the returned
// payloads. A nil return enqueues nothing.
func (e *Engine) Respond(fn func(clientID int32, request []byte) [][]byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reply = fn
}

// FailSends makes every subsequent Send return err.
func (e *Engine) FailSends(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sendErr = err
}

// Sent returns a copy of the recorded requests.
func (e *Engine) Sent() []SentRequest {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]SentRequest, len(e.sent))
	copy(out, e.sent)
	return out
}

// SendCalls returns how many times Send was called.
func (e *Engine) SendCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sendCalls
}

// ReceiveCalls returns how many times Receive was called.
func (e *Engine) ReceiveCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.receiveCalls
}

// Echo builds a response payload carrying the request's correlation id.
// The fields map is copied and extended with the request's "@extra".
func Echo(request []byte, fields map[string]any) []byte {
	var env struct {
		Extra any `json:"@extra"`
	}
	if err := json.Unmarshal(request, &env); err != nil {
		return nil
	}

	resp := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		resp[k] = v
	}
	if env.Extra != nil {
		resp["@extra"] = env.Extra
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil
	}
	return raw
}
