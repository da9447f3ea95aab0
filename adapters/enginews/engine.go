// Package enginews bridges the engine boundary over WebSocket to a
// remote engine host.
//
// Each client gets its own connection. The first frame on a fresh
// connection announces the locally assigned identifier as
// {"@client_id": n}, so the host can bind the connection to that
// client. Every later frame in either direction is one JSON payload.
// Frames read from all connections funnel into one shared channel,
// preserving the single-poll contract of the engine boundary.
package enginews

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fifteenlabs/tdlib-go/ports"
)

// conn is one client connection. Writes are serialized; gorilla
// supports only one concurrent writer per connection.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

// Engine connects clients to a remote engine host over WebSocket.
type Engine struct {
	url    string
	logger zerolog.Logger

	mu         sync.Mutex
	nextClient int32
	conns      map[int32]*conn

	inbox chan []byte

	done     chan struct{}
	stopOnce sync.Once
}

// New creates an engine that dials url for every client. No connection
// is opened until CreateClient.
func New(url string, logger zerolog.Logger) *Engine {
	return &Engine{
		url:    url,
		logger: logger,
		conns:  make(map[int32]*conn),
		inbox:  make(chan []byte, 64),
		done:   make(chan struct{}),
	}
}

// CreateClient allocates the next client identifier and opens its
// connection. Connection failures are logged, not returned: the
// boundary cannot report them, so they surface on the first Send.
func (e *Engine) CreateClient() int32 {
	e.mu.Lock()
	e.nextClient++
	id := e.nextClient
	e.mu.Unlock()

	ws, _, err := websocket.DefaultDialer.Dial(e.url, nil)
	if err != nil {
		e.logger.Error().Err(err).Int32("client_id", id).Str("url", e.url).
			Msg("dial failed, client will not be connected")
		return id
	}

	hello, _ := json.Marshal(map[string]any{"@client_id": id})
	c := &conn{ws: ws}
	if err := c.write(hello); err != nil {
		e.logger.Error().Err(err).Int32("client_id", id).Msg("hello frame failed")
		ws.Close()
		return id
	}

	e.mu.Lock()
	e.conns[id] = c
	e.mu.Unlock()

	go e.readLoop(id, c)

	e.logger.Debug().Int32("client_id", id).Str("url", e.url).Msg("client connected")
	return id
}

// Send transmits one request frame on the client's connection.
func (e *Engine) Send(clientID int32, request []byte) error {
	e.mu.Lock()
	c, ok := e.conns[clientID]
	e.mu.Unlock()

	if !ok {
		return fmt.Errorf("client %d is not connected", clientID)
	}
	if err := c.write(request); err != nil {
		return fmt.Errorf("write to client %d: %w", clientID, err)
	}
	return nil
}

// Receive yields the next frame from any connection, waiting at most
// timeout. Returns nil when nothing arrived in time.
func (e *Engine) Receive(timeout time.Duration) []byte {
	select {
	case raw := <-e.inbox:
		return raw
	case <-time.After(timeout):
		return nil
	}
}

// Close tears down every connection. Frames already queued remain
// readable via Receive.
func (e *Engine) Close() error {
	e.stopOnce.Do(func() { close(e.done) })

	e.mu.Lock()
	conns := e.conns
	e.conns = make(map[int32]*conn)
	e.mu.Unlock()

	for id, c := range conns {
		if err := c.ws.Close(); err != nil {
			e.logger.Debug().Err(err).Int32("client_id", id).Msg("close failed")
		}
	}
	return nil
}

func (e *Engine) readLoop(clientID int32, c *conn) {
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			select {
			case <-e.done:
			default:
				e.logger.Warn().Err(err).Int32("client_id", clientID).Msg("connection closed")
			}
			e.drop(clientID)
			return
		}

		select {
		case e.inbox <- message:
		case <-e.done:
			return
		}
	}
}

func (e *Engine) drop(clientID int32) {
	e.mu.Lock()
	c, ok := e.conns[clientID]
	if ok {
		delete(e.conns, clientID)
	}
	e.mu.Unlock()

	if ok {
		c.ws.Close()
	}
}

var _ ports.Engine = (*Engine)(nil)
