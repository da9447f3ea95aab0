// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"time"
)

// Engine is the synchronous boundary to a native JSON engine. One engine
// hosts many clients; requests are tagged with a client identifier and
// responses for every client arrive through the single Receive poll.
type Engine interface {
	// CreateClient allocates a new client on the engine and returns its
	// identifier.
	CreateClient() int32

	// Send transmits one serialized request on behalf of a client.
	// Delivery is asynchronous; the response arrives via Receive.
	Send(clientID int32, request []byte) error

	// Receive polls for the next payload from any client, waiting at
	// most timeout. Returns nil when nothing arrived in time.
	// Exactly one goroutine may poll an engine at a time.
	Receive(timeout time.Duration) []byte
}
