//go:build tdjson
// +build tdjson

// Package tdjson binds the engine boundary to a native libtdjson via
// cgo. Build with the tdjson tag and libtdjson on the linker path.
package tdjson

/*
#cgo LDFLAGS: -ltdjson
#include <stdlib.h>

extern int td_create_client_id();
extern void td_send(int client_id, const char *request);
extern const char *td_receive(double timeout);
*/
import "C"

import (
	"time"
	"unsafe"

	"github.com/fifteenlabs/tdlib-go/ports"
)

// Engine drives the process-wide native engine. The library keeps one
// global receive loop, so a process should hold a single Engine and a
// single polling goroutine.
type Engine struct{}

// New returns the engine bound to the linked libtdjson.
func New() *Engine {
	return &Engine{}
}

// CreateClient allocates a new native client identifier.
func (*Engine) CreateClient() int32 {
	return int32(C.td_create_client_id())
}

// Send hands one serialized request to the native library. The native
// call cannot fail; malformed requests come back as error payloads
// through Receive.
func (*Engine) Send(clientID int32, request []byte) error {
	req := C.CString(string(request))
	defer C.free(unsafe.Pointer(req))

	C.td_send(C.int(clientID), req)
	return nil
}

// Receive polls the native library for the next payload, waiting at
// most timeout. The returned C buffer is only valid until the next
// call, so the payload is copied out before returning.
func (*Engine) Receive(timeout time.Duration) []byte {
	raw := C.td_receive(C.double(timeout.Seconds()))
	if raw == nil {
		return nil
	}
	return []byte(C.GoString(raw))
}

var _ ports.Engine = (*Engine)(nil)
