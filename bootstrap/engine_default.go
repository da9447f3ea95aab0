//go:build !tdjson
// +build !tdjson

package bootstrap

import (
	"errors"

	"github.com/fifteenlabs/tdlib-go/ports"
)

// newTDJSONEngine reports the native engine unavailable. The real
// constructor lives behind the tdjson build tag.
func newTDJSONEngine() (ports.Engine, error) {
	return nil, errors.New("tdjson engine requires building with -tags tdjson")
}
