//go:build tdjson
// +build tdjson

package bootstrap

import (
	"github.com/fifteenlabs/tdlib-go/adapters/tdjson"
	"github.com/fifteenlabs/tdlib-go/ports"
)

func newTDJSONEngine() (ports.Engine, error) {
	return tdjson.New(), nil
}
