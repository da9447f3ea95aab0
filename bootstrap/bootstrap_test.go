package bootstrap_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fifteenlabs/tdlib-go/adapters/enginetest"
	"github.com/fifteenlabs/tdlib-go/bootstrap"
	"github.com/fifteenlabs/tdlib-go/config"
)

func TestBootstrap_TestEngine(t *testing.T) {
	app, err := bootstrap.New(testConfig(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	defer app.Close()

	if app.Engine == nil {
		t.Error("Engine should not be nil")
	}
	if app.Router == nil {
		t.Error("Router should not be nil")
	}
	if app.Metrics != nil {
		t.Error("Metrics should be nil when disabled")
	}
	if _, ok := app.Engine.(*enginetest.Engine); !ok {
		t.Errorf("engine = %T, want *enginetest.Engine", app.Engine)
	}
}

func TestBootstrap_RequestRoundTrip(t *testing.T) {
	app, err := bootstrap.New(testConfig(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	defer app.Close()

	eng := app.Engine.(*enginetest.Engine)
	eng.Respond(func(clientID int32, request []byte) [][]byte {
		return [][]byte{enginetest.Echo(request, map[string]any{"@type": "ok"})}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		app.Run(ctx, nil)
		close(done)
	}()

	id := app.Router.CreateClient()
	raw, err := app.Router.Dispatch(ctx, id, map[string]any{"@type": "getSelf"})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	var resp struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Type != "ok" {
		t.Errorf("response type = %q, want ok", resp.Type)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not stop after cancel")
	}
}

func TestBootstrap_MetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = true

	app, err := bootstrap.New(cfg, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	defer app.Close()

	if app.Metrics == nil {
		t.Fatal("Metrics should be wired when enabled")
	}
	if app.Registry == nil {
		t.Fatal("Registry should be wired when enabled")
	}

	families, err := app.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Error("registry should expose the router metric families")
	}
}

func TestNewEngineUnknown(t *testing.T) {
	_, err := bootstrap.NewEngine(config.RuntimeConfig{Engine: "carrier"}, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for unknown engine")
	}
}

func TestNewEngineWebsocketRequiresURL(t *testing.T) {
	_, err := bootstrap.NewEngine(config.RuntimeConfig{Engine: "websocket"}, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for websocket engine without url")
	}
}

func TestNewEngineWebsocket(t *testing.T) {
	// Construction never dials; connections open per client.
	eng, err := bootstrap.NewEngine(config.RuntimeConfig{
		Engine: "websocket",
		URL:    "ws://127.0.0.1:1",
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("create websocket engine: %v", err)
	}
	if eng == nil {
		t.Fatal("engine should not be nil")
	}
}

// Helper functions

func testConfig() *config.Config {
	return &config.Config{
		Runtime: config.RuntimeConfig{
			Engine:         "test",
			ReceiveTimeout: 20 * time.Millisecond,
		},
	}
}
