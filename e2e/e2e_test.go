// Package e2e provides end-to-end tests driving the generated example
// bindings through the correlation runtime over a scripted engine.
package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fifteenlabs/tdlib-go/adapters/enginetest"
	"github.com/fifteenlabs/tdlib-go/core/client"
	"github.com/fifteenlabs/tdlib-go/example/td/functions"
	"github.com/fifteenlabs/tdlib-go/example/td/types"
)

// TestE2E_FullClientFlow tests the complete binding flow:
// 1. Script an engine with typed replies
// 2. Start the router with the generated event decoders
// 3. Dispatch generated operations and verify their results
// 4. Verify the event interleaved with the responses was surfaced
// 5. Verify the wire requests the bindings produced
func TestE2E_FullClientFlow(t *testing.T) {
	// 1. Script the engine
	eng := enginetest.New()
	eng.Respond(func(clientID int32, request []byte) [][]byte {
		var env struct {
			Type string `json:"@type"`
		}
		if err := json.Unmarshal(request, &env); err != nil {
			return nil
		}
		switch env.Type {
		case "getMe":
			// An event delivered ahead of the response; correlation
			// must route past it.
			return [][]byte{
				[]byte(fmt.Sprintf(`{"@type":"updateConnectionState","@client_id":%d,"state":{"@type":"connectionStateReady"}}`, clientID)),
				enginetest.Echo(request, map[string]any{
					"@type":       "user",
					"id":          7,
					"first_name":  "Alice",
					"status":      map[string]any{"@type": "userStatusOnline", "expires": 300},
					"is_verified": true,
				}),
			}
		case "sendMessage":
			var req struct {
				ChatId int64 `json:"chat_id"`
			}
			json.Unmarshal(request, &req)
			return [][]byte{enginetest.Echo(request, map[string]any{
				"@type":          "message",
				"id":             41,
				"chat_id":        req.ChatId,
				"sender_user_id": 7,
				"date":           1700000000,
				"content": map[string]any{
					"@type": "messageText",
					"text":  map[string]any{"@type": "formattedText", "text": "hello", "entities": []any{}},
				},
			})}
		case "setChatTitle":
			return [][]byte{enginetest.Echo(request, map[string]any{"@type": "ok"})}
		}
		return nil
	})

	// 2. Start the router with the generated event decoders
	reg := client.NewEventRegistry()
	types.RegisterEvents(reg)
	router := client.NewRouter(eng, client.Options{Events: reg})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan *client.Event, 8)
	go router.Run(ctx, 10*time.Millisecond, func(ev *client.Event) {
		events <- ev
	})

	clientID := router.CreateClient()

	// 3. Dispatch generated operations
	dctx, dcancel := context.WithTimeout(ctx, 5*time.Second)
	defer dcancel()

	me, err := functions.GetMe(dctx, router, clientID)
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if me.Id != 7 || me.FirstName != "Alice" {
		t.Errorf("user = %d %q, want 7 %q", me.Id, me.FirstName, "Alice")
	}
	status, ok := me.Status.(*types.UserStatusOnline)
	if !ok {
		t.Fatalf("status = %T, want *types.UserStatusOnline", me.Status)
	}
	if status.Expires != 300 {
		t.Errorf("status.Expires = %d, want 300", status.Expires)
	}
	if me.LastName != nil {
		t.Errorf("last_name = %v, want nil for an absent optional", *me.LastName)
	}

	content := &types.MessageText{Text: &types.FormattedText{Text: "hello"}}
	msg, err := functions.SendMessage(dctx, router, clientID, 99, nil, nil, content)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ChatId != 99 {
		t.Errorf("message chat_id = %d, want 99", msg.ChatId)
	}
	text, ok := msg.Content.(*types.MessageText)
	if !ok {
		t.Fatalf("content = %T, want *types.MessageText", msg.Content)
	}
	if text.Text == nil || text.Text.Text != "hello" {
		t.Errorf("content text = %+v, want hello", text.Text)
	}

	if err := functions.SetChatTitle(dctx, router, clientID, 99, "Renamed"); err != nil {
		t.Fatalf("SetChatTitle: %v", err)
	}

	// 4. Verify the event was surfaced alongside the responses
	select {
	case ev := <-events:
		if ev.ClientID != clientID {
			t.Errorf("event client = %d, want %d", ev.ClientID, clientID)
		}
		if ev.Type != "updateConnectionState" {
			t.Errorf("event type = %s, want updateConnectionState", ev.Type)
		}
		upd, ok := ev.Value.(*types.UpdateConnectionState)
		if !ok {
			t.Fatalf("event value = %T, want *types.UpdateConnectionState", ev.Value)
		}
		if _, ok := upd.State.(*types.ConnectionStateReady); !ok {
			t.Errorf("state = %T, want *types.ConnectionStateReady", upd.State)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}

	// 5. Verify the wire requests the bindings produced
	sent := eng.Sent()
	if len(sent) != 3 {
		t.Fatalf("sent %d requests, want 3", len(sent))
	}
	var sendReq map[string]any
	if err := json.Unmarshal(sent[1].Raw, &sendReq); err != nil {
		t.Fatalf("unmarshal sent request: %v", err)
	}
	if sendReq["@type"] != "sendMessage" {
		t.Errorf("@type = %v, want sendMessage", sendReq["@type"])
	}
	if sendReq["@extra"] == nil {
		t.Error("request missing @extra correlation id")
	}
	if _, present := sendReq["reply_to_message_id"]; present {
		t.Error("nil optional reply_to_message_id should be omitted from the payload")
	}
	contentObj, ok := sendReq["content"].(map[string]any)
	if !ok || contentObj["@type"] != "messageText" {
		t.Errorf("content = %v, want a messageText object", sendReq["content"])
	}

	if got := router.Pending(); got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
}

// TestE2E_ConcurrentCorrelation tests that concurrent dispatches each
// receive their own response through one pump loop.
func TestE2E_ConcurrentCorrelation(t *testing.T) {
	eng := enginetest.New()
	eng.Respond(func(clientID int32, request []byte) [][]byte {
		var req struct {
			UserId int64 `json:"user_id"`
		}
		if err := json.Unmarshal(request, &req); err != nil {
			return nil
		}
		return [][]byte{enginetest.Echo(request, map[string]any{
			"@type":      "user",
			"id":         req.UserId,
			"first_name": fmt.Sprintf("user-%d", req.UserId),
			"status":     map[string]any{"@type": "userStatusEmpty"},
		})}
	})

	router := client.NewRouter(eng, client.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go router.Run(ctx, 10*time.Millisecond, nil)

	clientID := router.CreateClient()

	const workers = 32
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			dctx, dcancel := context.WithTimeout(ctx, 5*time.Second)
			defer dcancel()

			user, err := functions.GetUser(dctx, router, clientID, id)
			if err != nil {
				errs <- fmt.Errorf("GetUser(%d): %v", id, err)
				return
			}
			if user.Id != id {
				errs <- fmt.Errorf("GetUser(%d) returned user %d", id, user.Id)
			}
		}(int64(i + 1))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	if got := router.Dispatched(); got != workers {
		t.Errorf("dispatched = %d, want %d", got, workers)
	}
	if got := router.Fulfilled(); got != workers {
		t.Errorf("fulfilled = %d, want %d", got, workers)
	}
	if got := router.Pending(); got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
}

// TestE2E_APIError tests that an engine error reply surfaces as an
// APIError from both value-returning and unit operations.
func TestE2E_APIError(t *testing.T) {
	eng := enginetest.New()
	eng.Respond(func(clientID int32, request []byte) [][]byte {
		return [][]byte{enginetest.Echo(request, map[string]any{
			"@type":   "error",
			"code":    429,
			"message": "Too Many Requests: retry after 30",
		})}
	})

	router := client.NewRouter(eng, client.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go router.Run(ctx, 10*time.Millisecond, nil)

	clientID := router.CreateClient()
	dctx, dcancel := context.WithTimeout(ctx, 5*time.Second)
	defer dcancel()

	_, err := functions.GetChat(dctx, router, clientID, 12)
	if err == nil {
		t.Fatal("expected an error")
	}
	var api *client.APIError
	if !errors.As(err, &api) {
		t.Fatalf("err = %T, want *client.APIError", err)
	}
	if api.Code != 429 {
		t.Errorf("code = %d, want 429", api.Code)
	}
	if got := client.Code(err); got != 429 {
		t.Errorf("Code(err) = %d, want 429", got)
	}

	if err := functions.SetChatTitle(dctx, router, clientID, 12, "x"); client.Code(err) != 429 {
		t.Errorf("SetChatTitle error = %v, want code 429", err)
	}
}

// TestE2E_DecodeError tests that a reply satisfying neither the success
// shape nor the error shape surfaces as a DecodeError naming the
// expected type and carrying the payload verbatim.
func TestE2E_DecodeError(t *testing.T) {
	eng := enginetest.New()
	eng.Respond(func(clientID int32, request []byte) [][]byte {
		return [][]byte{enginetest.Echo(request, map[string]any{
			"@type": "chatTypeGroup",
		})}
	})

	router := client.NewRouter(eng, client.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go router.Run(ctx, 10*time.Millisecond, nil)

	clientID := router.CreateClient()
	dctx, dcancel := context.WithTimeout(ctx, 5*time.Second)
	defer dcancel()

	_, err := functions.GetChat(dctx, router, clientID, 12)
	var de *client.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %T (%v), want *client.DecodeError", err, err)
	}
	if de.ExpectedType != "Chat" {
		t.Errorf("expected type = %s, want Chat", de.ExpectedType)
	}
	if !strings.Contains(de.Payload, `"chatTypeGroup"`) {
		t.Errorf("payload = %s, want the response verbatim", de.Payload)
	}
	if got := client.Code(err); got != client.CodeUnknown {
		t.Errorf("Code(err) = %d, want %d", got, client.CodeUnknown)
	}

	// A vector result can never decode from a keyed reply, so the same
	// taxonomy applies there.
	_, err = functions.GetRecentlySeenStatuses(dctx, router, clientID, []int64{1, 2})
	if !errors.As(err, &de) {
		t.Fatalf("vector err = %T (%v), want *client.DecodeError", err, err)
	}
	if de.ExpectedType != "[]types.UserStatus" {
		t.Errorf("vector expected type = %s, want []types.UserStatus", de.ExpectedType)
	}
}

// TestE2E_Int64Strings tests the quoted-decimal transport for wide
// identifiers in both directions.
func TestE2E_Int64Strings(t *testing.T) {
	eng := enginetest.New()
	eng.Respond(func(clientID int32, request []byte) [][]byte {
		return [][]byte{enginetest.Echo(request, map[string]any{
			"@type": "profilePhoto",
			"id":    "4611686018427387904",
			"data":  []byte{0xff, 0xd8},
		})}
	})

	router := client.NewRouter(eng, client.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go router.Run(ctx, 10*time.Millisecond, nil)

	clientID := router.CreateClient()
	dctx, dcancel := context.WithTimeout(ctx, 5*time.Second)
	defer dcancel()

	photo, err := functions.GetProfilePhoto(dctx, router, clientID, 4611686018427387904)
	if err != nil {
		t.Fatalf("GetProfilePhoto: %v", err)
	}
	if photo.Id != 4611686018427387904 {
		t.Errorf("id = %d, want 4611686018427387904", photo.Id)
	}
	if len(photo.Data) != 2 {
		t.Errorf("data = %d bytes, want 2", len(photo.Data))
	}

	sent := eng.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d requests, want 1", len(sent))
	}
	var req struct {
		PhotoId json.RawMessage `json:"photo_id"`
	}
	if err := json.Unmarshal(sent[0].Raw, &req); err != nil {
		t.Fatalf("unmarshal sent request: %v", err)
	}
	if string(req.PhotoId) != `"4611686018427387904"` {
		t.Errorf("photo_id on the wire = %s, want a quoted decimal", req.PhotoId)
	}
}

// TestE2E_CancelledDispatch tests that an unanswered dispatch fails
// with the context error and leaves no pending waiter behind.
func TestE2E_CancelledDispatch(t *testing.T) {
	eng := enginetest.New()

	router := client.NewRouter(eng, client.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go router.Run(ctx, 10*time.Millisecond, nil)

	clientID := router.CreateClient()

	dctx, dcancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer dcancel()
	_, err := functions.GetMe(dctx, router, clientID)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}

	if got := router.Pending(); got != 0 {
		t.Errorf("pending = %d, want 0 after cancellation", got)
	}
}

// TestE2E_SendFailure tests that an engine submit failure propagates
// immediately without leaving a waiter registered.
func TestE2E_SendFailure(t *testing.T) {
	eng := enginetest.New()
	eng.FailSends(errors.New("engine gone"))

	router := client.NewRouter(eng, client.Options{})
	clientID := router.CreateClient()

	dctx, dcancel := context.WithTimeout(context.Background(), time.Second)
	defer dcancel()

	_, err := functions.GetMe(dctx, router, clientID)
	if err == nil || !strings.Contains(err.Error(), "engine gone") {
		t.Fatalf("err = %v, want the send failure", err)
	}
	if got := router.Pending(); got != 0 {
		t.Errorf("pending = %d, want 0 after a failed send", got)
	}
}
