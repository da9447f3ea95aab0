package gen

import (
	"bytes"
	"go/format"
	"strings"
	"testing"

	"github.com/fifteenlabs/tdlib-go/core/schema"
)

const generatorSchema = `
definitions:
  - name: chatTypePrivate
    category: type
    result: ChatType
    description: An ordinary chat with one other user.
    params:
      - name: user_id
        type: Int53
        description: Identifier of the other user.

  - name: chatTypeGroup
    category: type
    result: ChatType
    description: A chat with several participants.

  - name: connectionStateConnecting
    category: type
    result: ConnectionState
    description: Establishing a connection.

  - name: connectionStateReady
    category: type
    result: ConnectionState
    description: The connection is ready.

  - name: chat
    category: type
    result: Chat
    description: A chat.
    params:
      - name: id
        type: Int53
        description: Chat identifier.
      - name: type
        type: ChatType
        description: Type of the chat.
      - name: title
        type: String
        description: Chat title.

  - name: user
    category: type
    result: User
    description: A user.
    params:
      - name: id
        type: Int53
        description: User identifier.
      - name: note
        type: String
        optional: true
        description: Private notes about the user.
      - name: support_id
        type: Int64
        restricted: true
        description: Internal support identifier.

  - name: updateChatTitle
    category: type
    result: Update
    description: The title of a chat was changed.
    params:
      - name: chat_id
        type: Int53
        description: Chat identifier.
      - name: title
        type: String
        description: The new title.

  - name: updateConnectionState
    category: type
    result: Update
    description: The connection state changed.
    params:
      - name: state
        type: ConnectionState
        description: The new state.

  - name: getChat
    category: operation
    result: Chat
    description: Returns information about a chat.
    params:
      - name: chat_id
        type: Int53
        description: Chat identifier.

  - name: setChatTitle
    category: operation
    result: Ok
    description: Changes the chat title.
    params:
      - name: chat_id
        type: Int53
        description: Chat identifier.
      - name: title
        type: String
        description: New chat title.

  - name: getConnectionState
    category: operation
    result: ConnectionState
    description: Returns the current connection state.

  - name: getChatIds
    category: operation
    result: vector<Int53>
    description: Returns identifiers of the known chats.

  - name: setNote
    category: operation
    result: Ok
    description: Sets the private note of a user.
    params:
      - name: user_id
        type: Int53
        description: User identifier.
      - name: note
        type: String
        optional: true
        description: New note, empty to drop.
      - name: marker
        type: Int64
        optional: true
        description: Bookkeeping marker.

  - name: getSupportUser
    category: operation
    result: User
    restricted: true
    description: Returns the designated support user.
`

func mustSchema(t *testing.T, src string) schema.Schema {
	t.Helper()
	s, err := schema.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return s
}

func generate(t *testing.T, opts Options) map[string]string {
	t.Helper()
	if opts.ModulePath == "" {
		opts.ModulePath = "example.com/messenger"
	}
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	files, err := g.Generate(mustSchema(t, generatorSchema))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Path] = string(f.Content)
	}
	return out
}

func wantContains(t *testing.T, src, sub string) {
	t.Helper()
	if !strings.Contains(src, sub) {
		t.Errorf("output does not contain %q", sub)
	}
}

func TestGenerateFileSet(t *testing.T) {
	out := generate(t, Options{})
	for _, p := range []string{"types/types.go", "types/variants.go", "functions/functions.go"} {
		if _, ok := out[p]; !ok {
			t.Errorf("missing generated file %q", p)
		}
	}
	if len(out) != 3 {
		t.Errorf("generated %d files, want 3", len(out))
	}
}

func TestGeneratedTypes(t *testing.T) {
	src := generate(t, Options{})["types/types.go"]

	wantContains(t, src, "// Code generated by tdgen. DO NOT EDIT.")
	wantContains(t, src, "type Chat struct {")
	wantContains(t, src, "Id int64 `json:\"id\"`")
	wantContains(t, src, "Type ChatType `json:\"type\"`")
	wantContains(t, src, "Title string `json:\"title\"`")
	wantContains(t, src, "func (chat *Chat) MarshalJSON() ([]byte, error) {")
	wantContains(t, src, "return typed(\"chat\", body), nil")

	// The variant-typed field needs a decoding pass of its own.
	wantContains(t, src, "func (chat *Chat) UnmarshalJSON(raw []byte) error {")
	wantContains(t, src, "Type json.RawMessage `json:\"type\"`")
	wantContains(t, src, "UnmarshalChatType(tmp.Type)")

	wantContains(t, src, "Note *string `json:\"note\"`")
	if strings.Contains(src, "SupportId") {
		t.Error("restricted parameter leaked into the default output")
	}

	// Zero values satisfy user but not chat: chat requires a variant.
	wantContains(t, src, "func NewUser() *User {")
	wantContains(t, src, "func NewUpdateChatTitle() *UpdateChatTitle {")
	if strings.Contains(src, "func NewChat() *Chat {") {
		t.Error("chat has no usable zero value, no factory expected")
	}
}

func TestGeneratedVariants(t *testing.T) {
	src := generate(t, Options{})["types/variants.go"]

	wantContains(t, src, "type ChatType interface {")
	wantContains(t, src, "ChatTypeType() string")
	wantContains(t, src, "func (*ChatTypePrivate) ChatTypeType() string {")
	wantContains(t, src, "func UnmarshalChatType(raw []byte) (ChatType, error) {")
	wantContains(t, src, "case \"chatTypePrivate\":")
	wantContains(t, src, "unknown ChatType constructor %q")

	// Parameterless constructors only materialize here.
	wantContains(t, src, "type ChatTypeGroup struct{}")
	wantContains(t, src, "func (chatTypeGroup *ChatTypeGroup) MarshalJSON() ([]byte, error) {")
	wantContains(t, src, "type ConnectionStateReady struct{}")
	wantContains(t, src, "type ConnectionState interface {")

	wantContains(t, src, "func RegisterEvents(reg *client.EventRegistry) {")
	wantContains(t, src, "reg.Register(\"updateChatTitle\", func() any { return new(UpdateChatTitle) })")
	wantContains(t, src, "reg.Register(\"updateConnectionState\", func() any { return new(UpdateConnectionState) })")
}

func TestGeneratedFunctions(t *testing.T) {
	src := generate(t, Options{})["functions/functions.go"]

	wantContains(t, src, "func GetChat(ctx context.Context, r *client.Router, clientID int32, chatId int64) (*types.Chat, error) {")
	wantContains(t, src, "payload := map[string]any{\"@type\": \"getChat\"}")
	wantContains(t, src, "payload[\"chat_id\"] = chatId")
	wantContains(t, src, "var result types.Chat")
	wantContains(t, src, "client.DecodeResult(raw, \"chat\", &result)")
	wantContains(t, src, "client.ResponseError(raw, \"Chat\", derr)")

	wantContains(t, src, "func SetChatTitle(ctx context.Context, r *client.Router, clientID int32, chatId int64, title string) error {")
	wantContains(t, src, "return client.UnitResult(raw)")

	wantContains(t, src, "func GetConnectionState(ctx context.Context, r *client.Router, clientID int32) (types.ConnectionState, error) {")
	wantContains(t, src, "types.UnmarshalConnectionState(raw)")

	wantContains(t, src, "func GetChatIds(ctx context.Context, r *client.Router, clientID int32) ([]int64, error) {")
	wantContains(t, src, "var result []int64")

	// Absent optionals stay off the wire; Int64 transits quoted.
	wantContains(t, src, "if note != nil {")
	wantContains(t, src, "payload[\"note\"] = note")
	wantContains(t, src, "if marker != nil {")
	wantContains(t, src, "payload[\"marker\"] = (*client.Int64String)(marker)")

	if strings.Contains(src, "GetSupportUser") {
		t.Error("restricted operation leaked into the default output")
	}
}

func TestGenerateIncludesRestricted(t *testing.T) {
	out := generate(t, Options{IncludeRestricted: true})

	wantContains(t, out["types/types.go"], "SupportId int64 `json:\"support_id,string\"`")
	wantContains(t, out["functions/functions.go"], "func GetSupportUser(ctx context.Context, r *client.Router, clientID int32) (*types.User, error) {")
}

func TestGenerateEventClassOverride(t *testing.T) {
	src := generate(t, Options{EventClass: "ConnectionState"})["types/variants.go"]

	wantContains(t, src, "reg.Register(\"connectionStateReady\", func() any { return new(ConnectionStateReady) })")
	if strings.Contains(src, "reg.Register(\"updateChatTitle\"") {
		t.Error("default event class registered despite the override")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := generate(t, Options{})
	second := generate(t, Options{})

	for p, content := range first {
		if !bytes.Equal([]byte(content), []byte(second[p])) {
			t.Errorf("%s differs between identical runs", p)
		}
	}
}

func TestGeneratedSourceFormatted(t *testing.T) {
	for p, content := range generate(t, Options{}) {
		formatted, err := format.Source([]byte(content))
		if err != nil {
			t.Fatalf("%s does not parse: %v", p, err)
		}
		if !bytes.Equal(formatted, []byte(content)) {
			t.Errorf("%s is not gofmt-clean", p)
		}
	}
}

func TestNewRequiresModulePath(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("expected an error for a missing module path")
	}
}

func TestGenerateRejectsInvalidSchema(t *testing.T) {
	g, err := New(Options{ModulePath: "example.com/messenger"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := schema.Schema{Definitions: []schema.Definition{
		typeDef("chat", "Chat", param("ref", "Missing")),
	}}
	if _, err := g.Generate(s); err == nil {
		t.Error("expected a validation error for an unresolved reference")
	}
}
