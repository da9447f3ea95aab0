package gen

import (
	"testing"

	"github.com/fifteenlabs/tdlib-go/core/schema"
)

func mapperSchema() schema.Schema {
	hidden := typeDef("userSecret", "Secret", param("key", "String"))
	hidden.Restricted = true
	return schema.Schema{Definitions: []schema.Definition{
		typeDef("chatTypePrivate", "ChatType", param("user_id", "Int53")),
		typeDef("chatTypeGroup", "ChatType"),
		typeDef("chat", "Chat", param("id", "Int53")),
		hidden,
		typeDef("secretPublic", "Secret", param("id", "Int53")),
	}}
}

func TestGoType(t *testing.T) {
	m := mapper{s: mapperSchema(), opts: Options{}}

	tests := []struct {
		expr    string
		want    string
		nilable bool
	}{
		{"Bool", "bool", false},
		{"Bytes", "[]byte", true},
		{"Int32", "int32", false},
		{"Int53", "int64", false},
		{"Int64", "int64", false},
		{"String", "string", false},
		{"vector<Int32>", "[]int32", true},
		{"vector<vector<String>>", "[][]string", true},
		{"Chat", "*Chat", true},
		{"vector<Chat>", "[]*Chat", true},
		{"ChatType", "ChatType", true},
	}
	for _, tt := range tests {
		r, err := schema.ParseRef(tt.expr)
		if err != nil {
			t.Fatalf("ParseRef(%q): %v", tt.expr, err)
		}
		got := m.goType(r, "")
		if got.expr != tt.want {
			t.Errorf("goType(%q) = %q, want %q", tt.expr, got.expr, tt.want)
		}
		if got.nilable != tt.nilable {
			t.Errorf("goType(%q).nilable = %v, want %v", tt.expr, got.nilable, tt.nilable)
		}
	}
}

func TestGoTypeInt64TransitsAsString(t *testing.T) {
	m := mapper{s: mapperSchema(), opts: Options{}}

	if got := m.goType(schema.Ref{Name: "Int64"}, ""); !got.stringTag {
		t.Error("Int64 should carry the string tag option")
	}
	if got := m.goType(schema.Ref{Name: "Int53"}, ""); got.stringTag {
		t.Error("Int53 transits as a plain number")
	}
}

func TestGoTypeQualifier(t *testing.T) {
	m := mapper{s: mapperSchema(), opts: Options{}}

	r, _ := schema.ParseRef("vector<ChatType>")
	got := m.goType(r, "types.")
	if got.expr != "[]types.ChatType" {
		t.Errorf("expr = %q, want %q", got.expr, "[]types.ChatType")
	}
	if !got.variantVector {
		t.Error("sequence of a variant class should flag element resolution")
	}
}

func TestGoTypeSharedStrings(t *testing.T) {
	m := mapper{s: mapperSchema(), opts: Options{SharedStrings: true}}

	if got := m.goType(schema.Ref{Name: "String"}, ""); got.expr != "client.SharedString" {
		t.Errorf("expr = %q, want %q", got.expr, "client.SharedString")
	}
}

func TestGoTypeRestrictionCollapsesClass(t *testing.T) {
	// Secret has two constructors, but only one survives the default
	// visibility, so references resolve to that structure directly.
	m := mapper{s: mapperSchema(), opts: Options{}}
	if got := m.goType(schema.Ref{Name: "Secret"}, ""); got.expr != "*SecretPublic" {
		t.Errorf("expr = %q, want %q", got.expr, "*SecretPublic")
	}

	m = mapper{s: mapperSchema(), opts: Options{IncludeRestricted: true}}
	got := m.goType(schema.Ref{Name: "Secret"}, "")
	if got.expr != "Secret" {
		t.Errorf("expr = %q, want %q", got.expr, "Secret")
	}
	if got.variant != "Secret" {
		t.Errorf("variant = %q, want %q", got.variant, "Secret")
	}
}

func TestFieldTypeOptionalWrapping(t *testing.T) {
	m := mapper{s: mapperSchema(), opts: Options{}}

	tests := []struct {
		expr string
		want string
	}{
		{"Int53", "*int64"},
		{"String", "*string"},
		{"Bool", "*bool"},
		{"Bytes", "[]byte"},
		{"Chat", "*Chat"},
		{"ChatType", "ChatType"},
		{"vector<Int32>", "[]int32"},
	}
	for _, tt := range tests {
		p := optParam("f", tt.expr)
		if got := m.fieldType(p, ""); got.expr != tt.want {
			t.Errorf("fieldType(optional %q) = %q, want %q", tt.expr, got.expr, tt.want)
		}
	}
}
