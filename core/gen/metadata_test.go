package gen

import (
	"testing"

	"github.com/fifteenlabs/tdlib-go/core/schema"
)

func typeDef(name, class string, params ...schema.Parameter) schema.Definition {
	return schema.Definition{
		Name:     name,
		Category: schema.CategoryType,
		Result:   schema.Ref{Name: class},
		Params:   params,
	}
}

func param(name, typ string) schema.Parameter {
	r, err := schema.ParseRef(typ)
	if err != nil {
		panic(err)
	}
	return schema.Parameter{Name: name, Type: r}
}

func optParam(name, typ string) schema.Parameter {
	p := param(name, typ)
	p.Optional = true
	return p
}

func TestDefaultDerivable(t *testing.T) {
	s := schema.Schema{Definitions: []schema.Definition{
		typeDef("shapePoint", "Shape"),
		typeDef("shapeLine", "Shape", param("length", "Int32")),
		typeDef("profile", "Profile",
			param("id", "Int53"),
			param("tags", "vector<Shape>"),
			optParam("bio", "String"),
		),
		typeDef("account", "Account", param("shape", "Shape")),
		typeDef("wrapper", "Wrapper", param("profile", "Profile")),
	}}

	md := Analyze(s)
	// profile derives: builtins, sequences and optionals all have
	// defaults. account does not: Shape has two constructors. wrapper
	// follows the single-constructor chain through profile.
	tests := []struct {
		name string
		want bool
	}{
		{"shapePoint", true},
		{"shapeLine", true},
		{"profile", true},
		{"account", false},
		{"wrapper", true},
		{"unknown", false},
	}
	for _, tt := range tests {
		if got := md.DefaultDerivable(tt.name); got != tt.want {
			t.Errorf("DefaultDerivable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultDerivableCycle(t *testing.T) {
	s := schema.Schema{Definitions: []schema.Definition{
		typeDef("node", "Node", param("next", "Node")),
		typeDef("holder", "Holder", param("node", "Node")),
		typeDef("ping", "Ping", param("pong", "Pong")),
		typeDef("pong", "Pong", param("ping", "Ping")),
	}}

	md := Analyze(s)
	if md.DefaultDerivable("node") {
		t.Error("node requires itself; no finite default exists")
	}
	if md.DefaultDerivable("holder") {
		t.Error("holder requires node, which does not derive")
	}

	// Mutually recursive pairs resolve the same way, from either side.
	if md.DefaultDerivable("ping") || md.DefaultDerivable("pong") {
		t.Error("mutually recursive types have no finite default")
	}
}

func TestDefaultDerivableCycleBrokenByOptional(t *testing.T) {
	s := schema.Schema{Definitions: []schema.Definition{
		typeDef("node", "Node", optParam("next", "Node"), param("label", "String")),
	}}

	if !Analyze(s).DefaultDerivable("node") {
		t.Error("optional self-reference should not block derivation")
	}
}

func TestDefaultDerivableIgnoresRestriction(t *testing.T) {
	restricted := typeDef("inner", "Inner", param("id", "Int53"))
	restricted.Restricted = true
	s := schema.Schema{Definitions: []schema.Definition{
		restricted,
		typeDef("outer", "Outer", param("inner", "Inner")),
	}}

	md := Analyze(s)
	if !md.DefaultDerivable("outer") {
		t.Error("restricted constructors still participate in analysis")
	}
}
