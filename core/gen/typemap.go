package gen

import (
	"github.com/fifteenlabs/tdlib-go/core/schema"
)

// mapped is the Go rendering of one type reference.
type mapped struct {
	// expr is the Go type expression, without optional wrapping.
	expr string

	// stringTag marks scalar Int64: the value transits as a quoted
	// decimal, so the json tag carries the ",string" option.
	stringTag bool

	// nilable says the expression already has an absent state (pointer,
	// slice, interface), so optional parameters need no extra wrapper.
	nilable bool

	// variant names the class when expr is a variant interface, for
	// decode helper selection. Empty otherwise.
	variant string

	// variantVector marks a sequence whose elements are a variant
	// interface; element decoding goes through the class helper.
	variantVector bool
}

// mapper renders type references against one schema and configuration.
// The mapping is pure: equal references always map to equal renderings
// within a run.
type mapper struct {
	s    schema.Schema
	opts Options
}

// goType maps a reference to its Go rendering. The qualifier prefixes
// class types when they are referenced from outside the types package.
func (m mapper) goType(r schema.Ref, qualifier string) mapped {
	if r.IsVector() {
		item := m.goType(*r.Item, qualifier)
		return mapped{
			expr:          "[]" + item.expr,
			nilable:       true,
			variantVector: item.variant != "" && !item.variantVector,
		}
	}

	switch r.Name {
	case schema.BuiltinBool:
		return mapped{expr: "bool"}
	case schema.BuiltinBytes:
		return mapped{expr: "[]byte", nilable: true}
	case schema.BuiltinInt32:
		return mapped{expr: "int32"}
	case schema.BuiltinInt53:
		return mapped{expr: "int64"}
	case schema.BuiltinInt64:
		return mapped{expr: "int64", stringTag: true}
	case schema.BuiltinString:
		if m.opts.SharedStrings {
			return mapped{expr: "client.SharedString"}
		}
		return mapped{expr: "string"}
	case schema.BuiltinOk:
		// Validation rejects unit-typed parameters; operations handle
		// unit results without consulting the mapper.
		return mapped{expr: "struct{}"}
	}

	if m.variantClass(r.Name) {
		name := ToPascal(r.Name)
		return mapped{expr: qualifier + name, nilable: true, variant: name}
	}

	// A single-constructor class maps to a pointer to its structure,
	// named after the constructor. Object references must stay
	// pointers: schemas may reference themselves, which Go structs
	// cannot express by value.
	name := ToPascal(m.soleConstructor(r.Name).Name)
	return mapped{expr: "*" + qualifier + name, nilable: true}
}

// variantClass reports whether the class emits as an interface: two or
// more constructors remain visible under the current configuration.
func (m mapper) variantClass(name string) bool {
	return len(m.visibleConstructors(name)) >= 2
}

// visibleConstructors returns the class constructors that survive the
// restriction predicate.
func (m mapper) visibleConstructors(name string) []schema.Definition {
	var out []schema.Definition
	for _, d := range m.s.Constructors(name) {
		if m.opts.includeDef(d) {
			out = append(out, d)
		}
	}
	return out
}

// soleConstructor resolves a non-variant class to its structure's
// constructor: the one visible constructor, or the first declared when
// the configuration hides every member.
func (m mapper) soleConstructor(name string) schema.Definition {
	if ctors := m.visibleConstructors(name); len(ctors) > 0 {
		return ctors[0]
	}
	return m.s.Constructors(name)[0]
}

// fieldType renders a parameter's field or argument type, applying the
// optional wrapper where the base rendering has no absent state.
func (m mapper) fieldType(p schema.Parameter, qualifier string) mapped {
	t := m.goType(p.Type, qualifier)
	if p.Optional && !t.nilable {
		t.expr = "*" + t.expr
		t.nilable = true
	}
	return t
}
