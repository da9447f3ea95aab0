package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ref is a parsed type reference. A plain reference carries the
// referenced name; a sequence reference carries only its item.
type Ref struct {
	// Name is the built-in or class name. Empty for sequence references.
	Name string

	// Item is the element reference of a vector. Non-nil only for
	// sequence references.
	Item *Ref
}

// Built-in type names. These are never emitted as structures; the
// generator maps them to native representations.
const (
	BuiltinBool   = "Bool"
	BuiltinBytes  = "Bytes"
	BuiltinInt32  = "Int32"
	BuiltinInt53  = "Int53"
	BuiltinInt64  = "Int64"
	BuiltinString = "String"
	BuiltinOk     = "Ok" // the unit sentinel
)

// IsBuiltin reports whether name is one of the built-in type names.
func IsBuiltin(name string) bool {
	switch name {
	case BuiltinBool, BuiltinBytes, BuiltinInt32, BuiltinInt53,
		BuiltinInt64, BuiltinString, BuiltinOk:
		return true
	default:
		return false
	}
}

// ParseRef parses a type expression: a bare name such as "Int53" or
// "Message", or a sequence such as "vector<Message>". Sequences nest.
func ParseRef(expr string) (Ref, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Ref{}, fmt.Errorf("empty type expression")
	}

	if inner, ok := strings.CutPrefix(expr, "vector<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return Ref{}, fmt.Errorf("type expression %q: missing '>'", expr)
		}
		item, err := ParseRef(inner)
		if err != nil {
			return Ref{}, err
		}
		return Ref{Item: &item}, nil
	}

	if !isValidIdentifier(expr) {
		return Ref{}, fmt.Errorf("type expression %q is not a valid identifier", expr)
	}

	return Ref{Name: expr}, nil
}

// IsVector reports whether the reference is a sequence.
func (r Ref) IsVector() bool {
	return r.Item != nil
}

// IsUnit reports whether the reference is the Ok unit sentinel.
func (r Ref) IsUnit() bool {
	return !r.IsVector() && r.Name == BuiltinOk
}

// Terminal returns the innermost non-sequence name: the element name for
// (possibly nested) vectors, otherwise the reference's own name.
func (r Ref) Terminal() string {
	if r.Item != nil {
		return r.Item.Terminal()
	}
	return r.Name
}

// String renders the reference back to its type expression form.
func (r Ref) String() string {
	if r.Item != nil {
		return "vector<" + r.Item.String() + ">"
	}
	return r.Name
}

// UnmarshalYAML decodes a reference from its type expression string.
func (r *Ref) UnmarshalYAML(value *yaml.Node) error {
	var expr string
	if err := value.Decode(&expr); err != nil {
		return err
	}
	parsed, err := ParseRef(expr)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML renders the reference as its type expression string.
func (r Ref) MarshalYAML() (any, error) {
	return r.String(), nil
}
