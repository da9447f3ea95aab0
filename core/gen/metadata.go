package gen

import (
	"github.com/fifteenlabs/tdlib-go/core/schema"
)

// Metadata holds per-definition facts derived once per generation run.
type Metadata struct {
	derivable map[string]bool
}

// derivState tracks the memoized walk over type definitions.
type derivState int

const (
	unvisited derivState = iota
	inProgress
	resolved
)

// Analyze computes metadata for every type definition. Restricted
// definitions and parameters participate exactly like unrestricted
// ones; visibility is an emission concern.
func Analyze(s schema.Schema) *Metadata {
	md := &Metadata{derivable: make(map[string]bool)}

	states := make(map[string]derivState)
	for _, def := range s.Types() {
		md.walk(s, def, states)
	}
	return md
}

// DefaultDerivable reports whether the named type definition has a
// structurally valid zero value: every non-optional field's type is
// itself default-derivable. Unknown names report false.
func (md *Metadata) DefaultDerivable(ctorName string) bool {
	return md.derivable[ctorName]
}

// walk resolves one definition, memoizing the result. A definition
// reached while still in progress is part of a reference cycle and
// resolves false: no finite value can satisfy the required chain.
func (md *Metadata) walk(s schema.Schema, def schema.Definition, states map[string]derivState) bool {
	switch states[def.Name] {
	case resolved:
		return md.derivable[def.Name]
	case inProgress:
		return false
	}
	states[def.Name] = inProgress

	result := true
	for _, p := range def.Params {
		if p.Optional {
			continue
		}
		if !md.refDerivable(s, p.Type, states) {
			result = false
			break
		}
	}

	states[def.Name] = resolved
	md.derivable[def.Name] = result
	return result
}

// refDerivable resolves one type reference. Sequences always derive
// (the empty sequence); built-ins always derive; a class derives only
// when it has a single constructor and that constructor derives.
func (md *Metadata) refDerivable(s schema.Schema, r schema.Ref, states map[string]derivState) bool {
	if r.IsVector() {
		return true
	}
	if schema.IsBuiltin(r.Name) {
		return true
	}

	ctors := s.Constructors(r.Name)
	if len(ctors) != 1 {
		return false
	}
	return md.walk(s, ctors[0], states)
}
