package schema

// Definition is a single schema entry: one type constructor or one
// callable operation. Definitions are immutable after parse.
type Definition struct {
	// Name is the constructor or operation name, unique within its
	// category. By convention constructors are lowerCamel ("chatTypePrivate")
	// and so are operations ("getChat").
	Name string `yaml:"name"`

	// Category says whether this definition emits a data structure or a
	// callable. See Category constants.
	Category Category `yaml:"category"`

	// Result is the class this definition constructs (for types) or
	// returns (for operations). For most single-constructor types it is
	// the name's PascalCase form.
	Result Ref `yaml:"result"`

	// Description is carried into generated doc comments unchanged.
	Description string `yaml:"description,omitempty"`

	// Restricted marks definitions visible only when the generator runs
	// with the restricted API capability enabled.
	Restricted bool `yaml:"restricted,omitempty"`

	// Params are the definition's fields or call inputs. Order is
	// significant and is preserved through emission and payload
	// construction.
	Params []Parameter `yaml:"params,omitempty"`
}

// Parameter is one field of a type or one input of an operation.
type Parameter struct {
	// Name is the schema field name, used verbatim as the wire key.
	Name string `yaml:"name"`

	// Type is the parameter's type reference.
	Type Ref `yaml:"type"`

	// Optional marks values that may be absent. Optionality lives here,
	// never on the reference itself.
	Optional bool `yaml:"optional,omitempty"`

	// Restricted marks parameters visible only under the restricted API
	// capability.
	Restricted bool `yaml:"restricted,omitempty"`

	// Description is carried into generated doc comments unchanged.
	Description string `yaml:"description,omitempty"`
}

// Category classifies a definition.
type Category string

const (
	// CategoryType marks data structure constructors.
	CategoryType Category = "type"

	// CategoryOperation marks callable request definitions.
	CategoryOperation Category = "operation"
)

// Schema is an ordered list of definitions plus lookup helpers. The
// declaration order of the underlying records is preserved everywhere.
type Schema struct {
	Definitions []Definition `yaml:"definitions"`
}

// Types returns the type-category definitions in declaration order.
func (s Schema) Types() []Definition {
	return s.byCategory(CategoryType)
}

// Operations returns the operation-category definitions in declaration order.
func (s Schema) Operations() []Definition {
	return s.byCategory(CategoryOperation)
}

func (s Schema) byCategory(c Category) []Definition {
	var defs []Definition
	for _, d := range s.Definitions {
		if d.Category == c {
			defs = append(defs, d)
		}
	}
	return defs
}

// ClassNames returns every class declared by a type definition, in order
// of first appearance. Built-in result classes are excluded.
func (s Schema) ClassNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, d := range s.Types() {
		name := d.Result.Name
		if d.Result.IsVector() || IsBuiltin(name) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Constructors returns the type definitions constructing the given
// class, in declaration order.
func (s Schema) Constructors(class string) []Definition {
	var defs []Definition
	for _, d := range s.Types() {
		if !d.Result.IsVector() && d.Result.Name == class {
			defs = append(defs, d)
		}
	}
	return defs
}

// IsClass reports whether name is a class declared by some type
// definition.
func (s Schema) IsClass(name string) bool {
	for _, d := range s.Types() {
		if !d.Result.IsVector() && d.Result.Name == name {
			return true
		}
	}
	return false
}

// TypeByName returns the type definition with the given constructor name.
func (s Schema) TypeByName(name string) (Definition, bool) {
	for _, d := range s.Types() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// OperationByName returns the operation definition with the given name.
func (s Schema) OperationByName(name string) (Definition, bool) {
	for _, d := range s.Operations() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
