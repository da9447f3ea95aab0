package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile parses a schema from a YAML file.
func ParseFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a schema from YAML bytes.
func Parse(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("parse yaml: %w", err)
	}

	if err := Validate(s); err != nil {
		return Schema{}, err
	}

	return s, nil
}

// Validate validates a schema. Inconsistencies are reported together so
// a schema author sees every problem in one pass.
func Validate(s Schema) error {
	var errs []string

	if len(s.Definitions) == 0 {
		errs = append(errs, "schema must have at least one definition")
	}

	seen := map[Category]map[string]bool{
		CategoryType:      {},
		CategoryOperation: {},
	}

	for _, def := range s.Definitions {
		if def.Name == "" {
			errs = append(errs, "definition name is required")
			continue
		}

		if !isValidIdentifier(def.Name) {
			errs = append(errs, fmt.Sprintf("definition name %q is not a valid identifier", def.Name))
		}

		byName, ok := seen[def.Category]
		if !ok {
			errs = append(errs, fmt.Sprintf("definition %q: unknown category %q", def.Name, def.Category))
		} else if byName[def.Name] {
			errs = append(errs, fmt.Sprintf("duplicate %s definition %q", def.Category, def.Name))
		} else {
			byName[def.Name] = true
		}

		errs = append(errs, validateDefinition(s, def)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// validateDefinition validates one definition's result and parameters.
func validateDefinition(s Schema, def Definition) []string {
	var errs []string

	if def.Result.Name == "" && !def.Result.IsVector() {
		errs = append(errs, fmt.Sprintf("definition %q: result is required", def.Name))
	} else if def.Category == CategoryType {
		// A type's result declares its class; built-in results mark the
		// special-cased primitive declarations, which emitters skip.
		if def.Result.IsVector() {
			errs = append(errs, fmt.Sprintf("type %q: result cannot be a vector", def.Name))
		}
	} else if err := resolveRef(s, def.Result); err != nil {
		errs = append(errs, fmt.Sprintf("operation %q: result: %v", def.Name, err))
	}

	params := map[string]bool{}
	for _, p := range def.Params {
		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("definition %q: parameter name is required", def.Name))
			continue
		}

		if !isValidIdentifier(p.Name) {
			errs = append(errs, fmt.Sprintf("definition %q: parameter name %q is not a valid identifier", def.Name, p.Name))
		}

		if params[p.Name] {
			errs = append(errs, fmt.Sprintf("definition %q: duplicate parameter %q", def.Name, p.Name))
		}
		params[p.Name] = true

		if p.Type.IsUnit() || (p.Type.IsVector() && p.Type.Terminal() == BuiltinOk) {
			errs = append(errs, fmt.Sprintf("definition %q: parameter %q cannot have the unit type", def.Name, p.Name))
			continue
		}

		if err := resolveRef(s, p.Type); err != nil {
			errs = append(errs, fmt.Sprintf("definition %q: parameter %q: %v", def.Name, p.Name, err))
		}
	}

	return errs
}

// resolveRef checks that the reference's terminal name is a built-in or
// a declared class.
func resolveRef(s Schema, r Ref) error {
	name := r.Terminal()
	if name == "" {
		return fmt.Errorf("empty type reference")
	}
	if IsBuiltin(name) || s.IsClass(name) {
		return nil
	}
	return fmt.Errorf("unresolved type reference %q", name)
}

// isValidIdentifier checks if a string is a valid identifier.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		if i == 0 {
			if !isLetter(c) && c != '_' {
				return false
			}
		} else {
			if !isLetter(c) && !isDigit(c) && c != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
