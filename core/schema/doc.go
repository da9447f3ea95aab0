/*
Package schema defines the definition records that drive binding generation.

A schema is an ordered list of definitions. Each definition is either a
type (a data structure constructor) or an operation (a callable request),
and declares its result class, its ordered parameters, and the visibility
flags the generator honors.

# Record Format

Definitions load from YAML:

	definitions:
	  - name: user
	    category: type
	    result: User
	    description: Represents a user.
	    params:
	      - name: id
	        type: Int53
	        description: User identifier.
	      - name: username
	        type: String
	        optional: true

	  - name: getUser
	    category: operation
	    result: User
	    description: Returns information about a user.
	    params:
	      - name: user_id
	        type: Int53

# Type References

Parameter and result types are written as type expressions:

  - Bool, Bytes, Int32, Int53, Int64, String, Ok:  built-in types
  - User, ChatType, Update:                        class names (the result
    classes declared by type definitions)
  - vector<T>:                                     a sequence of T

Matching is exact and case-sensitive. Ok is the unit sentinel: operations
returning Ok produce no value, and fields may not use it.

# Classes and Constructors

A type definition's name is its constructor name (lowerCamel by
convention); its result is the class it constructs. Classes with one
constructor emit as plain structures, classes with several emit as
variant interfaces. Optionality always lives on the parameter, never on
the reference.

# Parsing

	s, err := schema.ParseFile("schema/messenger.yaml")

All definitions are validated on parse: duplicate names within a
category, malformed type expressions, unresolvable class references, and
unit-typed fields are errors. Invalid schemas never reach the generator.
*/
package schema
