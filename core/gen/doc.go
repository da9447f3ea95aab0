/*
Package gen renders a parsed schema into Go source files.

A generation run produces up to three files: a types file declaring one
structure per constructor, a variants file declaring the interfaces of
multi-constructor classes together with their decode helpers, and a
functions file declaring one dispatch function per operation.

# Determinism

Generate walks the schema in declaration order and formats its output
with go/format. Equal schemas and options produce byte-identical files,
so generated code can be committed and diffed against regeneration.

# Restricted definitions

Definitions and parameters marked restricted are omitted unless the
options include them. Visibility is decided by one predicate shared by
every emitter, so a hidden constructor disappears from its class
interface, its structures and its operations in the same run.
*/
package gen
