package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"text/template"

	"github.com/fifteenlabs/tdlib-go/core/schema"
)

// runtimePath is the import path of the correlation runtime the
// generated operations dispatch through.
const runtimePath = "github.com/fifteenlabs/tdlib-go/core/client"

// Options configures a generation run.
type Options struct {
	// ModulePath is the import path under which the emitted packages
	// live; the functions package imports the types package through it.
	ModulePath string

	// TypesPackage names the data structures package. Defaults to
	// "types".
	TypesPackage string

	// FunctionsPackage names the operations package. Defaults to
	// "functions".
	FunctionsPackage string

	// IncludeRestricted emits definitions and parameters carrying the
	// restricted flag. Off by default.
	IncludeRestricted bool

	// SharedStrings renders String as the interning text type instead
	// of the native string.
	SharedStrings bool

	// EventClass names the class whose constructors are registered as
	// decodable events. Defaults to "Update".
	EventClass string
}

// includeDef reports whether a definition is visible. Both emitters
// consult this one predicate, so structure field omissions and payload
// omissions always agree.
func (o Options) includeDef(d schema.Definition) bool {
	return o.IncludeRestricted || !d.Restricted
}

// includeParam is includeDef's parameter-level counterpart.
func (o Options) includeParam(p schema.Parameter) bool {
	return o.IncludeRestricted || !p.Restricted
}

// File is one generated source file, with a path relative to the
// output directory.
type File struct {
	Path    string
	Content []byte
}

// Generator renders schemas into Go source. Output is deterministic:
// identical schemas and options produce byte-identical files.
type Generator struct {
	opts Options
	tmpl *template.Template
}

// New creates a generator, applying option defaults.
func New(opts Options) (*Generator, error) {
	if opts.TypesPackage == "" {
		opts.TypesPackage = "types"
	}
	if opts.FunctionsPackage == "" {
		opts.FunctionsPackage = "functions"
	}
	if opts.EventClass == "" {
		opts.EventClass = "Update"
	}
	if opts.ModulePath == "" {
		return nil, fmt.Errorf("module path is required")
	}

	tmpl := template.New("gen")
	for name, text := range map[string]string{
		"types":     typesTemplate,
		"variants":  variantsTemplate,
		"functions": functionsTemplate,
	} {
		var err error
		tmpl, err = tmpl.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
	}

	return &Generator{opts: opts, tmpl: tmpl}, nil
}

// Generate renders the schema into its source files: the types file,
// the variants file when the schema declares multi-constructor classes
// or events, and the functions file.
func (g *Generator) Generate(s schema.Schema) ([]File, error) {
	if err := schema.Validate(s); err != nil {
		return nil, err
	}

	md := Analyze(s)
	m := mapper{s: s, opts: g.opts}

	var files []File

	types := g.buildTypes(s, md, m)
	content, err := g.render("types", types)
	if err != nil {
		return nil, err
	}
	files = append(files, File{
		Path:    path.Join(g.opts.TypesPackage, "types.go"),
		Content: content,
	})

	variants := g.buildVariants(s, m)
	if len(variants.Variants) > 0 || variants.Events != nil {
		content, err := g.render("variants", variants)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:    path.Join(g.opts.TypesPackage, "variants.go"),
			Content: content,
		})
	}

	functions := g.buildFunctions(s, m)
	content, err = g.render("functions", functions)
	if err != nil {
		return nil, err
	}
	files = append(files, File{
		Path:    path.Join(g.opts.FunctionsPackage, "functions.go"),
		Content: content,
	})

	return files, nil
}

// render executes one template and formats the result. Unformattable
// output is returned as-is so the caller can inspect what went wrong.
func (g *Generator) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", name, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), nil
	}
	return formatted, nil
}
