package gen

import (
	"path"
	"sort"
	"strings"

	"github.com/fifteenlabs/tdlib-go/core/schema"
)

// typesFile is the template model for the structures file.
type typesFile struct {
	Package string
	Imports [][]string
	Structs []structModel
}

type structModel struct {
	Doc        []string
	Name       string
	SchemaName string
	Recv       string
	Fields     []fieldModel
	// VariantFields lists the fields whose declared type is a variant
	// interface; their presence triggers a decoding method.
	VariantFields []fieldModel
	// Factory marks constructors whose zero value is usable as-is, so
	// a New helper is worth emitting.
	Factory bool
}

type fieldModel struct {
	Doc  []string
	Name string
	Type string
	Tag  string

	// ShadowType is the raw stand-in used while decoding variant
	// fields, UnmarshalFunc the class helper that resolves them.
	ShadowType    string
	UnmarshalFunc string
	// Vector marks element-wise resolution; ElemType is the interface
	// the resolved slice holds.
	Vector   bool
	ElemType string
}

// variantsFile is the template model for the variant interfaces file.
type variantsFile struct {
	Package  string
	Imports  [][]string
	MetaTag  string
	Variants []variantModel
	Events   *eventsModel
}

type variantModel struct {
	Class string
	// Members lists the constructor type names for the interface doc,
	// joined for prose ("A, B and C").
	Members string
	Ctors   []ctorModel
}

type ctorModel struct {
	Doc        []string
	Name       string
	SchemaName string
	Recv       string
	// EmitStruct marks parameterless constructors, which have no
	// structure in the types file and are declared here instead.
	EmitStruct bool
}

type eventsModel struct {
	Class string
	Ctors []eventCtor
}

type eventCtor struct {
	SchemaName string
	Name       string
}

// functionsFile is the template model for the operations file.
type functionsFile struct {
	Package string
	Imports [][]string
	Funcs   []funcModel
}

type funcModel struct {
	Doc        []string
	ParamDocs  []string
	Name       string
	SchemaName string
	// Args is the rendered parameter list after the fixed arguments,
	// including its leading comma.
	Args    string
	Payload []payloadEntry
	Result  resultModel
}

type payloadEntry struct {
	Key  string
	Expr string
	// Guard wraps optional entries: the assignment only runs when the
	// condition holds, absent parameters stay off the wire.
	Guard string
}

type resultModel struct {
	// Kind selects the decode tail: "unit", "object", "variant",
	// "variantVector" or "plain".
	Kind   string
	GoType string
	// Base is GoType without the pointer for declaring the value an
	// object decode fills.
	Base       string
	SchemaName string
	// Display names the expected type in decode failures.
	Display string
	// UnmarshalFunc is the class helper resolving variant results,
	// qualified with the types package.
	UnmarshalFunc string
	// Zero is the expression returned alongside errors.
	Zero string
}

// Generated bodies use a handful of fixed locals; receivers and
// arguments that would shadow one get a trailing underscore, the same
// escape keywords receive.
var reservedLocals = map[string]bool{
	"ctx": true, "r": true, "clientID": true, "payload": true,
	"raw": true, "err": true, "derr": true, "result": true,
	"items": true, "item": true, "value": true, "i": true,
	"stub": true, "tmp": true, "body": true, "out": true, "meta": true,
}

func localName(name string) string {
	if reservedLocals[name] {
		return name + "_"
	}
	return name
}

func docLines(desc string) []string {
	if desc == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(desc, "\n"), "\n")
}

func docLine(desc string) string {
	return strings.Join(docLines(desc), " ")
}

func jsonTag(name string, stringTag bool) string {
	tag := name
	if stringTag {
		tag += ",string"
	}
	return "`json:\"" + tag + "\"`"
}

// emitsStruct reports whether a constructor has a structure of its
// own. Parameterless constructors only materialize as members of a
// variant interface; built-in results mark primitive declarations,
// which have no structure at all.
func (g *Generator) emitsStruct(m mapper, d schema.Definition) bool {
	if schema.IsBuiltin(d.Result.Name) {
		return false
	}
	if len(d.Params) > 0 {
		return true
	}
	return m.variantClass(d.Result.Name)
}

func (g *Generator) buildTypes(s schema.Schema, md *Metadata, m mapper) typesFile {
	file := typesFile{Package: path.Base(g.opts.TypesPackage)}

	usesClient := false
	for _, def := range s.Types() {
		if !g.opts.includeDef(def) {
			continue
		}
		if schema.IsBuiltin(def.Result.Name) || len(def.Params) == 0 {
			continue
		}

		sm := structModel{
			Doc:        docLines(def.Description),
			Name:       ToPascal(def.Name),
			SchemaName: def.Name,
			Recv:       localName(ToCamel(def.Name)),
			Factory:    md.DefaultDerivable(def.Name),
		}

		for _, p := range def.Params {
			if !g.opts.includeParam(p) {
				continue
			}
			t := m.fieldType(p, "")
			fm := fieldModel{
				Doc:  docLines(p.Description),
				Name: ToPascal(p.Name),
				Type: t.expr,
				Tag:  jsonTag(p.Name, t.stringTag),
			}
			if strings.Contains(t.expr, "client.") {
				usesClient = true
			}
			switch {
			case t.variant != "":
				fm.ShadowType = "json.RawMessage"
				fm.UnmarshalFunc = "Unmarshal" + t.variant
				sm.VariantFields = append(sm.VariantFields, fm)
			case t.variantVector:
				fm.ShadowType = "[]json.RawMessage"
				fm.UnmarshalFunc = "Unmarshal" + ToPascal(p.Type.Item.Name)
				fm.Vector = true
				fm.ElemType = ToPascal(p.Type.Item.Name)
				sm.VariantFields = append(sm.VariantFields, fm)
			}
			sm.Fields = append(sm.Fields, fm)
		}

		file.Structs = append(file.Structs, sm)
	}

	if len(file.Structs) > 0 {
		file.Imports = append(file.Imports, []string{"encoding/json"})
		if usesClient {
			file.Imports = append(file.Imports, []string{runtimePath})
		}
	}
	return file
}

func (g *Generator) buildVariants(s schema.Schema, m mapper) variantsFile {
	file := variantsFile{
		Package: path.Base(g.opts.TypesPackage),
		MetaTag: "`json:\"@type\"`",
	}

	for _, class := range s.ClassNames() {
		ctors := m.visibleConstructors(class)
		if len(ctors) < 2 {
			continue
		}

		vm := variantModel{Class: ToPascal(class)}
		var members []string
		for _, d := range ctors {
			members = append(members, ToPascal(d.Name))
			vm.Ctors = append(vm.Ctors, ctorModel{
				Doc:        docLines(d.Description),
				Name:       ToPascal(d.Name),
				SchemaName: d.Name,
				Recv:       localName(ToCamel(d.Name)),
				EmitStruct: len(d.Params) == 0,
			})
		}
		vm.Members = joinProse(members)
		file.Variants = append(file.Variants, vm)
	}

	if ev := g.buildEvents(s, m); len(ev.Ctors) > 0 {
		file.Events = &ev
	}

	if len(file.Variants) > 0 {
		file.Imports = append(file.Imports, []string{"encoding/json", "fmt"})
	}
	if file.Events != nil {
		file.Imports = append(file.Imports, []string{runtimePath})
	}
	return file
}

// buildEvents collects the registrable constructors of the configured
// event class: those that materialize as structures.
func (g *Generator) buildEvents(s schema.Schema, m mapper) eventsModel {
	ev := eventsModel{Class: g.opts.EventClass}
	for _, d := range m.visibleConstructors(g.opts.EventClass) {
		if !g.emitsStruct(m, d) {
			continue
		}
		ev.Ctors = append(ev.Ctors, eventCtor{
			SchemaName: d.Name,
			Name:       ToPascal(d.Name),
		})
	}
	return ev
}

func (g *Generator) buildFunctions(s schema.Schema, m mapper) functionsFile {
	file := functionsFile{Package: path.Base(g.opts.FunctionsPackage)}
	qualifier := path.Base(g.opts.TypesPackage) + "."

	usesTypes := false
	usesJSON := false
	for _, op := range s.Operations() {
		if !g.opts.includeDef(op) {
			continue
		}

		fm := funcModel{
			Doc:        docLines(op.Description),
			Name:       ToPascal(op.Name),
			SchemaName: op.Name,
		}

		var args strings.Builder
		for _, p := range op.Params {
			if !g.opts.includeParam(p) {
				continue
			}
			t := m.fieldType(p, qualifier)
			name := localName(ToCamel(p.Name))

			args.WriteString(", ")
			args.WriteString(name)
			args.WriteString(" ")
			args.WriteString(t.expr)
			if strings.Contains(t.expr, qualifier) {
				usesTypes = true
			}
			if p.Description != "" {
				fm.ParamDocs = append(fm.ParamDocs, name+": "+docLine(p.Description))
			}

			entry := payloadEntry{Key: p.Name, Expr: name}
			if t.stringTag {
				if p.Optional {
					entry.Expr = "(*client.Int64String)(" + name + ")"
				} else {
					entry.Expr = "client.Int64String(" + name + ")"
				}
			}
			if p.Optional {
				entry.Guard = name + " != nil"
			}
			fm.Payload = append(fm.Payload, entry)
		}
		fm.Args = args.String()

		fm.Result = g.buildResult(op.Result, m, qualifier)
		switch fm.Result.Kind {
		case "plain", "variantVector":
			usesJSON = true
		}
		if strings.Contains(fm.Result.GoType, qualifier) {
			usesTypes = true
		}

		file.Funcs = append(file.Funcs, fm)
	}

	if len(file.Funcs) > 0 {
		std := []string{"context"}
		if usesJSON {
			std = append(std, "encoding/json")
		}
		file.Imports = append(file.Imports, std)
		own := []string{runtimePath}
		if usesTypes {
			own = append(own, g.opts.ModulePath+"/"+g.opts.TypesPackage)
		}
		sort.Strings(own)
		file.Imports = append(file.Imports, own)
	}
	return file
}

func (g *Generator) buildResult(r schema.Ref, m mapper, qualifier string) resultModel {
	if r.IsUnit() {
		return resultModel{Kind: "unit"}
	}

	t := m.goType(r, qualifier)
	rm := resultModel{GoType: t.expr, Display: t.expr, Zero: zeroExpr(t)}

	switch {
	case t.variant != "":
		rm.Kind = "variant"
		rm.UnmarshalFunc = qualifier + "Unmarshal" + t.variant
	case t.variantVector:
		rm.Kind = "variantVector"
		rm.UnmarshalFunc = qualifier + "Unmarshal" + ToPascal(r.Item.Name)
	case !r.IsVector() && !schema.IsBuiltin(r.Name):
		rm.Kind = "object"
		ctor := m.soleConstructor(r.Name)
		rm.SchemaName = ctor.Name
		rm.Display = ToPascal(ctor.Name)
		rm.Base = strings.TrimPrefix(t.expr, "*")
	default:
		rm.Kind = "plain"
	}
	return rm
}

func zeroExpr(t mapped) string {
	if t.nilable {
		return "nil"
	}
	switch t.expr {
	case "bool":
		return "false"
	case "string", "client.SharedString":
		return `""`
	}
	return "0"
}

// joinProse renders a name list for documentation: "A", "A and B",
// "A, B and C".
func joinProse(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
