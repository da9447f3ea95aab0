package gen

// The templates emit formatted source directly; render still passes
// the output through go/format to normalize residual spacing.

const typesTemplate = `// Code generated by tdgen. DO NOT EDIT.

// Package {{.Package}} holds the data structures declared by the
// schema: one structure per constructor.
package {{.Package}}
{{if .Imports}}
import (
{{range $i, $g := .Imports}}{{if $i}}
{{end}}{{range $g}}	"{{.}}"
{{end}}{{end}})
{{end}}
// typed prefixes body, a marshaled object, with its "@type"
// discriminator.
func typed(name string, body []byte) []byte {
	out := make([]byte, 0, len(name)+len(body)+12)
	out = append(out, "{\"@type\":\""...)
	out = append(out, name...)
	if len(body) > 2 {
		out = append(out, "\","...)
		out = append(out, body[1:]...)
		return out
	}
	out = append(out, "\"}"...)
	return out
}
{{range $s := .Structs}}
{{range $s.Doc}}// {{.}}
{{end}}type {{$s.Name}} struct {
{{range $f := $s.Fields}}{{range $f.Doc}}	// {{.}}
{{end}}	{{$f.Name}} {{$f.Type}} {{$f.Tag}}
{{end}}}

func ({{$s.Recv}} *{{$s.Name}}) MarshalJSON() ([]byte, error) {
	type stub {{$s.Name}}
	body, err := json.Marshal((*stub)({{$s.Recv}}))
	if err != nil {
		return nil, err
	}
	return typed("{{$s.SchemaName}}", body), nil
}
{{if $s.VariantFields}}
func ({{$s.Recv}} *{{$s.Name}}) UnmarshalJSON(raw []byte) error {
	type stub {{$s.Name}}
	var tmp struct {
		stub
{{range $f := $s.VariantFields}}		{{$f.Name}} {{$f.ShadowType}} {{$f.Tag}}
{{end}}	}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}
	*{{$s.Recv}} = {{$s.Name}}(tmp.stub)
{{range $f := $s.VariantFields}}{{if $f.Vector}}	if len(tmp.{{$f.Name}}) > 0 {
		{{$s.Recv}}.{{$f.Name}} = make([]{{$f.ElemType}}, len(tmp.{{$f.Name}}))
		for i, item := range tmp.{{$f.Name}} {
			value, err := {{$f.UnmarshalFunc}}(item)
			if err != nil {
				return err
			}
			{{$s.Recv}}.{{$f.Name}}[i] = value
		}
	}
{{else}}	if len(tmp.{{$f.Name}}) > 0 && string(tmp.{{$f.Name}}) != "null" {
		value, err := {{$f.UnmarshalFunc}}(tmp.{{$f.Name}})
		if err != nil {
			return err
		}
		{{$s.Recv}}.{{$f.Name}} = value
	}
{{end}}{{end}}	return nil
}
{{end}}{{if $s.Factory}}
// New{{$s.Name}} creates a {{$s.Name}} with zero-valued fields.
func New{{$s.Name}}() *{{$s.Name}} {
	return new({{$s.Name}})
}
{{end}}{{end}}`

const variantsTemplate = `// Code generated by tdgen. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{range $i, $g := .Imports}}{{if $i}}
{{end}}{{range $g}}	"{{.}}"
{{end}}{{end}})
{{end}}{{range $v := .Variants}}
// {{$v.Class}} is implemented by {{$v.Members}}.
type {{$v.Class}} interface {
	// {{$v.Class}}Type names the constructor behind the value.
	{{$v.Class}}Type() string
}
{{range $c := $v.Ctors}}{{if $c.EmitStruct}}
{{range $c.Doc}}// {{.}}
{{end}}type {{$c.Name}} struct{}

func ({{$c.Recv}} *{{$c.Name}}) MarshalJSON() ([]byte, error) {
	type stub {{$c.Name}}
	body, err := json.Marshal((*stub)({{$c.Recv}}))
	if err != nil {
		return nil, err
	}
	return typed("{{$c.SchemaName}}", body), nil
}
{{end}}
func (*{{$c.Name}}) {{$v.Class}}Type() string {
	return "{{$c.SchemaName}}"
}
{{end}}
// Unmarshal{{$v.Class}} decodes raw into the {{$v.Class}} constructor
// named by its "@type" discriminator.
func Unmarshal{{$v.Class}}(raw []byte) ({{$v.Class}}, error) {
	var meta struct {
		Type string {{$.MetaTag}}
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	switch meta.Type {
{{range $c := $v.Ctors}}	case "{{$c.SchemaName}}":
		var value {{$c.Name}}
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		return &value, nil
{{end}}	default:
		return nil, fmt.Errorf("unknown {{$v.Class}} constructor %q", meta.Type)
	}
}
{{end}}{{if .Events}}
// RegisterEvents registers every {{.Events.Class}} constructor, so a
// router can decode incoming events into their structures.
func RegisterEvents(reg *client.EventRegistry) {
{{range .Events.Ctors}}	reg.Register("{{.SchemaName}}", func() any { return new({{.Name}}) })
{{end}}}
{{end}}`

const functionsTemplate = `// Code generated by tdgen. DO NOT EDIT.

// Package {{.Package}} holds the schema's operations. Each function
// dispatches one request through a router and decodes the reply.
package {{.Package}}
{{if .Imports}}
import (
{{range $i, $g := .Imports}}{{if $i}}
{{end}}{{range $g}}	"{{.}}"
{{end}}{{end}})
{{end}}{{range $f := .Funcs}}
{{range $f.Doc}}// {{.}}
{{end}}{{if and $f.Doc $f.ParamDocs}}//
{{end}}{{range $f.ParamDocs}}// {{.}}
{{end}}func {{$f.Name}}(ctx context.Context, r *client.Router, clientID int32{{$f.Args}}) {{if eq $f.Result.Kind "unit"}}error{{else}}({{$f.Result.GoType}}, error){{end}} {
	payload := map[string]any{"@type": "{{$f.SchemaName}}"}
{{range $p := $f.Payload}}{{if $p.Guard}}	if {{$p.Guard}} {
		payload["{{$p.Key}}"] = {{$p.Expr}}
	}
{{else}}	payload["{{$p.Key}}"] = {{$p.Expr}}
{{end}}{{end}}	raw, err := r.Dispatch(ctx, clientID, payload)
	if err != nil {
		return {{if eq $f.Result.Kind "unit"}}err{{else}}{{$f.Result.Zero}}, err{{end}}
	}
{{if eq $f.Result.Kind "unit"}}	return client.UnitResult(raw)
{{else if eq $f.Result.Kind "object"}}	var result {{$f.Result.Base}}
	if derr := client.DecodeResult(raw, "{{$f.Result.SchemaName}}", &result); derr != nil {
		return nil, client.ResponseError(raw, "{{$f.Result.Display}}", derr)
	}
	return &result, nil
{{else if eq $f.Result.Kind "variant"}}	result, derr := {{$f.Result.UnmarshalFunc}}(raw)
	if derr != nil {
		return nil, client.ResponseError(raw, "{{$f.Result.Display}}", derr)
	}
	return result, nil
{{else if eq $f.Result.Kind "variantVector"}}	var items []json.RawMessage
	if derr := json.Unmarshal(raw, &items); derr != nil {
		return nil, client.ResponseError(raw, "{{$f.Result.Display}}", derr)
	}
	result := make({{$f.Result.GoType}}, len(items))
	for i, item := range items {
		value, derr := {{$f.Result.UnmarshalFunc}}(item)
		if derr != nil {
			return nil, client.ResponseError(raw, "{{$f.Result.Display}}", derr)
		}
		result[i] = value
	}
	return result, nil
{{else}}	var result {{$f.Result.GoType}}
	if derr := json.Unmarshal(raw, &result); derr != nil {
		return {{$f.Result.Zero}}, client.ResponseError(raw, "{{$f.Result.Display}}", derr)
	}
	return result, nil
{{end}}}
{{end}}`
