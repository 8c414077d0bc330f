package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"recv":      recv,
	"quote":     func(s string) string { return fmt.Sprintf("%q", s) },
	"sentence":  sentence,
	"slotRange": slotRange,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		branchTmpl +
		collectionTmpl +
		enumTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// sentence makes a description usable as a doc comment line.
func sentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s != "" && !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

// slotRange renders slot names for a doc comment: "Row1..Row4" or "Left, Right".
func slotRange(slots []fieldData) string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.Name
	}
	if len(names) > 2 && slotPrefix(names) != "Slot" {
		return names[0] + ".." + names[len(names)-1]
	}
	return strings.Join(names, ", ")
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}
// Code generated by vss-gen. DO NOT EDIT.

package {{.Package}}

import (
"github.com/sdv-model/vss-go/pkg/vss"
)

// SchemaVersion is the VSS version of the schema this file was generated from.
const SchemaVersion = {{quote .Version}}

// LeafCount is the number of leaves in a tree built from the schema.
const LeafCount = {{.LeafCount}}

{{end}}`

const branchTmpl = `{{define "branch"}}
{{- $recv := recv .Name}}
// {{.Name}} wraps the {{.Path}} branch.
{{- if .Description}}
// {{sentence .Description}}
{{- end}}
type {{.Name}} struct {
*vss.Branch
{{- if .IsRoot}}
tree *vss.Tree
{{- end}}

{{range .Fields -}}
{{.Name}} {{.Type}}
{{end -}}
}

{{if .IsRoot -}}
func new{{.Name}}(bd *binder, t *vss.Tree) *{{.Name}} {
b := t.Root()
return &{{.Name}}{
Branch: b,
tree: t,
{{- else -}}
func new{{.Name}}(bd *binder, b *vss.Branch) *{{.Name}} {
if b == nil {
return nil
}
return &{{.Name}}{
Branch: b,
{{- end}}
{{- range .Fields}}
{{.Name}}: {{.Init}},
{{- end}}
}
}

{{range .Enums}}{{template "enum" .}}{{end}}
{{- end}}`

const collectionTmpl = `{{define "collection"}}
{{- $recv := recv .Name}}
// {{.Name}} holds the {{slotRange .Slots}} instances of {{.Path}}.
type {{.Name}} struct {
*vss.Collection

{{range .Slots -}}
{{.Name}} {{.Type}}
{{end -}}
}

func new{{.Name}}(bd *binder, c *vss.Collection) *{{.Name}} {
if c == nil || !bd.slots(c, {{len .Slots}}) {
return nil
}
return &{{.Name}}{
Collection: c,
{{- range .Slots}}
{{.Name}}: {{.Init}},
{{- end}}
}
}

// {{.Accessor}} returns the instance at the 1-based index.
func ({{$recv}} *{{.Name}}) {{.Accessor}}(index int) (*{{.Elem}}, error) {
if _, err := {{$recv}}.Collection.Element(index); err != nil {
return nil, err
}
return [...]*{{.Elem}}{ {{- range $i, $s := .Slots}}{{if $i}}, {{end}}{{$recv}}.{{$s.Name}}{{end -}} }[index-1], nil
}

{{end}}`

const enumTmpl = `{{define "enum"}}
{{- $recv := recv .Owner}}
// {{.Type}} is an allowed value of {{.Path}}.
type {{.Type}} string

const (
{{- range .Values}}
{{.Const}} {{$.Type}} = {{quote .Value}}
{{- end}}
)

{{if .Array -}}
// Set{{.Field}} assigns {{.Path}}.
func ({{$recv}} *{{.Owner}}) Set{{.Field}}(values ...{{.Type}}) error {
raw := make([]string, len(values))
for idx := range values {
raw[idx] = string(values[idx])
}
return {{$recv}}.{{.Field}}.SetValue(raw)
}

// {{.Field}}Value returns the current value of {{.Path}}.
func ({{$recv}} *{{.Owner}}) {{.Field}}Value() ([]{{.Type}}, error) {
raw, err := vss.ValueAs[[]string]({{$recv}}.{{.Field}})
if err != nil {
return nil, err
}
values := make([]{{.Type}}, len(raw))
for idx := range raw {
values[idx] = {{.Type}}(raw[idx])
}
return values, nil
}
{{- else -}}
// Set{{.Field}} assigns {{.Path}}.
func ({{$recv}} *{{.Owner}}) Set{{.Field}}(value {{.Type}}) error {
return {{$recv}}.{{.Field}}.SetValue(string(value))
}

// {{.Field}}Value returns the current value of {{.Path}}.
func ({{$recv}} *{{.Owner}}) {{.Field}}Value() ({{.Type}}, error) {
raw, err := vss.ValueAs[string]({{$recv}}.{{.Field}})
return {{.Type}}(raw), err
}
{{- end}}

{{end}}`
