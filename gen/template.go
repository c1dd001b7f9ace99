package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

type fileData struct {
	Source  string
	Package string
	Imports []string
	Unions  []unionData
}

type unionData struct {
	Name     string
	Tag      string // tag type, e.g. ShapeTag
	VarList  string // variant-name array, e.g. shapeVariants
	TypeList string // doc string, e.g. "Circle | Square"
	Variants []variantData
}

type variantData struct {
	Name  string // Circle
	Type  string // Circle, *big.Int, ...
	Field string // storage field, e.g. circle
	Const string // tag constant, e.g. ShapeTagCircle
}

// Render produces the gofmt-formatted Go source for a validated
// definition file. source names the definition in the generated header.
func Render(f *File, source string) ([]byte, error) {
	data := fileData{
		Source:  source,
		Package: f.Package,
		Imports: f.Imports,
		Unions:  make([]unionData, 0, len(f.Unions)),
	}

	for _, u := range f.Unions {
		ud := unionData{
			Name:     u.Name,
			Tag:      u.Name + "Tag",
			VarList:  lowerFirst(u.Name) + "Variants",
			Variants: make([]variantData, 0, len(u.Variants)),
		}
		types := make([]string, 0, len(u.Variants))
		for _, v := range u.Variants {
			name := v.EffectiveName()
			ud.Variants = append(ud.Variants, variantData{
				Name:  name,
				Type:  v.Type,
				Field: lowerFirst(name),
				Const: ud.Tag + name,
			})
			types = append(types, v.Type)
		}
		ud.TypeList = strings.Join(types, " | ")
		data.Unions = append(data.Unions, ud)
	}

	var buf bytes.Buffer
	if err := unionTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: render %s: %w", source, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// The raw output helps diagnose a broken definition; the error
		// includes the offending line.
		return nil, fmt.Errorf("gen: format %s: %w", source, err)
	}
	return src, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

var unionTmpl = template.Must(template.New("union").Parse(`// Code generated by sumtypegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{- if .Imports}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{- end}}
{{- range .Unions}}{{$u := .}}

// {{$u.Tag}} identifies the variant held by a {{$u.Name}}.
type {{$u.Tag}} uint8

const (
{{- range $i, $v := $u.Variants}}
	{{$v.Const}}{{if eq $i 0}} {{$u.Tag}} = iota{{end}}
{{- end}}
)

var {{$u.VarList}} = [...]string{
{{- range $u.Variants}}
	"{{.Name}}",
{{- end}}
}

// {{$u.Name}} is a closed union over {{$u.TypeList}}.
// Exactly one variant is populated at a time; the zero {{$u.Name}} holds
// the zero {{(index $u.Variants 0).Name}}.
type {{$u.Name}} struct {
	tag {{$u.Tag}}
{{- range $u.Variants}}
	{{.Field}} {{.Type}}
{{- end}}
}
{{- range $v := $u.Variants}}

// {{$u.Name}}Of{{$v.Name}} wraps v in a {{$u.Name}}.
func {{$u.Name}}Of{{$v.Name}}(v {{$v.Type}}) {{$u.Name}} {
	return {{$u.Name}}{tag: {{$v.Const}}, {{$v.Field}}: v}
}
{{- end}}

// Tag returns the discriminant of the current variant.
func (u {{$u.Name}}) Tag() {{$u.Tag}} { return u.tag }

// Variant returns the name of the current variant.
func (u {{$u.Name}}) Variant() string { return {{$u.VarList}}[u.tag] }

// {{$u.Name}}Variants returns all variant names in declaration order.
func {{$u.Name}}Variants() []string {
	out := make([]string, len({{$u.VarList}}))
	copy(out, {{$u.VarList}}[:])
	return out
}
{{- range $v := $u.Variants}}

// Is{{$v.Name}} reports whether u currently holds the {{$v.Name}} variant.
func (u {{$u.Name}}) Is{{$v.Name}}() bool { return u.tag == {{$v.Const}} }

// As{{$v.Name}} returns a pointer to the held payload if the current
// variant is {{$v.Name}}.
func (u *{{$u.Name}}) As{{$v.Name}}() (*{{$v.Type}}, bool) {
	if u.tag != {{$v.Const}} {
		return nil, false
	}
	return &u.{{$v.Field}}, true
}
{{- end}}

// Interface returns the held payload for use in a type switch.
func (u {{$u.Name}}) Interface() any {
	switch u.tag {
{{- range $v := $u.Variants}}
	case {{$v.Const}}:
		return u.{{$v.Field}}
{{- end}}
	}
	panic("invalid {{$u.Name}} tag")
}
{{- end}}
`))
