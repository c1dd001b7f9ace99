package gen

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/Michael-F-Bryan/sumtype"
)

// File is one union definition file: a target package and the unions to
// emit into it.
type File struct {
	// Package is the Go package the generated file declares.
	Package string `yaml:"package"`
	// Imports lists extra import paths needed by payload types declared
	// outside the target package, e.g. "math/big" for "*big.Int".
	Imports []string `yaml:"imports,omitempty"`
	// Unions are the union types to generate.
	Unions []Union `yaml:"unions"`
}

// Union declares one union type.
type Union struct {
	// Name is the generated type's name.
	Name string `yaml:"name"`
	// Variants is the closed payload set, in declaration order.
	Variants []Variant `yaml:"variants"`
}

// Variant declares one member of a union's payload set.
type Variant struct {
	// Name identifies the variant. Optional; when empty it is derived from
	// Type (the type's own name, first letter upper-cased).
	Name string `yaml:"name,omitempty"`
	// Type is the Go payload type, e.g. "Circle" or "*big.Int".
	Type string `yaml:"type"`
}

// Load reads and decodes a definition file. Unknown YAML fields are
// rejected, so a typoed key fails loudly instead of being dropped.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("gen: decode %s: %w", path, err)
	}
	return &f, nil
}

// ValidationError indicates a definition that must not be generated. The
// violated rule is available via errors.Is against the sumtype.Err*
// sentinels.
type ValidationError struct {
	Union   string
	Variant string
	Detail  string
	Err     error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("gen: invalid definition")
	if e.Union != "" {
		fmt.Fprintf(&b, " of %s", e.Union)
	}
	if e.Variant != "" {
		fmt.Fprintf(&b, ", variant %s", e.Variant)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the whole file against the definition-time rules: a
// valid package and union names, at least two variants per union, unique
// payload types, and unique, identifier-shaped variant names. Name
// uniqueness is case-insensitive because variant names double as struct
// field names in the generated code.
func (f *File) Validate() error {
	if !isIdentifier(f.Package) {
		return &ValidationError{Err: fmt.Errorf("package must be a Go identifier, got %q", f.Package)}
	}

	unionNames := make(map[string]struct{}, len(f.Unions))
	for _, u := range f.Unions {
		if !isIdentifier(u.Name) {
			return &ValidationError{Union: u.Name, Err: fmt.Errorf("union name must be a Go identifier")}
		}
		if _, dup := unionNames[u.Name]; dup {
			return &ValidationError{Union: u.Name, Err: fmt.Errorf("duplicate union name")}
		}
		unionNames[u.Name] = struct{}{}

		if err := u.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (u *Union) validate() error {
	if len(u.Variants) < 2 {
		return &ValidationError{Union: u.Name, Err: sumtype.ErrTooFewVariants}
	}

	types := make(map[string]struct{}, len(u.Variants))
	names := make(map[string]struct{}, len(u.Variants))
	for _, v := range u.Variants {
		if v.Type == "" {
			return &ValidationError{Union: u.Name, Variant: v.Name, Err: sumtype.ErrInvalidVariantType}
		}
		if _, dup := types[v.Type]; dup {
			return &ValidationError{
				Union:   u.Name,
				Variant: v.Name,
				Detail:  v.Type,
				Err:     sumtype.ErrDuplicateVariantType,
			}
		}
		types[v.Type] = struct{}{}

		name := v.EffectiveName()
		if name == "" {
			return &ValidationError{
				Union: u.Name,
				Err:   fmt.Errorf("no variant name derivable from type %q", v.Type),
			}
		}
		if !isExportedIdentifier(name) {
			return &ValidationError{
				Union:   u.Name,
				Variant: name,
				Err:     fmt.Errorf("variant name must be an exported Go identifier"),
			}
		}
		key := strings.ToLower(name)
		if _, dup := names[key]; dup {
			return &ValidationError{Union: u.Name, Variant: name, Err: sumtype.ErrDuplicateVariantName}
		}
		names[key] = struct{}{}
	}
	return nil
}

// EffectiveName returns the declared variant name, or the name derived
// from the payload type: pointer stars and the package qualifier are
// stripped and the first letter is upper-cased, so "*big.Int" derives
// "Int". Types without a usable name (e.g. "[]byte") derive nothing and
// need an explicit name.
func (v Variant) EffectiveName() string {
	if v.Name != "" {
		return v.Name
	}

	t := strings.TrimLeft(v.Type, "*")
	if i := strings.LastIndex(t, "."); i >= 0 {
		t = t[i+1:]
	}
	if !isIdentifier(t) {
		return ""
	}
	r, size := utf8.DecodeRuneInString(t)
	return string(unicode.ToUpper(r)) + t[size:]
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func isExportedIdentifier(s string) bool {
	if !isIdentifier(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
