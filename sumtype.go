package sumtype

import (
	"fmt"
	"reflect"

	"github.com/Michael-F-Bryan/sumtype/codec"
)

// VariantSpec describes one member of a closed payload-type set.
//
// Build specs with Of; the zero VariantSpec is not usable.
type VariantSpec struct {
	name string
	typ  reflect.Type

	// wrap boxes a payload value so downcasts can hand out a pointer to it
	// without copying. It reports false when the value is not exactly the
	// spec's payload type.
	wrap func(v any) (box any, ok bool)

	// unbox returns the payload value held by a box produced by wrap.
	unbox func(box any) any

	// decode produces a fresh box from encoded payload bytes.
	decode func(c codec.Codec, raw []byte) (box any, err error)
}

// Of builds the VariantSpec for payload type T.
//
// The variant name defaults to T's type name (for unnamed types, the Go
// syntax of the type, e.g. "[]uint8"). Override it with WithName.
//
// Reflection is used here, at definition time, to derive the name and the
// identity key of T. The introspection operations themselves match by type
// assertion only.
func Of[T any](opts ...VariantOption) VariantSpec {
	t := reflect.TypeOf((*T)(nil)).Elem()

	s := VariantSpec{
		name: typeName(t),
		typ:  t,
		wrap: func(v any) (any, bool) {
			tv, ok := v.(T)
			if !ok {
				return nil, false
			}
			return &tv, true
		},
		unbox: func(box any) any {
			return *(box.(*T))
		},
		decode: func(c codec.Codec, raw []byte) (any, error) {
			p := new(T)
			if err := c.Unmarshal(raw, p); err != nil {
				return nil, err
			}
			return p, nil
		},
	}

	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Name returns the variant's name.
func (s VariantSpec) Name() string { return s.name }

// Type returns the variant's payload type.
func (s VariantSpec) Type() reflect.Type { return s.typ }

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// Def is the definition of a closed tagged union: a fixed, ordered set of
// at least two distinct payload types.
//
// A Def is immutable after construction and safe for concurrent use. Two
// Defs with different variant sets define unrelated unions; a Union is only
// meaningful together with the Def that produced it.
type Def struct {
	name     string
	variants []VariantSpec
	names    []string
	byType   map[reflect.Type]int
	byName   map[string]int
	codec    codec.Codec
}

// NewDef builds the definition of a union named name over the given variant
// specs, in declaration order.
//
// The set must be well formed: at least two variants, no duplicate payload
// type, no duplicate variant name, and no interface payload types (an
// interface would make payload matching ambiguous). A violation returns a
// *DefinitionError; the union must not be used in that case.
func NewDef(name string, specs ...VariantSpec) (*Def, error) {
	d := &Def{
		name:     name,
		variants: specs,
		names:    make([]string, len(specs)),
		byType:   make(map[reflect.Type]int, len(specs)),
		byName:   make(map[string]int, len(specs)),
		codec:    codec.Default,
	}

	if len(specs) < 2 {
		return nil, &DefinitionError{Union: name, cause: ErrTooFewVariants}
	}

	for i, s := range specs {
		if s.typ == nil {
			return nil, &DefinitionError{Union: name, Variant: s.name, cause: ErrInvalidVariantType}
		}
		if s.typ.Kind() == reflect.Interface {
			return nil, &DefinitionError{
				Union:   name,
				Variant: s.name,
				Detail:  s.typ.String(),
				cause:   ErrInvalidVariantType,
			}
		}
		if _, dup := d.byType[s.typ]; dup {
			return nil, &DefinitionError{
				Union:   name,
				Variant: s.name,
				Detail:  s.typ.String(),
				cause:   ErrDuplicateVariantType,
			}
		}
		if _, dup := d.byName[s.name]; dup {
			return nil, &DefinitionError{Union: name, Variant: s.name, cause: ErrDuplicateVariantName}
		}
		d.byType[s.typ] = i
		d.byName[s.name] = i
		d.names[i] = s.name
	}

	return d, nil
}

// MustDef is like NewDef but panics on an ill-formed variant set.
//
// Intended for package-level union definitions, where an ill-formed set
// should stop the program before any union value exists:
//
//	var Shape = sumtype.MustDef("Shape", sumtype.Of[Circle](), sumtype.Of[Square]())
func MustDef(name string, specs ...VariantSpec) *Def {
	d, err := NewDef(name, specs...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the union's name.
func (d *Def) Name() string { return d.name }

// Len returns the number of variants.
func (d *Def) Len() int { return len(d.variants) }

// Variants returns all variant names in declaration order.
//
// The result is identical across calls and independent of any instance.
// The returned slice is a copy; callers may keep or modify it.
func (d *Def) Variants() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Variant returns the spec for the named variant.
func (d *Def) Variant(name string) (VariantSpec, bool) {
	i, ok := d.byName[name]
	if !ok {
		return VariantSpec{}, false
	}
	return d.variants[i], true
}

// Wrap converts a payload value into a Union holding it.
//
// The value's type must be exactly one of the declared payload types; no
// conversions are applied, even between convertible types. Ownership of the
// value transfers to the Union: Wrap stores its own copy, and later
// mutations of the caller's original are not observed.
func (d *Def) Wrap(v any) (Union, error) {
	for i := range d.variants {
		if box, ok := d.variants[i].wrap(v); ok {
			return Union{def: d, tag: i, box: box}, nil
		}
	}
	return Union{}, &NotMemberError{Union: d.name, PayloadType: fmt.Sprintf("%T", v)}
}

// MustWrap is like Wrap but panics if the value's type is not a member of
// the union.
func (d *Def) MustWrap(v any) Union {
	u, err := d.Wrap(v)
	if err != nil {
		panic(err)
	}
	return u
}

// index returns the variant index for a payload type.
func (d *Def) index(t reflect.Type) (int, bool) {
	i, ok := d.byType[t]
	return i, ok
}

// Union holds exactly one value drawn from its Def's payload-type set.
//
// The discriminant and the stored payload cannot disagree: both are set
// together from the matched variant and never change afterwards. To change
// the variant, replace the whole Union with a new one from Wrap.
//
// The zero Union belongs to no Def and holds nothing; Valid reports this.
// Copies of a Union share the stored payload, so a mutation through Mut is
// visible through every copy.
type Union struct {
	def *Def
	tag int
	box any
}

// Valid reports whether u was produced by a Def.
func (u Union) Valid() bool { return u.def != nil }

// Def returns the definition u belongs to, or nil for the zero Union.
func (u Union) Def() *Def { return u.def }

// Tag returns the declaration-order index of the current variant.
// The zero Union returns -1.
func (u Union) Tag() int {
	if u.def == nil {
		return -1
	}
	return u.tag
}

// Variant returns the name of the currently held variant.
// The zero Union returns "".
func (u Union) Variant() string {
	if u.def == nil {
		return ""
	}
	return u.def.names[u.tag]
}

// Variants returns all variant names of u's union type, in declaration
// order. The result does not depend on which variant u holds.
func (u Union) Variants() []string {
	if u.def == nil {
		return nil
	}
	return u.def.Variants()
}

// Interface returns a copy of the held payload for use in a type switch:
//
//	switch v := u.Interface().(type) {
//	case Circle:
//		...
//	case Square:
//		...
//	}
//
// The zero Union returns nil.
func (u Union) Interface() any {
	if u.def == nil {
		return nil
	}
	return u.def.variants[u.tag].unbox(u.box)
}
