// Package sumtype provides closed tagged unions with runtime introspection
// for Go.
//
// A union is defined once, over a fixed set of at least two distinct
// payload types, and every value of it holds exactly one payload from that
// set. The discriminant and the stored payload can never disagree, and the
// variant set can never grow at runtime.
//
// # Quick Start
//
//	type Circle struct{ Radius float64 }
//	type Square struct{ Side float64 }
//
//	var Shape = sumtype.MustDef("Shape",
//	    sumtype.Of[Circle](),
//	    sumtype.Of[Square](),
//	)
//
//	u := Shape.MustWrap(Circle{Radius: 2})
//
//	u.Variant()             // "Circle"
//	u.Variants()            // ["Circle", "Square"]
//	sumtype.Is[Circle](u)   // true
//	sumtype.Is[Square](u)   // false
//
//	if c, ok := sumtype.Ref[Circle](u); ok {
//	    _ = c.Radius // no copy; c points into the union's storage
//	}
//
// # Definition-Time Errors
//
// An ill-formed variant set (fewer than two variants, duplicate payload
// type, duplicate variant name, interface payload type) is rejected by
// NewDef before any union value can exist. MustDef panics instead, for
// package-level definitions. Run-time operations have no failure mode of
// their own: Variant and Variants are total, and a downcast to another
// member of the set is an ordinary miss, not an error.
//
// # Downcasts
//
// Matching is by exact type identity, never by convertibility or
// structure. Two distinct named types with the same underlying struct are
// different variants. Asking for a type outside the declared set is a
// programming error and panics; misses within the set report false:
//
//	sumtype.Ref[Square](u)      // nil, false
//	sumtype.Mut[Circle](&u)     // *Circle, true; mutations are observed by later reads
//	sumtype.Downcast[Square](u) // zero, *InvalidTypeError
//
// # Encoding
//
// Unions encode to a JSON envelope ({"variant": ..., "value": ...}) or a
// compact tagged binary form. Decoding recovers the concrete payload type
// and therefore lives on the definition:
//
//	b, _ := u.MarshalJSON()
//	u2, _ := Shape.DecodeJSON(b)
//
// Payload bytes go through a pluggable codec (see the codec subpackage);
// the default is goccy/go-json.
//
// # Generated Unions
//
// The sumtypegen tool (cmd/sumtypegen, driven by the gen package) emits a
// concrete union type per definition with compile-time-safe accessors, for
// code where the dynamic API's non-member panic should instead be a build
// failure.
//
// # Subpackages
//
//   - codec: payload codec abstraction (json, go-json, zstd wrapper)
//   - gen: union definition files and Go source generation
package sumtype
