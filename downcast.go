package sumtype

import "reflect"

// Ref returns a pointer to the held payload if the current variant's type
// is exactly T.
//
// A well-formed miss (the union holds another member of its set) returns
// (nil, false). Naming a T outside the declared set is a programming error
// and panics with a *NotMemberError; the definition fixes which downcasts
// are meaningful. The zero Union always misses.
//
// The returned pointer aliases the union's storage: no copy is made, and a
// later Mut on the same Union hands out the same storage. Concurrent use
// follows the usual Go rules for shared pointers.
func Ref[T any](u Union) (*T, bool) {
	if p, ok := u.box.(*T); ok {
		return p, true
	}
	assertMember[T](u.def)
	return nil, false
}

// Mut returns a mutable pointer to the held payload if the current
// variant's type is exactly T. The matching rule and the non-member panic
// are the same as for Ref.
//
// Mutations through the returned pointer are observed by every later Ref
// or Downcast on u and on copies of u.
func Mut[T any](u *Union) (*T, bool) {
	if p, ok := u.box.(*T); ok {
		return p, true
	}
	assertMember[T](u.def)
	return nil, false
}

// Is reports whether the currently held payload's type is exactly T.
//
// Equivalent to Ref[T] followed by discarding the pointer, without handing
// a reference to the caller. Panics like Ref for a T outside the set.
func Is[T any](u Union) bool {
	if _, ok := u.box.(*T); ok {
		return true
	}
	assertMember[T](u.def)
	return false
}

// Downcast returns a copy of the held payload if the current variant's
// type is exactly T.
//
// On a miss it returns a *InvalidTypeError naming the expected variant,
// the actual variant and the full variant list. Panics like Ref for a T
// outside the set, and returns ErrInvalidUnion for the zero Union.
func Downcast[T any](u Union) (T, error) {
	if p, ok := u.box.(*T); ok {
		return *p, nil
	}

	var zero T
	if u.def == nil {
		return zero, ErrInvalidUnion
	}

	i, ok := u.def.index(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		panic(&NotMemberError{Union: u.def.name, PayloadType: reflect.TypeOf((*T)(nil)).Elem().String()})
	}
	return zero, &InvalidTypeError{
		Expected:    u.def.names[i],
		Actual:      u.Variant(),
		AllVariants: u.def.Variants(),
	}
}

// assertMember panics when T is not in d's declared payload set. A nil d
// (zero Union) is skipped; the zero value misses everything.
func assertMember[T any](d *Def) {
	if d == nil {
		return
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := d.byType[t]; !ok {
		panic(&NotMemberError{Union: d.name, PayloadType: t.String()})
	}
}
