package sumtype

import "fmt"

// Handlers maps variant names to payload handlers for Dispatch. The
// handler receives the payload as returned by Union.Interface.
type Handlers map[string]func(payload any) error

// Dispatch invokes the handler registered for u's current variant.
//
// Handler names are validated against u's definition first: a name that is
// not a variant of the union returns ErrUnknownVariant, so a typo fails on
// every dispatch rather than only when the misspelled variant comes up.
// A current variant without a handler returns ErrUnhandledVariant.
func Dispatch(u Union, h Handlers) error {
	if u.def == nil {
		return ErrInvalidUnion
	}
	for name := range h {
		if _, ok := u.def.byName[name]; !ok {
			return fmt.Errorf("%w: no variant %q in union %s", ErrUnknownVariant, name, u.def.name)
		}
	}

	fn, ok := h[u.Variant()]
	if !ok {
		return fmt.Errorf("%w: %s of union %s", ErrUnhandledVariant, u.Variant(), u.def.name)
	}
	return fn(u.Interface())
}
