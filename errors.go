package sumtype

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooFewVariants is returned when a union is defined with fewer than
	// two variants.
	ErrTooFewVariants = errors.New("union needs at least two variants")

	// ErrDuplicateVariantType is returned when two variants declare the
	// same payload type.
	ErrDuplicateVariantType = errors.New("duplicate payload type")

	// ErrDuplicateVariantName is returned when two variants share a name.
	ErrDuplicateVariantName = errors.New("duplicate variant name")

	// ErrInvalidVariantType is returned for payload types that cannot form
	// a variant, such as interface types.
	ErrInvalidVariantType = errors.New("invalid payload type")

	// ErrUnknownVariant is returned when a variant name does not belong to
	// the union, e.g. while decoding or dispatching.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnhandledVariant is returned by Dispatch when no handler is
	// registered for the current variant.
	ErrUnhandledVariant = errors.New("unhandled variant")

	// ErrInvalidUnion is returned for operations on the zero Union.
	ErrInvalidUnion = errors.New("zero Union value")
)

// DefinitionError indicates an ill-formed union definition. The union must
// not be used; NewDef surfaces this before any Union value can exist.
//
// The violated rule can be inspected via errors.Is against the Err*
// sentinels above.
type DefinitionError struct {
	// Union is the name of the union being defined.
	Union string
	// Variant is the offending variant's name, if the violation concerns a
	// single variant.
	Variant string
	// Detail carries extra context such as the offending type.
	Detail string

	cause error
}

func (e *DefinitionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sumtype: invalid definition of %s", e.Union)
	if e.Variant != "" {
		fmt.Fprintf(&b, ", variant %s", e.Variant)
	}
	fmt.Fprintf(&b, ": %v", e.cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	return b.String()
}

func (e *DefinitionError) Unwrap() error { return e.cause }

// NotMemberError indicates a payload type outside the union's declared set.
// It is returned by Wrap and used as the panic value when a downcast names
// a non-member type.
type NotMemberError struct {
	Union       string
	PayloadType string
}

func (e *NotMemberError) Error() string {
	return fmt.Sprintf("sumtype: %s is not a member of union %s", e.PayloadType, e.Union)
}

// InvalidTypeError is returned by Downcast when the union currently holds a
// different variant than the requested one. It is an expected miss, not a
// programming error; dispatch chains probe types routinely.
type InvalidTypeError struct {
	// Expected is the variant the requested payload type belongs to.
	Expected string
	// Actual is the variant the union currently holds.
	Actual string
	// AllVariants lists every variant of the union, in declaration order.
	AllVariants []string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("sumtype: union holds %s, not %s (variants: %s)",
		e.Actual, e.Expected, strings.Join(e.AllVariants, ", "))
}
