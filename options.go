package sumtype

// VariantOption configures a VariantSpec built by Of.
type VariantOption func(*VariantSpec)

// WithName overrides the derived variant name.
//
// Use this when two payload types would derive the same name (e.g. a named
// type and a pointer to it), or to keep wire-level names stable while the
// Go type is renamed.
func WithName(name string) VariantOption {
	return func(s *VariantSpec) {
		s.name = name
	}
}
