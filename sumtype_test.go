package sumtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Circle struct {
	Radius float64 `json:"radius"`
}

type Square struct {
	Side float64 `json:"side"`
}

type Triangle struct {
	Base   float64 `json:"base"`
	Height float64 `json:"height"`
}

func newShapeDef(t *testing.T) *Def {
	t.Helper()
	d, err := NewDef("Shape", Of[Circle](), Of[Square]())
	require.NoError(t, err)
	return d
}

func TestNewDefValidation(t *testing.T) {
	tests := []struct {
		name  string
		specs []VariantSpec
		want  error
	}{
		{
			name:  "no variants",
			specs: nil,
			want:  ErrTooFewVariants,
		},
		{
			name:  "one variant",
			specs: []VariantSpec{Of[Circle]()},
			want:  ErrTooFewVariants,
		},
		{
			name:  "duplicate payload type",
			specs: []VariantSpec{Of[Circle](), Of[Circle](WithName("Other"))},
			want:  ErrDuplicateVariantType,
		},
		{
			name:  "duplicate variant name",
			specs: []VariantSpec{Of[Circle](WithName("Shape")), Of[Square](WithName("Shape"))},
			want:  ErrDuplicateVariantName,
		},
		{
			name:  "interface payload type",
			specs: []VariantSpec{Of[Circle](), Of[error]()},
			want:  ErrInvalidVariantType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDef("Bad", tt.specs...)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, d)

			var defErr *DefinitionError
			require.ErrorAs(t, err, &defErr)
			assert.Equal(t, "Bad", defErr.Union)
		})
	}
}

func TestMustDefPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustDef("Bad", Of[Circle]())
	})
	assert.NotPanics(t, func() {
		MustDef("Shape", Of[Circle](), Of[Square]())
	})
}

func TestWrap(t *testing.T) {
	d := newShapeDef(t)

	u, err := d.Wrap(Circle{Radius: 2})
	require.NoError(t, err)
	assert.True(t, u.Valid())
	assert.Equal(t, "Circle", u.Variant())
	assert.Equal(t, 0, u.Tag())
	assert.Same(t, d, u.Def())

	u, err = d.Wrap(Square{Side: 3})
	require.NoError(t, err)
	assert.Equal(t, "Square", u.Variant())
	assert.Equal(t, 1, u.Tag())
}

func TestWrapRejectsNonMember(t *testing.T) {
	d := newShapeDef(t)

	_, err := d.Wrap(Triangle{Base: 1, Height: 2})
	var nm *NotMemberError
	require.ErrorAs(t, err, &nm)
	assert.Equal(t, "Shape", nm.Union)

	assert.Panics(t, func() { d.MustWrap(42) })
}

func TestWrapNoImplicitConversion(t *testing.T) {
	// float64 is convertible to Radius-like types but conversion must
	// never be applied across the payload set.
	d := MustDef("Num", Of[int](), Of[float64]())

	u := d.MustWrap(int(7))
	assert.Equal(t, "int", u.Variant())
	assert.False(t, Is[float64](u))

	_, err := d.Wrap(int32(7))
	assert.Error(t, err)
}

func TestVariants(t *testing.T) {
	d := newShapeDef(t)

	want := []string{"Circle", "Square"}
	assert.Equal(t, want, d.Variants())
	assert.Equal(t, 2, d.Len())

	// Instance-independent and stable across calls.
	circle := d.MustWrap(Circle{Radius: 1})
	square := d.MustWrap(Square{Side: 1})
	assert.Equal(t, want, circle.Variants())
	assert.Equal(t, want, square.Variants())
	assert.Equal(t, d.Variants(), d.Variants())

	// Mutating the returned slice must not leak into the definition.
	got := d.Variants()
	got[0] = "Mangled"
	assert.Equal(t, want, d.Variants())
}

func TestVariantSpecAccessors(t *testing.T) {
	s := Of[Circle]()
	assert.Equal(t, "Circle", s.Name())
	assert.Equal(t, "Circle", s.Type().Name())

	s = Of[Circle](WithName("Round"))
	assert.Equal(t, "Round", s.Name())

	d := MustDef("Shape", Of[Circle](WithName("Round")), Of[Square]())
	spec, ok := d.Variant("Round")
	require.True(t, ok)
	assert.Equal(t, "Round", spec.Name())
	_, ok = d.Variant("Circle")
	assert.False(t, ok)
}

func TestDerivedNames(t *testing.T) {
	type payload struct{ N int }

	d := MustDef("Mixed",
		Of[payload](),
		Of[*payload](),
		Of[[]byte](),
		Of[map[string]int](WithName("Counts")),
	)
	assert.Equal(t, []string{"payload", "*sumtype.payload", "[]uint8", "Counts"}, d.Variants())
}

func TestZeroUnion(t *testing.T) {
	var u Union

	assert.False(t, u.Valid())
	assert.Nil(t, u.Def())
	assert.Equal(t, -1, u.Tag())
	assert.Equal(t, "", u.Variant())
	assert.Nil(t, u.Variants())
	assert.Nil(t, u.Interface())

	_, ok := Ref[Circle](u)
	assert.False(t, ok)
	assert.False(t, Is[Circle](u))
}

func TestInterface(t *testing.T) {
	d := newShapeDef(t)
	u := d.MustWrap(Square{Side: 3})

	switch v := u.Interface().(type) {
	case Circle:
		t.Fatalf("wrong variant: %v", v)
	case Square:
		assert.Equal(t, 3.0, v.Side)
	default:
		t.Fatalf("unexpected payload %T", v)
	}
}

func TestWrapCopiesPayload(t *testing.T) {
	d := newShapeDef(t)

	orig := Circle{Radius: 2}
	u := d.MustWrap(orig)

	orig.Radius = 99
	c, ok := Ref[Circle](u)
	require.True(t, ok)
	assert.Equal(t, 2.0, c.Radius)
}
