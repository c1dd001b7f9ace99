package sumtype_test

import (
	"fmt"

	"github.com/Michael-F-Bryan/sumtype"
)

type Circle struct {
	Radius float64 `json:"radius"`
}

type Square struct {
	Side float64 `json:"side"`
}

var Shape = sumtype.MustDef("Shape",
	sumtype.Of[Circle](),
	sumtype.Of[Square](),
)

func Example() {
	u := Shape.MustWrap(Circle{Radius: 2})

	fmt.Println(u.Variant())
	fmt.Println(u.Variants())
	fmt.Println(sumtype.Is[Circle](u))

	if c, ok := sumtype.Ref[Circle](u); ok {
		fmt.Println(c.Radius)
	}

	// Output:
	// Circle
	// [Circle Square]
	// true
	// 2
}

func ExampleDowncast() {
	u := Shape.MustWrap(Square{Side: 3})

	_, err := sumtype.Downcast[Circle](u)
	fmt.Println(err)

	s, _ := sumtype.Downcast[Square](u)
	fmt.Println(s.Side)

	// Output:
	// sumtype: union holds Square, not Circle (variants: Circle, Square)
	// 3
}

func ExampleDispatch() {
	describe := sumtype.Handlers{
		"Circle": func(p any) error {
			fmt.Println("circle with radius", p.(Circle).Radius)
			return nil
		},
		"Square": func(p any) error {
			fmt.Println("square with side", p.(Square).Side)
			return nil
		},
	}

	_ = sumtype.Dispatch(Shape.MustWrap(Circle{Radius: 2}), describe)
	_ = sumtype.Dispatch(Shape.MustWrap(Square{Side: 3}), describe)

	// Output:
	// circle with radius 2
	// square with side 3
}

func ExampleDef_DecodeJSON() {
	u := Shape.MustWrap(Circle{Radius: 2})

	b, _ := u.MarshalJSON()
	fmt.Println(string(b))

	decoded, _ := Shape.DecodeJSON(b)
	fmt.Println(decoded.Variant())

	// Output:
	// {"variant":"Circle","value":{"radius":2}}
	// Circle
}
