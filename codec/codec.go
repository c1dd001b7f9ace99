// Package codec centralizes payload encoding for union envelopes.
//
// Codec selection is a compatibility boundary: bytes written with one codec
// may not decode with another, so persisted or wire formats should record
// the codec name alongside the data and select it via ByName on read.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// A "+zstd" suffix wraps the named codec in compression, e.g.
// "go-json+zstd".
func ByName(name string) (Codec, bool) {
	if inner, ok := strings.CutSuffix(name, "+zstd"); ok {
		c, ok := ByName(inner)
		if !ok {
			return nil, false
		}
		return NewZstd(c), true
	}

	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
