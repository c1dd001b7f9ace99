package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string   `json:"title"`
	Score float64  `json:"score"`
	Tags  []string `json:"tags"`
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"json", "json", true},
		{"go-json", "go-json", true},
		{"json+zstd", "json+zstd", true},
		{"go-json+zstd", "go-json+zstd", true},
		{"msgpack", "", false},
		{"msgpack+zstd", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, c.Name())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	in := payload{Title: "circle", Score: 2.5, Tags: []string{"a", "b"}}

	for _, c := range []Codec{JSON{}, GoJSON{}, NewZstd(JSON{}), NewZstd(GoJSON{})} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, in, out)
		})
	}
}

// The stdlib and goccy codecs must stay wire-compatible with each other.
func TestJSONInterchangeable(t *testing.T) {
	in := payload{Title: "square", Score: 9}

	b, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, GoJSON{}.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestZstdRejectsGarbage(t *testing.T) {
	var out payload
	err := NewZstd(nil).Unmarshal([]byte("not a zstd frame"), &out)
	assert.Error(t, err)
}

func TestMustMarshal(t *testing.T) {
	b := MustMarshal(nil, payload{Title: "x"})
	assert.NotEmpty(t, b)

	assert.Panics(t, func() {
		MustMarshal(JSON{}, func() {})
	})
}
