package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared across all Zstd codecs; EncodeAll/DecodeAll are safe for
// concurrent use on a single encoder/decoder.
var (
	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder
)

func init() {
	var err error
	zstdEnc, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Errorf("codec: init zstd encoder: %w", err))
	}
	zstdDec, err = zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Errorf("codec: init zstd decoder: %w", err))
	}
}

// Zstd wraps another codec and compresses its output with zstandard.
//
// Useful when union payloads are large (documents, blobs); for small
// payloads the frame overhead usually outweighs the savings. The wrapped
// output is not valid JSON, so Zstd belongs in binary envelopes only.
type Zstd struct {
	inner Codec
}

// NewZstd wraps inner in zstandard compression. If inner is nil, Default
// is used.
func NewZstd(inner Codec) Zstd {
	if inner == nil {
		inner = Default
	}
	return Zstd{inner: inner}
}

// Marshal encodes the value with the inner codec and compresses the
// result.
func (z Zstd) Marshal(v any) ([]byte, error) {
	b, err := z.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return zstdEnc.EncodeAll(b, nil), nil
}

// Unmarshal decompresses the data and decodes it with the inner codec.
func (z Zstd) Unmarshal(data []byte, v any) error {
	b, err := zstdDec.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("codec %s: decompress: %w", z.Name(), err)
	}
	return z.inner.Unmarshal(b, v)
}

// Name returns the inner codec's name with a "+zstd" suffix.
func (z Zstd) Name() string { return z.inner.Name() + "+zstd" }
