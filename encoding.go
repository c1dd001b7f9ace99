package sumtype

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Michael-F-Bryan/sumtype/codec"
)

// WithCodec returns a copy of d that encodes payload bytes with c.
//
// If c is nil, codec.Default is used. The JSON envelope requires a codec
// whose output is JSON; compressing codecs are for the binary envelope
// only. Unions produced by the original Def and the copy are
// interchangeable for everything except encoding.
func (d *Def) WithCodec(c codec.Codec) *Def {
	if c == nil {
		c = codec.Default
	}
	clone := *d
	clone.codec = c
	return &clone
}

// Codec returns the codec used for envelope payload bytes.
func (d *Def) Codec() codec.Codec { return d.codec }

// envelope is the JSON wire form of a Union. The payload keeps whatever
// shape the codec gave it.
type envelope struct {
	Variant string          `json:"variant"`
	Value   json.RawMessage `json:"value"`
}

// MarshalJSON implements json.Marshaler. The wire form is a small
// envelope, e.g.:
//
//	{"variant":"Circle","value":{"radius":2}}
//
// Decoding needs the definition to recover the concrete payload type, so
// there is no UnmarshalJSON on Union; use Def.DecodeJSON.
func (u Union) MarshalJSON() ([]byte, error) {
	if u.def == nil {
		return nil, ErrInvalidUnion
	}

	raw, err := u.def.codec.Marshal(u.Interface())
	if err != nil {
		return nil, fmt.Errorf("sumtype: encode %s payload: %w", u.Variant(), err)
	}
	return u.def.codec.Marshal(envelope{Variant: u.Variant(), Value: raw})
}

// DecodeJSON decodes a JSON envelope produced by Union.MarshalJSON into a
// Union of this definition.
//
// An envelope naming a variant outside the definition fails with
// ErrUnknownVariant; this is how a definition drift between writer and
// reader surfaces.
func (d *Def) DecodeJSON(data []byte) (Union, error) {
	var env envelope
	if err := d.codec.Unmarshal(data, &env); err != nil {
		return Union{}, fmt.Errorf("sumtype: decode %s envelope: %w", d.name, err)
	}

	i, ok := d.byName[env.Variant]
	if !ok {
		return Union{}, fmt.Errorf("%w: %q in union %s", ErrUnknownVariant, env.Variant, d.name)
	}

	box, err := d.variants[i].decode(d.codec, env.Value)
	if err != nil {
		return Union{}, fmt.Errorf("sumtype: decode %s payload: %w", env.Variant, err)
	}
	return Union{def: d, tag: i, box: box}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using a compact tagged
// format:
//
//	uvarint variant index | uvarint payload length | payload bytes
//
// The payload bytes come from the definition's codec, so reader and writer
// must agree on both the definition (variant order) and the codec.
func (u Union) MarshalBinary() ([]byte, error) {
	if u.def == nil {
		return nil, ErrInvalidUnion
	}

	raw, err := u.def.codec.Marshal(u.Interface())
	if err != nil {
		return nil, fmt.Errorf("sumtype: encode %s payload: %w", u.Variant(), err)
	}

	buf := make([]byte, 0, 2*binary.MaxVarintLen64+len(raw))
	buf = binary.AppendUvarint(buf, uint64(u.tag))
	buf = binary.AppendUvarint(buf, uint64(len(raw)))
	buf = append(buf, raw...)
	return buf, nil
}

// DecodeBinary decodes the tagged binary form produced by
// Union.MarshalBinary into a Union of this definition.
func (d *Def) DecodeBinary(data []byte) (Union, error) {
	tag, n := binary.Uvarint(data)
	if n <= 0 {
		return Union{}, errors.New("sumtype: invalid variant tag")
	}
	data = data[n:]

	if tag >= uint64(len(d.variants)) {
		return Union{}, fmt.Errorf("%w: tag %d in union %s", ErrUnknownVariant, tag, d.name)
	}

	size, n := binary.Uvarint(data)
	if n <= 0 {
		return Union{}, errors.New("sumtype: invalid payload length")
	}
	data = data[n:]
	if uint64(len(data)) < size {
		return Union{}, errors.New("sumtype: short buffer for payload")
	}

	box, err := d.variants[tag].decode(d.codec, data[:size])
	if err != nil {
		return Union{}, fmt.Errorf("sumtype: decode %s payload: %w", d.names[tag], err)
	}
	return Union{def: d, tag: int(tag), box: box}, nil
}
