package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// It is the most portable option: the output of Marshal is plain JSON that
// any consumer can read without this package. Payload types follow the
// usual encoding/json rules (exported fields, struct tags, Marshaler
// implementations).
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-encoded envelopes. Wire formats that record the
// codec name are opened by selecting the appropriate codec via ByName.
var Default Codec = GoJSON{}
