package serhex

// WireCodec provides content-type aware marshaling for the tag-driven
// Processor. The json, yaml and msgpack subpackages implement it for the
// supported host frameworks.
type WireCodec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
