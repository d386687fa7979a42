package serhex

// Codec converts one fixed-width value to and from hexadecimal text.
// Concrete codecs carry their formatting configuration as a type parameter,
// so a codec value is stateless and safe for concurrent use.
type Codec[T any] interface {
	// AppendHex appends the hex text for v to dst, including the "0x"
	// prefix if configured, and returns the extended buffer. On error the
	// buffer may hold a partial write; callers must discard it.
	AppendHex(dst []byte, v T) ([]byte, error)

	// DecodeHex parses raw hex text into a value. A leading "0x"/"0X"
	// prefix is stripped if present, digits of either case are accepted,
	// and the configuration's width rule is enforced.
	DecodeHex(src []byte) (T, error)
}

// Fixed is a Codec whose encoded width is constant. Sequence framing
// depends on Size to partition concatenated element encodings.
type Fixed[T any] interface {
	Codec[T]

	// Size returns the byte width of one encoded value. The hex chunk
	// width is twice that.
	Size() int
}

// Sink receives serialized tokens on behalf of a host framework. The json,
// yaml and msgpack field hooks are thin adapters over this seam.
type Sink interface {
	// WriteString emits one string token.
	WriteString(s string) error

	// WriteNull emits the framework's absent marker.
	WriteNull() error
}

// stackBufferSize bounds the on-stack encode buffer used by Serialize.
// Unprefixed 32-byte arrays fit without heap allocation.
const stackBufferSize = 64

// EncodeToString encodes v into an owned string. Output is valid ASCII by
// construction; see hex.go.
func EncodeToString[T any](c Codec[T], v T) (string, error) {
	dst, err := c.AppendHex(make([]byte, 0, 32), v)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

// DecodeFromBytes decodes raw hex text. It is an alias of DecodeHex kept
// for symmetry with EncodeToString.
func DecodeFromBytes[T any](c Codec[T], src []byte) (T, error) {
	return c.DecodeHex(src)
}

// DecodeFromString decodes raw hex text held in a string.
func DecodeFromString[T any](c Codec[T], src string) (T, error) {
	return c.DecodeHex([]byte(src))
}

// Serialize encodes v into a stack buffer and hands the resulting string to
// the framework sink.
func Serialize[T any](c Codec[T], v T, sink Sink) error {
	var buf [stackBufferSize]byte
	dst, err := c.AppendHex(buf[:0], v)
	if err != nil {
		return err
	}
	return sink.WriteString(string(dst))
}
