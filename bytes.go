package serhex

import "fmt"

// Supported byte-array lengths. Zero-length arrays have no reasonable hex
// representation, and 64 bytes covers a 512-bit digest.
const (
	minBytesLen = 1
	maxBytesLen = 64
)

// BytesCodec converts fixed-length byte slices to and from hex text. Byte
// arrays are strict-only: the configuration type parameter is constrained
// to the strict family, so a compact variant does not compile.
type BytesCodec[C StrictConfig] struct {
	n int
}

// NewBytesCodec returns a codec for byte slices of exactly n bytes,
// 1 through 64.
func NewBytesCodec[C StrictConfig](n int) (BytesCodec[C], error) {
	if n < minBytesLen || n > maxBytesLen {
		return BytesCodec[C]{}, fmt.Errorf("byte array length %d out of range [%d, %d]", n, minBytesLen, maxBytesLen)
	}
	return BytesCodec[C]{n: n}, nil
}

// Size returns the fixed byte length.
func (c BytesCodec[C]) Size() int {
	return c.n
}

// AppendHex appends two digits per byte in array order, with a single
// optional prefix at the start.
func (c BytesCodec[C]) AppendHex(dst []byte, v []byte) ([]byte, error) {
	if len(v) != c.n {
		return dst, newSizeError(c.n, len(v))
	}
	if configOf[C]().HasPrefix() {
		dst = append(dst, '0', 'x')
	}
	table := digits[C]()
	for _, b := range v {
		dst = append(dst, table[b>>4], table[b&0xf])
	}
	return dst, nil
}

// DecodeHex parses hex text into a slice of exactly Size() bytes. The input
// is split into Size() chunks of equal width and each chunk decodes as a
// strict uint8, so a chunk width other than two digits fails inside the
// element decode with its own size report.
func (c BytesCodec[C]) DecodeHex(src []byte) ([]byte, error) {
	src = stripPrefix(src)
	if len(src) == 0 || len(src)%c.n != 0 {
		return nil, newSizeError(c.n, len(src)/2)
	}
	chunk := len(src) / c.n
	var elem UintCodec[uint8, Strict]
	out := make([]byte, c.n)
	for i := range out {
		b, err := elem.DecodeHex(src[i*chunk : (i+1)*chunk])
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
