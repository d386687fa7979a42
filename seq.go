package serhex

// SeqCodec converts homogeneous sequences of fixed-size integers to and
// from one contiguous hex string: a single optional prefix, then each
// element's strict encoding concatenated in order. Compact configurations
// are structurally excluded; without a fixed per-element width, chunk
// boundaries would be ambiguous.
type SeqCodec[U Unsigned, C StrictConfig] struct{}

// Size returns the byte width of one element.
func (SeqCodec[U, C]) Size() int {
	return uintSize[U]()
}

// AppendHex appends the concatenated strict encodings of vs. An empty
// sequence encodes as the bare prefix, or the empty string.
func (SeqCodec[U, C]) AppendHex(dst []byte, vs []U) ([]byte, error) {
	c := configOf[C]()
	if c.HasPrefix() {
		dst = append(dst, '0', 'x')
	}
	width := uintSize[U]() * 2
	table := digits[C]()
	for _, v := range vs {
		dst = appendStrict(dst, uint64(v), width, table)
	}
	return dst, nil
}

// DecodeHex splits src into chunks of 2*Size() digits and decodes each
// through the element codec. Decode is order-preserving and all-or-nothing:
// the first chunk failure aborts with that chunk's error. An empty input,
// or one whose digit count is not a multiple of the chunk width, fails with
// ErrBadSequenceSize.
func (s SeqCodec[U, C]) DecodeHex(src []byte) ([]U, error) {
	src = stripPrefix(src)
	chunk := s.Size() * 2
	if chunk == 0 || len(src) == 0 || len(src)%chunk != 0 {
		return nil, ErrBadSequenceSize
	}
	var elem UintCodec[U, C]
	out := make([]U, 0, len(src)/chunk)
	for i := 0; i < len(src); i += chunk {
		v, err := elem.DecodeHex(src[i : i+chunk])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
