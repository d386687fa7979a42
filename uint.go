package serhex

// Unsigned enumerates the integer widths under codec control.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// uintSize returns the byte width of U.
func uintSize[U Unsigned]() int {
	switch any(U(0)).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// UintCodec converts unsigned integers to and from hex text. One generic
// implementation covers all four widths; the configuration type parameter
// selects strict or compact formatting, prefixing and case.
type UintCodec[U Unsigned, C Config] struct{}

// Size returns the byte width of U.
func (UintCodec[U, C]) Size() int {
	return uintSize[U]()
}

// AppendHex appends the hex text for v. Strict configurations emit exactly
// 2*Size() digits, zero-padded; compact configurations emit the minimal
// digit count, with zero rendering as "0".
func (UintCodec[U, C]) AppendHex(dst []byte, v U) ([]byte, error) {
	c := configOf[C]()
	if c.HasPrefix() {
		dst = append(dst, '0', 'x')
	}
	width := uintSize[U]() * 2
	table := digits[C]()
	if c.IsStrict() {
		return appendStrict(dst, uint64(v), width, table), nil
	}
	return appendCompact(dst, uint64(v), width, table), nil
}

// DecodeHex parses hex text into a U. Strict configurations require exactly
// 2*Size() digits after prefix stripping; compact configurations accept any
// count from one up to that bound.
func (UintCodec[U, C]) DecodeHex(src []byte) (U, error) {
	src = stripPrefix(src)
	width := uintSize[U]() * 2
	if configOf[C]().IsStrict() {
		if len(src) != width {
			return 0, newSizeError(width, len(src))
		}
	} else if len(src) == 0 || len(src) > width {
		return 0, newSizeError(width, len(src))
	}
	v, err := parseNibbles(src)
	if err != nil {
		return 0, err
	}
	return U(v), nil
}
