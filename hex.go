package serhex

// Low-level hex primitives shared by every codec. Output is built only from
// the digit tables, so encoded text is valid ASCII by construction.

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// stripPrefix removes a leading "0x" or "0X" marker if present. Decode
// accepts the prefix regardless of configuration.
func stripPrefix(src []byte) []byte {
	if len(src) >= 2 && src[0] == '0' && (src[1] == 'x' || src[1] == 'X') {
		return src[2:]
	}
	return src
}

// digits returns the emit table for a configuration's case flag.
func digits[C Config]() string {
	if configOf[C]().IsCapitalized() {
		return upperDigits
	}
	return lowerDigits
}

// fromDigit decodes one hex digit, accepting both cases.
func fromDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// appendStrict appends exactly width digits of v, most significant nibble
// first, zero-padded on the left.
func appendStrict(dst []byte, v uint64, width int, table string) []byte {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, table[(v>>(uint(i)*4))&0xf])
	}
	return dst
}

// appendCompact appends the minimal digit count for v; zero renders as a
// single "0".
func appendCompact(dst []byte, v uint64, width int, table string) []byte {
	i := width - 1
	for i > 0 && (v>>(uint(i)*4))&0xf == 0 {
		i--
	}
	for ; i >= 0; i-- {
		dst = append(dst, table[(v>>(uint(i)*4))&0xf])
	}
	return dst
}

// parseNibbles parses src as big-endian hex digits into a uint64. It fails
// on the first byte outside the digit alphabet. Width rules are enforced by
// the callers.
func parseNibbles(src []byte) (uint64, error) {
	var v uint64
	for _, b := range src {
		d, ok := fromDigit(b)
		if !ok {
			return 0, &DigitError{Byte: b}
		}
		v = v<<4 | uint64(d)
	}
	return v, nil
}
