package serhex

import "fmt"

// TokenKind identifies the shape of a decode delivery.
type TokenKind int

const (
	// TokenString delivers hex text as a string. Go strings are always
	// owned, so a single kind covers both the owned and borrowed cases a
	// visitor-based framework distinguishes.
	TokenString TokenKind = iota

	// TokenBytes delivers hex text as a byte slice, read-only for the
	// duration of the decode call.
	TokenBytes

	// TokenNull is the framework's explicit absent marker.
	TokenNull

	// TokenUnit is the framework's explicit unit marker. Option decoding
	// treats it the same as null.
	TokenUnit

	// TokenSome wraps a present value; Elem holds the inner delivery.
	TokenSome
)

// Token is one decode delivery from a host framework, the sum type a
// visitor callback would otherwise be registered for. Exactly one of Str,
// Bytes or Elem is meaningful, selected by Kind.
type Token struct {
	Kind  TokenKind
	Str   string
	Bytes []byte
	Elem  *Token
}

// StringToken wraps hex text held in a string.
func StringToken(s string) Token { return Token{Kind: TokenString, Str: s} }

// BytesToken wraps hex text held in a byte slice.
func BytesToken(b []byte) Token { return Token{Kind: TokenBytes, Bytes: b} }

// NullToken is the absent marker.
func NullToken() Token { return Token{Kind: TokenNull} }

// UnitToken is the unit marker.
func UnitToken() Token { return Token{Kind: TokenUnit} }

// SomeToken wraps a present delivery.
func SomeToken(inner Token) Token { return Token{Kind: TokenSome, Elem: &inner} }

// raw returns the payload of a string or bytes delivery.
func (t Token) raw() ([]byte, bool) {
	switch t.Kind {
	case TokenString:
		return []byte(t.Str), true
	case TokenBytes:
		return t.Bytes, true
	}
	return nil, false
}

// Deserialize decodes one framework delivery through c. String and bytes
// payloads are treated uniformly as raw hex text; null, unit and some
// deliveries are rejected, since a plain value cannot be absent.
func Deserialize[T any](c Codec[T], tok Token) (T, error) {
	if raw, ok := tok.raw(); ok {
		return c.DecodeHex(raw)
	}
	var zero T
	return zero, fmt.Errorf("expected a hex string, got token kind %d", tok.Kind)
}
