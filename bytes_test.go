package serhex

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewBytesCodec_Bounds(t *testing.T) {
	if _, err := NewBytesCodec[Strict](0); err == nil {
		t.Error("NewBytesCodec(0) should fail")
	}
	if _, err := NewBytesCodec[Strict](65); err == nil {
		t.Error("NewBytesCodec(65) should fail")
	}
	c, err := NewBytesCodec[Strict](20)
	if err != nil {
		t.Fatalf("NewBytesCodec(20) error: %v", err)
	}
	if c.Size() != 20 {
		t.Errorf("Size() = %d, want 20", c.Size())
	}
}

func TestBytesCodec_Encode(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}

	c, err := NewBytesCodec[Strict](4)
	if err != nil {
		t.Fatalf("NewBytesCodec() error: %v", err)
	}
	s, err := EncodeToString[[]byte](c, raw)
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	if s != "deadbeef" {
		t.Errorf("EncodeToString() = %q, want %q", s, "deadbeef")
	}

	cp, err := NewBytesCodec[StrictCapPfx](4)
	if err != nil {
		t.Fatalf("NewBytesCodec() error: %v", err)
	}
	s, err = EncodeToString[[]byte](cp, raw)
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	if s != "0xDEADBEEF" {
		t.Errorf("EncodeToString() = %q, want %q", s, "0xDEADBEEF")
	}

	// Length mismatch against the fixed size.
	if _, err := c.AppendHex(nil, raw[:3]); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("AppendHex(short) error = %v, want ErrSizeMismatch", err)
	}
}

func TestBytesCodec_Decode(t *testing.T) {
	c, err := NewBytesCodec[Strict](20)
	if err != nil {
		t.Fatalf("NewBytesCodec() error: %v", err)
	}

	want := []byte{
		0xdf, 0x38, 0x92, 0x95, 0x48, 0x4b, 0x30, 0x59, 0xa4, 0x72,
		0x6d, 0xc6, 0xd8, 0xa5, 0x7f, 0x71, 0xbb, 0x5f, 0x4c, 0x81,
	}
	for _, in := range []string{
		"df389295484b3059a4726dc6d8a57f71bb5f4c81",
		"0xdf389295484b3059a4726dc6d8a57f71bb5f4c81",
		"DF389295484B3059A4726DC6D8A57F71BB5F4C81",
	} {
		got, err := c.DecodeHex([]byte(in))
		if err != nil {
			t.Fatalf("DecodeHex(%q) error: %v", in, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("DecodeHex(%q) = %x, want %x", in, got, want)
		}
	}
}

func TestBytesCodec_DecodeSizeMismatch(t *testing.T) {
	c, err := NewBytesCodec[Strict](20)
	if err != nil {
		t.Fatalf("NewBytesCodec() error: %v", err)
	}

	// The byte count in the error derives from halving the digit count,
	// except when the input divides evenly into too-narrow chunks; then the
	// per-element decode reports digit counts instead.
	tests := []struct {
		in   string
		want string
	}{
		{"", "expected buff size `20` got `0`"},
		{"0x", "expected buff size `20` got `0`"},
		{"df38", "expected buff size `20` got `2`"},
		{"df389295484b3059a472", "expected buff size `2` got `1`"},
	}
	for _, tt := range tests {
		_, err := c.DecodeHex([]byte(tt.in))
		if err == nil {
			t.Errorf("DecodeHex(%q) should fail", tt.in)
			continue
		}
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("DecodeHex(%q) error = %v, want ErrSizeMismatch", tt.in, err)
		}
		if err.Error() != tt.want {
			t.Errorf("DecodeHex(%q) error = %q, want %q", tt.in, err.Error(), tt.want)
		}
	}
}

func TestBytesCodec_DecodeInvalidDigit(t *testing.T) {
	c, err := NewBytesCodec[Strict](2)
	if err != nil {
		t.Fatalf("NewBytesCodec() error: %v", err)
	}
	_, err = c.DecodeHex([]byte("dezd"))
	if !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("DecodeHex() error = %v, want ErrInvalidDigit", err)
	}
}

func TestBytesCodec_RoundTrip(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	check := func(name string, c Fixed[[]byte]) {
		s, err := EncodeToString[[]byte](c, raw)
		if err != nil {
			t.Fatalf("%s: EncodeToString() error: %v", name, err)
		}
		got, err := DecodeFromString[[]byte](c, s)
		if err != nil {
			t.Fatalf("%s: DecodeFromString(%q) error: %v", name, s, err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("%s: round trip = %x, want %x", name, got, raw)
		}
	}
	mk := func(t *testing.T, c Fixed[[]byte], err error) Fixed[[]byte] {
		t.Helper()
		if err != nil {
			t.Fatalf("NewBytesCodec() error: %v", err)
		}
		return c
	}
	c1, err := NewBytesCodec[Strict](32)
	check("Strict", mk(t, c1, err))
	c2, err := NewBytesCodec[StrictPfx](32)
	check("StrictPfx", mk(t, c2, err))
	c3, err := NewBytesCodec[StrictCap](32)
	check("StrictCap", mk(t, c3, err))
	c4, err := NewBytesCodec[StrictCapPfx](32)
	check("StrictCapPfx", mk(t, c4, err))
}
