package serhex

import (
	"errors"
	"reflect"
	"testing"
)

func TestSeqCodec_Encode(t *testing.T) {
	bs := []uint8{0xde, 0xad, 0xbe, 0xef}

	s, err := EncodeToString[[]uint8](SeqCodec[uint8, Strict]{}, bs)
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	if s != "deadbeef" {
		t.Errorf("EncodeToString() = %q, want %q", s, "deadbeef")
	}

	// One prefix for the whole sequence, not one per element.
	s, err = EncodeToString[[]uint8](SeqCodec[uint8, StrictCapPfx]{}, bs)
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	if s != "0xDEADBEEF" {
		t.Errorf("EncodeToString() = %q, want %q", s, "0xDEADBEEF")
	}

	// Wider elements are zero-padded to their own width.
	s, err = EncodeToString[[]uint16](SeqCodec[uint16, Strict]{}, []uint16{0xde, 0xbeef})
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	if s != "00debeef" {
		t.Errorf("EncodeToString() = %q, want %q", s, "00debeef")
	}
}

func TestSeqCodec_EncodeEmpty(t *testing.T) {
	s, err := EncodeToString[[]uint8](SeqCodec[uint8, Strict]{}, nil)
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	if s != "" {
		t.Errorf("EncodeToString(nil) = %q, want %q", s, "")
	}
	s, err = EncodeToString[[]uint8](SeqCodec[uint8, StrictPfx]{}, nil)
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	if s != "0x" {
		t.Errorf("EncodeToString(nil) = %q, want %q", s, "0x")
	}
}

func TestSeqCodec_Decode(t *testing.T) {
	var c SeqCodec[uint8, Strict]

	want := []uint8{0xde, 0xad, 0xbe, 0xef}
	for _, in := range []string{"deadbeef", "0xdeadbeef", "DEADBEEF"} {
		got, err := c.DecodeHex([]byte(in))
		if err != nil {
			t.Fatalf("DecodeHex(%q) error: %v", in, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DecodeHex(%q) = %x, want %x", in, got, want)
		}
	}

	got16, err := SeqCodec[uint16, Strict]{}.DecodeHex([]byte("00debeef"))
	if err != nil {
		t.Fatalf("DecodeHex() error: %v", err)
	}
	if !reflect.DeepEqual(got16, []uint16{0x00de, 0xbeef}) {
		t.Errorf("DecodeHex() = %x, want %x", got16, []uint16{0x00de, 0xbeef})
	}
}

func TestSeqCodec_DecodeBadSize(t *testing.T) {
	var c SeqCodec[uint8, Strict]
	for _, in := range []string{"", "0x", "dea", "deadb"} {
		_, err := c.DecodeHex([]byte(in))
		if !errors.Is(err, ErrBadSequenceSize) {
			t.Errorf("DecodeHex(%q) error = %v, want ErrBadSequenceSize", in, err)
		}
	}

	// A 16-bit element needs four digits per chunk.
	_, err := SeqCodec[uint16, Strict]{}.DecodeHex([]byte("deadbe"))
	if !errors.Is(err, ErrBadSequenceSize) {
		t.Errorf("DecodeHex() error = %v, want ErrBadSequenceSize", err)
	}
}

func TestSeqCodec_DecodeBadElement(t *testing.T) {
	var c SeqCodec[uint8, Strict]
	_, err := c.DecodeHex([]byte("dexd"))
	if !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("DecodeHex() error = %v, want ErrInvalidDigit", err)
	}
}

func TestSeqCodec_RoundTrip(t *testing.T) {
	vs := []uint32{0, 1, 0xdeadbeef, 0xffffffff}
	var c SeqCodec[uint32, StrictCapPfx]
	s, err := EncodeToString[[]uint32](c, vs)
	if err != nil {
		t.Fatalf("EncodeToString() error: %v", err)
	}
	got, err := DecodeFromString[[]uint32](c, s)
	if err != nil {
		t.Fatalf("DecodeFromString(%q) error: %v", s, err)
	}
	if !reflect.DeepEqual(got, vs) {
		t.Errorf("round trip = %x, want %x", got, vs)
	}
}
