package serhex

import (
	"errors"
	"testing"
)

// captureSink records the tokens emitted during a serialize call.
type captureSink struct {
	strings []string
	nulls   int
}

func (s *captureSink) WriteString(v string) error {
	s.strings = append(s.strings, v)
	return nil
}

func (s *captureSink) WriteNull() error {
	s.nulls++
	return nil
}

func TestSerialize(t *testing.T) {
	var sink captureSink
	if err := Serialize[uint16](UintCodec[uint16, StrictPfx]{}, 0xbeef, &sink); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if len(sink.strings) != 1 || sink.strings[0] != "0xbeef" {
		t.Errorf("sink got %q, want [\"0xbeef\"]", sink.strings)
	}
	if sink.nulls != 0 {
		t.Errorf("sink got %d nulls, want 0", sink.nulls)
	}
}

func TestSerializeOpt(t *testing.T) {
	c := UintCodec[uint8, Compact]{}

	var sink captureSink
	v := uint8(0xff)
	if err := SerializeOpt[uint8](c, &v, &sink); err != nil {
		t.Fatalf("SerializeOpt(&v) error: %v", err)
	}
	if len(sink.strings) != 1 || sink.strings[0] != "ff" {
		t.Errorf("sink got %q, want [\"ff\"]", sink.strings)
	}

	sink = captureSink{}
	if err := SerializeOpt[uint8](c, nil, &sink); err != nil {
		t.Fatalf("SerializeOpt(nil) error: %v", err)
	}
	if sink.nulls != 1 || len(sink.strings) != 0 {
		t.Errorf("sink = %+v, want one null", sink)
	}
}

func TestDeserialize(t *testing.T) {
	c := UintCodec[uint16, Strict]{}

	v, err := Deserialize[uint16](c, StringToken("beef"))
	if err != nil {
		t.Fatalf("Deserialize(string) error: %v", err)
	}
	if v != 0xbeef {
		t.Errorf("Deserialize(string) = %#x, want 0xbeef", v)
	}

	// Byte payloads decode identically.
	v, err = Deserialize[uint16](c, BytesToken([]byte("0xBEEF")))
	if err != nil {
		t.Fatalf("Deserialize(bytes) error: %v", err)
	}
	if v != 0xbeef {
		t.Errorf("Deserialize(bytes) = %#x, want 0xbeef", v)
	}

	// A plain value cannot be absent.
	for _, tok := range []Token{NullToken(), UnitToken(), SomeToken(StringToken("beef"))} {
		if _, err := Deserialize[uint16](c, tok); err == nil {
			t.Errorf("Deserialize(kind %d) should fail", tok.Kind)
		}
	}

	// Codec errors pass through unwrapped.
	_, err = Deserialize[uint16](c, StringToken("be"))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Deserialize() error = %v, want ErrSizeMismatch", err)
	}
}

func TestDeserializeOpt(t *testing.T) {
	c := UintCodec[uint16, Strict]{}

	p, err := DeserializeOpt[uint16](c, StringToken("beef"))
	if err != nil {
		t.Fatalf("DeserializeOpt(string) error: %v", err)
	}
	if p == nil || *p != 0xbeef {
		t.Errorf("DeserializeOpt(string) = %v, want &0xbeef", p)
	}

	for _, tok := range []Token{NullToken(), UnitToken()} {
		p, err := DeserializeOpt[uint16](c, tok)
		if err != nil {
			t.Fatalf("DeserializeOpt(kind %d) error: %v", tok.Kind, err)
		}
		if p != nil {
			t.Errorf("DeserializeOpt(kind %d) = %v, want nil", tok.Kind, p)
		}
	}

	// Some recurses into its payload, including nested nulls.
	p, err = DeserializeOpt[uint16](c, SomeToken(StringToken("beef")))
	if err != nil {
		t.Fatalf("DeserializeOpt(some) error: %v", err)
	}
	if p == nil || *p != 0xbeef {
		t.Errorf("DeserializeOpt(some) = %v, want &0xbeef", p)
	}
	p, err = DeserializeOpt[uint16](c, SomeToken(NullToken()))
	if err != nil {
		t.Fatalf("DeserializeOpt(some(null)) error: %v", err)
	}
	if p != nil {
		t.Errorf("DeserializeOpt(some(null)) = %v, want nil", p)
	}

	// A malformed present value is an error, not an absence.
	_, err = DeserializeOpt[uint16](c, StringToken("xxxx"))
	if !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("DeserializeOpt() error = %v, want ErrInvalidDigit", err)
	}
}
