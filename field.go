package serhex

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Field wrapper types carry a codec configuration in their type parameter
// and implement the field-level encode/decode hooks of the supported host
// frameworks: encoding/json, gopkg.in/yaml.v3, vmihailenco/msgpack and any
// framework that understands encoding.TextMarshaler.
//
//	type Block struct {
//		Hash  serhex.Array[[32]byte, serhex.StrictPfx] `json:"hash"`
//		Nonce serhex.Uint[uint64, serhex.CompactPfx]   `json:"nonce"`
//	}

// Uint renders an unsigned integer field as hex text.
type Uint[U Unsigned, C Config] struct {
	Val U
}

// OptUint is an optional integer field; an unset value serializes as the
// framework's null marker.
type OptUint[U Unsigned, C Config] struct {
	Val U
	Set bool
}

// Array renders a fixed-length byte array field as hex text. A must be a
// [N]byte array type with N between 1 and 64; anything else fails on first
// use. Strict configurations only.
type Array[A any, C StrictConfig] struct {
	Val A
}

// OptArray is an optional byte array field.
type OptArray[A any, C StrictConfig] struct {
	Val A
	Set bool
}

// Seq renders a byte slice field as one contiguous hex string with a single
// optional prefix.
type Seq[C StrictConfig] struct {
	Val []byte
}

// arrayCodec builds the BytesCodec for an [N]byte array type.
func arrayCodec[A any, C StrictConfig]() (BytesCodec[C], error) {
	rt := reflect.TypeFor[A]()
	if rt.Kind() != reflect.Array || rt.Elem().Kind() != reflect.Uint8 {
		return BytesCodec[C]{}, fmt.Errorf("%s is not a byte array type", rt)
	}
	return NewBytesCodec[C](rt.Len())
}

// arrayBytes copies an [N]byte array value into a fresh slice.
func arrayBytes[A any](v A) []byte {
	rv := reflect.ValueOf(v)
	out := make([]byte, rv.Len())
	reflect.Copy(reflect.ValueOf(out), rv)
	return out
}

// setArray copies decoded bytes back into an [N]byte array value.
func setArray[A any](dst *A, b []byte) {
	reflect.Copy(reflect.ValueOf(dst).Elem(), reflect.ValueOf(b))
}

// jsonToken translates one JSON value into a decode delivery.
func jsonToken(data []byte) (Token, error) {
	if string(data) == "null" {
		return NullToken(), nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return Token{}, err
	}
	return StringToken(s), nil
}

// yamlToken translates one YAML node into a decode delivery.
func yamlToken(node *yaml.Node) (Token, error) {
	if node.Tag == "!!null" {
		return NullToken(), nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return Token{}, err
	}
	return StringToken(s), nil
}

// msgpackToken translates one msgpack value into a decode delivery.
func msgpackToken(dec *msgpack.Decoder) (Token, error) {
	v, err := dec.DecodeInterface()
	if err != nil {
		return Token{}, err
	}
	switch p := v.(type) {
	case nil:
		return NullToken(), nil
	case string:
		return StringToken(p), nil
	case []byte:
		return BytesToken(p), nil
	}
	return Token{}, fmt.Errorf("expected a hex string, got %T", v)
}

// quoteJSON wraps hex text in JSON quotes. The digit alphabet and prefix
// need no escaping.
func quoteJSON(s string) []byte {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	return append(out, '"')
}

// jsonNull is the JSON absent marker.
var jsonNull = []byte("null")

// MarshalText implements encoding.TextMarshaler.
func (u Uint[U, C]) MarshalText() ([]byte, error) {
	return UintCodec[U, C]{}.AppendHex(nil, u.Val)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Uint[U, C]) UnmarshalText(text []byte) error {
	v, err := UintCodec[U, C]{}.DecodeHex(text)
	if err != nil {
		return err
	}
	u.Val = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u Uint[U, C]) MarshalJSON() ([]byte, error) {
	s, err := EncodeToString[U](UintCodec[U, C]{}, u.Val)
	if err != nil {
		return nil, err
	}
	return quoteJSON(s), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op, per
// encoding/json convention.
func (u *Uint[U, C]) UnmarshalJSON(data []byte) error {
	tok, err := jsonToken(data)
	if err != nil {
		return err
	}
	if tok.Kind == TokenNull {
		return nil
	}
	v, err := Deserialize[U](UintCodec[U, C]{}, tok)
	if err != nil {
		return err
	}
	u.Val = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (u Uint[U, C]) MarshalYAML() (any, error) {
	return EncodeToString[U](UintCodec[U, C]{}, u.Val)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (u *Uint[U, C]) UnmarshalYAML(node *yaml.Node) error {
	tok, err := yamlToken(node)
	if err != nil {
		return err
	}
	v, err := Deserialize[U](UintCodec[U, C]{}, tok)
	if err != nil {
		return err
	}
	u.Val = v
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (u Uint[U, C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	s, err := EncodeToString[U](UintCodec[U, C]{}, u.Val)
	if err != nil {
		return err
	}
	return enc.EncodeString(s)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (u *Uint[U, C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	tok, err := msgpackToken(dec)
	if err != nil {
		return err
	}
	v, err := Deserialize[U](UintCodec[U, C]{}, tok)
	if err != nil {
		return err
	}
	u.Val = v
	return nil
}

// decode applies one delivery to the field.
func (o *OptUint[U, C]) decode(tok Token) error {
	v, err := DeserializeOpt[U](UintCodec[U, C]{}, tok)
	if err != nil {
		return err
	}
	if v == nil {
		*o = OptUint[U, C]{}
		return nil
	}
	o.Val, o.Set = *v, true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptUint[U, C]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return jsonNull, nil
	}
	return Uint[U, C]{Val: o.Val}.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptUint[U, C]) UnmarshalJSON(data []byte) error {
	tok, err := jsonToken(data)
	if err != nil {
		return err
	}
	return o.decode(tok)
}

// MarshalYAML implements yaml.Marshaler.
func (o OptUint[U, C]) MarshalYAML() (any, error) {
	if !o.Set {
		return nil, nil
	}
	return EncodeToString[U](UintCodec[U, C]{}, o.Val)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OptUint[U, C]) UnmarshalYAML(node *yaml.Node) error {
	tok, err := yamlToken(node)
	if err != nil {
		return err
	}
	return o.decode(tok)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o OptUint[U, C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !o.Set {
		return enc.EncodeNil()
	}
	return Uint[U, C]{Val: o.Val}.EncodeMsgpack(enc)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (o *OptUint[U, C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	tok, err := msgpackToken(dec)
	if err != nil {
		return err
	}
	return o.decode(tok)
}

// MarshalText implements encoding.TextMarshaler.
func (a Array[A, C]) MarshalText() ([]byte, error) {
	c, err := arrayCodec[A, C]()
	if err != nil {
		return nil, err
	}
	return c.AppendHex(nil, arrayBytes(a.Val))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Array[A, C]) UnmarshalText(text []byte) error {
	c, err := arrayCodec[A, C]()
	if err != nil {
		return err
	}
	out, err := c.DecodeHex(text)
	if err != nil {
		return err
	}
	setArray(&a.Val, out)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Array[A, C]) MarshalJSON() ([]byte, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return quoteJSON(string(text)), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op, per
// encoding/json convention.
func (a *Array[A, C]) UnmarshalJSON(data []byte) error {
	tok, err := jsonToken(data)
	if err != nil {
		return err
	}
	if tok.Kind == TokenNull {
		return nil
	}
	raw, _ := tok.raw()
	return a.UnmarshalText(raw)
}

// MarshalYAML implements yaml.Marshaler.
func (a Array[A, C]) MarshalYAML() (any, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Array[A, C]) UnmarshalYAML(node *yaml.Node) error {
	tok, err := yamlToken(node)
	if err != nil {
		return err
	}
	raw, ok := tok.raw()
	if !ok {
		return fmt.Errorf("expected a hex string, got %s", node.Tag)
	}
	return a.UnmarshalText(raw)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (a Array[A, C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	text, err := a.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(text))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (a *Array[A, C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	tok, err := msgpackToken(dec)
	if err != nil {
		return err
	}
	raw, ok := tok.raw()
	if !ok {
		return fmt.Errorf("expected a hex string, got token kind %d", tok.Kind)
	}
	return a.UnmarshalText(raw)
}

// decode applies one delivery to the field.
func (o *OptArray[A, C]) decode(tok Token) error {
	switch tok.Kind {
	case TokenNull, TokenUnit:
		*o = OptArray[A, C]{}
		return nil
	case TokenSome:
		return o.decode(*tok.Elem)
	}
	var a Array[A, C]
	raw, _ := tok.raw()
	if err := a.UnmarshalText(raw); err != nil {
		return err
	}
	o.Val, o.Set = a.Val, true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptArray[A, C]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return jsonNull, nil
	}
	return Array[A, C]{Val: o.Val}.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptArray[A, C]) UnmarshalJSON(data []byte) error {
	tok, err := jsonToken(data)
	if err != nil {
		return err
	}
	return o.decode(tok)
}

// MarshalYAML implements yaml.Marshaler.
func (o OptArray[A, C]) MarshalYAML() (any, error) {
	if !o.Set {
		return nil, nil
	}
	return Array[A, C]{Val: o.Val}.MarshalYAML()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OptArray[A, C]) UnmarshalYAML(node *yaml.Node) error {
	tok, err := yamlToken(node)
	if err != nil {
		return err
	}
	return o.decode(tok)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o OptArray[A, C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !o.Set {
		return enc.EncodeNil()
	}
	return Array[A, C]{Val: o.Val}.EncodeMsgpack(enc)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (o *OptArray[A, C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	tok, err := msgpackToken(dec)
	if err != nil {
		return err
	}
	return o.decode(tok)
}

// MarshalText implements encoding.TextMarshaler.
func (s Seq[C]) MarshalText() ([]byte, error) {
	return SeqCodec[uint8, C]{}.AppendHex(nil, s.Val)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seq[C]) UnmarshalText(text []byte) error {
	out, err := SeqCodec[uint8, C]{}.DecodeHex(text)
	if err != nil {
		return err
	}
	s.Val = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Seq[C]) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return quoteJSON(string(text)), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op, per
// encoding/json convention.
func (s *Seq[C]) UnmarshalJSON(data []byte) error {
	tok, err := jsonToken(data)
	if err != nil {
		return err
	}
	if tok.Kind == TokenNull {
		return nil
	}
	raw, _ := tok.raw()
	return s.UnmarshalText(raw)
}

// MarshalYAML implements yaml.Marshaler.
func (s Seq[C]) MarshalYAML() (any, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Seq[C]) UnmarshalYAML(node *yaml.Node) error {
	tok, err := yamlToken(node)
	if err != nil {
		return err
	}
	raw, ok := tok.raw()
	if !ok {
		return fmt.Errorf("expected a hex string, got %s", node.Tag)
	}
	return s.UnmarshalText(raw)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s Seq[C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	text, err := s.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(text))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (s *Seq[C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	tok, err := msgpackToken(dec)
	if err != nil {
		return err
	}
	raw, ok := tok.raw()
	if !ok {
		return fmt.Errorf("expected a hex string, got token kind %d", tok.Kind)
	}
	return s.UnmarshalText(raw)
}
