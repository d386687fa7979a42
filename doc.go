// Package serhex converts fixed-width binary values to and from
// hexadecimal text and plugs into the field-level encode/decode hooks of
// host serialization frameworks.
//
// # Configurations
//
// Formatting is selected at compile time by one of eight marker types, the
// Cartesian product of three flags:
//
//   - strict vs. compact: zero-padded to the value's full width, or the
//     minimal digit count (zero renders as "0")
//   - prefixed: output begins with "0x"
//   - capitalized: digits a-f render uppercase
//
// Decode always accepts both digit cases and an optional "0x"/"0X" prefix,
// whatever the configuration; the configuration governs output and the
// width rule enforced on input.
//
// # Field wrappers
//
// The wrapper types plug individual struct fields into encoding/json,
// gopkg.in/yaml.v3 and github.com/vmihailenco/msgpack/v5:
//
//	type Block struct {
//		Hash  serhex.Array[[32]byte, serhex.StrictPfx] `json:"hash"`
//		Nonce serhex.Uint[uint64, serhex.CompactPfx]   `json:"nonce"`
//	}
//
// Marshaling yields {"hash":"0x00…00","nonce":"0xff"}. OptUint and
// OptArray add null round-tripping for optional fields, and Seq renders a
// byte slice as one contiguous hex string ("0xdeadbeef").
//
// # Tag-driven processing
//
// Processor applies the same conversions to raw uintN, [N]byte and []byte
// fields via struct tags, with the wire format injected as a WireCodec:
//
//	type Block struct {
//		Hash  [32]byte `json:"hash" hex:"strict,prefix"`
//		Nonce uint64   `json:"nonce" hex:"compact,prefix"`
//	}
//
//	proc, err := serhex.NewProcessor[Block](json.New())
//	data, err := proc.Marshal(ctx, block)
//	block, err = proc.Unmarshal(ctx, data)
//
// Tag plans are validated at construction and cached per type; Use returns
// a processor cached per (type, content type) pair.
//
// # Errors
//
// Failures are sentinel errors (ErrInvalidDigit, ErrSizeMismatch,
// ErrBadSequenceSize, ...) wrapped in typed errors carrying context; check
// them with errors.Is and errors.As. Size mismatches render as
// "expected buff size `N` got `M`".
package serhex
