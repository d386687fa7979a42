// Package testing provides shared fixtures for serhex tests.
package testing

import (
	"github.com/zoobzio/serhex"
)

// Transaction is a fixture type covering every hex tag form: a fixed
// array, strict and compact integers, a byte sequence, an untagged
// passthrough field and an optional pointer field.
type Transaction struct {
	Hash    [20]byte  `json:"hash" yaml:"hash" msgpack:"hash" hex:"strict"`
	Parent  *[20]byte `json:"parent" yaml:"parent" msgpack:"parent" hex:"strict,prefix"`
	Nonce   uint64    `json:"nonce" yaml:"nonce" msgpack:"nonce" hex:"compact,prefix"`
	Fee     uint32    `json:"fee" yaml:"fee" msgpack:"fee" hex:"strict,cap"`
	Payload []byte    `json:"payload" yaml:"payload" msgpack:"payload" hex:"strict"`
	Memo    string    `json:"memo" yaml:"memo" msgpack:"memo"`
}

// WrappedTransaction mirrors Transaction using the field wrapper types
// instead of hex tags.
type WrappedTransaction struct {
	Hash    serhex.Array[[20]byte, serhex.Strict]       `json:"hash" yaml:"hash" msgpack:"hash"`
	Parent  serhex.OptArray[[20]byte, serhex.StrictPfx] `json:"parent" yaml:"parent" msgpack:"parent"`
	Nonce   serhex.Uint[uint64, serhex.CompactPfx]      `json:"nonce" yaml:"nonce" msgpack:"nonce"`
	Fee     serhex.Uint[uint32, serhex.StrictCap]       `json:"fee" yaml:"fee" msgpack:"fee"`
	Payload serhex.Seq[serhex.Strict]                   `json:"payload" yaml:"payload" msgpack:"payload"`
	Memo    string                                      `json:"memo" yaml:"memo" msgpack:"memo"`
}

// SampleHash is the fixture digest used across the integration tests.
var SampleHash = [20]byte{
	0xdf, 0x38, 0x92, 0x95, 0x48, 0x4b, 0x30, 0x59, 0xa4, 0x72,
	0x6d, 0xc6, 0xd8, 0xa5, 0x7f, 0x71, 0xbb, 0x5f, 0x4c, 0x81,
}

// SampleTransaction returns a fully populated fixture.
func SampleTransaction() Transaction {
	parent := [20]byte{0x01}
	return Transaction{
		Hash:    SampleHash,
		Parent:  &parent,
		Nonce:   0xff,
		Fee:     0xcafe,
		Payload: []byte{0xde, 0xad, 0xbe, 0xef},
		Memo:    "coinbase",
	}
}

// SampleWrappedTransaction returns the wrapper-typed rendering of
// SampleTransaction.
func SampleWrappedTransaction() WrappedTransaction {
	return WrappedTransaction{
		Hash:    serhex.Array[[20]byte, serhex.Strict]{Val: SampleHash},
		Parent:  serhex.OptArray[[20]byte, serhex.StrictPfx]{Val: [20]byte{0x01}, Set: true},
		Nonce:   serhex.Uint[uint64, serhex.CompactPfx]{Val: 0xff},
		Fee:     serhex.Uint[uint32, serhex.StrictCap]{Val: 0xcafe},
		Payload: serhex.Seq[serhex.Strict]{Val: []byte{0xde, 0xad, 0xbe, 0xef}},
		Memo:    "coinbase",
	}
}
