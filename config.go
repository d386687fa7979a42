package serhex

// Config describes one hex formatting configuration as three independent
// flags. Configurations are zero-size marker types selected at compile time
// through a type parameter; they carry no runtime state.
//
// The eight types in this package are the only implementations: the
// interface is sealed, so no other flag combination is constructible.
type Config interface {
	// IsStrict reports whether output is zero-padded to the value's full
	// natural width. Non-strict ("compact") output uses the minimal digit
	// count, rendering zero as a single "0".
	IsStrict() bool

	// HasPrefix reports whether output begins with "0x". Decode accepts
	// the prefix regardless of this flag.
	HasPrefix() bool

	// IsCapitalized reports whether digits a-f render uppercase. Decode
	// accepts both cases regardless of this flag.
	IsCapitalized() bool

	sealed()
}

// StrictConfig is the strict-family subset of Config. Byte arrays and
// sequences only accept these: without a fixed per-element width, compact
// formatting would make chunk boundaries ambiguous.
type StrictConfig interface {
	Config
	strictOnly()
}

// Strict formats with full zero-padded width, no prefix, lowercase.
type Strict struct{}

// StrictPfx formats with full zero-padded width and a "0x" prefix.
type StrictPfx struct{}

// StrictCap formats with full zero-padded width, uppercase digits.
type StrictCap struct{}

// StrictCapPfx formats with full zero-padded width, uppercase digits and a
// "0x" prefix.
type StrictCapPfx struct{}

// Compact formats with minimal width, no prefix, lowercase.
type Compact struct{}

// CompactPfx formats with minimal width and a "0x" prefix.
type CompactPfx struct{}

// CompactCap formats with minimal width, uppercase digits.
type CompactCap struct{}

// CompactCapPfx formats with minimal width, uppercase digits and a "0x"
// prefix.
type CompactCapPfx struct{}

func (Strict) IsStrict() bool { return true }
func (Strict) HasPrefix() bool { return false }
func (Strict) IsCapitalized() bool { return false }
func (Strict) sealed() {}
func (Strict) strictOnly() {}

func (StrictPfx) IsStrict() bool { return true }
func (StrictPfx) HasPrefix() bool { return true }
func (StrictPfx) IsCapitalized() bool { return false }
func (StrictPfx) sealed() {}
func (StrictPfx) strictOnly() {}

func (StrictCap) IsStrict() bool { return true }
func (StrictCap) HasPrefix() bool { return false }
func (StrictCap) IsCapitalized() bool { return true }
func (StrictCap) sealed() {}
func (StrictCap) strictOnly() {}

func (StrictCapPfx) IsStrict() bool { return true }
func (StrictCapPfx) HasPrefix() bool { return true }
func (StrictCapPfx) IsCapitalized() bool { return true }
func (StrictCapPfx) sealed() {}
func (StrictCapPfx) strictOnly() {}

func (Compact) IsStrict() bool { return false }
func (Compact) HasPrefix() bool { return false }
func (Compact) IsCapitalized() bool { return false }
func (Compact) sealed() {}

func (CompactPfx) IsStrict() bool { return false }
func (CompactPfx) HasPrefix() bool { return true }
func (CompactPfx) IsCapitalized() bool { return false }
func (CompactPfx) sealed() {}

func (CompactCap) IsStrict() bool { return false }
func (CompactCap) HasPrefix() bool { return false }
func (CompactCap) IsCapitalized() bool { return true }
func (CompactCap) sealed() {}

func (CompactCapPfx) IsStrict() bool { return false }
func (CompactCapPfx) HasPrefix() bool { return true }
func (CompactCapPfx) IsCapitalized() bool { return true }
func (CompactCapPfx) sealed() {}

// configOf returns the flag set of a configuration type parameter as a
// runtime value. Configurations are zero-size, so this is free.
func configOf[C Config]() C {
	var c C
	return c
}
