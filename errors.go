package serhex

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidDigit indicates a byte outside [0-9a-fA-F] in the input.
	ErrInvalidDigit = errors.New("invalid hex digit")

	// ErrSizeMismatch indicates the digit count does not satisfy the
	// configuration's width rule for the target type.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrBadSequenceSize indicates a sequence input whose length is zero
	// or not a positive multiple of the per-element chunk width.
	ErrBadSequenceSize = errors.New("bad hexadecimal sequence size")

	// ErrInvalidTag indicates a hex struct tag has an invalid format or
	// names a configuration the field type cannot support.
	ErrInvalidTag = errors.New("invalid hex tag")

	// ErrUnmarshal indicates the wire codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the wire codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// SizeError reports a width-rule violation. Array decoding counts bytes,
// integer decoding counts digits; the message carries whichever unit the
// failing codec uses.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("expected buff size `%d` got `%d`", e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error {
	return ErrSizeMismatch
}

// DigitError reports the first byte that is not a hex digit.
type DigitError struct {
	Byte byte
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("invalid hex digit `%c`", e.Byte)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}

// TagError represents a processor plan error for a single tagged field.
type TagError struct {
	Err    error  // Underlying sentinel error (ErrInvalidTag)
	Field  string // Field name that triggered the error
	Reason string // Why the tag was rejected
}

func (e *TagError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s): %s", e.Err.Error(), e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Reason)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error at the wire boundary.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newSizeError reports a size mismatch in the caller's units.
func newSizeError(expected, actual int) error {
	return &SizeError{Expected: expected, Actual: actual}
}

// newTagError creates a TagError for processor plan failures.
func newTagError(field, reason string) error {
	return &TagError{Err: ErrInvalidTag, Field: field, Reason: reason}
}

// newCodecError creates a CodecError for wire marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{Err: sentinel, Cause: cause}
}
