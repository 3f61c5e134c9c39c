package format

import (
	"errors"
	"fmt"
)

// Decode failures. Every error returned by a decoder matches exactly one of
// these with errors.Is.
var (
	// ErrUnexpectedEOF reports a buffer that ends before an item's declared payload.
	ErrUnexpectedEOF = errors.New("tuple: unexpected end of input")
	// ErrInvalidType reports a leading byte that matches no item variant, or a
	// variant that cannot be decoded into the requested Go type.
	ErrInvalidType = errors.New("tuple: invalid type")
	// ErrInvalidData reports a well-formed tag whose payload is semantically invalid,
	// including trailing bytes after a fixed-arity tuple.
	ErrInvalidData = errors.New("tuple: invalid data")
	// ErrTextDecoding reports a text item whose payload is not valid UTF-8.
	ErrTextDecoding = errors.New("tuple: invalid UTF-8 text")
)

// ErrUnsupportedType is returned when a Go value has no item representation.
var ErrUnsupportedType = errors.New("tuple: unsupported Go type")

// InvalidTypeError carries the offending tag byte of an ErrInvalidType failure.
type InvalidTypeError struct {
	Tag byte
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("tuple: invalid type: %#02x", e.Tag)
}

// Is makes errors.Is(err, ErrInvalidType) hold for any *InvalidTypeError.
func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// NewInvalidTypeError returns an ErrInvalidType failure for tag.
func NewInvalidTypeError(tag byte) error {
	return &InvalidTypeError{Tag: tag}
}

// Kind is the closed classification of decode failures.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUnexpectedEOF
	KindInvalidType
	KindInvalidData
	KindTextDecoding
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "UnexpectedEndOfInput"
	case KindInvalidType:
		return "InvalidType"
	case KindInvalidData:
		return "InvalidData"
	case KindTextDecoding:
		return "TextDecodingError"
	default:
		return "Unknown"
	}
}

// KindOf classifies err. Errors that did not originate in the codec, and nil,
// report KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrUnexpectedEOF):
		return KindUnexpectedEOF
	case errors.Is(err, ErrInvalidType):
		return KindInvalidType
	case errors.Is(err, ErrTextDecoding):
		return KindTextDecoding
	case errors.Is(err, ErrInvalidData):
		return KindInvalidData
	default:
		return KindUnknown
	}
}
