// Package format defines the wire-level vocabulary shared by the tuple codecs:
// the tag byte of every item variant, the closed set of decode errors, and
// the compression identifiers used by stored-value envelopes.
//
// The tag assignments follow the FoundationDB tuple layer so that encodings
// are interchangeable with other implementations of that layer.
package format

import "fmt"

// Tag is the leading byte of an encoded item. It selects the item variant and,
// for integers, the sign and the number of magnitude bytes that follow.
type Tag uint8

const (
	TagNull         Tag = 0x00 // TagNull marks a null item; also the nested tuple terminator.
	TagBytes        Tag = 0x01 // TagBytes marks a raw byte string.
	TagString       Tag = 0x02 // TagString marks UTF-8 text.
	TagNested       Tag = 0x05 // TagNested opens a nested tuple.
	TagIntNegMax    Tag = 0x0C // TagIntNegMax is the tag of an 8-byte negative integer.
	TagIntZero      Tag = 0x14 // TagIntZero encodes the integer 0 with no payload.
	TagIntPosMax    Tag = 0x1C // TagIntPosMax is the tag of an 8-byte positive integer.
	TagFloat32      Tag = 0x20 // TagFloat32 marks a 4-byte IEEE 754 single.
	TagFloat64      Tag = 0x21 // TagFloat64 marks an 8-byte IEEE 754 double.
	TagFalse        Tag = 0x26 // TagFalse encodes boolean false.
	TagTrue         Tag = 0x27 // TagTrue encodes boolean true.
	TagUUID         Tag = 0x30 // TagUUID marks a 16-byte RFC 4122 UUID.
	TagVersionstamp Tag = 0x33 // TagVersionstamp marks a 12-byte complete versionstamp.
)

// Escape is the byte that follows 0x00 to mark an escaped zero inside byte
// strings, text, and nested tuple payloads.
const Escape byte = 0xFF

// MaxIntBytes is the widest integer magnitude the item codec emits.
const MaxIntBytes = 8

// Payload sizes of the fixed-width variants.
const (
	Float32Size      = 4
	Float64Size      = 8
	UUIDSize         = 16
	VersionstampSize = 12
)

// IntTag returns the tag of an integer with n magnitude bytes. Negative
// integers use tags below TagIntZero.
func IntTag(n int, negative bool) Tag {
	if negative {
		return TagIntZero - Tag(n) //nolint:gosec
	}

	return TagIntZero + Tag(n) //nolint:gosec
}

// IsInt reports whether t is one of the integer tags.
func (t Tag) IsInt() bool {
	return t >= TagIntNegMax && t <= TagIntPosMax
}

// IntWidth returns the magnitude byte count and sign encoded by an integer
// tag. The result is meaningless when t is not an integer tag.
func (t Tag) IntWidth() (n int, negative bool) {
	if t < TagIntZero {
		return int(TagIntZero - t), true
	}

	return int(t - TagIntZero), false
}

func (t Tag) String() string {
	switch {
	case t == TagNull:
		return "Null"
	case t == TagBytes:
		return "Bytes"
	case t == TagString:
		return "String"
	case t == TagNested:
		return "Nested"
	case t.IsInt():
		return "Int"
	case t == TagFloat32:
		return "Float32"
	case t == TagFloat64:
		return "Float64"
	case t == TagFalse, t == TagTrue:
		return "Bool"
	case t == TagUUID:
		return "UUID"
	case t == TagVersionstamp:
		return "Versionstamp"
	default:
		return fmt.Sprintf("Tag(%#02x)", uint8(t))
	}
}
