package item

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/fdbtuple/format"
	"github.com/google/uuid"
)

// Value is one item. The set of implementations is closed: Null, Bool, Int,
// Uint, Bytes, String, Float32, Float64, UUID, Versionstamp, and Tuple.
//
// A nil Value inside a Tuple is treated as Null.
type Value interface {
	// Tag returns the leading byte of the value's encoding.
	Tag() format.Tag
	String() string

	value()
}

var (
	_ Value = Null{}
	_ Value = Bool(false)
	_ Value = Int(0)
	_ Value = Uint(0)
	_ Value = Bytes(nil)
	_ Value = String("")
	_ Value = Float32(0)
	_ Value = Float64(0)
	_ Value = UUID{}
	_ Value = Versionstamp{}
	_ Value = Tuple(nil)
)

// Null is the unit value. It also stands for an empty product.
type Null struct{}

func (Null) Tag() format.Tag { return format.TagNull }
func (Null) String() string  { return "nil" }
func (Null) value()          {}

// Bool is a boolean item.
type Bool bool

func (b Bool) Tag() format.Tag {
	if b {
		return format.TagTrue
	}

	return format.TagFalse
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (Bool) value()           {}

// Int is a signed integer item.
type Int int64

func (i Int) Tag() format.Tag {
	if i < 0 {
		return format.IntTag(intWidth(negMagnitude(int64(i))), true)
	}

	return format.IntTag(intWidth(uint64(i)), false)
}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (Int) value()           {}

// Uint is a non-negative integer item. It encodes exactly like an Int of the
// same value; decoders only produce Uint for values above math.MaxInt64.
// A Uint that fits in an int64 therefore decodes as Int: compare round trips
// with Equal, not ==.
type Uint uint64

func (u Uint) Tag() format.Tag { return format.IntTag(intWidth(uint64(u)), false) }
func (u Uint) String() string  { return strconv.FormatUint(uint64(u), 10) }
func (Uint) value()            {}

// Bytes is a raw byte string item.
type Bytes []byte

func (Bytes) Tag() format.Tag  { return format.TagBytes }
func (b Bytes) String() string { return fmt.Sprintf("b%q", []byte(b)) }
func (Bytes) value()           {}

// String is a UTF-8 text item.
type String string

func (String) Tag() format.Tag  { return format.TagString }
func (s String) String() string { return strconv.Quote(string(s)) }
func (String) value()           {}

// Float32 is a single precision float item.
type Float32 float32

func (Float32) Tag() format.Tag { return format.TagFloat32 }
func (f Float32) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32) + "f"
}
func (Float32) value() {}

// Float64 is a double precision float item.
type Float64 float64

func (Float64) Tag() format.Tag  { return format.TagFloat64 }
func (f Float64) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (Float64) value()           {}

// UUID is a 16-byte RFC 4122 identifier item.
type UUID uuid.UUID

func (UUID) Tag() format.Tag  { return format.TagUUID }
func (u UUID) String() string { return "UUID(" + uuid.UUID(u).String() + ")" }
func (UUID) value()           {}

// Versionstamp is a complete 12-byte database commit version: a 10-byte
// transaction version followed by a 2-byte user version.
type Versionstamp struct {
	TxVersion   [10]byte
	UserVersion uint16
}

func (Versionstamp) Tag() format.Tag { return format.TagVersionstamp }
func (v Versionstamp) String() string {
	return fmt.Sprintf("Versionstamp(%x, %d)", v.TxVersion[:], v.UserVersion)
}
func (Versionstamp) value() {}

// Tuple is an ordered sequence of items. As an item it is a nested tuple.
type Tuple []Value

func (Tuple) Tag() format.Tag { return format.TagNested }

func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Format(v))
	}
	sb.WriteByte(')')

	return sb.String()
}

func (Tuple) value() {}

// Format returns the readable form of v. A nil v formats as Null.
func Format(v Value) string {
	if v == nil {
		return Null{}.String()
	}

	return v.String()
}
