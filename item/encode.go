package item

import (
	"encoding/binary"
	"math"
	"math/bits"
	"strings"

	"github.com/arloliu/fdbtuple/format"
)

// Encode returns the encoding of v in a newly allocated slice.
func Encode(v Value) []byte {
	return Append(nil, v)
}

// Append appends the encoding of v to dst and returns the extended slice.
// Every Value has an encoding, so Append never fails.
func Append(dst []byte, v Value) []byte {
	return appendValue(dst, v, false)
}

// Size returns the number of bytes Append writes for v.
func Size(v Value) int {
	return sizeValue(v, false)
}

func appendValue(dst []byte, v Value, nested bool) []byte {
	switch v := v.(type) {
	case nil, Null:
		if nested {
			return append(dst, byte(format.TagNull), format.Escape)
		}

		return append(dst, byte(format.TagNull))
	case Bool:
		return append(dst, byte(v.Tag()))
	case Int:
		return appendInt(dst, int64(v))
	case Uint:
		return appendUint(dst, uint64(v))
	case Bytes:
		return appendBytes(dst, v)
	case String:
		return appendString(dst, string(v))
	case Float32:
		dst = append(dst, byte(format.TagFloat32))
		return binary.BigEndian.AppendUint32(dst, float32Key(float32(v)))
	case Float64:
		dst = append(dst, byte(format.TagFloat64))
		return binary.BigEndian.AppendUint64(dst, float64Key(float64(v)))
	case UUID:
		dst = append(dst, byte(format.TagUUID))
		return append(dst, v[:]...)
	case Versionstamp:
		dst = append(dst, byte(format.TagVersionstamp))
		dst = append(dst, v.TxVersion[:]...)
		return binary.BigEndian.AppendUint16(dst, v.UserVersion)
	case Tuple:
		dst = append(dst, byte(format.TagNested))
		for _, elem := range v {
			dst = appendValue(dst, elem, true)
		}

		return append(dst, byte(format.TagNull))
	default:
		// Value is sealed; this is only reachable through a nil pointer
		// hidden in the interface, which is not a valid item.
		panic("item: unknown value type")
	}
}

func sizeValue(v Value, nested bool) int {
	switch v := v.(type) {
	case nil, Null:
		if nested {
			return 2
		}

		return 1
	case Bool:
		return 1
	case Int:
		if v < 0 {
			return 1 + intWidth(negMagnitude(int64(v)))
		}

		return 1 + intWidth(uint64(v))
	case Uint:
		return 1 + intWidth(uint64(v))
	case Bytes:
		return 2 + len(v) + countZeros(v)
	case String:
		return 2 + len(v) + strings.Count(string(v), "\x00")
	case Float32:
		return 1 + format.Float32Size
	case Float64:
		return 1 + format.Float64Size
	case UUID:
		return 1 + format.UUIDSize
	case Versionstamp:
		return 1 + format.VersionstampSize
	case Tuple:
		n := 2
		for _, elem := range v {
			n += sizeValue(elem, true)
		}

		return n
	default:
		panic("item: unknown value type")
	}
}

// intWidth returns the minimal number of bytes holding magnitude u.
func intWidth(u uint64) int {
	return (bits.Len64(u) + 7) / 8
}

// negMagnitude returns |v| for a negative v, including math.MinInt64.
func negMagnitude(v int64) uint64 {
	return uint64(^v) + 1
}

func appendUint(dst []byte, u uint64) []byte {
	n := intWidth(u)
	dst = append(dst, byte(format.IntTag(n, false)))

	return appendBigEndian(dst, u, n)
}

func appendInt(dst []byte, v int64) []byte {
	if v >= 0 {
		return appendUint(dst, uint64(v))
	}

	mag := negMagnitude(v)
	n := intWidth(mag)
	dst = append(dst, byte(format.IntTag(n, true)))

	// The low n bytes of ^mag are (2^(8n)-1) - mag.
	return appendBigEndian(dst, ^mag, n)
}

// appendBigEndian appends the low n bytes of u, most significant first.
func appendBigEndian(dst []byte, u uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(u>>(8*i)))
	}

	return dst
}

func appendBytes(dst []byte, b []byte) []byte {
	dst = append(dst, byte(format.TagBytes))
	start := 0
	for i := 0; i < len(b); i++ {
		if b[i] == 0x00 {
			dst = append(dst, b[start:i+1]...)
			dst = append(dst, format.Escape)
			start = i + 1
		}
	}
	dst = append(dst, b[start:]...)

	return append(dst, 0x00)
}

func appendString(dst []byte, s string) []byte {
	dst = append(dst, byte(format.TagString))
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 0x00 {
			dst = append(dst, s[start:i+1]...)
			dst = append(dst, format.Escape)
			start = i + 1
		}
	}
	dst = append(dst, s[start:]...)

	return append(dst, 0x00)
}

func countZeros(b []byte) int {
	n := 0
	for _, c := range b {
		if c == 0x00 {
			n++
		}
	}

	return n
}

// float32Key maps f to bits that sort like the float: the sign bit is flipped
// for non-negative values and every bit is flipped for negative ones.
func float32Key(f float32) uint32 {
	u := math.Float32bits(f)
	if u&(1<<31) != 0 {
		return ^u
	}

	return u | 1<<31
}

func float32FromKey(u uint32) float32 {
	if u&(1<<31) != 0 {
		return math.Float32frombits(u &^ (1 << 31))
	}

	return math.Float32frombits(^u)
}

func float64Key(f float64) uint64 {
	u := math.Float64bits(f)
	if u&(1<<63) != 0 {
		return ^u
	}

	return u | 1<<63
}

func float64FromKey(u uint64) float64 {
	if u&(1<<63) != 0 {
		return math.Float64frombits(u &^ (1 << 63))
	}

	return math.Float64frombits(^u)
}
