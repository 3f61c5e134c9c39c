package item

import (
	"bytes"
	"cmp"
	"strings"

	"github.com/arloliu/fdbtuple/format"
)

// Compare returns -1, 0, or +1 as a orders before, equal to, or after b in
// the order their encodings sort. A nil Value compares as Null.
//
// Within a variant the order is the natural one: numeric for integers (Int and
// Uint mix freely), byte-wise for Bytes and String, element-wise for Tuple
// with shorter prefixes first, and IEEE total order for floats with NaN after
// +Inf. Floats compare by bit pattern, so -0 orders before +0 and NaNs with
// different payloads are distinct.
func Compare(a, b Value) int {
	ca, cb := class(a), class(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}

	switch a := a.(type) {
	case nil, Null, Bool:
		return 0
	case Int, Uint:
		return compareInts(a, b)
	case Bytes:
		return bytes.Compare(a, b.(Bytes))
	case String:
		return strings.Compare(string(a), string(b.(String)))
	case Float32:
		return cmp.Compare(float32Key(float32(a)), float32Key(float32(b.(Float32))))
	case Float64:
		return cmp.Compare(float64Key(float64(a)), float64Key(float64(b.(Float64))))
	case UUID:
		bu := b.(UUID)
		return bytes.Compare(a[:], bu[:])
	case Versionstamp:
		bv := b.(Versionstamp)
		if c := bytes.Compare(a.TxVersion[:], bv.TxVersion[:]); c != 0 {
			return c
		}

		return cmp.Compare(a.UserVersion, bv.UserVersion)
	case Tuple:
		return CompareTuples(a, b.(Tuple))
	default:
		panic("item: unknown value type")
	}
}

// CompareTuples compares a and b element by element; when one is a prefix of
// the other the shorter one orders first.
func CompareTuples(a, b Tuple) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// Equal reports whether a and b encode identically.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// class returns the ordering class of v: its tag, with every integer tag
// folded onto TagIntZero.
func class(v Value) format.Tag {
	switch v.(type) {
	case nil:
		return format.TagNull
	case Int, Uint:
		return format.TagIntZero
	default:
		return v.Tag()
	}
}

func compareInts(a, b Value) int {
	an, au := intParts(a)
	bn, bu := intParts(b)

	switch {
	case an && !bn:
		return -1
	case !an && bn:
		return 1
	case an:
		return cmp.Compare(int64(au), int64(bu)) //nolint:gosec
	default:
		return cmp.Compare(au, bu)
	}
}

// intParts returns the sign of an integer item and its two's complement bits.
func intParts(v Value) (negative bool, u uint64) {
	switch v := v.(type) {
	case Int:
		return v < 0, uint64(v) //nolint:gosec
	case Uint:
		return false, uint64(v)
	}

	return false, 0
}
