package item

import (
	"fmt"
	"math"

	"github.com/arloliu/fdbtuple/format"
	"github.com/google/uuid"
)

// Of converts a Go value to an item.
//
// Supported inputs are nil, any Value, bool, every signed and unsigned integer
// kind, string, []byte, float32, float64, uuid.UUID, and []any (converted to a
// nested Tuple). Unsigned values up to math.MaxInt64 become Int; larger ones
// become Uint. Other types fail with format.ErrUnsupportedType.
func Of(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return ofUint(uint64(x)), nil
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint64:
		return ofUint(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Bytes(x), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float64(x), nil
	case uuid.UUID:
		return UUID(x), nil
	case []any:
		t := make(Tuple, len(x))
		for i, elem := range x {
			v, err := Of(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			t[i] = v
		}

		return t, nil
	default:
		return nil, fmt.Errorf("%w: %T", format.ErrUnsupportedType, x)
	}
}

// MustOf is like Of but panics on unsupported types. It is intended for
// literals in tests and static key definitions.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}

	return v
}

func ofUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Uint(u)
	}

	return Int(u) //nolint:gosec
}
