package fdbtuple

import (
	"fmt"

	"github.com/arloliu/fdbtuple/format"
	"github.com/arloliu/fdbtuple/item"
	"github.com/google/uuid"
)

//go:generate go run ./internal/codegen -out fixed_gen.go -max 12

// MaxArity is the largest fixed-arity tuple type generated in this package.
// Longer tuples use Tuple and the aggregate codec.
const MaxArity = 12

// Field lists the Go types usable as fields of a fixed-arity tuple.
//
// Every integer kind shares the integer encoding, so a field may be decoded
// into a different integer kind than it was encoded from as long as the value
// fits. []byte maps to byte strings, string to text, item.Null to the unit
// value, and item.Tuple to a nested tuple.
type Field interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		bool | string | []byte | float32 | float64 |
		item.Null | uuid.UUID | item.Versionstamp | item.Tuple
}

// Fixed is implemented by the generated Tuple1 through Tuple12 types.
type Fixed interface {
	// Arity returns the number of fields.
	Arity() int
	// AppendTuple appends the encoding of the tuple to dst.
	AppendTuple(dst []byte) []byte
}

type fixedPtr[T any] interface {
	*T
	Fixed
	decode(buf []byte) error
}

// EncodeFixed returns the encoding of a fixed-arity tuple. It is identical to
// the aggregate encoding of the same fields.
func EncodeFixed[T Fixed](t T) []byte {
	return t.AppendTuple(nil)
}

// DecodeFixed decodes buf into the fixed-arity tuple type T, which must be
// one of the generated TupleN types:
//
//	pair, err := fdbtuple.DecodeFixed[fdbtuple.Tuple2[string, []byte]](buf)
//
// The buffer must hold exactly T's fields. Field failures are returned as
// decoded by the item codec; an item whose variant does not match the field's
// Go type fails with format.ErrInvalidType, a value outside the field type's
// range with format.ErrInvalidData, and bytes left after the last field with
// format.ErrInvalidData.
func DecodeFixed[T any, PT fixedPtr[T]](buf []byte) (T, error) {
	var t T
	if err := PT(&t).decode(buf); err != nil {
		var zero T
		return zero, err
	}

	return t, nil
}

func fieldError(index, offset int, err error) error {
	return fmt.Errorf("decode field %d at offset %d: %w", index, offset, err)
}

func checkExhausted(buf []byte, offset, arity int) error {
	if offset != len(buf) {
		return fmt.Errorf("%w: %d trailing bytes after %d fields", format.ErrInvalidData, len(buf)-offset, arity)
	}

	return nil
}

func appendField(dst []byte, v any) []byte {
	switch v := v.(type) {
	case int:
		return item.Append(dst, item.Int(v))
	case int8:
		return item.Append(dst, item.Int(v))
	case int16:
		return item.Append(dst, item.Int(v))
	case int32:
		return item.Append(dst, item.Int(v))
	case int64:
		return item.Append(dst, item.Int(v))
	case uint:
		return item.Append(dst, item.Uint(v))
	case uint8:
		return item.Append(dst, item.Uint(v))
	case uint16:
		return item.Append(dst, item.Uint(v))
	case uint32:
		return item.Append(dst, item.Uint(v))
	case uint64:
		return item.Append(dst, item.Uint(v))
	case bool:
		return item.Append(dst, item.Bool(v))
	case string:
		return item.Append(dst, item.String(v))
	case []byte:
		return item.Append(dst, item.Bytes(v))
	case float32:
		return item.Append(dst, item.Float32(v))
	case float64:
		return item.Append(dst, item.Float64(v))
	case item.Null:
		return item.Append(dst, v)
	case uuid.UUID:
		return item.Append(dst, item.UUID(v))
	case item.Versionstamp:
		return item.Append(dst, v)
	case item.Tuple:
		return item.Append(dst, v)
	default:
		panic(fmt.Sprintf("fdbtuple: %T is not a Field type", v))
	}
}

// decodeField decodes the item at the start of buf into a T.
func decodeField[T Field](buf []byte) (T, int, error) {
	var out T

	v, n, err := item.Decode(buf)
	if err != nil {
		return out, 0, err
	}
	if err := assignField(&out, v, buf[0]); err != nil {
		return out, 0, err
	}

	return out, n, nil
}

func assignField(dst any, v item.Value, tag byte) error {
	switch p := dst.(type) {
	case *int:
		return setSigned(p, v, tag)
	case *int8:
		return setSigned(p, v, tag)
	case *int16:
		return setSigned(p, v, tag)
	case *int32:
		return setSigned(p, v, tag)
	case *int64:
		return setSigned(p, v, tag)
	case *uint:
		return setUnsigned(p, v, tag)
	case *uint8:
		return setUnsigned(p, v, tag)
	case *uint16:
		return setUnsigned(p, v, tag)
	case *uint32:
		return setUnsigned(p, v, tag)
	case *uint64:
		return setUnsigned(p, v, tag)
	case *bool:
		return set(p, v, tag, func(b item.Bool) bool { return bool(b) })
	case *string:
		return set(p, v, tag, func(s item.String) string { return string(s) })
	case *[]byte:
		return set(p, v, tag, func(b item.Bytes) []byte { return []byte(b) })
	case *float32:
		return set(p, v, tag, func(f item.Float32) float32 { return float32(f) })
	case *float64:
		return set(p, v, tag, func(f item.Float64) float64 { return float64(f) })
	case *item.Null:
		return set(p, v, tag, func(n item.Null) item.Null { return n })
	case *uuid.UUID:
		return set(p, v, tag, func(u item.UUID) uuid.UUID { return uuid.UUID(u) })
	case *item.Versionstamp:
		return set(p, v, tag, func(vs item.Versionstamp) item.Versionstamp { return vs })
	case *item.Tuple:
		return set(p, v, tag, func(t item.Tuple) item.Tuple { return t })
	default:
		panic(fmt.Sprintf("fdbtuple: %T is not a Field pointer", dst))
	}
}

// set stores conv(v) in p when v is a V, and reports ErrInvalidType otherwise.
func set[T any, V item.Value](p *T, v item.Value, tag byte, conv func(V) T) error {
	x, ok := v.(V)
	if !ok {
		return format.NewInvalidTypeError(tag)
	}
	*p = conv(x)

	return nil
}

func setSigned[I int | int8 | int16 | int32 | int64](p *I, v item.Value, tag byte) error {
	switch v := v.(type) {
	case item.Int:
		if int64(I(v)) != int64(v) {
			return fmt.Errorf("%w: %d overflows %T", format.ErrInvalidData, int64(v), *p)
		}
		*p = I(v)

		return nil
	case item.Uint:
		return fmt.Errorf("%w: %d overflows %T", format.ErrInvalidData, uint64(v), *p)
	default:
		return format.NewInvalidTypeError(tag)
	}
}

func setUnsigned[U uint | uint8 | uint16 | uint32 | uint64](p *U, v item.Value, tag byte) error {
	var u uint64
	switch v := v.(type) {
	case item.Int:
		if v < 0 {
			return fmt.Errorf("%w: %d is negative for %T", format.ErrInvalidData, int64(v), *p)
		}
		u = uint64(v)
	case item.Uint:
		u = uint64(v)
	default:
		return format.NewInvalidTypeError(tag)
	}

	if uint64(U(u)) != u {
		return fmt.Errorf("%w: %d overflows %T", format.ErrInvalidData, u, *p)
	}
	*p = U(u)

	return nil
}
