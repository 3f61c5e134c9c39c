package item

import (
	"math"
	"testing"

	"github.com/arloliu/fdbtuple/format"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"value passthrough", String("x"), String("x")},
		{"bool", true, Bool(true)},
		{"int", -7, Int(-7)},
		{"int8", int8(-8), Int(-8)},
		{"int16", int16(16), Int(16)},
		{"int32", int32(32), Int(32)},
		{"int64", int64(math.MinInt64), Int(math.MinInt64)},
		{"uint8", uint8(8), Int(8)},
		{"uint16", uint16(16), Int(16)},
		{"uint32", uint32(32), Int(32)},
		{"small uint64", uint64(64), Int(64)},
		{"large uint64", uint64(math.MaxUint64), Uint(math.MaxUint64)},
		{"uint", uint(3), Int(3)},
		{"string", "hello", String("hello")},
		{"bytes", []byte("world"), Bytes("world")},
		{"float32", float32(1.5), Float32(1.5)},
		{"float64", 2.5, Float64(2.5)},
		{"uuid", id, UUID(id)},
		{"nested", []any{1, "a", nil}, Tuple{Int(1), String("a"), Null{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOf_Unsupported(t *testing.T) {
	_, err := Of(struct{}{})
	require.ErrorIs(t, err, format.ErrUnsupportedType)

	_, err = Of([]any{1, map[string]int{}})
	require.ErrorIs(t, err, format.ErrUnsupportedType)
	require.Contains(t, err.Error(), "element 1")

	require.Panics(t, func() { MustOf(make(chan int)) })
}

func TestFormat(t *testing.T) {
	v := Tuple{
		String("hello"), Bytes("a\x00"), Int(-3), nil, Bool(true),
		Float64(1.5), Float32(2), Tuple{Uint(math.MaxUint64)},
	}
	require.Equal(t, `("hello", b"a\x00", -3, nil, true, 1.5, 2f, (18446744073709551615))`, Format(v))
	require.Equal(t, "nil", Format(nil))

	vs := Versionstamp{TxVersion: [10]byte{0xAB}, UserVersion: 7}
	require.Equal(t, "Versionstamp(ab000000000000000000, 7)", vs.String())
}
