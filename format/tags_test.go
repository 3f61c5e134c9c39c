package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntTag(t *testing.T) {
	for n := 0; n <= MaxIntBytes; n++ {
		pos := IntTag(n, false)
		neg := IntTag(n, true)

		require.True(t, pos.IsInt())
		require.True(t, neg.IsInt())

		gotN, negative := pos.IntWidth()
		require.Equal(t, n, gotN)
		require.False(t, negative && n > 0)

		gotN, negative = neg.IntWidth()
		require.Equal(t, n, gotN)
		if n > 0 {
			require.True(t, negative)
		}
	}

	require.Equal(t, TagIntPosMax, IntTag(MaxIntBytes, false))
	require.Equal(t, TagIntNegMax, IntTag(MaxIntBytes, true))
	require.Equal(t, TagIntZero, IntTag(0, true))
}

func TestTag_IsInt(t *testing.T) {
	require.False(t, Tag(0x0B).IsInt())
	require.False(t, Tag(0x1D).IsInt())
	require.False(t, TagString.IsInt())
}

func TestTag_String(t *testing.T) {
	tests := map[Tag]string{
		TagNull:         "Null",
		TagBytes:        "Bytes",
		TagString:       "String",
		TagNested:       "Nested",
		0x13:            "Int",
		TagFloat32:      "Float32",
		TagFloat64:      "Float64",
		TagTrue:         "Bool",
		TagUUID:         "UUID",
		TagVersionstamp: "Versionstamp",
		0x42:            "Tag(0x42)",
	}

	for tag, want := range tests {
		require.Equal(t, want, tag.String())
	}
}

func TestCompressionType(t *testing.T) {
	require.True(t, CompressionZstd.Valid())
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(9).String())
}
