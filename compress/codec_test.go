package compress

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/arloliu/fdbtuple/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// tuplePayload builds a byte stream shaped like a list of encoded
// (string, int) tuples: mostly printable text with repeated tags.
func tuplePayload(rows int) []byte {
	var buf bytes.Buffer
	for i := range rows {
		buf.WriteByte(0x02)
		fmt.Fprintf(&buf, "user/%06d", i)
		buf.WriteByte(0x00)
		buf.WriteByte(0x16)
		buf.WriteByte(byte(i >> 8))
		buf.WriteByte(byte(i))
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := GetCodec(format.CompressionType(0x0F))
	require.ErrorIs(t, err, format.ErrInvalidData)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "hello_world_tuple", data: []byte{0x02, 'h', 'e', 'l', 'l', 'o', 0x00, 0x01, 'w', 'o', 'r', 'l', 'd', 0x00}},
		{name: "single_byte", data: []byte{0x14}},
		{name: "escaped_nulls", data: bytes.Repeat([]byte{0x01, 0x00, 0xFF, 0x00}, 64)},
		{name: "tuple_rows", data: tuplePayload(500)},
		{name: "large_tuple_rows", data: tuplePayload(20000)},
		{name: "zeros", data: make([]byte, 1024*1024)},
		{
			name: "pseudo_random",
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					data[i] = byte((i*7 + i*i) % 251)
				}

				return data
			}(),
		},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					if errors.Is(err, ErrIncompressible) {
						return
					}
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_Shrinks(t *testing.T) {
	data := tuplePayload(2000)

	// The fast block codecs only drop the repeated tags and prefixes; Zstd's
	// entropy stage also packs the digits.
	limits := map[string]int{
		"Zstd": len(data) / 2,
		"S2":   len(data),
		"LZ4":  len(data),
	}

	for codecName, limit := range limits {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := getAllCodecs()[codecName].Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), limit)
		})
	}
}

func TestBlockCodecs_Incompressible(t *testing.T) {
	for _, codec := range []Codec{NewS2Compressor(), NewLZ4Compressor()} {
		_, err := codec.Compress([]byte{0x14})
		require.ErrorIs(t, err, ErrIncompressible)

		_, err = codec.Compress([]byte{0x02, 'h', 'e', 'l', 'l', 'o', 0x00})
		require.ErrorIs(t, err, ErrIncompressible)
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "text_as_compressed", data: []byte("this is not compressed data")},
		{name: "corrupted_header", data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	data := tuplePayload(100)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			errs := make(chan error, numGoroutines*2)
			var wg sync.WaitGroup
			for range numGoroutines {
				wg.Add(2)
				go func() {
					defer wg.Done()
					_, err := codec.Compress(data)
					errs <- err
				}()
				go func() {
					defer wg.Done()
					out, err := codec.Decompress(compressed)
					if err == nil && !bytes.Equal(data, out) {
						err = fmt.Errorf("decompressed data mismatch")
					}
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				require.NoError(t, err)
			}
		})
	}
}

func TestNoOpCompressor_Aliases(t *testing.T) {
	data := []byte{0x15, 0x2A}
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}
