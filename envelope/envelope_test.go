package envelope

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arloliu/fdbtuple"
	"github.com/arloliu/fdbtuple/format"
	"github.com/arloliu/fdbtuple/item"
	"github.com/stretchr/testify/require"
)

func sampleTuple(rows int) fdbtuple.Tuple {
	t := make(fdbtuple.Tuple, 0, rows*2)
	for i := range rows {
		t = append(t, item.String(fmt.Sprintf("metric.cpu.%04d", i)), item.Int(i*10))
	}

	return t
}

func allCompressions() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	tuples := map[string]fdbtuple.Tuple{
		"empty":  {},
		"small":  {item.String("hello"), item.Bytes("world")},
		"nested": {item.Tuple{item.Null{}, item.Int(-1)}, item.Bool(true)},
		"large":  sampleTuple(200),
	}

	for _, ct := range allCompressions() {
		for _, checksum := range []bool{true, false} {
			enc, err := NewEncoder(WithCompression(ct), WithChecksum(checksum))
			require.NoError(t, err)

			for name, tup := range tuples {
				t.Run(fmt.Sprintf("%s/checksum=%t/%s", ct, checksum, name), func(t *testing.T) {
					buf, err := enc.Encode(tup)
					require.NoError(t, err)
					require.Equal(t, Magic, buf[0])

					got, err := Decode(buf)
					require.NoError(t, err)
					require.Zero(t, fdbtuple.Compare(tup, got))
				})
			}
		}
	}
}

func TestEncoder_Layout(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionNone), WithChecksum(false))
	require.NoError(t, err)

	buf, err := enc.Encode(fdbtuple.Tuple{item.Int(0)})
	require.NoError(t, err)
	require.Equal(t, []byte{Magic, byte(format.CompressionNone), 0x14}, buf)

	enc, err = NewEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	buf, err = enc.Encode(fdbtuple.Tuple{item.Int(0)})
	require.NoError(t, err)
	require.Len(t, buf, headerSize+1+checksumSize)
	require.Equal(t, byte(format.CompressionNone)|checksumFlag, buf[1])
}

func TestEncoder_MinCompressSize(t *testing.T) {
	small := fdbtuple.Tuple{item.String("tiny")}
	large := sampleTuple(100)

	enc, err := NewEncoder(WithCompression(format.CompressionS2), WithMinCompressSize(1024))
	require.NoError(t, err)

	buf, err := enc.Encode(small)
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, format.CompressionType(buf[1]&compressionMask))

	buf, err = enc.Encode(large)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, format.CompressionType(buf[1]&compressionMask))
	require.Less(t, len(buf), fdbtuple.TupleSize(large))
}

func TestEncoder_IncompressibleFallsBack(t *testing.T) {
	tup := fdbtuple.Tuple{item.String("hello")}

	for _, ct := range []format.CompressionType{format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			enc, err := NewEncoder(WithCompression(ct), WithMinCompressSize(0))
			require.NoError(t, err)

			buf, err := enc.Encode(tup)
			require.NoError(t, err)
			require.Equal(t, format.CompressionNone, format.CompressionType(buf[1]&compressionMask))
			require.Equal(t, fdbtuple.EncodeTuple(tup), buf[headerSize:len(buf)-checksumSize])

			got, err := Decode(buf)
			require.NoError(t, err)
			require.Equal(t, tup, got)
		})
	}
}

func TestEncoder_ResultsDoNotShareMemory(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	first, err := enc.Encode(fdbtuple.Tuple{item.String("first")})
	require.NoError(t, err)
	snapshot := bytes.Clone(first)

	for range 8 {
		_, err = enc.Encode(fdbtuple.Tuple{item.String("second, a longer one")})
		require.NoError(t, err)
	}
	require.Equal(t, snapshot, first)
}

func TestEncoder_Defaults(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	require.Equal(t, DefaultCompression, enc.Compression())

	buf, err := enc.Encode(sampleTuple(50))
	require.NoError(t, err)
	require.Equal(t, byte(format.CompressionZstd)|checksumFlag, buf[1])
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(9)))
	require.Error(t, err)

	_, err = NewEncoder(WithMinCompressSize(-1))
	require.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionZstd), WithMinCompressSize(0))
	require.NoError(t, err)

	valid, err := enc.Encode(sampleTuple(20))
	require.NoError(t, err)

	flipped := bytes.Clone(valid)
	flipped[len(flipped)-1] ^= 0x01

	reserved := bytes.Clone(valid)
	reserved[1] |= 0x80

	unknown := bytes.Clone(valid)
	unknown[1] = unknown[1]&^compressionMask | 0x0F

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{name: "empty", buf: nil, want: format.ErrUnexpectedEOF},
		{name: "magic only", buf: []byte{Magic}, want: format.ErrUnexpectedEOF},
		{name: "bad magic", buf: []byte{0x02, 0x01}, want: ErrBadMagic},
		{name: "short checksum", buf: []byte{Magic, byte(format.CompressionNone) | checksumFlag, 0x14}, want: format.ErrUnexpectedEOF},
		{name: "checksum mismatch", buf: flipped, want: ErrChecksumMismatch},
		{name: "reserved flags", buf: reserved, want: format.ErrInvalidData},
		{name: "unknown compression", buf: unknown, want: format.ErrInvalidData},
		{name: "corrupt payload", buf: []byte{Magic, byte(format.CompressionZstd), 0xDE, 0xAD}, want: format.ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.buf)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_InvalidTuple(t *testing.T) {
	buf := []byte{Magic, byte(format.CompressionNone), 0x16, 0x00}

	_, err := Decode(buf)
	require.ErrorIs(t, err, format.ErrUnexpectedEOF)
	require.Equal(t, format.KindUnexpectedEOF, format.KindOf(err))
}

func TestOpen_ReturnsRawEncoding(t *testing.T) {
	tup := sampleTuple(30)
	enc, err := NewEncoder(WithCompression(format.CompressionLZ4), WithMinCompressSize(0))
	require.NoError(t, err)

	buf, err := enc.Encode(tup)
	require.NoError(t, err)

	raw, err := Open(buf)
	require.NoError(t, err)
	require.Equal(t, fdbtuple.EncodeTuple(tup), raw)
}

func BenchmarkEncoder_Encode(b *testing.B) {
	tup := sampleTuple(100)
	for _, ct := range allCompressions() {
		b.Run(ct.String(), func(b *testing.B) {
			enc, err := NewEncoder(WithCompression(ct))
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := enc.Encode(tup); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	tup := sampleTuple(100)
	for _, ct := range allCompressions() {
		b.Run(ct.String(), func(b *testing.B) {
			enc, err := NewEncoder(WithCompression(ct))
			if err != nil {
				b.Fatal(err)
			}
			buf, err := enc.Encode(tup)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := Decode(buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
