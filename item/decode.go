package item

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/fdbtuple/format"
)

// MaxDepth bounds tuple nesting accepted by Decode. Deeper input fails with
// format.ErrInvalidData instead of recursing without limit.
const MaxDepth = 512

// Decode decodes the item at the start of buf and returns it together with
// the number of bytes it occupies. Bytes after the item are ignored.
//
// Failures wrap one of format.ErrUnexpectedEOF, format.ErrInvalidType
// (as *format.InvalidTypeError), format.ErrInvalidData, or
// format.ErrTextDecoding. Decoded values never alias buf.
func Decode(buf []byte) (Value, int, error) {
	return decodeValue(buf, 0)
}

func decodeValue(buf []byte, depth int) (Value, int, error) {
	if len(buf) == 0 {
		return nil, 0, fmt.Errorf("%w: missing tag byte", format.ErrUnexpectedEOF)
	}

	tag := format.Tag(buf[0])
	switch {
	case tag == format.TagNull:
		return Null{}, 1, nil
	case tag == format.TagBytes:
		b, n, err := decodeEscaped(buf)
		if err != nil {
			return nil, 0, err
		}

		return Bytes(b), n, nil
	case tag == format.TagString:
		b, n, err := decodeEscaped(buf)
		if err != nil {
			return nil, 0, err
		}
		if !utf8.Valid(b) {
			return nil, 0, fmt.Errorf("%w: %d byte payload", format.ErrTextDecoding, len(b))
		}

		return String(b), n, nil
	case tag == format.TagNested:
		return decodeNested(buf, depth)
	case tag.IsInt():
		return decodeInt(buf, tag)
	case tag == format.TagFloat32:
		if err := need(buf, tag, format.Float32Size); err != nil {
			return nil, 0, err
		}

		return Float32(float32FromKey(binary.BigEndian.Uint32(buf[1:]))), 1 + format.Float32Size, nil
	case tag == format.TagFloat64:
		if err := need(buf, tag, format.Float64Size); err != nil {
			return nil, 0, err
		}

		return Float64(float64FromKey(binary.BigEndian.Uint64(buf[1:]))), 1 + format.Float64Size, nil
	case tag == format.TagFalse:
		return Bool(false), 1, nil
	case tag == format.TagTrue:
		return Bool(true), 1, nil
	case tag == format.TagUUID:
		if err := need(buf, tag, format.UUIDSize); err != nil {
			return nil, 0, err
		}

		var u UUID
		copy(u[:], buf[1:1+format.UUIDSize])

		return u, 1 + format.UUIDSize, nil
	case tag == format.TagVersionstamp:
		if err := need(buf, tag, format.VersionstampSize); err != nil {
			return nil, 0, err
		}

		var vs Versionstamp
		copy(vs.TxVersion[:], buf[1:11])
		vs.UserVersion = binary.BigEndian.Uint16(buf[11:13])

		return vs, 1 + format.VersionstampSize, nil
	default:
		return nil, 0, format.NewInvalidTypeError(buf[0])
	}
}

// need checks that buf holds the tag plus n payload bytes.
func need(buf []byte, tag format.Tag, n int) error {
	if len(buf)-1 < n {
		return fmt.Errorf("%w: %s needs %d payload bytes, have %d",
			format.ErrUnexpectedEOF, tag, n, len(buf)-1)
	}

	return nil
}

func decodeInt(buf []byte, tag format.Tag) (Value, int, error) {
	n, negative := tag.IntWidth()
	if err := need(buf, tag, n); err != nil {
		return nil, 0, err
	}

	var u uint64
	for _, b := range buf[1 : 1+n] {
		u = u<<8 | uint64(b)
	}

	if !negative {
		if u > math.MaxInt64 {
			return Uint(u), 1 + n, nil
		}

		return Int(u), 1 + n, nil //nolint:gosec
	}

	mask := uint64(math.MaxUint64)
	if n < format.MaxIntBytes {
		mask = 1<<(8*n) - 1
	}
	mag := mask - u
	if mag > 1<<63 {
		return nil, 0, fmt.Errorf("%w: negative integer magnitude %d overflows int64", format.ErrInvalidData, mag)
	}

	return Int(int64(^mag + 1)), 1 + n, nil //nolint:gosec
}

// decodeEscaped unescapes the payload of the byte string or text item at the
// start of buf. It returns the payload and the bytes consumed, including the
// tag and the terminator.
func decodeEscaped(buf []byte) ([]byte, int, error) {
	out := []byte{}
	i := 1
	for {
		j := bytes.IndexByte(buf[i:], 0x00)
		if j < 0 {
			return nil, 0, fmt.Errorf("%w: unterminated %s", format.ErrUnexpectedEOF, format.Tag(buf[0]))
		}
		out = append(out, buf[i:i+j]...)
		i += j

		// 0x00 0xFF at the very end is a terminator followed by a stray byte
		if i+2 < len(buf) && buf[i+1] == format.Escape {
			out = append(out, 0x00)
			i += 2

			continue
		}

		return out, i + 1, nil
	}
}

// decodeNested decodes the nested tuple at the start of buf. Inside the
// payload a bare 0x00 terminates the tuple and 0x00 0xFF is a null element.
func decodeNested(buf []byte, depth int) (Value, int, error) {
	if depth >= MaxDepth {
		return nil, 0, fmt.Errorf("%w: tuple nesting exceeds %d levels", format.ErrInvalidData, MaxDepth)
	}

	t := Tuple{}
	i := 1
	for {
		if i >= len(buf) {
			return nil, 0, fmt.Errorf("%w: unterminated nested tuple", format.ErrUnexpectedEOF)
		}

		if buf[i] == byte(format.TagNull) {
			if i+1 < len(buf) && buf[i+1] == format.Escape {
				t = append(t, Null{})
				i += 2

				continue
			}

			return t, i + 1, nil
		}

		v, n, err := decodeValue(buf[i:], depth+1)
		if err != nil {
			return nil, 0, err
		}
		t = append(t, v)
		i += n
	}
}
