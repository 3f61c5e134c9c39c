// Package fdbtuple encodes tuples of typed values into byte strings whose
// lexicographic order matches the natural order of the tuples.
//
// Encoded tuples are meant to be used as keys in ordered key-value stores:
// a range scan over encoded keys visits tuples in tuple order, and a tuple
// that is a prefix of another sorts first. The format is compatible with the
// FoundationDB tuple layer for every type it supports.
//
// # Quick Start
//
//	key, err := fdbtuple.Pack("users", 42, true)
//	if err != nil {
//		return err
//	}
//
//	t, err := fdbtuple.DecodeTuple(key)
//	// t is Tuple{item.String("users"), item.Int(42), item.Bool(true)}
//
// When the shape of a tuple is known at compile time, the generated
// Tuple1 through Tuple12 types decode straight into Go values:
//
//	row := fdbtuple.NewTuple2("users", int64(42))
//	key := row.Encode()
//	back, err := fdbtuple.DecodeTuple2[string, int64](key)
//
// # Packages
//
//   - item: the single-item codec and the Value sum type
//   - format: wire tags, errors and error kinds
//   - envelope: compressed, checksummed containers for tuple values
//   - compress: the payload codecs used by envelope
//
// # Errors
//
// Decoding failures wrap one of format.ErrUnexpectedEOF,
// format.ErrInvalidType, format.ErrInvalidData or format.ErrTextDecoding,
// and format.KindOf maps any of them to a format.Kind.
package fdbtuple

import (
	"fmt"

	"github.com/arloliu/fdbtuple/internal/hash"
	"github.com/arloliu/fdbtuple/internal/pool"
	"github.com/arloliu/fdbtuple/item"
)

// Tuple is an ordered sequence of items. Top-level and nested tuples share
// the same type.
type Tuple = item.Tuple

// EncodeValue encodes a single item.
func EncodeValue(v item.Value) []byte {
	return item.Encode(v)
}

// DecodeValue decodes one item from the start of buf and reports the number
// of bytes consumed.
func DecodeValue(buf []byte) (item.Value, int, error) {
	return item.Decode(buf)
}

// EncodeTuple returns the encoding of t: the concatenation of its items'
// encodings with no header or terminator. Encoding never fails.
func EncodeTuple(t Tuple) []byte {
	return AppendTuple(make([]byte, 0, TupleSize(t)), t)
}

// AppendTuple appends the encoding of t to dst and returns the extended slice.
func AppendTuple(dst []byte, t Tuple) []byte {
	for _, v := range t {
		dst = item.Append(dst, v)
	}

	return dst
}

// TupleSize returns the length of EncodeTuple(t).
func TupleSize(t Tuple) int {
	n := 0
	for _, v := range t {
		n += item.Size(v)
	}

	return n
}

// DecodeTuple decodes items from buf until it is exhausted. An empty buffer
// decodes to an empty tuple.
//
// The first failing item aborts decoding; its error is wrapped with the item
// index and byte offset and still matches the format sentinels.
func DecodeTuple(buf []byte) (Tuple, error) {
	t := Tuple{}
	for off := 0; off < len(buf); {
		v, n, err := item.Decode(buf[off:])
		if err != nil {
			return nil, fmt.Errorf("decode item %d at offset %d: %w", len(t), off, err)
		}
		t = append(t, v)
		off += n
	}

	return t, nil
}

// Pack converts Go values with item.Of and encodes them as one tuple.
//
//	key, err := fdbtuple.Pack("orders", uint64(7), []any{"nested", nil})
func Pack(values ...any) ([]byte, error) {
	t := make(Tuple, len(values))
	for i, x := range values {
		v, err := item.Of(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		t[i] = v
	}

	return EncodeTuple(t), nil
}

// Compare orders two tuples the way their encodings order under
// bytes.Compare: item by item, with a strict prefix sorting first.
func Compare(a, b Tuple) int {
	return item.CompareTuples(a, b)
}

// Fingerprint returns the xxHash64 of the tuple's encoding. Equal tuples
// always have equal fingerprints, which makes it suitable for choosing a
// shard or bucket for a key.
func Fingerprint(t Tuple) uint64 {
	bb := pool.GetTupleBuffer()
	defer pool.PutTupleBuffer(bb)

	bb.B = AppendTuple(bb.B, t)

	return hash.Sum(bb.Bytes())
}
