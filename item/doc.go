// Package item implements the single-value layer of the tuple encoding.
//
// An item is one dynamically typed value: null, boolean, integer, byte
// string, text, float, UUID, versionstamp, or a nested tuple of items. Each
// variant owns a fixed tag byte (or, for integers, a tag range) and a payload
// that is self-delimiting, so a decoder can always tell from the tag and the
// bytes that follow exactly where the item ends.
//
// # Ordering
//
// Encodings compare with bytes.Compare exactly as the values compare with
// [Compare]:
//
//	bytes.Compare(item.Encode(a), item.Encode(b)) == item.Compare(a, b)
//
// Values of different variants order by tag: Null < Bytes < String < Tuple <
// integers < Float32 < Float64 < false < true < UUID < Versionstamp.
//
// # Wire Format
//
//	0x00            null (0x00 0xFF inside a nested tuple)
//	0x01 ... 0x00   byte string, each 0x00 in the payload written as 0x00 0xFF
//	0x02 ... 0x00   UTF-8 text, escaped like byte strings
//	0x05 ... 0x00   nested tuple, nulls written as 0x00 0xFF
//	0x0C - 0x13     negative integer, 8..1 bytes of (2^(8n)-1 - |v|)
//	0x14            integer zero
//	0x15 - 0x1C     positive integer, 1..8 magnitude bytes
//	0x20 / 0x21     float32 / float64, sign-adjusted big-endian bits
//	0x26 / 0x27     false / true
//	0x30            UUID, 16 bytes
//	0x33            versionstamp, 10 byte transaction version + 2 byte user version
//
// Integer magnitudes are always written in the fewest bytes, so two distinct
// integers never share an encoding. Decoding tolerates wider-than-needed
// magnitudes.
//
// # Thread Safety
//
// All functions are pure; values and buffers are never retained.
package item
