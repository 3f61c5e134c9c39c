// Package envelope wraps an encoded tuple in a small container for storage
// as a value, with optional compression and an optional checksum.
//
// Keys must stay raw tuple encodings to keep their order; values carry no
// such constraint, and tuple-shaped values are often large and repetitive.
//
// # Layout
//
//	+-------+-------+-----------------+---------------------+
//	| magic | flags | payload         | checksum (optional) |
//	| 0xF7  | 1B    | variable        | 8B big-endian       |
//	+-------+-------+-----------------+---------------------+
//
// The low nibble of flags is a format.CompressionType and bit 4 marks the
// presence of the checksum, an xxHash64 over the flags byte followed by the
// uncompressed tuple encoding. The remaining bits are reserved and must be
// zero.
//
// Encoders are immutable after construction and safe for concurrent use.
package envelope
