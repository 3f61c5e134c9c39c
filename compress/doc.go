// Package compress provides the payload codecs used by stored-value envelopes.
//
// Tuple keys are never compressed, since compression destroys byte order.
// Values that happen to be tuples have no such constraint, and the envelope
// package passes their encoding through one of the codecs here:
//   - None: pass-through, zero cost
//   - Zstd: best ratio, moderate speed
//   - S2: balanced
//   - LZ4: fastest decompression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec maps a format.CompressionType to a shared built-in Codec.
//
// # Zstd builds
//
// Zstd is backed by github.com/klauspost/compress/zstd. Building with
// -tags gozstd (and cgo enabled) switches to the libzstd binding in
// github.com/valyala/gozstd. Both produce standard Zstd frames, so
// envelopes written by one decode with the other.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool scratch state and are
// safe for concurrent use.
package compress
