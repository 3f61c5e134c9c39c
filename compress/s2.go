package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses with S2, a faster Snappy extension.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
//
// Blocks that come out no smaller than the input are reported as
// ErrIncompressible so the caller can store the input as is.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out := s2.Encode(nil, data)
	if len(out) >= len(data) {
		return nil, ErrIncompressible
	}

	return out, nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
