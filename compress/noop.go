package compress

// NoOpCompressor passes data through unchanged.
//
// Both directions return the input slice itself, so the result aliases the
// argument.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as is.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as is.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
