package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/fdbtuple/format"
)

// ErrIncompressible reports input that a codec could not shrink.
var ErrIncompressible = errors.New("compress: input is incompressible")

// Compressor compresses an encoded tuple payload.
//
// The returned slice is owned by the caller unless the implementation
// documents otherwise (see NoOpCompressor). The input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Corrupted input or input produced by a different algorithm yields an error.
// Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %s", format.ErrInvalidData, compressionType)
}
