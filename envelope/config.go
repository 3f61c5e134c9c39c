package envelope

import (
	"fmt"

	"github.com/arloliu/fdbtuple/format"
	"github.com/arloliu/fdbtuple/internal/options"
)

const (
	// DefaultCompression is used when WithCompression is not given.
	DefaultCompression = format.CompressionZstd
	// DefaultMinCompressSize is the smallest tuple encoding that is compressed.
	DefaultMinCompressSize = 64
)

// Config holds the settings of an Encoder.
type Config struct {
	compression     format.CompressionType
	checksum        bool
	minCompressSize int
}

func newConfig() *Config {
	return &Config{
		compression:     DefaultCompression,
		checksum:        true,
		minCompressSize: DefaultMinCompressSize,
	}
}

// Option configures an Encoder.
type Option = options.Option[*Config]

// WithCompression selects the payload compression. Default is Zstd.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if !ct.Valid() {
			return fmt.Errorf("invalid envelope compression: %s", ct)
		}
		c.compression = ct

		return nil
	})
}

// WithChecksum enables or disables the trailing checksum. Default is enabled.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.checksum = enabled
	})
}

// WithMinCompressSize sets the encoded size below which payloads are stored
// uncompressed regardless of WithCompression. Zero compresses everything.
func WithMinCompressSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("invalid minimum compress size: %d", n)
		}
		c.minCompressSize = n

		return nil
	})
}
