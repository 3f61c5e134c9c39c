package envelope

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/arloliu/fdbtuple"
	"github.com/arloliu/fdbtuple/compress"
	"github.com/arloliu/fdbtuple/format"
	"github.com/arloliu/fdbtuple/internal/hash"
	"github.com/arloliu/fdbtuple/internal/options"
	"github.com/arloliu/fdbtuple/internal/pool"
)

const (
	// Magic is the first byte of every envelope.
	Magic byte = 0xF7

	headerSize   = 2
	checksumSize = 8

	compressionMask byte = 0x0F
	checksumFlag    byte = 0x10
	reservedMask    byte = 0xE0
)

var (
	// ErrBadMagic reports a buffer that does not start with Magic.
	ErrBadMagic = errors.New("envelope: bad magic byte")
	// ErrChecksumMismatch reports a payload whose checksum does not match.
	ErrChecksumMismatch = errors.New("envelope: checksum mismatch")
)

// Encoder builds envelopes with a fixed configuration.
type Encoder struct {
	cfg   Config
	codec compress.Codec
}

// NewEncoder creates an Encoder. With no options it compresses payloads of
// DefaultMinCompressSize bytes or more with Zstd and appends a checksum.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: *cfg, codec: codec}, nil
}

// Compression returns the configured compression type.
func (e *Encoder) Compression() format.CompressionType {
	return e.cfg.compression
}

// Encode returns the envelope holding t.
//
// Payloads shorter than the minimum compress size, and payloads the codec
// cannot shrink, are stored with format.CompressionNone.
func (e *Encoder) Encode(t fdbtuple.Tuple) ([]byte, error) {
	raw := pool.GetEnvelopeBuffer()
	defer pool.PutEnvelopeBuffer(raw)

	raw.Grow(fdbtuple.TupleSize(t))
	raw.B = fdbtuple.AppendTuple(raw.B, t)

	ct := format.CompressionNone
	payload := raw.Bytes()
	if e.cfg.compression != format.CompressionNone && raw.Len() >= e.cfg.minCompressSize && raw.Len() > 0 {
		compressed, err := e.codec.Compress(raw.Bytes())
		switch {
		case errors.Is(err, compress.ErrIncompressible):
			// stored uncompressed
		case err != nil:
			return nil, fmt.Errorf("compress %s payload: %w", e.cfg.compression, err)
		case len(compressed) < raw.Len():
			ct = e.cfg.compression
			payload = compressed
		}
	}

	flags := byte(ct)
	if e.cfg.checksum {
		flags |= checksumFlag
	}

	out := pool.GetEnvelopeBuffer()
	defer pool.PutEnvelopeBuffer(out)

	out.Grow(headerSize + len(payload) + checksumSize)
	out.MustWrite([]byte{Magic, flags})
	out.MustWrite(payload)
	if e.cfg.checksum {
		out.B = binary.BigEndian.AppendUint64(out.B, checksum(flags, raw.Bytes()))
	}

	return out.Clone(), nil
}

// Decode extracts the tuple held by an envelope produced by any Encoder.
func Decode(buf []byte) (fdbtuple.Tuple, error) {
	raw, err := Open(buf)
	if err != nil {
		return nil, err
	}

	return fdbtuple.DecodeTuple(raw)
}

// Open validates an envelope and returns the uncompressed tuple encoding it
// holds without decoding the items. The result may alias buf.
func Open(buf []byte) ([]byte, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty envelope", format.ErrUnexpectedEOF)
	}
	if buf[0] != Magic {
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadMagic, buf[0])
	}
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: envelope header", format.ErrUnexpectedEOF)
	}

	flags := buf[1]
	if flags&reservedMask != 0 {
		return nil, fmt.Errorf("%w: reserved envelope flags 0x%02x", format.ErrInvalidData, flags)
	}

	payload := buf[headerSize:]
	var want uint64
	hasChecksum := flags&checksumFlag != 0
	if hasChecksum {
		if len(payload) < checksumSize {
			return nil, fmt.Errorf("%w: envelope checksum", format.ErrUnexpectedEOF)
		}
		split := len(payload) - checksumSize
		want = binary.BigEndian.Uint64(payload[split:])
		payload = payload[:split]
	}

	ct := format.CompressionType(flags & compressionMask)
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s payload: %w", format.ErrInvalidData, ct, err)
	}

	if hasChecksum {
		if got := checksum(flags, raw); got != want {
			return nil, fmt.Errorf("%w: got %016x, want %016x", ErrChecksumMismatch, got, want)
		}
	}

	return raw, nil
}

func checksum(flags byte, raw []byte) uint64 {
	d := hash.NewDigest()
	d.Write([]byte{flags})
	d.Write(raw)

	return d.Sum64()
}
