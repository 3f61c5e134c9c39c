// Package pool provides sync.Pool backed byte buffers for scratch encoding.
package pool

import "sync"

// Default and maximum retained sizes of pooled buffers.
const (
	TupleBufferDefaultSize       = 256             // 256B, a typical multi-field key
	TupleBufferMaxThreshold      = 1024 * 64       // 64KiB
	EnvelopeBufferDefaultSize    = 1024 * 4        // 4KiB
	EnvelopeBufferMaxThreshold   = 1024 * 1024     // 1MiB
	envelopeGrowthLargeThreshold = 4 * 1024 * 1024 // switch from doubling to 25% growth
)

// ByteBuffer is an append-only byte slice with amortized growth.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures room for n more bytes without reallocating.
//
// Small buffers double; buffers above a few MiB grow by a quarter to limit
// memory spikes on very large payloads.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := cap(bb.B)
	if cap(bb.B) > envelopeGrowthLargeThreshold {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), cap(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Clone returns a copy of the contents that does not alias the buffer.
func (bb *ByteBuffer) Clone() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// ByteBufferPool is a pool of ByteBuffers.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put rather
// than retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial capacity.
// A maxThreshold of zero retains buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	tupleDefaultPool    = NewByteBufferPool(TupleBufferDefaultSize, TupleBufferMaxThreshold)
	envelopeDefaultPool = NewByteBufferPool(EnvelopeBufferDefaultSize, EnvelopeBufferMaxThreshold)
)

// GetTupleBuffer retrieves a buffer sized for a single encoded tuple.
func GetTupleBuffer() *ByteBuffer {
	return tupleDefaultPool.Get()
}

// PutTupleBuffer returns a buffer obtained from GetTupleBuffer.
func PutTupleBuffer(bb *ByteBuffer) {
	tupleDefaultPool.Put(bb)
}

// GetEnvelopeBuffer retrieves a buffer sized for a stored-value envelope.
func GetEnvelopeBuffer() *ByteBuffer {
	return envelopeDefaultPool.Get()
}

// PutEnvelopeBuffer returns a buffer obtained from GetEnvelopeBuffer.
func PutEnvelopeBuffer(bb *ByteBuffer) {
	envelopeDefaultPool.Put(bb)
}
