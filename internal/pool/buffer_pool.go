// Package pool holds reusable scratch buffers for the normalizers.
package pool

import (
	"sync"
)

// maxRetained caps the capacity of buffers returned to the pool so a single
// oversized input does not stay pinned in memory.
const maxRetained = 64 * 1024

// BufferPool hands out byte slices with at least the configured capacity.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a pool whose fresh buffers have capacity size.
func NewBufferPool(size int) *BufferPool {
	bp := &BufferPool{size: size}
	bp.pool.New = func() interface{} {
		buffer := make([]byte, 0, bp.size)
		return &buffer
	}
	return bp
}

// Get returns an empty buffer.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put resets buffer and makes it available again. Buffers that grew past
// maxRetained are discarded.
func (bp *BufferPool) Put(buffer *[]byte) {
	if cap(*buffer) > maxRetained {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}
