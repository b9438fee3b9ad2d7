package raster

import "fmt"

// Order selects which end of a byte holds the first bit of a row.
type Order int

const (
	// MSBFirst reads bytes left to right, matching how hexdumps print them.
	MSBFirst Order = iota
	// LSBFirst reverses each byte, for data produced least-significant-bit first.
	LSBFirst
)

// Buffer is a byte-backed 2D bit raster with a fixed row stride. All
// out-of-range reads return 0 and out-of-range writes are dropped, so
// callers never bounds-check coordinates themselves.
type Buffer struct {
	data   []byte
	stride int // bits per row, positive multiple of 8
	order  Order
}

// New allocates a zeroed buffer of byteLen bytes addressed as rows of
// strideBits bits.
func New(byteLen, strideBits int, order Order) (*Buffer, error) {
	if strideBits <= 0 || strideBits%8 != 0 {
		return nil, fmt.Errorf("stride %d bits: must be a positive multiple of 8", strideBits)
	}
	if byteLen < 0 {
		return nil, fmt.Errorf("buffer length %d: must not be negative", byteLen)
	}
	return &Buffer{data: make([]byte, byteLen), stride: strideBits, order: order}, nil
}

func (b *Buffer) Len() int     { return len(b.data) }
func (b *Buffer) Stride() int  { return b.stride }
func (b *Buffer) Order() Order { return b.order }

// Rows reports how many complete raster rows the buffer holds.
func (b *Buffer) Rows() int { return len(b.data) * 8 / b.stride }

// Data exposes the backing bytes. Callers refill contents wholesale;
// there is no incremental patching.
func (b *Buffer) Data() []byte { return b.data }

func (b *Buffer) shift(bitIndex int) int {
	if b.order == LSBFirst {
		return bitIndex % 8
	}
	return 7 - bitIndex%8
}

// Get returns the bit at (x, y), or 0 for any coordinate outside the
// buffer. It never fails.
func (b *Buffer) Get(x, y int) int {
	if x < 0 || x >= b.stride || y < 0 {
		return 0
	}
	bitIndex := y*b.stride + x
	byteIndex := bitIndex / 8
	if byteIndex >= len(b.data) {
		return 0
	}
	return int(b.data[byteIndex]>>b.shift(bitIndex)) & 1
}

// Set turns on the bit at (x, y). Out-of-range coordinates are a no-op.
// Bits are never cleared individually; callers Zero or refill instead.
func (b *Buffer) Set(x, y int) {
	if x < 0 || x >= b.stride || y < 0 {
		return
	}
	bitIndex := y*b.stride + x
	byteIndex := bitIndex / 8
	if byteIndex >= len(b.data) {
		return
	}
	b.data[byteIndex] |= 1 << b.shift(bitIndex)
}

// Resize reallocates storage to n bytes. Contents are undefined until
// the caller refills them.
func (b *Buffer) Resize(n int) {
	if n == len(b.data) || n < 0 {
		return
	}
	b.data = make([]byte, n)
}

// Zero clears every bit.
func (b *Buffer) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}
