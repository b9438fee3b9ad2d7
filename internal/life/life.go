// Package life runs Conway's Game of Life over a bit raster. The grid
// does not wrap: cells past the edge count as dead, which the bounds-safe
// raster accessors give us for free.
package life

import "github.com/san-kum/bitraster/internal/raster"

// Step computes one generation over b and returns it as a fresh buffer of
// the same shape. b itself is left untouched, so the whole generation is
// derived from the prior one with no read-after-write aliasing.
func Step(b *raster.Buffer) *raster.Buffer {
	// b's shape already passed validation
	next, _ := raster.New(b.Len(), b.Stride(), b.Order())
	rows := b.Rows()
	for y := 0; y < rows; y++ {
		for x := 0; x < b.Stride(); x++ {
			n := b.Get(x-1, y-1) + b.Get(x, y-1) + b.Get(x+1, y-1) +
				b.Get(x-1, y) + b.Get(x+1, y) +
				b.Get(x-1, y+1) + b.Get(x, y+1) + b.Get(x+1, y+1)
			if b.Get(x, y) == 1 {
				if n == 2 || n == 3 {
					next.Set(x, y)
				}
			} else if n == 3 {
				next.Set(x, y)
			}
		}
	}
	return next
}
