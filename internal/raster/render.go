package raster

import "strings"

// GlyphIndex packs the 2x3 bit block whose top-left pixel is (x, y)
// into a sextant table index, most significant bit first, row-major.
func GlyphIndex(b *Buffer, x, y int) int {
	idx := b.Get(x, y)
	idx = idx<<1 | b.Get(x+1, y)
	idx = idx<<1 | b.Get(x, y+1)
	idx = idx<<1 | b.Get(x+1, y+1)
	idx = idx<<1 | b.Get(x, y+2)
	idx = idx<<1 | b.Get(x+1, y+2)
	return idx
}

// Glyph returns the sextant rune for the block at (x, y).
func Glyph(b *Buffer, x, y int) rune {
	return sextants[GlyphIndex(b, x, y)]
}

// RenderLines renders rows glyph lines of at most cols glyphs each,
// starting colOffset bits into every raster row. Rendering is pure:
// reads past the end of the buffer produce blank glyphs, so a buffer
// smaller than the display area renders empty space after its end.
func RenderLines(b *Buffer, cols, rows, colOffset int) []string {
	disp := b.stride / 2
	if disp > cols {
		disp = cols
	}
	lines := make([]string, rows)
	var sb strings.Builder
	for cy := 0; cy < rows; cy++ {
		sb.Reset()
		for cx := 0; cx < disp; cx++ {
			sb.WriteRune(Glyph(b, colOffset+2*cx, 3*cy))
		}
		lines[cy] = sb.String()
	}
	return lines
}
