package raster

// sextants maps a 6-bit 2x3 pixel pattern to its glyph. Bit 5 is the
// top-left pixel and bit 0 the bottom-right, row-major. Three entries
// fall outside the Block Sextant range because Unicode omits patterns
// the legacy blocks already cover: 21 is U+2590 (right half block),
// 42 is U+258C (left half block) and 63 is U+2588 (full block).
var sextants = [64]rune{
	0x00020, 0x1FB1E, 0x1FB0F, 0x1FB2D, 0x1FB07, 0x1FB26, 0x1FB16, 0x1FB35,
	0x1FB03, 0x1FB22, 0x1FB13, 0x1FB31, 0x1FB0B, 0x1FB29, 0x1FB1A, 0x1FB39,
	0x1FB01, 0x1FB20, 0x1FB11, 0x1FB2F, 0x1FB09, 0x02590, 0x1FB18, 0x1FB37,
	0x1FB05, 0x1FB24, 0x1FB14, 0x1FB33, 0x1FB0D, 0x1FB2B, 0x1FB1C, 0x1FB3B,
	0x1FB00, 0x1FB1F, 0x1FB10, 0x1FB2E, 0x1FB08, 0x1FB27, 0x1FB17, 0x1FB36,
	0x1FB04, 0x1FB23, 0x0258C, 0x1FB32, 0x1FB0C, 0x1FB2A, 0x1FB1B, 0x1FB3A,
	0x1FB02, 0x1FB21, 0x1FB12, 0x1FB30, 0x1FB0A, 0x1FB28, 0x1FB19, 0x1FB38,
	0x1FB06, 0x1FB25, 0x1FB15, 0x1FB34, 0x1FB0E, 0x1FB2C, 0x1FB1D, 0x02588,
}
