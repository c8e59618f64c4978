package canvas

// Font is a fixed-width bitmap font indexed by byte value.
//
// Each glyph is Height rows; each row is Width bits packed MSB-first into
// (Width+7)/8 bytes. Glyph c starts at row Height*c.
type Font struct {
	Width  int
	Height int
	Data   []byte
}

// RowBytes is the number of bytes holding one glyph row.
func (f *Font) RowBytes() int {
	return (f.Width + 7) / 8
}

// Glyph returns the rows of glyph c, or nil when the font data does not
// cover it.
func (f *Font) Glyph(c byte) []byte {
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return nil
	}
	n := f.Height * f.RowBytes()
	start := int(c) * n
	if start+n > len(f.Data) {
		return nil
	}
	return f.Data[start : start+n]
}

// Set reports whether pixel (col,row) of glyph c is set.
func (f *Font) Set(c byte, col, row int) bool {
	g := f.Glyph(c)
	if g == nil || col < 0 || col >= f.Width || row < 0 || row >= f.Height {
		return false
	}
	return BitSet(g[row*f.RowBytes()+col/8], col%8)
}

// BitSet reports whether bit col of b is set, counting from the most
// significant bit.
func BitSet(b byte, col int) bool {
	return b&(0x80>>uint(col)) != 0
}
