package fonts

import (
	"errors"
	"fmt"

	"tinygo.org/x/tinyfont"
)

// ASCII is the rune set LineMetrics scans by default.
const ASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// LineMetrics derives the cell height and the baseline offset from the top
// of the cell from the glyph boxes of runes.
func LineMetrics(f tinyfont.Fonter, runes string) (height, offset int16, err error) {
	if f == nil {
		return 0, 0, errors.New("fonts: nil font")
	}
	minY, maxY := 0, 0
	first := true
	for _, r := range runes {
		info := f.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		top := int(info.YOffset)
		bottom := top + int(info.Height)
		if first {
			minY, maxY = top, bottom
			first = false
			continue
		}
		minY = min(minY, top)
		maxY = max(maxY, bottom)
	}
	if first {
		return 0, 0, errors.New("fonts: no glyphs")
	}
	h, off := maxY-minY, -minY
	if h <= 0 || off < 0 || h > 127 || off > 127 {
		return 0, 0, fmt.Errorf("fonts: invalid metrics: height=%d offset=%d", h, off)
	}
	return int16(h), int16(off), nil
}

// TerminalMetrics uses the font's line advance as the cell height and picks
// the baseline that splits any overflow evenly between top and bottom.
func TerminalMetrics(f tinyfont.Fonter) (height, offset int16, err error) {
	bboxHeight, bboxOffset, err := LineMetrics(f, ASCII)
	if err != nil {
		return 0, 0, err
	}
	h := int16(f.GetYAdvance())
	if h <= 0 {
		h = bboxHeight
	}
	minY := -bboxOffset
	maxY := bboxHeight - bboxOffset
	off := (h - maxY - minY) / 2
	return h, min(max(off, 0), h), nil
}
