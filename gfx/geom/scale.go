package geom

// ScaleRatio returns the 16.16 fixed-point step used to walk a source axis of
// length src while producing dst samples. dst must be positive.
func ScaleRatio(src, dst int) int {
	return (src<<16)/dst + 1
}

// Sampler maps destination pixels of a nearest-neighbor resize back to the
// source: destination (j,i) reads source (j*xRatio>>16, i*yRatio>>16).
// Sample positions are clamped to the source so extreme upscales cannot read
// past its last row or column.
//
// Nothing is allocated for the destination; callers sample only the pixels
// they are going to draw.
type Sampler struct {
	srcW, srcH     int
	xRatio, yRatio int
}

// NewSampler returns a Sampler for resizing srcW x srcH to dstW x dstH. It
// reports false for an empty source or target.
func NewSampler(srcW, srcH, dstW, dstH int) (Sampler, bool) {
	if dstW <= 0 || dstH <= 0 || srcW <= 0 || srcH <= 0 {
		return Sampler{}, false
	}
	return Sampler{
		srcW:   srcW,
		srcH:   srcH,
		xRatio: ScaleRatio(srcW, dstW),
		yRatio: ScaleRatio(srcH, dstH),
	}, true
}

// Index returns the row-major source index sampled by destination (j,i).
func (s Sampler) Index(j, i int) int {
	y := min((i*s.yRatio)>>16, s.srcH-1)
	x := min((j*s.xRatio)>>16, s.srcW-1)
	return y*s.srcW + x
}
