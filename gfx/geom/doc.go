// Package geom holds the integer stepping and clipping math used by the canvas.
//
// Nothing here touches pixels. Every routine reports the coordinates it visits
// through a PlotFunc (or SpanFunc), so callers decide how a point is clipped
// and stored.
//
// Stepping is integer-only. The two exceptions are TrimLine, which needs
// float intermediates to keep the slope of a clipped segment, and Arc, which
// samples sin/cos.
package geom

// PlotFunc receives one rasterized point.
type PlotFunc func(x, y int)

// SpanFunc receives one horizontal run [x0, x1] on row y, x0 <= x1.
type SpanFunc func(x0, x1, y int)
