// Package canvas is the device-independent drawing surface.
//
// A Canvas owns the active Mode and its derived Geometry, and implements every
// shape, image and text operation once, in terms of a single capability: a
// Backend that can set and read one pixel. Concrete backends (palette-mapped
// VGA, linear framebuffers) live in sibling packages.
//
// Coordinates outside the surface are dropped point by point unless the
// operation runs on an Unclipped view. Outline circles and ellipses are the
// exception: they validate their extreme points up front and fail with
// ErrOutOfRange before touching a pixel.
//
// A Canvas is not safe for concurrent use. Callers that draw from more than
// one goroutine must serialize every call on the same surface.
package canvas
