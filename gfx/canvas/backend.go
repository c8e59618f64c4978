package canvas

// Backend is the pixel store a Canvas draws into.
//
// SetPixel and SetRawPixel are called with coordinates the Canvas has already
// clipped, except on an Unclipped view; implementations must still ignore
// anything outside their memory. Pixel and RawPixel return the zero value for
// coordinates outside the surface.
type Backend interface {
	Name() string

	AvailableModes() []Mode
	DefaultMode() Mode
	Mode() Mode
	// SetMode reprograms the device. The Canvas has already checked that m
	// is one of AvailableModes.
	SetMode(m Mode) error

	SetPixel(x, y int, c Color)
	// SetRawPixel stores a device-native value (a palette index on indexed
	// devices, a packed pixel otherwise).
	SetRawPixel(x, y int, raw uint32)
	Pixel(x, y int) Color
	RawPixel(x, y int) uint32

	// Display pushes pending changes to the screen.
	Display() error
	// Disable leaves graphics mode. Repeated calls are no-ops.
	Disable()
}

// Filler is implemented by backends that can fill the whole surface in one
// device operation.
type Filler interface {
	Fill(c Color)
	FillRaw(raw uint32)
}

// RectFiller is implemented by backends with a rectangle fill primitive.
// The Canvas passes rectangles already clipped to the surface.
type RectFiller interface {
	FillRect(x, y, w, h int, c Color)
}

// GeometryProvider is implemented by backends whose memory layout differs
// from GeometryOf their mode, such as framebuffers with padded rows.
type GeometryProvider interface {
	Geometry() Geometry
}
