package canvas

import "errors"

var (
	// ErrInvalidArgument reports malformed input, such as a polygon with
	// fewer than three points or a pixel slice shorter than its dimensions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a coordinate outside the surface for operations
	// that validate their bounds before drawing.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrUnsupportedMode reports a mode missing from the backend's list.
	ErrUnsupportedMode = errors.New("unsupported mode")
)
