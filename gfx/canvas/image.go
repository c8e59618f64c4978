package canvas

import "fmt"

// Image is a row-major ARGB bitmap with its origin at the top-left corner.
// A Canvas only reads it.
type Image struct {
	Width   int
	Height  int
	RawData []int32
}

// NewImage allocates a zeroed (fully transparent) w x h image.
func NewImage(w, h int) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidArgument, w, h)
	}
	return &Image{Width: w, Height: h, RawData: make([]int32, w*h)}, nil
}

// At returns the pixel at (x,y) as a Color; coordinates outside the image
// read as transparent black.
func (img *Image) At(x, y int) Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Color{}
	}
	return FromARGB(uint32(img.RawData[y*img.Width+x]))
}

// Set stores c at (x,y); out-of-range coordinates are ignored.
func (img *Image) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.RawData[y*img.Width+x] = int32(c.ARGB())
}

func (img *Image) validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidArgument, img.Width, img.Height)
	}
	if len(img.RawData) < img.Width*img.Height {
		return fmt.Errorf("%w: image data has %d pixels, want %d", ErrInvalidArgument, len(img.RawData), img.Width*img.Height)
	}
	return nil
}
