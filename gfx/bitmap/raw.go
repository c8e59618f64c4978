package bitmap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"sparkgfx/gfx/canvas"
)

// Raw container layout, little-endian:
//
//	magic   [4]byte "CIMG"
//	version uint8
//	_       [3]byte
//	width   uint32
//	height  uint32
//	pixels  width*height int32 (0xAARRGGBB, row-major)
const (
	rawVersion = 1
	// MaxRawPixels bounds the allocation made when reading a container.
	MaxRawPixels = 16 << 20
)

var rawMagic = [4]byte{'C', 'I', 'M', 'G'}

// ErrBadRaw reports a malformed raw container.
var ErrBadRaw = errors.New("bitmap: bad raw container")

type rawHeader struct {
	Magic   [4]byte
	Version uint8
	_       [3]byte
	Width   uint32
	Height  uint32
}

// WriteRaw stores img in the raw container format.
func WriteRaw(w io.Writer, img *canvas.Image) error {
	if img == nil || img.Width < 0 || img.Height < 0 || len(img.RawData) < img.Width*img.Height {
		return fmt.Errorf("%w: invalid image", canvas.ErrInvalidArgument)
	}
	bw := bufio.NewWriter(w)
	h := rawHeader{Magic: rawMagic, Version: rawVersion, Width: uint32(img.Width), Height: uint32(img.Height)}
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, img.RawData[:img.Width*img.Height]); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadRaw loads an image written by WriteRaw.
func ReadRaw(r io.Reader) (*canvas.Image, error) {
	var h rawHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadRaw, err)
	}
	if h.Magic != rawMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadRaw, h.Magic[:])
	}
	if h.Version != rawVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadRaw, h.Version)
	}
	n := uint64(h.Width) * uint64(h.Height)
	if n > MaxRawPixels {
		return nil, fmt.Errorf("%w: %dx%d is too large", ErrBadRaw, h.Width, h.Height)
	}
	img := &canvas.Image{Width: int(h.Width), Height: int(h.Height), RawData: make([]int32, n)}
	if err := binary.Read(bufio.NewReader(r), binary.LittleEndian, img.RawData); err != nil {
		return nil, fmt.Errorf("%w: pixels: %v", ErrBadRaw, err)
	}
	return img, nil
}
