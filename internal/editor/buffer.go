package editor

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// RasterBuffer is a Width×Height raster of RGBA8 pixels.
//
// Pix holds 4 bytes per pixel in row-major R, G, B, A order, so the pixel
// at (x, y) starts at Pix[(y*Width+x)*4]. Buffers are treated as immutable
// once produced: every engine operation allocates and returns a new buffer
// and never writes to its input. That is what makes edit-history snapshots
// safe to retain and replay without copying pixel data.
type RasterBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRasterBuffer allocates a transparent-black buffer of the given size.
//
// Returns ErrInvalidParameter if either dimension is not positive.
func NewRasterBuffer(width, height int) (*RasterBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: buffer dimensions %dx%d must be positive", ErrInvalidParameter, width, height)
	}
	return &RasterBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}, nil
}

// FromImage converts any image.Image into a RasterBuffer.
//
// The image is normalized to non-premultiplied RGBA8; 16-bit sources are
// scaled down to 8 bits per channel.
func FromImage(img image.Image) *RasterBuffer {
	// imaging.Clone always yields an *image.NRGBA with a dense stride,
	// which matches the RasterBuffer pixel layout exactly.
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	buf := &RasterBuffer{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, len(nrgba.Pix)),
	}
	copy(buf.Pix, nrgba.Pix)
	return buf
}

// ToImage converts the buffer to an *image.NRGBA with copied pixel data.
// Mutating the returned image does not affect the buffer.
func (b *RasterBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// Clone returns a deep copy of the buffer.
func (b *RasterBuffer) Clone() *RasterBuffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &RasterBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// At returns the RGBA components of the pixel at (x, y).
// Coordinates are 0-based with origin at the top-left corner.
func (b *RasterBuffer) At(x, y int) (r, g, bl, a uint8) {
	i := (y*b.Width + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// offset returns the index into Pix of the pixel at (x, y).
func (b *RasterBuffer) offset(x, y int) int {
	return (y*b.Width + x) * 4
}

// clamp255 rounds a float channel value to the nearest integer and clamps
// it to the valid [0, 255] range.
func clamp255(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampInt constrains an integer value to the range [min, max].
// Used for boundary handling in convolution and sampling.
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
