package editor

import "fmt"

// CropArea is a rectangular region within a buffer. (X, Y) is the
// top-left corner; the rectangle spans Width×Height pixels and must lie
// entirely within the source bounds.
//
// AspectRatio is advisory metadata for UI crop handles (width divided by
// height, 0 when unconstrained); the engine extracts exactly the
// rectangle given regardless of its value.
type CropArea struct {
	X           int
	Y           int
	Width       int
	Height      int
	AspectRatio float64
}

// Validate checks the rectangle against the given source dimensions.
func (c CropArea) Validate(srcWidth, srcHeight int) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: crop dimensions %dx%d must be positive", ErrInvalidParameter, c.Width, c.Height)
	}
	if c.X < 0 || c.Y < 0 || c.X+c.Width > srcWidth || c.Y+c.Height > srcHeight {
		return fmt.Errorf("%w: crop region (%d,%d %dx%d) outside source bounds %dx%d",
			ErrInvalidParameter, c.X, c.Y, c.Width, c.Height, srcWidth, srcHeight)
	}
	return nil
}

// CropImage extracts the crop rectangle into a new buffer; the input is
// never mutated. A crop equal to the full source bounds returns a buffer
// identical to the source.
func CropImage(src *RasterBuffer, crop CropArea) (*RasterBuffer, error) {
	if err := crop.Validate(src.Width, src.Height); err != nil {
		return nil, err
	}

	out := &RasterBuffer{
		Width:  crop.Width,
		Height: crop.Height,
		Pix:    make([]uint8, crop.Width*crop.Height*4),
	}
	for y := 0; y < crop.Height; y++ {
		srcRow := src.offset(crop.X, crop.Y+y)
		dstRow := out.offset(0, y)
		copy(out.Pix[dstRow:dstRow+crop.Width*4], src.Pix[srcRow:srcRow+crop.Width*4])
	}
	return out, nil
}
