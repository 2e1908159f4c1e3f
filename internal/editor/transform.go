package editor

import (
	"fmt"
	"math"
)

// Transform describes a geometric operation applied to a whole buffer.
type Transform struct {
	Rotate         float64 // degrees, positive rotates clockwise in screen coordinates
	FlipHorizontal bool
	FlipVertical   bool
	Scale          float64 // must be > 0
}

// DefaultTransform returns the identity transform.
func DefaultTransform() Transform {
	return Transform{Scale: 1}
}

// IsIdentity reports whether applying the transform would leave any
// buffer unchanged.
func (t Transform) IsIdentity() bool {
	return t.Rotate == 0 && !t.FlipHorizontal && !t.FlipVertical && t.Scale == 1
}

// Validate returns ErrInvalidParameter for a non-positive scale.
func (t Transform) Validate() error {
	if t.Scale <= 0 {
		return fmt.Errorf("%w: scale %g must be positive", ErrInvalidParameter, t.Scale)
	}
	return nil
}

// Bounds returns the output dimensions of applying the transform to a
// width×height buffer: the rotated bounding box scaled by the transform,
// with a minimum of 1 pixel per axis. It runs no pixel loop, so callers
// can validate dependent state (such as a crop rectangle) cheaply.
func (t Transform) Bounds(width, height int) (int, int) {
	theta := t.Rotate * math.Pi / 180
	sin, cos := math.Sincos(theta)
	absSin, absCos := math.Abs(sin), math.Abs(cos)

	w := float64(width)
	h := float64(height)
	outW := int(math.Round((w*absCos + h*absSin) * t.Scale))
	outH := int(math.Round((w*absSin + h*absCos) * t.Scale))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// ApplyTransform rotates, flips and scales a buffer into a new, re-bounded
// buffer; the input is never mutated.
//
// The output bounds are the rotated bounding box scaled by the transform:
//
//	newW = (w*|cos θ| + h*|sin θ|) * scale
//	newH = (w*|sin θ| + h*|cos θ|) * scale
//
// Conceptually the source is drawn centered after translating to the
// output center, rotating by θ and scaling by ±scale per axis (negative
// for flips). The implementation inverse-maps each destination pixel back
// into source space and samples bilinearly; destination pixels that map
// outside the source stay transparent. An identity transform reproduces
// the source pixel for pixel.
func ApplyTransform(src *RasterBuffer, t Transform) (*RasterBuffer, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.IsIdentity() {
		return src.Clone(), nil
	}

	theta := t.Rotate * math.Pi / 180
	sin, cos := math.Sincos(theta)

	w := float64(src.Width)
	h := float64(src.Height)
	outW, outH := t.Bounds(src.Width, src.Height)

	out := &RasterBuffer{Width: outW, Height: outH, Pix: make([]uint8, outW*outH*4)}

	sx := t.Scale
	if t.FlipHorizontal {
		sx = -sx
	}
	sy := t.Scale
	if t.FlipVertical {
		sy = -sy
	}

	halfOutW := float64(outW) / 2
	halfOutH := float64(outH) / 2
	halfW := w / 2
	halfH := h / 2

	parallelRows(outH, func(yMin, yMax int) {
		for y := yMin; y < yMax; y++ {
			i := out.offset(0, y)
			for x := 0; x < outW; x++ {
				// Destination pixel center, relative to the output center.
				px := float64(x) + 0.5 - halfOutW
				py := float64(y) + 0.5 - halfOutH

				// Undo the per-axis scale/flip, then the rotation.
				px /= sx
				py /= sy
				qx := cos*px + sin*py
				qy := -sin*px + cos*py

				// Back to source pixel coordinates.
				srcX := qx + halfW - 0.5
				srcY := qy + halfH - 0.5

				r, g, b, a, ok := sampleBilinear(src, srcX, srcY)
				if ok {
					out.Pix[i] = r
					out.Pix[i+1] = g
					out.Pix[i+2] = b
					out.Pix[i+3] = a
				}
				i += 4
			}
		}
	})

	return out, nil
}

// sampleBilinear interpolates the four source pixels around (x, y).
// ok is false when the point lies outside the source raster entirely;
// points straddling the border clamp their neighbors to the edge.
func sampleBilinear(src *RasterBuffer, x, y float64) (r, g, b, a uint8, ok bool) {
	if x < -0.5 || y < -0.5 || x > float64(src.Width)-0.5 || y > float64(src.Height)-0.5 {
		return 0, 0, 0, 0, false
	}

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	x1 := clampInt(x0+1, 0, src.Width-1)
	y1 := clampInt(y0+1, 0, src.Height-1)
	x0 = clampInt(x0, 0, src.Width-1)
	y0 = clampInt(y0, 0, src.Height-1)

	i00 := src.offset(x0, y0)
	i10 := src.offset(x1, y0)
	i01 := src.offset(x0, y1)
	i11 := src.offset(x1, y1)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	blend := func(c int) uint8 {
		v := w00*float64(src.Pix[i00+c]) +
			w10*float64(src.Pix[i10+c]) +
			w01*float64(src.Pix[i01+c]) +
			w11*float64(src.Pix[i11+c])
		return clamp255(v)
	}

	return blend(0), blend(1), blend(2), blend(3), true
}
