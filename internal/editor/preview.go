package editor

import (
	"fmt"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatch summarizes the dominant tone of a preview so a UI can tint a
// filter chip without decoding the thumbnail.
type Swatch struct {
	Hex string  `json:"hex"` // "#rrggbb"
	H   float64 `json:"h"`   // hue, degrees 0-360
	S   float64 `json:"s"`   // saturation, 0-1
	L   float64 `json:"l"`   // lightness, 0-1
}

// FilterPreview pairs a preset with its rendered thumbnail.
type FilterPreview struct {
	FilterID string
	Name     string
	Buffer   *RasterBuffer
	Swatch   Swatch
}

// GenerateFilterPreviews renders every preset in catalog order against a
// single downscaled copy of the source, returning one preview per preset.
//
// The source is resized exactly once, to fit within thumbnailSize on its
// longer side, regardless of how many presets the catalog holds; each
// preset then runs only over the small thumbnail.
func GenerateFilterPreviews(src *RasterBuffer, thumbnailSize int) ([]FilterPreview, error) {
	if thumbnailSize <= 0 {
		return nil, fmt.Errorf("%w: thumbnail size %d must be positive", ErrInvalidParameter, thumbnailSize)
	}

	thumb := Downscale(src, thumbnailSize)

	previews := make([]FilterPreview, 0, len(presetCatalog))
	for _, preset := range presetCatalog {
		out, err := ApplyFilter(thumb, preset.ID)
		if err != nil {
			return nil, fmt.Errorf("preview for %q: %w", preset.ID, err)
		}
		previews = append(previews, FilterPreview{
			FilterID: preset.ID,
			Name:     preset.Name,
			Buffer:   out,
			Swatch:   averageSwatch(out),
		})
	}
	return previews, nil
}

// Downscale resizes a buffer to fit within size×size, preserving aspect
// ratio with Lanczos resampling. Buffers already within the bounds are
// returned as a copy at their original size.
func Downscale(src *RasterBuffer, size int) *RasterBuffer {
	if src.Width <= size && src.Height <= size {
		return src.Clone()
	}
	return FromImage(imaging.Fit(src.ToImage(), size, size, imaging.Lanczos))
}

// averageSwatch computes the mean color of a buffer and reports it as
// hex and HSL.
func averageSwatch(buf *RasterBuffer) Swatch {
	var sumR, sumG, sumB float64
	n := buf.Width * buf.Height
	for i := 0; i < len(buf.Pix); i += 4 {
		sumR += float64(buf.Pix[i])
		sumG += float64(buf.Pix[i+1])
		sumB += float64(buf.Pix[i+2])
	}

	c := colorful.Color{
		R: sumR / float64(n) / 255,
		G: sumG / float64(n) / 255,
		B: sumB / float64(n) / 255,
	}
	h, s, l := c.Hsl()
	return Swatch{Hex: c.Hex(), H: h, S: s, L: l}
}
