package editor

import "github.com/anthonynsimon/bild/histogram"

// Histogram computes 256-bin per-channel histograms for a buffer.
// Editors draw this next to the exposure and contrast sliders; tests use
// it to sanity-check that adjustment passes move pixel mass the way they
// claim to.
func Histogram(buf *RasterBuffer) *histogram.RGBAHistogram {
	return histogram.NewRGBAHistogram(buf.ToImage())
}
