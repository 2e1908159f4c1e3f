package editor

import (
	"math"
	"math/rand"
)

// blurRadiusDivisor maps the blur adjustment (0..100) to a pixel radius.
// The radius is blur/10 pixels, an empirical constant carried over from
// the original tuning; it is rounded to the nearest integer with a
// minimum of 1 once the pass is active at all.
const blurRadiusDivisor = 10

// applyBlur approximates a Gaussian blur with a separable box convolution
// and returns a new buffer. The horizontal and vertical passes each read
// from a snapshot of their input, never from partially written rows.
func applyBlur(src *RasterBuffer, blur float64) *RasterBuffer {
	radius := int(math.Round(blur / blurRadiusDivisor))
	if radius < 1 {
		radius = 1
	}

	tmp := &RasterBuffer{Width: src.Width, Height: src.Height, Pix: make([]uint8, len(src.Pix))}
	boxBlurHorizontal(src, tmp, radius)
	out := &RasterBuffer{Width: src.Width, Height: src.Height, Pix: make([]uint8, len(src.Pix))}
	boxBlurVertical(tmp, out, radius)
	return out
}

func boxBlurHorizontal(src, dst *RasterBuffer, radius int) {
	parallelRows(src.Height, func(yMin, yMax int) {
		for y := yMin; y < yMax; y++ {
			for x := 0; x < src.Width; x++ {
				var sumR, sumG, sumB, sumA float64
				count := 0
				for k := -radius; k <= radius; k++ {
					px := clampInt(x+k, 0, src.Width-1)
					i := src.offset(px, y)
					sumR += float64(src.Pix[i])
					sumG += float64(src.Pix[i+1])
					sumB += float64(src.Pix[i+2])
					sumA += float64(src.Pix[i+3])
					count++
				}
				i := dst.offset(x, y)
				n := float64(count)
				dst.Pix[i] = clamp255(sumR / n)
				dst.Pix[i+1] = clamp255(sumG / n)
				dst.Pix[i+2] = clamp255(sumB / n)
				dst.Pix[i+3] = clamp255(sumA / n)
			}
		}
	})
}

func boxBlurVertical(src, dst *RasterBuffer, radius int) {
	parallelRows(src.Height, func(yMin, yMax int) {
		for y := yMin; y < yMax; y++ {
			for x := 0; x < src.Width; x++ {
				var sumR, sumG, sumB, sumA float64
				count := 0
				for k := -radius; k <= radius; k++ {
					py := clampInt(y+k, 0, src.Height-1)
					i := src.offset(x, py)
					sumR += float64(src.Pix[i])
					sumG += float64(src.Pix[i+1])
					sumB += float64(src.Pix[i+2])
					sumA += float64(src.Pix[i+3])
					count++
				}
				i := dst.offset(x, y)
				n := float64(count)
				dst.Pix[i] = clamp255(sumR / n)
				dst.Pix[i+1] = clamp255(sumG / n)
				dst.Pix[i+2] = clamp255(sumB / n)
				dst.Pix[i+3] = clamp255(sumA / n)
			}
		}
	})
}

// applyVignette composites a radial darkening gradient over the buffer in
// place. The gradient radius is half the larger dimension, with stops at
// 0%, 50% and 100%: fully transparent out to half the radius, then linear
// to vignette/100 opacity black. Pixels beyond the radius (the corners of
// a non-square buffer) clamp to full strength. The stop positions are
// empirical tuning constants and are kept fixed.
func applyVignette(buf *RasterBuffer, vignette float64) {
	cx := float64(buf.Width) / 2
	cy := float64(buf.Height) / 2
	radius := math.Max(cx, cy)
	maxAlpha := vignette / 100

	parallelRows(buf.Height, func(yMin, yMax int) {
		for y := yMin; y < yMax; y++ {
			i := buf.offset(0, y)
			for x := 0; x < buf.Width; x++ {
				dx := float64(x) + 0.5 - cx
				dy := float64(y) + 0.5 - cy
				d := math.Sqrt(dx*dx + dy*dy)

				t := (d/radius - 0.5) / 0.5
				if t > 0 {
					if t > 1 {
						t = 1
					}
					keep := 1 - t*maxAlpha
					buf.Pix[i] = clamp255(float64(buf.Pix[i]) * keep)
					buf.Pix[i+1] = clamp255(float64(buf.Pix[i+1]) * keep)
					buf.Pix[i+2] = clamp255(float64(buf.Pix[i+2]) * keep)
				}
				i += 4
			}
		}
	})
}

// applyGrain adds independent random noise to each color channel in place.
// The amplitude formula (rand-0.5)*grain*2, giving deltas in
// [-grain, +grain], is an empirical constant and is kept fixed.
//
// Each row gets its own rand source seeded from the parent, so a seeded
// run produces the same pixels regardless of worker count or scheduling.
func applyGrain(buf *RasterBuffer, grain float64, rng *rand.Rand) {
	seeds := make([]int64, buf.Height)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	parallelRows(buf.Height, func(yMin, yMax int) {
		for y := yMin; y < yMax; y++ {
			r := rand.New(rand.NewSource(seeds[y]))
			i := buf.offset(0, y)
			for x := 0; x < buf.Width; x++ {
				buf.Pix[i] = clamp255(float64(buf.Pix[i]) + (r.Float64()-0.5)*grain*2)
				buf.Pix[i+1] = clamp255(float64(buf.Pix[i+1]) + (r.Float64()-0.5)*grain*2)
				buf.Pix[i+2] = clamp255(float64(buf.Pix[i+2]) + (r.Float64()-0.5)*grain*2)
				i += 4
			}
		}
	})
}
