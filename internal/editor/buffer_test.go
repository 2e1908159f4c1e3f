package editor

import (
	"bytes"
	"image/color"
	"testing"
)

// solidBuffer creates a buffer filled with one color
func solidBuffer(width, height int, c color.RGBA) *RasterBuffer {
	buf, _ := NewRasterBuffer(width, height)
	for i := 0; i < len(buf.Pix); i += 4 {
		buf.Pix[i] = c.R
		buf.Pix[i+1] = c.G
		buf.Pix[i+2] = c.B
		buf.Pix[i+3] = c.A
	}
	return buf
}

// patternBuffer creates a buffer with different colors in each quadrant
func patternBuffer(width, height int) *RasterBuffer {
	buf, _ := NewRasterBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.RGBA
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			i := buf.offset(x, y)
			buf.Pix[i] = c.R
			buf.Pix[i+1] = c.G
			buf.Pix[i+2] = c.B
			buf.Pix[i+3] = c.A
		}
	}
	return buf
}

// buffersEqual reports pixel-for-pixel equality
func buffersEqual(a, b *RasterBuffer) bool {
	return a.Width == b.Width && a.Height == b.Height && bytes.Equal(a.Pix, b.Pix)
}

func TestNewRasterBuffer(t *testing.T) {
	buf, err := NewRasterBuffer(4, 3)
	if err != nil {
		t.Fatalf("NewRasterBuffer failed: %v", err)
	}
	if buf.Width != 4 || buf.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", buf.Width, buf.Height)
	}
	if len(buf.Pix) != 4*3*4 {
		t.Errorf("pix length: got %d, want %d", len(buf.Pix), 4*3*4)
	}
}

func TestNewRasterBuffer_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRasterBuffer(tt.width, tt.height)
			if err == nil {
				t.Error("NewRasterBuffer should fail for invalid dimensions")
			}
		})
	}
}

func TestFromImage_ToImage_RoundTrip(t *testing.T) {
	src := patternBuffer(8, 6)

	back := FromImage(src.ToImage())
	if !buffersEqual(src, back) {
		t.Error("FromImage(ToImage(buf)) should reproduce the buffer exactly")
	}
}

func TestToImage_CopiesPixels(t *testing.T) {
	buf := solidBuffer(2, 2, color.RGBA{10, 20, 30, 255})
	img := buf.ToImage()
	img.Pix[0] = 99

	if buf.Pix[0] != 10 {
		t.Error("mutating the image returned by ToImage must not affect the buffer")
	}
}

func TestClone_Independent(t *testing.T) {
	buf := solidBuffer(2, 2, color.RGBA{10, 20, 30, 255})
	clone := buf.Clone()

	if !buffersEqual(buf, clone) {
		t.Fatal("clone should equal the source")
	}

	clone.Pix[0] = 200
	if buf.Pix[0] != 10 {
		t.Error("mutating a clone must not affect the source")
	}
}

func TestAt(t *testing.T) {
	buf := patternBuffer(4, 4)

	r, g, b, a := buf.At(0, 0)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("At(0,0): got (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}

	r, g, b, a = buf.At(3, 3)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("At(3,3): got (%d,%d,%d,%d), want (255,255,255,255)", r, g, b, a)
	}
}
