// Package codec bridges the pure editor core to encoded image files.
// Decoding and encoding are external collaborators of the editor: the
// core only ever sees decoded RGBA8 raster buffers.
package codec

import (
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/stackcanvas/image-editor/internal/editor"
)

// DefaultJPEGQuality is used when a caller passes a non-positive quality.
const DefaultJPEGQuality = 90

// Open decodes an image file into a raster buffer. EXIF orientation is
// applied during decode so the buffer is always upright. Supported
// formats: PNG, JPEG, GIF, TIFF, BMP and WebP (decode only).
func Open(path string) (*editor.RasterBuffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return editor.FromImage(img), nil
}

// Decode reads an encoded image from r into a raster buffer.
func Decode(r io.Reader) (*editor.RasterBuffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return editor.FromImage(img), nil
}

// Save encodes a buffer to a file; the format is inferred from the path
// extension. quality applies to JPEG output only; non-positive values
// fall back to DefaultJPEGQuality.
func Save(buf *editor.RasterBuffer, path string, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(buf.ToImage(), path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to encode image %s: %w", path, err)
	}
	return nil
}

// Encode writes a buffer to w in the named format ("png", "jpg", "gif",
// "tif" or "bmp").
func Encode(w io.Writer, buf *editor.RasterBuffer, format string, quality int) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", format, err)
	}
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Encode(w, buf.ToImage(), f, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
