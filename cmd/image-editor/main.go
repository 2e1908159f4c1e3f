package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stackcanvas/image-editor/internal/codec"
	"github.com/stackcanvas/image-editor/internal/editor"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logging goes to stderr; stdout is reserved for -list-filters output.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var (
		showVersion = flag.Bool("version", false, "print version information and exit")
		listFilters = flag.Bool("list-filters", false, "print the filter preset catalog and exit")

		in      = flag.String("in", "", "input image path")
		out     = flag.String("out", "", "output image path (format from extension)")
		quality = flag.Int("quality", codec.DefaultJPEGQuality, "JPEG output quality (1-100)")

		filter   = flag.String("filter", "", "filter preset id (see -list-filters)")
		cropSpec = flag.String("crop", "", "crop rectangle as x,y,width,height (post-transform coordinates)")

		rotate = flag.Float64("rotate", 0, "rotation in degrees")
		flipH  = flag.Bool("flip-h", false, "flip horizontally")
		flipV  = flag.Bool("flip-v", false, "flip vertically")
		scale  = flag.Float64("scale", 1, "scale factor (> 0)")

		previews    = flag.String("previews", "", "write one preview thumbnail per filter to this directory and exit")
		previewSize = flag.Int("preview-size", 160, "preview thumbnail size in pixels")
	)
	adj := adjustmentFlags()
	flag.Parse()

	if *showVersion {
		fmt.Printf("image-editor %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	if *listFilters {
		for _, p := range editor.Presets() {
			fmt.Printf("%-12s %s\n", p.ID, p.Name)
		}
		return
	}

	if *in == "" {
		log.Fatal("missing required -in flag")
	}

	buf, err := codec.Open(*in)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}

	if *previews != "" {
		if err := writePreviews(buf, *previews, *previewSize); err != nil {
			log.Fatalf("generate previews: %v", err)
		}
		return
	}

	if *out == "" {
		log.Fatal("missing required -out flag")
	}

	session, err := editor.NewEditSession(buf)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}

	t := editor.Transform{Rotate: *rotate, FlipHorizontal: *flipH, FlipVertical: *flipV, Scale: *scale}
	if !t.IsIdentity() {
		if err := session.SetTransform(t, "transform"); err != nil {
			log.Fatalf("apply transform: %v", err)
		}
	}

	if *cropSpec != "" {
		crop, err := parseCrop(*cropSpec)
		if err != nil {
			log.Fatalf("parse -crop: %v", err)
		}
		if err := session.SetCrop(crop, "crop"); err != nil {
			log.Fatalf("apply crop: %v", err)
		}
	}

	if *filter != "" {
		if err := session.ApplyFilter(*filter); err != nil {
			log.Fatalf("apply filter: %v", err)
		}
	}

	if !adj.allZero() {
		if err := session.SetAdjustments(adj.merge(session.Adjustments()), "adjust"); err != nil {
			log.Fatalf("apply adjustments: %v", err)
		}
	}

	if err := codec.Save(session.Current(), *out, *quality); err != nil {
		log.Fatalf("save output: %v", err)
	}
	log.Printf("wrote %s (%dx%d, %d history entries)",
		*out, session.Current().Width, session.Current().Height, len(session.History()))
}

// adjustmentValues binds one CLI flag per adjustment field.
type adjustmentValues struct {
	brightness, contrast, saturation, exposure *float64
	highlights, shadows, temperature, tint     *float64
	vibrance, sharpness, blur, noise           *float64
	vignette, grain                            *float64
}

func adjustmentFlags() *adjustmentValues {
	return &adjustmentValues{
		brightness:  flag.Float64("brightness", 0, "brightness (-100..100)"),
		contrast:    flag.Float64("contrast", 0, "contrast (-100..100)"),
		saturation:  flag.Float64("saturation", 0, "saturation (-100..100)"),
		exposure:    flag.Float64("exposure", 0, "exposure (-100..100)"),
		highlights:  flag.Float64("highlights", 0, "highlights (-100..100)"),
		shadows:     flag.Float64("shadows", 0, "shadows (-100..100)"),
		temperature: flag.Float64("temperature", 0, "temperature (-100..100)"),
		tint:        flag.Float64("tint", 0, "tint (-100..100)"),
		vibrance:    flag.Float64("vibrance", 0, "vibrance (-100..100)"),
		sharpness:   flag.Float64("sharpness", 0, "sharpness (-100..100)"),
		blur:        flag.Float64("blur", 0, "blur (0..100)"),
		noise:       flag.Float64("noise", 0, "noise (0..100)"),
		vignette:    flag.Float64("vignette", 0, "vignette (0..100)"),
		grain:       flag.Float64("grain", 0, "grain (0..100)"),
	}
}

// merge overlays non-zero flag values onto a base set of adjustments,
// so explicit flags refine a preset selected with -filter.
func (v *adjustmentValues) merge(base editor.Adjustments) editor.Adjustments {
	overlay := func(dst *float64, flagValue float64) {
		if flagValue != 0 {
			*dst = flagValue
		}
	}
	overlay(&base.Brightness, *v.brightness)
	overlay(&base.Contrast, *v.contrast)
	overlay(&base.Saturation, *v.saturation)
	overlay(&base.Exposure, *v.exposure)
	overlay(&base.Highlights, *v.highlights)
	overlay(&base.Shadows, *v.shadows)
	overlay(&base.Temperature, *v.temperature)
	overlay(&base.Tint, *v.tint)
	overlay(&base.Vibrance, *v.vibrance)
	overlay(&base.Sharpness, *v.sharpness)
	overlay(&base.Blur, *v.blur)
	overlay(&base.Noise, *v.noise)
	overlay(&base.Vignette, *v.vignette)
	overlay(&base.Grain, *v.grain)
	return base
}

func (v *adjustmentValues) allZero() bool {
	for _, p := range []*float64{
		v.brightness, v.contrast, v.saturation, v.exposure,
		v.highlights, v.shadows, v.temperature, v.tint,
		v.vibrance, v.sharpness, v.blur, v.noise, v.vignette, v.grain,
	} {
		if *p != 0 {
			return false
		}
	}
	return true
}

// parseCrop parses "x,y,width,height" into a crop area.
func parseCrop(spec string) (*editor.CropArea, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("expected x,y,width,height, got %q", spec)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid crop component %q: %w", p, err)
		}
		vals[i] = n
	}
	return &editor.CropArea{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// writePreviews renders every filter preset against one thumbnail and
// saves the results as PNG files named after the preset ids.
func writePreviews(buf *editor.RasterBuffer, dir string, size int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	list, err := editor.GenerateFilterPreviews(buf, size)
	if err != nil {
		return err
	}
	for _, p := range list {
		path := filepath.Join(dir, p.FilterID+".png")
		if err := codec.Save(p.Buffer, path, 0); err != nil {
			return err
		}
		log.Printf("%-12s %s swatch=%s", p.FilterID, path, p.Swatch.Hex)
	}
	return nil
}
