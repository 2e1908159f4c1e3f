package editor

import (
	"errors"
	"image/color"
	"testing"
)

func TestPresets_Catalog(t *testing.T) {
	presets := Presets()

	if len(presets) != 20 {
		t.Errorf("catalog size: got %d, want 20", len(presets))
	}
	if presets[0].ID != "none" {
		t.Errorf("first preset: got %q, want \"none\"", presets[0].ID)
	}
	if !presets[0].Adjustments.IsNeutral() {
		t.Error("the \"none\" preset must be the identity")
	}

	seen := make(map[string]bool)
	for _, p := range presets {
		if p.ID == "" || p.Name == "" {
			t.Errorf("preset %+v missing id or name", p)
		}
		if seen[p.ID] {
			t.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true

		if err := p.Adjustments.Validate(); err != nil {
			t.Errorf("preset %q has out-of-range adjustments: %v", p.ID, err)
		}
	}
}

func TestPresets_ReturnsCopy(t *testing.T) {
	first := Presets()
	first[0].ID = "mutated"

	if Presets()[0].ID != "none" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset("moon")
	if err != nil {
		t.Fatalf("LookupPreset failed: %v", err)
	}
	if p.Name != "Moon" || p.Adjustments.Saturation != -100 {
		t.Errorf("unexpected preset: %+v", p)
	}

	_, err = LookupPreset("does-not-exist")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("got %v, want ErrUnknownPreset", err)
	}
}

func TestApplyFilter_NoneReturnsInputUnchanged(t *testing.T) {
	src := patternBuffer(8, 8)

	out, err := ApplyFilter(src, "none")
	if err != nil {
		t.Fatalf("ApplyFilter failed: %v", err)
	}
	if out != src {
		t.Error("the \"none\" preset should return the input buffer unchanged")
	}
}

func TestApplyFilter_UnknownIDDegradesToIdentity(t *testing.T) {
	src := patternBuffer(8, 8)

	out, err := ApplyFilter(src, "definitely-not-a-filter")
	if err != nil {
		t.Fatalf("ApplyFilter should not fail for unknown ids: %v", err)
	}
	if out != src {
		t.Error("an unknown preset id should return the input buffer unchanged")
	}
}

func TestApplyFilter_MoonDesaturates(t *testing.T) {
	src := patternBuffer(8, 8)

	out, err := ApplyFilter(src, "moon")
	if err != nil {
		t.Fatalf("ApplyFilter failed: %v", err)
	}

	// Moon carries saturation -100, so every output pixel is gray.
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, _ := out.At(x, y)
			if r != g || g != b {
				t.Fatalf("pixel (%d,%d): got (%d,%d,%d), want equal channels", x, y, r, g, b)
			}
		}
	}
	if buffersEqual(src, out) {
		t.Error("moon should actually change a colored buffer")
	}
}

func TestApplyFilter_AppliesOverNeutralDefaults(t *testing.T) {
	src := solidBuffer(4, 4, color.RGBA{100, 100, 100, 255})

	got, err := ApplyFilter(src, "clarendon")
	if err != nil {
		t.Fatalf("ApplyFilter failed: %v", err)
	}
	preset, _ := LookupPreset("clarendon")
	want, err := ApplyAdjustments(src, preset.Adjustments)
	if err != nil {
		t.Fatalf("ApplyAdjustments failed: %v", err)
	}

	if !buffersEqual(got, want) {
		t.Error("ApplyFilter should match ApplyAdjustments with the preset's values")
	}
}
