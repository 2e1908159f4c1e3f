package editor

// FilterPreset is a named, fixed partial Adjustments set exposed as a
// filter. Only the overridden fields are set; unset fields are neutral.
type FilterPreset struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Adjustments Adjustments `json:"adjustments"`
}

// presetCatalog is the fixed, ordered filter catalog. The identity
// "none" preset comes first; the order is what selection UIs display.
var presetCatalog = []FilterPreset{
	{ID: "none", Name: "None"},
	{ID: "clarendon", Name: "Clarendon", Adjustments: Adjustments{Brightness: 10, Contrast: 20, Saturation: 15}},
	{ID: "gingham", Name: "Gingham", Adjustments: Adjustments{Brightness: 5, Saturation: -10, Temperature: -5}},
	{ID: "moon", Name: "Moon", Adjustments: Adjustments{Brightness: 10, Contrast: 10, Saturation: -100}},
	{ID: "lark", Name: "Lark", Adjustments: Adjustments{Brightness: 8, Saturation: 10, Temperature: 5}},
	{ID: "reyes", Name: "Reyes", Adjustments: Adjustments{Brightness: 15, Contrast: -10, Saturation: -20}},
	{ID: "juno", Name: "Juno", Adjustments: Adjustments{Contrast: 15, Saturation: 20, Temperature: 8}},
	{ID: "slumber", Name: "Slumber", Adjustments: Adjustments{Brightness: -5, Saturation: -15, Temperature: 10}},
	{ID: "crema", Name: "Crema", Adjustments: Adjustments{Brightness: 5, Saturation: -10, Temperature: 12}},
	{ID: "ludwig", Name: "Ludwig", Adjustments: Adjustments{Brightness: 5, Contrast: 10, Saturation: -5}},
	{ID: "aden", Name: "Aden", Adjustments: Adjustments{Brightness: 10, Saturation: -15, Tint: 10}},
	{ID: "perpetua", Name: "Perpetua", Adjustments: Adjustments{Brightness: 5, Saturation: 10, Temperature: -10}},
	{ID: "vintage", Name: "Vintage", Adjustments: Adjustments{Saturation: -30, Temperature: 15, Vignette: 30, Grain: 20}},
	{ID: "noir", Name: "Noir", Adjustments: Adjustments{Contrast: 25, Saturation: -100, Vignette: 40}},
	{ID: "dramatic", Name: "Dramatic", Adjustments: Adjustments{Contrast: 30, Saturation: 10, Exposure: -5, Vignette: 25}},
	{ID: "golden", Name: "Golden Hour", Adjustments: Adjustments{Brightness: 5, Temperature: 25, Vibrance: 15}},
	{ID: "arctic", Name: "Arctic", Adjustments: Adjustments{Brightness: 5, Saturation: -5, Temperature: -25}},
	{ID: "fade", Name: "Fade", Adjustments: Adjustments{Brightness: 10, Contrast: -20, Saturation: -20}},
	{ID: "vivid", Name: "Vivid", Adjustments: Adjustments{Contrast: 15, Saturation: 35, Vibrance: 20}},
	{ID: "matte", Name: "Matte", Adjustments: Adjustments{Brightness: 8, Contrast: -15, Vignette: 15}},
}

// Presets returns the catalog in display order. The slice is a copy;
// callers may reorder it freely.
func Presets() []FilterPreset {
	out := make([]FilterPreset, len(presetCatalog))
	copy(out, presetCatalog)
	return out
}

// LookupPreset resolves a filter id. Unknown ids return ErrUnknownPreset.
func LookupPreset(id string) (FilterPreset, error) {
	for _, p := range presetCatalog {
		if p.ID == id {
			return p, nil
		}
	}
	return FilterPreset{}, ErrUnknownPreset
}

// ApplyFilter applies the named preset's adjustments to a buffer.
//
// The preset's partial adjustments are merged over neutral defaults and
// delegated to ApplyAdjustments. The identity preset "none" and unknown
// ids both return the input buffer unchanged rather than failing; a
// missing preset degrades gracefully to identity.
func ApplyFilter(src *RasterBuffer, id string) (*RasterBuffer, error) {
	preset, err := LookupPreset(id)
	if err != nil || preset.Adjustments.IsNeutral() {
		return src, nil
	}
	return ApplyAdjustments(src, preset.Adjustments)
}
