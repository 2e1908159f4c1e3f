package editor

import "errors"

// Sentinel errors returned by the engine operations. Callers should test
// with errors.Is; the wrapped messages carry the offending values.
var (
	// ErrInvalidParameter indicates an out-of-range adjustment value, a
	// non-positive scale or dimension, or a crop rectangle that exceeds
	// the source bounds. The operation fails before any pixel is touched.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownPreset indicates a filter id that is not in the catalog.
	// ApplyFilter degrades to identity instead of returning this error;
	// it is reported only by LookupPreset for callers that need to
	// distinguish a missing preset from the identity preset.
	ErrUnknownPreset = errors.New("unknown filter preset")
)
