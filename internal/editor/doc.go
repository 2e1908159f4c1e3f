// Package editor implements a non-destructive raster image editor: color
// adjustments, geometric transforms, cropping, a named filter preset
// catalog, an undo/redo edit session, and filter preview generation.
//
// # Data model
//
// All operations work over RasterBuffer values, width×height rasters of
// RGBA8 pixels with (0,0) at the top-left corner, X increasing rightward
// and Y increasing downward. Buffers are immutable by contract: every
// operation returns a newly allocated buffer and never writes to its
// input, so history snapshots can hold references safely.
//
// # Pipeline
//
// An edit session replays original → transform → crop → adjustments to
// produce its current image. The adjustment pipeline itself runs a fused
// per-pixel color pass followed by blur, vignette and grain passes in
// that fixed order, clamping channels to [0, 255] after every pass.
//
// # Concurrency
//
// Operations are synchronous and CPU-bound. The per-pixel color and
// grain passes partition work by row bands across goroutines; the blur
// pass reads from a snapshot of its input and acts as its own barrier.
// An EditSession is single-owner and must not be mutated concurrently.
//
// # Error handling
//
// Malformed crop rectangles, non-positive scales and out-of-range
// adjustment values are rejected with ErrInvalidParameter before any
// pixel loop runs. A missing filter preset id degrades gracefully to
// unchanged output rather than failing.
package editor
