package editor

import (
	"fmt"
	"time"
)

// HistoryEntry is an immutable snapshot of the edit state at one point in
// the edit log.
type HistoryEntry struct {
	Timestamp   time.Time
	Action      string
	Adjustments Adjustments
	Transform   Transform
	Crop        *CropArea
}

// EditSession is the non-destructive editing state machine for a single
// image. It composes the adjustment, transform and crop engines with the
// preset registry into an ordered, reversible edit log.
//
// historyIndex points into the append-only history list; index -1 is the
// implicit default state (neutral adjustments, identity transform, no
// crop) and is deliberately never stored as an entry. Committing an edit
// truncates any entries after the index before appending, so an undo
// followed by a new edit discards the previously available redo entries.
//
// The current image is always reproducible by replaying
// original → transform → crop → adjustments from the snapshot at
// historyIndex. A session is single-owner; its mutating methods must not
// be called concurrently.
type EditSession struct {
	original     *RasterBuffer
	current      *RasterBuffer
	adjustments  Adjustments
	transform    Transform
	crop         *CropArea
	activeFilter string
	history      []HistoryEntry
	historyIndex int
}

// NewEditSession creates a session rooted at the original image with the
// default state: empty history, index -1, identity everything.
func NewEditSession(original *RasterBuffer) (*EditSession, error) {
	if original == nil || original.Width <= 0 || original.Height <= 0 {
		return nil, fmt.Errorf("%w: original image must be a non-empty buffer", ErrInvalidParameter)
	}
	return &EditSession{
		original:     original,
		current:      original,
		transform:    DefaultTransform(),
		historyIndex: -1,
	}, nil
}

// Original returns the immutable source image the session was created from.
func (s *EditSession) Original() *RasterBuffer { return s.original }

// Current returns the image derived from the state at the history index.
func (s *EditSession) Current() *RasterBuffer { return s.current }

// Adjustments returns the current adjustment values.
func (s *EditSession) Adjustments() Adjustments { return s.adjustments }

// Transform returns the current geometric transform.
func (s *EditSession) Transform() Transform { return s.transform }

// Crop returns a copy of the current crop area, or nil when uncropped.
func (s *EditSession) Crop() *CropArea {
	if s.crop == nil {
		return nil
	}
	c := *s.crop
	return &c
}

// ActiveFilter returns the id of the preset last applied through
// ApplyFilter, or "" when none is active.
func (s *EditSession) ActiveFilter() string { return s.activeFilter }

// History returns a copy of the edit log.
func (s *EditSession) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryIndex returns the current position in the edit log; -1 denotes
// the implicit default state.
func (s *EditSession) HistoryIndex() int { return s.historyIndex }

// CanUndo reports whether Undo would change the session state.
func (s *EditSession) CanUndo() bool { return s.historyIndex >= 0 }

// CanRedo reports whether an entry past the current index exists.
func (s *EditSession) CanRedo() bool { return s.historyIndex < len(s.history)-1 }

// SetAdjustments validates and applies new adjustment values, committing
// a history entry and re-rendering the current image.
func (s *EditSession) SetAdjustments(adj Adjustments, action string) error {
	if err := adj.Validate(); err != nil {
		return err
	}
	s.adjustments = adj
	s.activeFilter = ""
	s.commit(action)
	return s.render()
}

// SetTransform validates and applies a new geometric transform,
// committing a history entry and re-rendering the current image.
//
// When a crop is already set, the new transform's output bounds must
// still contain the crop rectangle; a transform that would orphan the
// crop is rejected with ErrInvalidParameter before anything is
// committed, keeping every history snapshot renderable.
func (s *EditSession) SetTransform(t Transform, action string) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if s.crop != nil {
		w, h := t.Bounds(s.original.Width, s.original.Height)
		if err := s.crop.Validate(w, h); err != nil {
			return err
		}
	}
	s.transform = t
	s.commit(action)
	return s.render()
}

// SetCrop applies a crop area in post-transform coordinates, committing a
// history entry and re-rendering. A nil crop clears any existing crop.
// The rectangle is validated against the transformed bounds before the
// pixel loop runs.
func (s *EditSession) SetCrop(crop *CropArea, action string) error {
	if crop != nil {
		w, h := s.transform.Bounds(s.original.Width, s.original.Height)
		if err := crop.Validate(w, h); err != nil {
			return err
		}
		c := *crop
		s.crop = &c
	} else {
		s.crop = nil
	}
	s.commit(action)
	return s.render()
}

// ApplyFilter switches the session's adjustments to the named preset,
// committing a history entry. Unknown ids behave as the identity preset
// and clear the active filter.
func (s *EditSession) ApplyFilter(id string) error {
	preset, err := LookupPreset(id)
	if err != nil || preset.ID == "none" {
		s.adjustments = Adjustments{}
		s.activeFilter = ""
	} else {
		s.adjustments = preset.Adjustments
		s.activeFilter = preset.ID
	}
	s.commit("filter: " + id)
	return s.render()
}

// Undo steps the history index back one entry. At index 0 (or already at
// the implicit default) it resets to the default state at index -1.
// History itself is never mutated, so a following Redo restores the
// undone state exactly.
func (s *EditSession) Undo() error {
	if s.historyIndex <= 0 {
		s.historyIndex = -1
		s.adjustments = Adjustments{}
		s.transform = DefaultTransform()
		s.crop = nil
		s.activeFilter = ""
		return s.render()
	}
	s.historyIndex--
	s.loadSnapshot(s.history[s.historyIndex])
	return s.render()
}

// Redo steps the history index forward one entry; past the newest entry
// it is a no-op.
func (s *EditSession) Redo() error {
	if s.historyIndex >= len(s.history)-1 {
		return nil
	}
	s.historyIndex++
	s.loadSnapshot(s.history[s.historyIndex])
	return s.render()
}

// ResetToOriginal discards all history and returns the session to a
// fresh state rooted at the original image.
func (s *EditSession) ResetToOriginal() {
	s.history = nil
	s.historyIndex = -1
	s.adjustments = Adjustments{}
	s.transform = DefaultTransform()
	s.crop = nil
	s.activeFilter = ""
	s.current = s.original
}

// commit truncates the log to historyIndex+1 entries, appends a snapshot
// of the current state and moves the index to the new entry.
func (s *EditSession) commit(action string) {
	s.history = s.history[:s.historyIndex+1]

	entry := HistoryEntry{
		Timestamp:   time.Now(),
		Action:      action,
		Adjustments: s.adjustments,
		Transform:   s.transform,
	}
	if s.crop != nil {
		c := *s.crop
		entry.Crop = &c
	}
	s.history = append(s.history, entry)
	s.historyIndex = len(s.history) - 1
}

// loadSnapshot restores the mutable state from a history entry.
func (s *EditSession) loadSnapshot(entry HistoryEntry) {
	s.adjustments = entry.Adjustments
	s.transform = entry.Transform
	if entry.Crop != nil {
		c := *entry.Crop
		s.crop = &c
	} else {
		s.crop = nil
	}
}

// render recomputes the current image by replaying the engines over the
// original: transform, then crop, then adjustments. Stages at their
// neutral values are skipped; with everything neutral the current image
// is the original itself.
func (s *EditSession) render() error {
	img := s.original

	if !s.transform.IsIdentity() {
		out, err := ApplyTransform(img, s.transform)
		if err != nil {
			return err
		}
		img = out
	}
	if s.crop != nil {
		out, err := CropImage(img, *s.crop)
		if err != nil {
			return err
		}
		img = out
	}
	if !s.adjustments.IsNeutral() {
		out, err := ApplyAdjustments(img, s.adjustments)
		if err != nil {
			return err
		}
		img = out
	}

	s.current = img
	return nil
}
