package glyph

import "math"

// GlyphData is the ordered list of paths that make up one glyph's ink.
//
// GlyphData memoizes its last computed bounding box together with the
// stroke thickness it was computed for. The memo is derived state: it is
// dropped whenever the paths change and bypassed whenever a different
// thickness is requested.
//
// A GlyphData must not be mutated or measured from more than one
// goroutine at a time; the memo assumes a single writer per glyph.
type GlyphData struct {
	paths []Path
	memo  *bboxMemo
}

// bboxMemo is the last computed (thickness, box) pair.
type bboxMemo struct {
	thickness float64
	box       BoundingBox
	ok        bool
}

// NewGlyphData creates glyph data from paths.
func NewGlyphData(paths ...Path) *GlyphData {
	return &GlyphData{paths: paths}
}

// Paths returns the glyph's paths. Prefer SetPaths or AppendPaths for
// changes; a caller that edits point data in place must call Invalidate
// afterwards.
func (g *GlyphData) Paths() []Path {
	if g == nil {
		return nil
	}
	return g.paths
}

// SetPaths replaces all paths and invalidates the memo.
func (g *GlyphData) SetPaths(paths []Path) {
	g.paths = paths
	g.memo = nil
}

// AppendPaths adds paths and invalidates the memo.
func (g *GlyphData) AppendPaths(paths ...Path) {
	g.paths = append(g.paths, paths...)
	g.memo = nil
}

// Invalidate drops the memoized bounding box, so the next BoundingBox
// call recomputes it.
func (g *GlyphData) Invalidate() {
	if g != nil {
		g.memo = nil
	}
}

// IsEmpty reports whether the glyph has no paths.
func (g *GlyphData) IsEmpty() bool {
	return g == nil || len(g.paths) == 0
}

// BoundingBox returns the glyph's bounds for the given stroke thickness,
// reusing the memo only when it was computed for the same thickness.
func (g *GlyphData) BoundingBox(strokeThickness float64) (BoundingBox, bool) {
	if g == nil {
		return BoundingBox{}, false
	}
	t := normalizeThickness(strokeThickness)
	if g.memo != nil && g.memo.thickness == t {
		return g.memo.box, g.memo.ok
	}
	box, ok := ComputeBoundingBox(g.paths, t)
	g.memo = &bboxMemo{thickness: t, box: box, ok: ok}
	return box, ok
}

// Clone returns a deep copy of the glyph without its memo.
func (g *GlyphData) Clone() *GlyphData {
	if g == nil {
		return nil
	}
	paths := make([]Path, len(g.paths))
	for i, p := range g.paths {
		paths[i] = p.Clone()
	}
	return &GlyphData{paths: paths}
}

// Translate returns a copy of the glyph moved by (dx, dy).
func (g *GlyphData) Translate(dx, dy float64) *GlyphData {
	if g == nil {
		return nil
	}
	paths := make([]Path, len(g.paths))
	for i, p := range g.paths {
		paths[i] = p.Translate(dx, dy)
	}
	return &GlyphData{paths: paths}
}

// normalizeThickness maps negative and non-finite thickness to zero so
// that memo keys compare structurally (NaN never equals itself).
func normalizeThickness(t float64) float64 {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return 0
	}
	return t
}
