package glyph

// Compound outline operations: envelope and even-odd containment.

// containsSubdivisions is the flattening density used for containment.
const containsSubdivisions = 16

// Envelope returns the tight axis-aligned bounds of the compound shape.
//
// Under the even-odd rule a hole never reaches outside its enclosing
// contour, so the envelope of the filled region is the union of the
// contour envelopes. The bool is false when there are no contours.
func (p OutlinePath) Envelope() (Rect, bool) {
	var (
		box Rect
		ok  bool
	)
	for _, c := range p.Contours {
		for _, cb := range c.Cubics() {
			r := cb.BoundingBox()
			if !r.Min.IsFinite() || !r.Max.IsFinite() {
				continue
			}
			if !ok {
				box, ok = r, true
				continue
			}
			box = box.Union(r)
		}
	}
	return box, ok
}

// Contains reports whether pt lies in the filled region of the outline
// under the even-odd fill rule. Points inside a hole are outside.
func (p OutlinePath) Contains(pt Point) bool {
	var winding int
	for _, c := range p.Contours {
		poly := FlattenContour(c, containsSubdivisions)
		for i := 0; i+1 < len(poly); i++ {
			winding += lineWinding(poly[i], poly[i+1], pt)
		}
	}
	// Each crossing flips parity regardless of direction.
	return winding%2 != 0
}

// lineWinding computes the winding contribution of a line segment for a
// horizontal ray cast from pt.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}
