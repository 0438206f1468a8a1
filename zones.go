package glyph

// ZoneBoxes splits a glyph's ink into vertical typographic bands.
//
// Ascender, XHeight and Descender are nil when no outline point falls in
// that band. Full is the glyph's complete bounding box.
type ZoneBoxes struct {
	Ascender  *Rect
	XHeight   *Rect
	Descender *Rect
	Full      Rect
}

// Translate returns the zone boxes moved horizontally by dx.
func (z ZoneBoxes) Translate(dx float64) ZoneBoxes {
	return ZoneBoxes{
		Ascender:  translateZone(z.Ascender, dx),
		XHeight:   translateZone(z.XHeight, dx),
		Descender: translateZone(z.Descender, dx),
		Full:      z.Full.Translate(dx, 0),
	}
}

func translateZone(r *Rect, dx float64) *Rect {
	if r == nil {
		return nil
	}
	moved := r.Translate(dx, 0)
	return &moved
}

// ComputeZoneBoxes classifies the glyph's flattened outline points into
// the ascender, x-height and descender bands defined by toplineY and
// baselineY (Y grows downward, so toplineY < baselineY).
//
// Every boundary is widened by a tolerance of strokeThickness/2 and the
// bands are inclusive, so a point close to a boundary contributes to
// both neighbouring zones:
//
//	y <= topline+tol              ascender
//	topline-tol <= y <= baseline+tol   x-height
//	y >= baseline-tol             descender
//
// Each populated zone is inflated by the same tolerance. The bool is
// false when the glyph has no bounding box.
func ComputeZoneBoxes(g *GlyphData, baselineY, toplineY, strokeThickness float64) (ZoneBoxes, bool) {
	full, ok := g.BoundingBox(strokeThickness)
	if !ok {
		return ZoneBoxes{}, false
	}
	tol := halfThickness(strokeThickness)

	var asc, xh, desc extent
	for _, p := range g.Paths() {
		for _, pt := range FlattenPath(p, strokeThickness, ZoneSubdivisions) {
			if !pt.IsFinite() {
				continue
			}
			if pt.Y <= toplineY+tol {
				asc.addPoint(pt)
			}
			if pt.Y >= toplineY-tol && pt.Y <= baselineY+tol {
				xh.addPoint(pt)
			}
			if pt.Y >= baselineY-tol {
				desc.addPoint(pt)
			}
		}
	}

	return ZoneBoxes{
		Ascender:  asc.zone(tol),
		XHeight:   xh.zone(tol),
		Descender: desc.zone(tol),
		Full:      full.Rect(),
	}, true
}

func (e *extent) zone(tol float64) *Rect {
	if !e.ok {
		return nil
	}
	r := e.box.Inflate(tol)
	return &r
}
