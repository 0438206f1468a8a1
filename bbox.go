package glyph

import "math"

// BoundingBox is an axis-aligned box in origin/size form.
type BoundingBox struct {
	X, Y          float64
	Width, Height float64
}

// Rect converts the box to min/max form.
func (b BoundingBox) Rect() Rect {
	return Rect{Min: Pt(b.X, b.Y), Max: Pt(b.X+b.Width, b.Y+b.Height)}
}

// MaxX returns the right edge of the box.
func (b BoundingBox) MaxX() float64 { return b.X + b.Width }

// MaxY returns the bottom edge of the box.
func (b BoundingBox) MaxY() float64 { return b.Y + b.Height }

// extent accumulates min/max coordinates. Non-finite input is ignored.
type extent struct {
	box Rect
	ok  bool
}

func (e *extent) addPoint(p Point) {
	if !p.IsFinite() {
		return
	}
	e.addRect(Rect{Min: p, Max: p})
}

func (e *extent) addRect(r Rect) {
	if !r.Min.IsFinite() || !r.Max.IsFinite() {
		return
	}
	if !e.ok {
		e.box, e.ok = r, true
		return
	}
	e.box = e.box.Union(r)
}

// ComputeBoundingBox returns the axis-aligned bounds of a glyph's ink.
//
// Stroked paths (line, curve, pen, calligraphy) are flattened and their
// sample bounds are inflated by strokeThickness/2 on every side. Dots
// contribute their circle bounds. Outlines are filled shapes and
// contribute their exact envelope without inflation.
//
// The bool is false when no path contributes any finite extent.
// Negative or non-finite thickness is treated as zero.
func ComputeBoundingBox(paths []Path, strokeThickness float64) (BoundingBox, bool) {
	half := halfThickness(strokeThickness)

	var total extent
	for _, p := range paths {
		switch v := p.(type) {
		case OutlinePath:
			if env, ok := v.Envelope(); ok {
				total.addRect(env)
			}
		case DotPath:
			r := math.Abs(v.Radius(strokeThickness))
			if !isFinite(r) {
				continue
			}
			total.addRect(Rect{
				Min: Pt(v.Center.X-r, v.Center.Y-r),
				Max: Pt(v.Center.X+r, v.Center.Y+r),
			})
		default:
			var stroke extent
			for _, pt := range FlattenPath(p, strokeThickness, QuadSubdivisions) {
				stroke.addPoint(pt)
			}
			if stroke.ok {
				total.addRect(stroke.box.Inflate(half))
			}
		}
	}

	if !total.ok {
		return BoundingBox{}, false
	}
	return total.box.BoundingBox(), true
}
