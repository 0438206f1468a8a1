package fontimport

import "github.com/gogpu/glyph"

// segmentOp is the type of a decoded outline operation.
type segmentOp uint8

const (
	opMoveTo segmentOp = iota
	opLineTo
	opQuadTo
	opCubicTo
)

// rawSegment is one backend-neutral outline operation. Coordinates are
// font units with Y growing downward and the baseline at 0.
//   - MoveTo, LineTo: args[0] is the target point
//   - QuadTo: args[0] is the control, args[1] the target
//   - CubicTo: args[0], args[1] are controls, args[2] the target
type rawSegment struct {
	op   segmentOp
	args [3]glyph.Point
}

// rawGlyph is a decoded glyph before conversion to paths.
type rawGlyph struct {
	segments []rawSegment
	advance  float64
}

// contourBuilder turns move/line/quad/cubic operations into closed
// contours of glyph.Segment with relative handles.
type contourBuilder struct {
	contours []glyph.Contour
	current  glyph.Contour
}

func (b *contourBuilder) moveTo(p glyph.Point) {
	b.flush()
	b.current = glyph.Contour{{Point: p}}
}

func (b *contourBuilder) lineTo(p glyph.Point) {
	if len(b.current) == 0 {
		b.moveTo(p)
		return
	}
	b.current = append(b.current, glyph.Segment{Point: p})
}

// quadTo raises the quadratic to the equivalent cubic.
func (b *contourBuilder) quadTo(c, p glyph.Point) {
	if len(b.current) == 0 {
		b.moveTo(p)
		return
	}
	from := b.current[len(b.current)-1].Point
	c1 := from.Add(c.Sub(from).Mul(2.0 / 3.0))
	c2 := p.Add(c.Sub(p).Mul(2.0 / 3.0))
	b.cubicTo(c1, c2, p)
}

func (b *contourBuilder) cubicTo(c1, c2, p glyph.Point) {
	if len(b.current) == 0 {
		b.moveTo(p)
		return
	}
	last := &b.current[len(b.current)-1]
	last.HandleOut = c1.Sub(last.Point)
	b.current = append(b.current, glyph.Segment{Point: p, HandleIn: c2.Sub(p)})
}

// flush closes the current contour. A final vertex that repeats the
// first one is folded into it, keeping its incoming handle.
func (b *contourBuilder) flush() {
	c := b.current
	b.current = nil
	if len(c) == 0 {
		return
	}
	if n := len(c); n > 1 && c[n-1].Point == c[0].Point {
		c[0].HandleIn = c[n-1].HandleIn
		c = c[:n-1]
	}
	b.contours = append(b.contours, c)
}

// toGlyphData converts decoded segments into glyph data holding a single
// outline path. Glyphs without contours yield empty glyph data.
func toGlyphData(segments []rawSegment) *glyph.GlyphData {
	var b contourBuilder
	for _, s := range segments {
		switch s.op {
		case opMoveTo:
			b.moveTo(s.args[0])
		case opLineTo:
			b.lineTo(s.args[0])
		case opQuadTo:
			b.quadTo(s.args[0], s.args[1])
		case opCubicTo:
			b.cubicTo(s.args[0], s.args[1], s.args[2])
		}
	}
	b.flush()

	if len(b.contours) == 0 {
		return glyph.NewGlyphData()
	}
	return glyph.NewGlyphData(glyph.OutlinePath{Contours: b.contours})
}
