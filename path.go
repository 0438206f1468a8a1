package glyph

import "math"

// PathKind identifies the variant of a Path.
type PathKind uint8

const (
	// KindLine is a straight polyline.
	KindLine PathKind = iota

	// KindCurve is a single quadratic Bezier curve.
	KindCurve

	// KindPen is a free-hand stroke smoothed through point midpoints.
	KindPen

	// KindCalligraphy is a free-hand stroke drawn with a fixed nib angle.
	KindCalligraphy

	// KindDot is a filled circle.
	KindDot

	// KindOutline is a filled compound shape made of closed cubic contours.
	KindOutline
)

// String returns a string representation of the kind.
func (k PathKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCurve:
		return "curve"
	case KindPen:
		return "pen"
	case KindCalligraphy:
		return "calligraphy"
	case KindDot:
		return "dot"
	case KindOutline:
		return "outline"
	default:
		return "unknown"
	}
}

// Path is one stroke or shape of a glyph's visible ink.
//
// Path is a closed sum type: the only implementations are LinePath,
// CurvePath, PenPath, CalligraphyPath, DotPath and OutlinePath.
type Path interface {
	// Kind returns the variant tag.
	Kind() PathKind

	// Translate returns a copy of the path moved by (dx, dy).
	Translate(dx, dy float64) Path

	// Clone returns a deep copy of the path.
	Clone() Path

	isPath()
}

// LinePath is a polyline through Points.
type LinePath struct {
	Points []Point
}

// Kind returns KindLine.
func (LinePath) Kind() PathKind { return KindLine }
func (LinePath) isPath()        {}

// Translate returns a copy moved by (dx, dy).
func (p LinePath) Translate(dx, dy float64) Path {
	return LinePath{Points: translatePoints(p.Points, dx, dy)}
}

// Clone returns a deep copy.
func (p LinePath) Clone() Path {
	return LinePath{Points: clonePoints(p.Points)}
}

// CurvePath is a single quadratic Bezier curve.
type CurvePath struct {
	Start, Control, End Point
}

// Kind returns KindCurve.
func (CurvePath) Kind() PathKind { return KindCurve }
func (CurvePath) isPath()        {}

// Translate returns a copy moved by (dx, dy).
func (p CurvePath) Translate(dx, dy float64) Path {
	q := p.Quad().Translate(dx, dy)
	return CurvePath{Start: q.P0, Control: q.P1, End: q.P2}
}

// Clone returns p, which holds no shared slices.
func (p CurvePath) Clone() Path { return p }

// Quad returns the curve as a QuadBez.
func (p CurvePath) Quad() QuadBez {
	return NewQuadBez(p.Start, p.Control, p.End)
}

// PenPath is a free-hand stroke. Consecutive point midpoints act as
// implicit quadratic control points, see FlattenPen.
type PenPath struct {
	Points []Point
}

// Kind returns KindPen.
func (PenPath) Kind() PathKind { return KindPen }
func (PenPath) isPath()        {}

// Translate returns a copy moved by (dx, dy).
func (p PenPath) Translate(dx, dy float64) Path {
	return PenPath{Points: translatePoints(p.Points, dx, dy)}
}

// Clone returns a deep copy.
func (p PenPath) Clone() Path {
	return PenPath{Points: clonePoints(p.Points)}
}

// CalligraphyPath is a free-hand stroke drawn with a flat nib held at a
// fixed Angle (radians), which makes the stroke width direction dependent.
// Its geometry is flattened the same way as a PenPath.
type CalligraphyPath struct {
	Points []Point
	Angle  float64
}

// Kind returns KindCalligraphy.
func (CalligraphyPath) Kind() PathKind { return KindCalligraphy }
func (CalligraphyPath) isPath()        {}

// Translate returns a copy moved by (dx, dy).
func (p CalligraphyPath) Translate(dx, dy float64) Path {
	return CalligraphyPath{Points: translatePoints(p.Points, dx, dy), Angle: p.Angle}
}

// Clone returns a deep copy.
func (p CalligraphyPath) Clone() Path {
	return CalligraphyPath{Points: clonePoints(p.Points), Angle: p.Angle}
}

// DotPath is a circle around Center. If Edge is set the radius is the
// distance from Center to Edge; otherwise the radius is half the stroke
// thickness the glyph is measured with.
type DotPath struct {
	Center Point
	Edge   *Point
}

// Kind returns KindDot.
func (DotPath) Kind() PathKind { return KindDot }
func (DotPath) isPath()        {}

// Translate returns a copy moved by (dx, dy).
func (p DotPath) Translate(dx, dy float64) Path {
	moved := DotPath{Center: p.Center.Add(Pt(dx, dy))}
	if p.Edge != nil {
		e := p.Edge.Add(Pt(dx, dy))
		moved.Edge = &e
	}
	return moved
}

// Clone returns a deep copy.
func (p DotPath) Clone() Path {
	return p.Translate(0, 0)
}

// Radius returns the dot radius for the given stroke thickness.
func (p DotPath) Radius(strokeThickness float64) float64 {
	if p.Edge != nil {
		return p.Center.Distance(*p.Edge)
	}
	return halfThickness(strokeThickness)
}

// Segment is a vertex of a closed cubic contour. HandleIn and HandleOut
// are control point offsets relative to Point; zero handles make the
// adjacent edges straight.
type Segment struct {
	Point     Point
	HandleIn  Point
	HandleOut Point
}

// Contour is a closed sequence of segments. The last segment connects
// back to the first.
type Contour []Segment

// Cubics returns the closed contour as a list of cubic curves.
func (c Contour) Cubics() []CubicBez {
	if len(c) == 0 {
		return nil
	}
	cubics := make([]CubicBez, 0, len(c))
	for i, seg := range c {
		next := c[(i+1)%len(c)]
		cubics = append(cubics, NewCubicBez(
			seg.Point,
			seg.Point.Add(seg.HandleOut),
			next.Point.Add(next.HandleIn),
			next.Point,
		))
	}
	return cubics
}

// OutlinePath is a filled compound shape. Its contours combine under the
// even-odd fill rule, so inner contours form holes.
type OutlinePath struct {
	Contours []Contour
}

// Kind returns KindOutline.
func (OutlinePath) Kind() PathKind { return KindOutline }
func (OutlinePath) isPath()        {}

// Translate returns a copy moved by (dx, dy).
func (p OutlinePath) Translate(dx, dy float64) Path {
	d := Pt(dx, dy)
	moved := OutlinePath{Contours: make([]Contour, len(p.Contours))}
	for i, c := range p.Contours {
		mc := make(Contour, len(c))
		for j, seg := range c {
			mc[j] = Segment{Point: seg.Point.Add(d), HandleIn: seg.HandleIn, HandleOut: seg.HandleOut}
		}
		moved.Contours[i] = mc
	}
	return moved
}

// Clone returns a deep copy.
func (p OutlinePath) Clone() Path {
	return p.Translate(0, 0)
}

// RectOutline returns a single-contour outline for the axis-aligned
// rectangle at (x, y) with size w x h.
func RectOutline(x, y, w, h float64) OutlinePath {
	return OutlinePath{Contours: []Contour{{
		{Point: Pt(x, y)},
		{Point: Pt(x+w, y)},
		{Point: Pt(x+w, y+h)},
		{Point: Pt(x, y+h)},
	}}}
}

// halfThickness returns half the stroke thickness, treating negative or
// non-finite values as zero.
func halfThickness(strokeThickness float64) float64 {
	if !isFinite(strokeThickness) || strokeThickness <= 0 {
		return 0
	}
	return strokeThickness / 2
}

func translatePoints(points []Point, dx, dy float64) []Point {
	if points == nil {
		return nil
	}
	d := Pt(dx, dy)
	moved := make([]Point, len(points))
	for i, p := range points {
		moved[i] = p.Add(d)
	}
	return moved
}

func clonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	return append([]Point(nil), points...)
}

// circleExtremes returns the four axis extremes of a circle.
func circleExtremes(c Point, r float64) []Point {
	r = math.Abs(r)
	return []Point{
		{X: c.X - r, Y: c.Y},
		{X: c.X + r, Y: c.Y},
		{X: c.X, Y: c.Y - r},
		{X: c.X, Y: c.Y + r},
	}
}
