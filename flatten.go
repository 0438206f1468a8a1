package glyph

// Sampling densities used when turning curves into polylines.
const (
	// QuadSubdivisions is the number of uniform steps a quadratic curve
	// is sampled at for bounding box computation.
	QuadSubdivisions = 12

	// PenSubdivisions is the number of steps per implicit quadratic piece
	// of a pen or calligraphy stroke.
	PenSubdivisions = 8

	// ZoneSubdivisions is the coarser number of steps per cubic outline
	// edge used for zone classification, where only band membership of
	// points matters.
	ZoneSubdivisions = 4
)

// FlattenQuad samples the quadratic curve p0-p1-p2 into a polyline of
// QuadSubdivisions+1 points.
func FlattenQuad(p0, p1, p2 Point) []Point {
	return NewQuadBez(p0, p1, p2).Flatten(QuadSubdivisions)
}

// FlattenPen smooths a free-hand stroke into a polyline. Each interior
// point acts as the control point of a quadratic running between the
// midpoints of its neighbouring edges; the first and last pieces start
// at the first point and end at the last point respectively.
//
// Inputs of two points or fewer are returned unchanged.
func FlattenPen(points []Point) []Point {
	if len(points) <= 2 {
		return points
	}

	n := len(points)
	out := make([]Point, 0, (n-2)*PenSubdivisions+2)
	out = append(out, points[0])

	start := points[0]
	for i := 1; i < n-1; i++ {
		end := points[i].Midpoint(points[i+1])
		if i == n-2 {
			end = points[n-1]
		}
		// Skip the first sample, it repeats the previous end.
		out = append(out, NewQuadBez(start, points[i], end).Flatten(PenSubdivisions)[1:]...)
		start = end
	}
	return out
}

// FlattenContour samples each cubic edge of a closed contour at the given
// number of steps. Straight edges contribute only their endpoints.
func FlattenContour(c Contour, steps int) []Point {
	cubics := c.Cubics()
	if len(cubics) == 0 {
		return nil
	}
	out := make([]Point, 0, len(cubics)*steps+1)
	out = append(out, cubics[0].P0)
	for _, cb := range cubics {
		if cb.IsLine() {
			out = append(out, cb.P3)
			continue
		}
		out = append(out, cb.Flatten(steps)[1:]...)
	}
	return out
}

// FlattenPath returns the sample points of a path. Outline contours are
// sampled at outlineSteps per edge; dots yield their four axis extremes
// for the given stroke thickness.
func FlattenPath(p Path, strokeThickness float64, outlineSteps int) []Point {
	switch v := p.(type) {
	case LinePath:
		return v.Points
	case CurvePath:
		return FlattenQuad(v.Start, v.Control, v.End)
	case PenPath:
		return FlattenPen(v.Points)
	case CalligraphyPath:
		return FlattenPen(v.Points)
	case DotPath:
		return circleExtremes(v.Center, v.Radius(strokeThickness))
	case OutlinePath:
		var out []Point
		for _, c := range v.Contours {
			out = append(out, FlattenContour(c, outlineSteps)...)
		}
		return out
	default:
		return nil
	}
}
