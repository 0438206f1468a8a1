package markpos

import (
	"strings"

	"github.com/gogpu/glyph"
)

// Anchor names a reference point on a glyph's bounding box.
type Anchor uint8

// Y grows downward, so the top edge is the box's minimum Y.
const (
	// TopLeft is the box origin.
	TopLeft Anchor = iota
	// TopCenter is the midpoint of the top edge.
	TopCenter
	// TopRight is the top edge's right end.
	TopRight
	// MiddleLeft is the midpoint of the left edge.
	MiddleLeft
	// MiddleRight is the midpoint of the right edge.
	MiddleRight
	// BottomLeft is the bottom edge's left end.
	BottomLeft
	// BottomCenter is the midpoint of the bottom edge.
	BottomCenter
	// BottomRight is the corner opposite the origin.
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:      "topLeft",
	TopCenter:    "topCenter",
	TopRight:     "topRight",
	MiddleLeft:   "middleLeft",
	MiddleRight:  "middleRight",
	BottomLeft:   "bottomLeft",
	BottomCenter: "bottomCenter",
	BottomRight:  "bottomRight",
}

// String returns the anchor's canonical name.
func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "unknown"
}

// ParseAnchor parses a canonical anchor name, ignoring case.
func ParseAnchor(name string) (Anchor, bool) {
	for i, n := range anchorNames {
		if strings.EqualFold(n, name) {
			return Anchor(i), true
		}
	}
	return 0, false
}

// Coord returns the anchor's position on b. Y grows downward, so "top"
// is b.Y and "bottom" is b.Y+b.Height.
func (a Anchor) Coord(b glyph.BoundingBox) glyph.Point {
	cx := b.X + b.Width/2
	cy := b.Y + b.Height/2
	switch a {
	case TopLeft:
		return glyph.Pt(b.X, b.Y)
	case TopCenter:
		return glyph.Pt(cx, b.Y)
	case TopRight:
		return glyph.Pt(b.MaxX(), b.Y)
	case MiddleLeft:
		return glyph.Pt(b.X, cy)
	case MiddleRight:
		return glyph.Pt(b.MaxX(), cy)
	case BottomLeft:
		return glyph.Pt(b.X, b.MaxY())
	case BottomCenter:
		return glyph.Pt(cx, b.MaxY())
	case BottomRight:
		return glyph.Pt(b.MaxX(), b.MaxY())
	default:
		return glyph.Pt(cx, cy)
	}
}
