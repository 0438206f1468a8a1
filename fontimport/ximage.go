package fontimport

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
)

// ximageBackend decodes glyphs with golang.org/x/image/font/sfnt.
//
// Glyphs are loaded at ppem = unitsPerEm, so 26.6 results are font units.
// sfnt already reports outlines with Y growing downward.
type ximageBackend struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
	upem int
}

func newXImageBackend(data []byte) (*ximageBackend, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontimport: failed to parse font: %w", err)
	}
	upem := int(f.UnitsPerEm())
	return &ximageBackend{
		font: f,
		ppem: fixed.Int26_6(upem << 6),
		upem: upem,
	}, nil
}

func (b *ximageBackend) unitsPerEm() int {
	return b.upem
}

func (b *ximageBackend) glyph(r rune) (rawGlyph, bool, error) {
	x, err := b.font.GlyphIndex(&b.buf, r)
	if err != nil {
		return rawGlyph{}, false, err
	}
	if x == 0 {
		return rawGlyph{}, false, nil
	}

	// Advance first: LoadGlyph's result aliases the buffer.
	advance, err := b.font.GlyphAdvance(&b.buf, x, b.ppem, font.HintingNone)
	if err != nil {
		return rawGlyph{}, false, err
	}

	segments, err := b.font.LoadGlyph(&b.buf, x, b.ppem, nil)
	if err != nil {
		return rawGlyph{}, false, err
	}

	g := rawGlyph{
		segments: make([]rawSegment, 0, len(segments)),
		advance:  fixedToFloat64(advance),
	}
	for _, seg := range segments {
		var out rawSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.op = opMoveTo
		case sfnt.SegmentOpLineTo:
			out.op = opLineTo
		case sfnt.SegmentOpQuadTo:
			out.op = opQuadTo
		case sfnt.SegmentOpCubeTo:
			out.op = opCubicTo
		default:
			continue
		}
		for i := range seg.Args {
			out.args[i] = fixedPointToPoint(seg.Args[i])
		}
		g.segments = append(g.segments, out)
	}
	return g, true, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// fixedPointToPoint converts a fixed.Point26_6 to a glyph.Point.
func fixedPointToPoint(p fixed.Point26_6) glyph.Point {
	return glyph.Pt(fixedToFloat64(p.X), fixedToFloat64(p.Y))
}
