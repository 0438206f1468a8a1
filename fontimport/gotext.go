package fontimport

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyph"
)

// gotextBackend decodes glyphs with github.com/go-text/typesetting.
//
// go-text reports outlines in font units with Y growing upward; they are
// flipped to the editor convention here. A *font.Face is not safe for
// concurrent use, which is fine because Import is single threaded.
type gotextBackend struct {
	face *font.Face
}

func newGoTextBackend(data []byte) (*gotextBackend, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontimport: failed to parse font: %w", err)
	}
	return &gotextBackend{face: face}, nil
}

func (b *gotextBackend) unitsPerEm() int {
	return int(b.face.Upem())
}

func (b *gotextBackend) glyph(r rune) (rawGlyph, bool, error) {
	gid, ok := b.face.NominalGlyph(r)
	if !ok {
		return rawGlyph{}, false, nil
	}

	g := rawGlyph{advance: float64(b.face.HorizontalAdvance(gid))}

	var outline font.GlyphOutline
	switch data := b.face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		outline = data
	case nil:
		// No glyph data at all, e.g. a space.
		return g, true, nil
	default:
		return rawGlyph{}, false, ErrUnsupportedGlyph
	}

	g.segments = make([]rawSegment, 0, len(outline.Segments))
	for _, seg := range outline.Segments {
		var out rawSegment
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			out.op = opMoveTo
		case opentype.SegmentOpLineTo:
			out.op = opLineTo
		case opentype.SegmentOpQuadTo:
			out.op = opQuadTo
		case opentype.SegmentOpCubeTo:
			out.op = opCubicTo
		default:
			continue
		}
		for i, a := range seg.Args {
			out.args[i] = glyph.Pt(float64(a.X), -float64(a.Y))
		}
		g.segments = append(g.segments, out)
	}
	return g, true, nil
}
