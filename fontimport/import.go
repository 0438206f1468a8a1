// Package fontimport converts binary font files into the path, character
// and metrics records the glyph engine works on.
//
// Two parsing backends are available: golang.org/x/image/font/sfnt
// ([BackendXImage], the default) and github.com/go-text/typesetting
// ([BackendGoText]). Both produce identical record shapes:
//   - one [glyph.OutlinePath] per glyph, contours as cubic segments
//   - Y growing downward with the baseline at 0
//   - side bearings measured from the outline and the advance width
//
//	f, err := fontimport.Import(data, fontimport.WithBackend(fontimport.BackendGoText))
package fontimport

import (
	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/markpos"
)

// Font is the imported data.
type Font struct {
	Metrics    glyph.FontMetrics
	Characters map[rune]glyph.Character
	Glyphs     map[rune]*glyph.GlyphData
	Ligatures  markpos.LigatureIndex

	// Skipped lists glyphs present in the font that could not be decoded.
	Skipped []*GlyphError
}

// backend decodes individual glyphs.
type backend interface {
	unitsPerEm() int
	glyph(r rune) (rawGlyph, bool, error)
}

// Import parses font data and extracts the requested characters.
// Characters missing from the font are left out; characters whose glyph
// cannot be decoded are listed in Font.Skipped.
func Import(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	runes := o.runes
	if runes == nil {
		runes = defaultRunes()
	}

	b, err := newBackend(o.backend, data)
	if err != nil {
		return nil, err
	}
	log := glyph.Logger()

	f := &Font{
		Characters: make(map[rune]glyph.Character, len(runes)),
		Glyphs:     make(map[rune]*glyph.GlyphData, len(runes)),
	}
	f.Metrics = metrics(b, o)

	for _, r := range runes {
		raw, found, err := b.glyph(r)
		if err != nil {
			log.Warn("fontimport: skipping glyph", "rune", string(r), "err", err)
			f.Skipped = append(f.Skipped, &GlyphError{Rune: r, Err: err})
			continue
		}
		if !found {
			log.Debug("fontimport: glyph not in font", "rune", string(r))
			continue
		}

		g := toGlyphData(raw.segments)
		c := glyph.Character{
			Unicode: r,
			Name:    characterName(r),
			Class:   classify(r),
		}
		if box, ok := g.BoundingBox(0); ok {
			c.LSB = glyph.Bearing(box.X)
			c.RSB = glyph.Bearing(raw.advance - box.MaxX())
		}
		f.Characters[r] = c
		f.Glyphs[r] = g
	}
	f.Ligatures = buildLigatureIndex(f.Characters)

	log.Info("fontimport: imported font", "backend", o.backend.String(),
		"unitsPerEm", f.Metrics.UnitsPerEm, "glyphs", len(f.Glyphs),
		"ligatures", len(f.Ligatures), "skipped", len(f.Skipped))
	return f, nil
}

func newBackend(kind Backend, data []byte) (backend, error) {
	if kind == BackendGoText {
		return newGoTextBackend(data)
	}
	return newXImageBackend(data)
}

// metrics derives font metrics. The topline is the top of "x", falling
// back to "H" and then to half an em above the baseline.
func metrics(b backend, o options) glyph.FontMetrics {
	upem := b.unitsPerEm()
	m := glyph.FontMetrics{
		UnitsPerEm: upem,
		BaselineY:  0,
		ToplineY:   -float64(upem) / 2,
		DefaultLSB: float64(upem) / 20,
		DefaultRSB: float64(upem) / 20,
	}
	if o.defaultLSB != nil {
		m.DefaultLSB = *o.defaultLSB
	}
	if o.defaultRSB != nil {
		m.DefaultRSB = *o.defaultRSB
	}

	for _, r := range []rune{'x', 'H'} {
		raw, found, err := b.glyph(r)
		if err != nil || !found {
			continue
		}
		if box, ok := toGlyphData(raw.segments).BoundingBox(0); ok {
			m.ToplineY = box.Y
			break
		}
	}
	return m
}
