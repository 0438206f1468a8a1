package markpos

import "github.com/gogpu/glyph"

// LigatureIndex maps a base/mark pair to the precomposed character that
// draws both, e.g. {'e', U+0301} -> 'é'.
type LigatureIndex map[Pair]rune

// Compose builds a ligature glyph from the base ink and the mark ink
// shifted by offset. Inputs are not modified; a nil side contributes no
// ink.
func Compose(base, mark *glyph.GlyphData, offset glyph.Point) *glyph.GlyphData {
	paths := make([]glyph.Path, 0, len(base.Paths())+len(mark.Paths()))
	for _, p := range base.Paths() {
		paths = append(paths, p.Clone())
	}
	for _, p := range mark.Paths() {
		paths = append(paths, p.Translate(offset.X, offset.Y))
	}
	return glyph.NewGlyphData(paths...)
}
