package fontimport

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/markpos"
)

// defaultRunes is the repertoire imported when no runes are requested:
// printable ASCII, the Latin-1 letters and the combining diacritics.
func defaultRunes() []rune {
	var runes []rune
	for r := rune(0x21); r <= 0x7E; r++ {
		runes = append(runes, r)
	}
	for r := rune(0xC0); r <= 0xFF; r++ {
		runes = append(runes, r)
	}
	for r := rune(0x300); r <= 0x36F; r++ {
		runes = append(runes, r)
	}
	return runes
}

// characterName returns the Unicode character name, e.g. "LATIN SMALL
// LETTER A".
func characterName(r rune) string {
	return runenames.Name(r)
}

// classify derives the positioning role of a character from its Unicode
// properties.
func classify(r rune) glyph.Classification {
	switch {
	case unicode.In(r, unicode.Mn, unicode.Me):
		return glyph.ClassMark
	case len(decompose(r)) > 1:
		return glyph.ClassLigature
	case unicode.Is(unicode.Sk, r):
		return glyph.ClassComponent
	default:
		return glyph.ClassBase
	}
}

// decompose returns the canonical decomposition (NFD) of r.
func decompose(r rune) []rune {
	return []rune(norm.NFD.String(string(r)))
}

// buildLigatureIndex finds every character that canonically decomposes
// into exactly one base and one non-spacing mark, both present in chars.
func buildLigatureIndex(chars map[rune]glyph.Character) markpos.LigatureIndex {
	idx := make(markpos.LigatureIndex)
	for r := range chars {
		d := decompose(r)
		if len(d) != 2 || !unicode.Is(unicode.Mn, d[1]) {
			continue
		}
		if _, ok := chars[d[0]]; !ok {
			continue
		}
		if _, ok := chars[d[1]]; !ok {
			continue
		}
		idx[markpos.Pair{Base: d[0], Mark: d[1]}] = r
	}
	return idx
}
