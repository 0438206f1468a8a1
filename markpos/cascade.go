package markpos

import "github.com/gogpu/glyph"

// Pair identifies a base/mark pair by unicode.
type Pair struct {
	Base, Mark rune
}

// Entry is a resolved mark offset. Manual entries were set by the user
// and are never overwritten by a cascade.
type Entry struct {
	Offset glyph.Point
	Manual bool
}

// Map is the mark positioning table.
type Map map[Pair]Entry

// Clone returns a shallow copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Font is the read-only snapshot the cascade works on.
type Font struct {
	Characters map[rune]glyph.Character
	Glyphs     map[rune]*glyph.GlyphData
	Groups     glyph.Groups
	Rules      RuleSet
	Classes    Classes
	Ligatures  LigatureIndex
}

// Edit is one manual offset change.
type Edit struct {
	Base, Mark rune
	Offset     glyph.Point
}

// Options configures a cascade.
type Options struct {
	// StrokeThickness is used to measure glyph bounding boxes.
	StrokeThickness float64
}

// Result is the outcome of a cascade.
type Result struct {
	// Offsets is a fresh map: the input snapshot plus the manual edit
	// plus every cascaded entry.
	Offsets Map

	// Updated lists the cascaded pairs in resolution order.
	Updated []Pair

	// Skipped lists sibling pairs left alone because they carry a
	// manual offset.
	Skipped []Pair

	// Ligatures holds regenerated ligature glyphs keyed by the
	// precomposed character.
	Ligatures map[rune]*glyph.GlyphData
}

// Cascade records edit as a manual offset and propagates the visual
// anchor relationship it establishes to every sibling pair.
//
// The anchor delta of the edited pair is computed once; each sibling's
// offset is re-derived from that delta and the sibling's own anchors, so
// running the same edit again yields an identical map. Sibling pairs
// with a manual entry in current are skipped. The cascade reads only
// from current and writes only to the returned map.
//
// Missing glyphs or characters never abort the cascade: affected pairs
// are skipped.
func Cascade(font Font, current Map, edit Edit, opts Options) Result {
	log := glyph.Logger()
	res := Result{
		Offsets:   current.Clone(),
		Ligatures: make(map[rune]*glyph.GlyphData),
	}

	editPair := Pair{Base: edit.Base, Mark: edit.Mark}
	res.Offsets[editPair] = Entry{Offset: edit.Offset, Manual: true}

	ex := glyph.NewExpander(font.Groups)
	names := NewNames(font.Characters)
	base := font.character(edit.Base)
	mark := font.character(edit.Mark)

	rule := font.Rules.Resolve(base, mark, ex)
	baseAnchor, markAnchor, ok := font.anchors(rule, edit.Base, edit.Mark, opts.StrokeThickness)
	if !ok {
		log.Debug("markpos: edited pair has no geometry, nothing to cascade",
			"base", base.Label(), "mark", mark.Label())
		return res
	}
	delta := AnchorDelta(edit.Offset, baseAnchor, markAnchor)
	font.regenerate(&res, editPair, rule, edit.Offset)

	for _, p := range font.Classes.SiblingPairs(base, mark, names, ex) {
		if current[p].Manual {
			res.Skipped = append(res.Skipped, p)
			log.Debug("markpos: keeping manual offset", "base", string(p.Base), "mark", string(p.Mark))
			continue
		}

		r := font.Rules.Resolve(font.character(p.Base), font.character(p.Mark), ex)
		ba, ma, ok := font.anchors(r, p.Base, p.Mark, opts.StrokeThickness)
		if !ok {
			continue
		}
		offset := OffsetFromDelta(delta, ba, ma)
		res.Offsets[p] = Entry{Offset: offset}
		res.Updated = append(res.Updated, p)
		font.regenerate(&res, p, r, offset)
	}

	log.Debug("markpos: cascade done", "base", base.Label(), "mark", mark.Label(),
		"updated", len(res.Updated), "skipped", len(res.Skipped))
	return res
}

// character returns the record for r, or a bare unnamed record when the
// font has none.
func (f Font) character(r rune) glyph.Character {
	if c, ok := f.Characters[r]; ok {
		return c
	}
	return glyph.Character{Unicode: r}
}

// anchors measures both glyphs and returns the rule's anchor points.
func (f Font) anchors(rule Rule, base, mark rune, thickness float64) (glyph.Point, glyph.Point, bool) {
	baseBox, ok := f.Glyphs[base].BoundingBox(thickness)
	if !ok {
		return glyph.Point{}, glyph.Point{}, false
	}
	markBox, ok := f.Glyphs[mark].BoundingBox(thickness)
	if !ok {
		return glyph.Point{}, glyph.Point{}, false
	}
	ba, ma := rule.Anchors(baseBox, markBox)
	return ba, ma, true
}

// regenerate composes the pair's ligature glyph when the rule asks for it
// and the font has one.
func (f Font) regenerate(res *Result, p Pair, rule Rule, offset glyph.Point) {
	if !rule.Ligature {
		return
	}
	lig, ok := f.Ligatures[p]
	if !ok {
		return
	}
	res.Ligatures[lig] = Compose(f.Glyphs[p.Base], f.Glyphs[p.Mark], offset)
}
