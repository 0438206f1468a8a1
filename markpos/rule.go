package markpos

import "github.com/gogpu/glyph"

// Rule says which anchor of the base meets which anchor of the mark.
// XOffset and YOffset nudge the base anchor. Ligature requests that
// pairs positioned by this rule have their precomposed ligature glyph
// regenerated.
type Rule struct {
	BaseAnchor Anchor
	MarkAnchor Anchor
	XOffset    float64
	YOffset    float64
	Ligature   bool
}

// DefaultRule attaches the mark's bottom center to the base's top center.
var DefaultRule = Rule{BaseAnchor: TopCenter, MarkAnchor: BottomCenter}

// GroupRule applies Rule to bases matching Bases and, if Marks is not
// empty, marks matching Marks. Both are names or group references.
type GroupRule struct {
	Bases string
	Marks string
	Rule  Rule
}

// RuleSet is the attachment rule table. Keys are character names or
// literal characters.
//
// Resolution order: an explicit rule for the pair, an explicit rule for
// the base, the first matching group rule, and finally DefaultRule.
type RuleSet struct {
	Pairs  map[NamePair]Rule
	Bases  map[string]Rule
	Groups []GroupRule
}

// Resolve returns the rule for the pair. It never fails.
func (rs RuleSet) Resolve(base, mark glyph.Character, ex *glyph.Expander) Rule {
	for _, bk := range keys(base) {
		for _, mk := range keys(mark) {
			if r, ok := rs.Pairs[NamePair{Base: bk, Mark: mk}]; ok {
				return r
			}
		}
	}
	for _, bk := range keys(base) {
		if r, ok := rs.Bases[bk]; ok {
			return r
		}
	}
	for _, g := range rs.Groups {
		if !ex.Matches(g.Bases, base) {
			continue
		}
		if g.Marks != "" && !ex.Matches(g.Marks, mark) {
			continue
		}
		return g.Rule
	}
	return DefaultRule
}

// keys lists the strings a character can be referred to by: its name,
// then the literal character.
func keys(c glyph.Character) []string {
	lit := string(c.Unicode)
	if c.Name == "" || c.Name == lit {
		return []string{lit}
	}
	return []string{c.Name, lit}
}

// Anchors returns the nudged base anchor and the mark anchor for the
// given boxes.
func (r Rule) Anchors(baseBox, markBox glyph.BoundingBox) (base, mark glyph.Point) {
	base = r.BaseAnchor.Coord(baseBox).Add(glyph.Pt(r.XOffset, r.YOffset))
	mark = r.MarkAnchor.Coord(markBox)
	return base, mark
}

// AnchorDelta is the anchor-to-anchor vector established by placing the
// mark at offset: (offset + markAnchor) - baseAnchor. It does not depend
// on the glyphs' shapes and is what the cascade reuses for siblings.
func AnchorDelta(offset, baseAnchor, markAnchor glyph.Point) glyph.Point {
	return offset.Add(markAnchor).Sub(baseAnchor)
}

// OffsetFromDelta re-derives the mark offset that reproduces delta for a
// pair with the given anchors: (delta + baseAnchor) - markAnchor.
func OffsetFromDelta(delta, baseAnchor, markAnchor glyph.Point) glyph.Point {
	return delta.Add(baseAnchor).Sub(markAnchor)
}
