package markpos

import "github.com/gogpu/glyph"

// Class is a set of interchangeable marks (or bases): an offset set on
// one member is propagated to the others. Entries are character names,
// literal characters or group references.
//
// Exceptions and Applies filter by the counterpart: for a mark class the
// counterpart is the base, for a base class it is the mark. ExceptPairs
// lists individual base/mark pairs that never inherit an offset.
type Class struct {
	Name        string
	Members     []string
	Exceptions  []string
	Applies     []string
	ExceptPairs []NamePair
}

// Classes is the attachment class table.
type Classes struct {
	Marks []Class
	Bases []Class
}

// Siblings is the result of class expansion for one edited pair.
type Siblings struct {
	Bases []glyph.Character
	Marks []glyph.Character
}

func matchesAny(refs []string, c glyph.Character, ex *glyph.Expander) bool {
	for _, ref := range refs {
		if ex.Matches(ref, c) {
			return true
		}
	}
	return false
}

func (c Class) has(ch glyph.Character, ex *glyph.Expander) bool {
	return matchesAny(c.Members, ch, ex)
}

func (c Class) appliesTo(counterpart glyph.Character, ex *glyph.Expander) bool {
	if matchesAny(c.Exceptions, counterpart, ex) {
		return false
	}
	return len(c.Applies) == 0 || matchesAny(c.Applies, counterpart, ex)
}

func (c Class) exceptsPair(base, mark glyph.Character, ex *glyph.Expander) bool {
	for _, p := range c.ExceptPairs {
		if ex.Matches(p.Base, base) && ex.Matches(p.Mark, mark) {
			return true
		}
	}
	return false
}

// members returns the class members present in names, in class order.
func (c Class) members(names Names, ex *glyph.Expander) []glyph.Character {
	var out []glyph.Character
	for _, m := range c.Members {
		for _, ref := range ex.Expand(m) {
			if ch, ok := names.Lookup(ref); ok {
				out = append(out, ch)
			}
		}
	}
	return out
}

// Siblings returns the edited mark plus every member of a mark class it
// belongs to that applies to base, and symmetrically for the base.
// Members missing from names are left out, as are pairs excluded through
// ExceptPairs against the edited counterpart. Order is deterministic:
// edited character first, then class order.
func (cs Classes) Siblings(base, mark glyph.Character, names Names, ex *glyph.Expander) Siblings {
	marks := []glyph.Character{mark}
	seenMarks := map[rune]bool{mark.Unicode: true}
	for _, c := range cs.Marks {
		if !c.has(mark, ex) || !c.appliesTo(base, ex) {
			continue
		}
		for _, m := range c.members(names, ex) {
			if seenMarks[m.Unicode] || c.exceptsPair(base, m, ex) {
				continue
			}
			seenMarks[m.Unicode] = true
			marks = append(marks, m)
		}
	}

	bases := []glyph.Character{base}
	seenBases := map[rune]bool{base.Unicode: true}
	for _, c := range cs.Bases {
		if !c.has(base, ex) || !c.appliesTo(mark, ex) {
			continue
		}
		for _, b := range c.members(names, ex) {
			if seenBases[b.Unicode] || c.exceptsPair(b, mark, ex) {
				continue
			}
			seenBases[b.Unicode] = true
			bases = append(bases, b)
		}
	}

	return Siblings{Bases: bases, Marks: marks}
}

// SiblingPairs is the cross product of the sibling bases and marks,
// minus the edited pair itself and minus every pair a class excludes.
func (cs Classes) SiblingPairs(base, mark glyph.Character, names Names, ex *glyph.Expander) []Pair {
	sib := cs.Siblings(base, mark, names, ex)
	var pairs []Pair
	for _, sb := range sib.Bases {
		for _, sm := range sib.Marks {
			if sb.Unicode == base.Unicode && sm.Unicode == mark.Unicode {
				continue
			}
			if cs.allows(base, mark, sb, sm, ex) {
				pairs = append(pairs, Pair{Base: sb.Unicode, Mark: sm.Unicode})
			}
		}
	}
	return pairs
}

// allows checks a cross-product pair against the classes that made its
// members siblings: a substituted mark needs a shared mark class that
// applies to the sibling base, a substituted base needs a shared base
// class that applies to the sibling mark, and no involved class may list
// the pair in ExceptPairs.
func (cs Classes) allows(base, mark, sb, sm glyph.Character, ex *glyph.Expander) bool {
	if sm.Unicode != mark.Unicode {
		ok := false
		for _, c := range cs.Marks {
			if c.has(mark, ex) && c.has(sm, ex) && c.appliesTo(sb, ex) && !c.exceptsPair(sb, sm, ex) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if sb.Unicode != base.Unicode {
		ok := false
		for _, c := range cs.Bases {
			if c.has(base, ex) && c.has(sb, ex) && c.appliesTo(sm, ex) && !c.exceptsPair(sb, sm, ex) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	for _, c := range cs.Marks {
		if c.has(sm, ex) && c.exceptsPair(sb, sm, ex) {
			return false
		}
	}
	for _, c := range cs.Bases {
		if c.has(sb, ex) && c.exceptsPair(sb, sm, ex) {
			return false
		}
	}
	return true
}
