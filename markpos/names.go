package markpos

import (
	"strings"

	"github.com/gogpu/glyph"
)

// NamePair is a base/mark pair written with character names, literal
// characters or, in class tables, group references.
type NamePair struct {
	Base, Mark string
}

// String returns the "base-mark" form.
func (p NamePair) String() string {
	return p.Base + "-" + p.Mark
}

// Names resolves character names and literal characters to the font's
// characters. Names win over literal characters when both exist.
type Names map[string]glyph.Character

// NewNames indexes chars by name and by literal character.
func NewNames(chars map[rune]glyph.Character) Names {
	n := make(Names, len(chars)*2)
	for r, c := range chars {
		n[string(r)] = c
	}
	for _, c := range chars {
		if c.Name != "" {
			n[c.Name] = c
		}
	}
	return n
}

// Lookup returns the character ref refers to.
func (n Names) Lookup(ref string) (glyph.Character, bool) {
	c, ok := n[ref]
	return c, ok
}

// ParsePairKey splits a "base-mark" key. Names may contain '-' (as in
// "HYPHEN-MINUS"), so every split point is tried and the first one whose
// sides both resolve in names, or are group references, wins.
func ParsePairKey(key string, names Names) (NamePair, bool) {
	known := func(s string) bool {
		if glyph.IsGroupRef(s) {
			return true
		}
		_, ok := names.Lookup(s)
		return ok
	}
	for i := strings.IndexByte(key, '-'); i >= 0; {
		base, mark := key[:i], key[i+1:]
		if base != "" && mark != "" && known(base) && known(mark) {
			return NamePair{Base: base, Mark: mark}, true
		}
		next := strings.IndexByte(key[i+1:], '-')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return NamePair{}, false
}
