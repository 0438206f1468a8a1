package glyph

import "strings"

// GroupPrefix marks a reference to a named group, as in "@round".
const GroupPrefix = "@"

// Groups maps a group name (without prefix) to its members. Members are
// character names, literal characters, or references to other groups.
type Groups map[string][]string

// IsGroupRef reports whether ref names a group rather than a character.
func IsGroupRef(ref string) bool {
	return len(ref) > len(GroupPrefix) && strings.HasPrefix(ref, GroupPrefix)
}

// Expander resolves names and group references to character names.
// Results are memoized, so an Expander is meant to live for one solver
// or cascade call over an unchanging Groups table. It is not safe for
// concurrent use.
type Expander struct {
	groups Groups
	lists  map[string][]string
	sets   map[string]map[string]struct{}
}

// NewExpander creates an expander over groups.
func NewExpander(groups Groups) *Expander {
	return &Expander{
		groups: groups,
		lists:  make(map[string][]string),
		sets:   make(map[string]map[string]struct{}),
	}
}

// Expand returns the character names ref stands for. A plain name expands
// to itself; a group reference expands recursively, in member order and
// without duplicates. Unknown groups and reference cycles contribute
// nothing.
func (e *Expander) Expand(ref string) []string {
	if !IsGroupRef(ref) {
		return []string{ref}
	}
	if list, ok := e.lists[ref]; ok {
		return list
	}

	var list []string
	seen := make(map[string]struct{})
	e.collect(ref, map[string]bool{}, seen, &list)

	e.lists[ref] = list
	e.sets[ref] = seen
	return list
}

func (e *Expander) collect(ref string, visiting map[string]bool, seen map[string]struct{}, out *[]string) {
	name := strings.TrimPrefix(ref, GroupPrefix)
	if visiting[name] {
		return
	}
	visiting[name] = true
	defer delete(visiting, name)

	for _, m := range e.groups[name] {
		if IsGroupRef(m) {
			e.collect(m, visiting, seen, out)
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		*out = append(*out, m)
	}
}

// Contains reports whether name is ref itself or a member of the group
// ref refers to.
func (e *Expander) Contains(ref, name string) bool {
	if !IsGroupRef(ref) {
		return ref == name
	}
	if _, ok := e.sets[ref]; !ok {
		e.Expand(ref)
	}
	_, ok := e.sets[ref][name]
	return ok
}

// ContainsAny reports whether any entry of refs contains name.
func (e *Expander) ContainsAny(refs []string, name string) bool {
	for _, ref := range refs {
		if e.Contains(ref, name) {
			return true
		}
	}
	return false
}

// Matches reports whether ref refers to the character, by name or by the
// literal character.
func (e *Expander) Matches(ref string, c Character) bool {
	if c.Name != "" && e.Contains(ref, c.Name) {
		return true
	}
	return e.Contains(ref, string(c.Unicode))
}
