// Package markpos propagates mark attachment offsets across classes of
// equivalent base/mark pairs.
//
// # Anchors
//
// An attachment [Rule] names one of eight anchors on the base box and one
// on the mark box. Placing a mark at a manual offset establishes an
// anchor delta:
//
//	delta = (offset + markAnchor) - baseAnchor
//
// # Cascade
//
// [Cascade] runs in two phases. First the sibling set is resolved from
// the mark and base [Classes] (pure set expansion honoring exceptions,
// allow-lists and excepted pairs). Then every sibling pair is mapped
// through the delta with its own anchors:
//
//	offset = (delta + siblingBaseAnchor) - siblingMarkAnchor
//
// so each sibling reproduces the same visual relationship with its own
// geometry. Manual offsets always win over cascaded ones.
//
// # Names
//
// Rules and classes refer to characters by name, by literal character or
// through group references, matched the same way as kerning rules. Pair
// keys written as "base-mark" strings are split with [ParsePairKey].
package markpos
