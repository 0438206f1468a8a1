// Package kern solves optically spaced kerning for glyph pairs.
//
// For each pair the solver looks for the most negative kern value in
// [-unitsPerEm/2, 0] such that
//   - the ascender and descender zones of the two glyphs do not collide,
//   - the x-height zones keep at least the target gap, or, when either
//     glyph has no x-height ink, the full boxes do not collide.
//
// Feasibility is monotone in the kern value, so a binary search finds
// the answer in O(log unitsPerEm) zone comparisons.
//
// Target gaps come from recommended-kerning [Rule] entries: a number,
// "0" to kern until the x-height zones touch, or "lsb"/"rsb" to reuse a
// side bearing. Pairs without a rule keep the sum of their side bearings.
//
// [SolveBatch] solves many pairs, optionally in parallel, and reports
// monotone progress:
//
//	m, err := kern.SolveBatch(ctx, pairs, src, kern.WithWorkers(0))
package kern
