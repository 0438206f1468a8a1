// Package glyph provides the geometry core of a font-authoring editor.
//
// # Overview
//
// glyph measures hand-drawn and imported glyph ink and classifies it into
// typographic zones. The kern and markpos sub-packages build on these
// measurements to solve pair spacing and to propagate mark attachment
// offsets.
//
// # Paths
//
// A glyph's ink is a list of [Path] values. Path is a closed sum type with
// one variant per drawing kind:
//   - [LinePath]: a straight polyline
//   - [CurvePath]: a single quadratic Bezier
//   - [PenPath]: a free-hand stroke smoothed through point midpoints
//   - [CalligraphyPath]: a free-hand stroke drawn with a fixed nib angle
//   - [DotPath]: a circle
//   - [OutlinePath]: closed cubic contours filled with the even-odd rule
//
// # Measuring
//
//	g := glyph.NewGlyphData(
//	    glyph.PenPath{Points: []glyph.Point{{X: 0, Y: 700}, {X: 40, Y: 200}, {X: 80, Y: 700}}},
//	)
//	box, ok := g.BoundingBox(20)           // memoized per thickness
//	zones, ok := glyph.ComputeZoneBoxes(g, 700, 200, 20)
//
// # Coordinate System
//
// All values are font design units:
//   - X increases right
//   - Y increases down, so the topline has a smaller Y than the baseline
//
// # Errors
//
// Nothing in this package fails. Missing ink is reported through ok
// results, and degenerate numeric input (negative thickness, NaN
// coordinates, zero-length vectors) degrades to a neutral result.
package glyph
