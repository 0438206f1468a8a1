package fontimport

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontimport package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontimport: empty font data")

	// ErrUnsupportedGlyph is reported for glyphs stored as bitmaps or SVG
	// rather than outlines.
	ErrUnsupportedGlyph = errors.New("fontimport: glyph has no outline")
)

// GlyphError records a glyph that could not be imported.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("fontimport: glyph %U: %v", e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
