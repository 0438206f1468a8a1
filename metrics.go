package glyph

// FontMetrics holds the font-wide values all geometry is expressed in.
// Coordinates are font design units with Y growing downward, so
// ToplineY is above (smaller than) BaselineY.
type FontMetrics struct {
	// UnitsPerEm is the design grid size, typically 1000 or 2048.
	UnitsPerEm int

	// BaselineY is the vertical position of the baseline.
	BaselineY float64

	// ToplineY is the x-height (or cap height) reference line.
	ToplineY float64

	// DefaultLSB and DefaultRSB are used for characters without their
	// own side bearings.
	DefaultLSB float64
	DefaultRSB float64
}

// DefaultMetrics returns metrics for a 1000 unit em with the baseline at
// 700 and the x-height line at 200.
func DefaultMetrics() FontMetrics {
	return FontMetrics{
		UnitsPerEm: 1000,
		BaselineY:  700,
		ToplineY:   200,
		DefaultLSB: 50,
		DefaultRSB: 50,
	}
}

// Classification is the role a character plays in positioning.
type Classification uint8

const (
	// ClassBase is a spacing character marks attach to.
	ClassBase Classification = iota

	// ClassMark is a combining mark.
	ClassMark

	// ClassLigature is a precomposed character drawn as one glyph.
	ClassLigature

	// ClassComponent is a spacing piece used to build other glyphs.
	ClassComponent
)

// String returns a string representation of the classification.
func (c Classification) String() string {
	switch c {
	case ClassBase:
		return "base"
	case ClassMark:
		return "mark"
	case ClassLigature:
		return "ligature"
	case ClassComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Character is the identity and spacing record of one glyph.
type Character struct {
	Unicode rune
	Name    string

	// LSB and RSB are optional; nil means "use the font default".
	LSB *float64
	RSB *float64

	Class Classification
}

// Bearing returns a pointer to v, for filling Character.LSB and RSB.
func Bearing(v float64) *float64 {
	return &v
}

// ResolveLSB returns the character's left side bearing or the font default.
func (c Character) ResolveLSB(m FontMetrics) float64 {
	if c.LSB != nil {
		return *c.LSB
	}
	return m.DefaultLSB
}

// ResolveRSB returns the character's right side bearing or the font default.
func (c Character) ResolveRSB(m FontMetrics) float64 {
	if c.RSB != nil {
		return *c.RSB
	}
	return m.DefaultRSB
}

// Label returns the character's name, or the character itself when the
// record carries no name.
func (c Character) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return string(c.Unicode)
}
