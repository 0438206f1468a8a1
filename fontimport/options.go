package fontimport

// Backend selects the font parsing library.
type Backend uint8

const (
	// BackendXImage parses with golang.org/x/image/font/sfnt (default).
	BackendXImage Backend = iota

	// BackendGoText parses with github.com/go-text/typesetting.
	BackendGoText
)

// String returns a string representation of the backend.
func (b Backend) String() string {
	switch b {
	case BackendXImage:
		return "ximage"
	case BackendGoText:
		return "gotext"
	default:
		return "unknown"
	}
}

// ParseBackend parses "ximage" or "gotext".
func ParseBackend(s string) (Backend, bool) {
	switch s {
	case "ximage":
		return BackendXImage, true
	case "gotext":
		return BackendGoText, true
	}
	return 0, false
}

// Option configures Import.
type Option func(*options)

type options struct {
	backend    Backend
	runes      []rune
	defaultLSB *float64
	defaultRSB *float64
}

// WithBackend selects the parsing backend.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithRunes restricts the import to the given characters.
func WithRunes(runes []rune) Option {
	return func(o *options) {
		o.runes = runes
	}
}

// WithDefaultBearings sets the font-wide default side bearings. Without
// it both default to unitsPerEm/20.
func WithDefaultBearings(lsb, rsb float64) Option {
	return func(o *options) {
		o.defaultLSB = &lsb
		o.defaultRSB = &rsb
	}
}
