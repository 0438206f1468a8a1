package kern

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/glyph"
)

// TargetKind selects how a pair's target gap is derived.
type TargetKind uint8

const (
	// TargetSideBearings is the default: the left glyph's RSB plus the
	// right glyph's LSB.
	TargetSideBearings TargetKind = iota

	// TargetFixed is an explicit gap in font units.
	TargetFixed

	// TargetTouch kerns until the x-height zones touch (gap 0). It is
	// written as the token "0".
	TargetTouch

	// TargetLSB uses the right glyph's left side bearing. Token "lsb".
	TargetLSB

	// TargetRSB uses the left glyph's right side bearing. Token "rsb".
	TargetRSB
)

// Target is a parsed recommended-kerning target.
type Target struct {
	Kind  TargetKind
	Value float64
}

// ParseTarget parses a rule target token: a number, "lsb" or "rsb".
// The bool is false for anything else.
func ParseTarget(token string) (Target, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	switch token {
	case "lsb":
		return Target{Kind: TargetLSB}, true
	case "rsb":
		return Target{Kind: TargetRSB}, true
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Target{}, false
	}
	if v == 0 {
		return Target{Kind: TargetTouch}, true
	}
	return Target{Kind: TargetFixed, Value: v}, true
}

// Rule is a recommended-kerning entry. Left and Right are character
// names, literal characters or group references ("@round"); Target is
// the raw target token.
type Rule struct {
	Left   string
	Right  string
	Target string
}

// resolveTarget returns the gap the pair must keep in the x-height zone.
// The first rule matching both sides wins. Invalid target tokens fall
// back to the side bearing sum.
func resolveTarget(left, right glyph.Character, m glyph.FontMetrics, rules []Rule, ex *glyph.Expander) float64 {
	for _, r := range rules {
		if !ex.Matches(r.Left, left) || !ex.Matches(r.Right, right) {
			continue
		}
		t, ok := ParseTarget(r.Target)
		if !ok {
			glyph.Logger().Debug("kern: invalid rule target, using side bearings",
				"left", left.Label(), "right", right.Label(), "target", r.Target)
			break
		}
		switch t.Kind {
		case TargetTouch:
			return 0
		case TargetFixed:
			return t.Value
		case TargetLSB:
			return right.ResolveLSB(m)
		case TargetRSB:
			return left.ResolveRSB(m)
		}
	}
	return defaultTarget(left, right, m)
}

// defaultTarget is the side bearing sum with negative bearings replaced
// by the font defaults.
func defaultTarget(left, right glyph.Character, m glyph.FontMetrics) float64 {
	rsb := left.ResolveRSB(m)
	if rsb < 0 {
		rsb = m.DefaultRSB
	}
	lsb := right.ResolveLSB(m)
	if lsb < 0 {
		lsb = m.DefaultLSB
	}
	return rsb + lsb
}
