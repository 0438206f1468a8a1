package kern

import (
	"testing"

	"github.com/gogpu/glyph"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		token  string
		want   Target
		wantOK bool
	}{
		{"0", Target{Kind: TargetTouch}, true},
		{"0.0", Target{Kind: TargetTouch}, true},
		{"40", Target{Kind: TargetFixed, Value: 40}, true},
		{" -12.5 ", Target{Kind: TargetFixed, Value: -12.5}, true},
		{"lsb", Target{Kind: TargetLSB}, true},
		{"RSB", Target{Kind: TargetRSB}, true},
		{"", Target{}, false},
		{"wide", Target{}, false},
		{"NaN", Target{}, false},
		{"Inf", Target{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseTarget(tt.token)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseTarget(%q) = %+v, %v, want %+v, %v", tt.token, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveTarget(t *testing.T) {
	m := glyph.DefaultMetrics() // default bearings 50
	groups := glyph.Groups{"round": {"o", "LATIN SMALL LETTER C"}}

	o := glyph.Character{Unicode: 'o', LSB: glyph.Bearing(30), RSB: glyph.Bearing(20)}
	c := glyph.Character{Unicode: 'c', Name: "LATIN SMALL LETTER C"}
	v := glyph.Character{Unicode: 'v', LSB: glyph.Bearing(-10), RSB: glyph.Bearing(-5)}

	tests := []struct {
		name        string
		rules       []Rule
		left, right glyph.Character
		want        float64
	}{
		{"default sum", nil, o, o, 20 + 30},
		{"default uses font defaults", nil, c, c, 50 + 50},
		{"negative bearings replaced", nil, v, v, 50 + 50},
		{"touch", []Rule{{Left: "o", Right: "o", Target: "0"}}, o, o, 0},
		{"fixed", []Rule{{Left: "o", Right: "c", Target: "15"}}, o, c, 15},
		{"group by name", []Rule{{Left: "@round", Right: "@round", Target: "7"}}, c, o, 7},
		{"lsb", []Rule{{Left: "o", Right: "v", Target: "lsb"}}, o, v, -10},
		{"rsb", []Rule{{Left: "v", Right: "o", Target: "rsb"}}, v, o, -5},
		{"first match wins", []Rule{
			{Left: "o", Right: "o", Target: "3"},
			{Left: "o", Right: "o", Target: "4"},
		}, o, o, 3},
		{"invalid token falls back", []Rule{
			{Left: "o", Right: "o", Target: "tight"},
			{Left: "o", Right: "o", Target: "4"},
		}, o, o, 50},
		{"no match", []Rule{{Left: "x", Right: "o", Target: "0"}}, o, o, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveTarget(tt.left, tt.right, m, tt.rules, glyph.NewExpander(groups))
			if got != tt.want {
				t.Errorf("resolveTarget = %v, want %v", got, tt.want)
			}
		})
	}
}
