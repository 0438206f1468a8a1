package fontimport

import (
	"testing"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/markpos"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want glyph.Classification
	}{
		{'a', glyph.ClassBase},
		{'7', glyph.ClassBase},
		{'\u0301', glyph.ClassMark},
		{'\u0327', glyph.ClassMark},
		{'é', glyph.ClassLigature},
		{'Å', glyph.ClassLigature},
		{'^', glyph.ClassComponent},
		{'´', glyph.ClassComponent},
	}
	for _, tt := range tests {
		if got := classify(tt.r); got != tt.want {
			t.Errorf("classify(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCharacterName(t *testing.T) {
	if got := characterName('\u0301'); got != "COMBINING ACUTE ACCENT" {
		t.Errorf("characterName(U+0301) = %q", got)
	}
}

func TestBuildLigatureIndex(t *testing.T) {
	chars := map[rune]glyph.Character{}
	for _, r := range []rune{'e', 'a', '\u0301', '\u0300', 'é', 'à', 'ñ', 'Å'} {
		chars[r] = glyph.Character{Unicode: r}
	}
	idx := buildLigatureIndex(chars)

	want := markpos.LigatureIndex{
		{Base: 'e', Mark: '\u0301'}: 'é',
		{Base: 'a', Mark: '\u0300'}: 'à',
	}
	if len(idx) != len(want) {
		t.Errorf("index = %v, want %v", idx, want)
	}
	for k, v := range want {
		if idx[k] != v {
			t.Errorf("index[%q+%U] = %q, want %q", k.Base, k.Mark, idx[k], v)
		}
	}
}

func TestDefaultRunes(t *testing.T) {
	runes := defaultRunes()
	has := func(r rune) bool {
		for _, x := range runes {
			if x == r {
				return true
			}
		}
		return false
	}
	for _, r := range []rune{'A', '~', 'é', '\u0301'} {
		if !has(r) {
			t.Errorf("default repertoire lacks %U", r)
		}
	}
	if has(' ') {
		t.Error("default repertoire includes space")
	}
}
