package glyph

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(4, 2)},
		{"Sub", p.Sub(q), Pt(2, 6)},
		{"Mul", p.Mul(2), Pt(6, 8)},
		{"Perp", p.Perp(), Pt(-4, 3)},
		{"Lerp", p.Lerp(q, 0.5), Pt(2, 1)},
		{"Midpoint", p.Midpoint(q), Pt(2, 1)},
		{"Normalize", p.Normalize(), Pt(0.6, 0.8)},
		{"Normalize zero", Pt(1e-9, 0).Normalize(), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !pointsEqual(tt.got, tt.want, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPoint_Scalars(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot() = %v, want -5", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross() = %v, want -10", got)
	}
	if got := Pt(0, 0).Distance(Pt(6, 8)); got != 10 {
		t.Errorf("Distance() = %v, want 10", got)
	}
}

func TestPoint_IsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported non-finite")
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(-1)).IsFinite() {
		t.Error("non-finite point reported finite")
	}
}
