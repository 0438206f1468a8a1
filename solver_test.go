package glyph

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func verifyRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots %v, want %d roots %v", len(roots), roots, len(expected), expected)
	}
	for i := range roots {
		if !almostEqual(roots[i], expected[i], 1e-9) {
			t.Errorf("root[%d] = %v, want %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -4, []float64{2}},
		{"all zero", 0, 0, 0, []float64{0}},
		{"constant", 0, 0, 5, nil},
		{"negative leading", -1, 0, 4, []float64{-2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifyRoots(t, SolveQuadratic(tt.a, tt.b, tt.c), tt.want)
		})
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		// (t-0.25)(t-0.75)
		{"both inside", 1, -1, 0.1875, []float64{0.25, 0.75}},
		// (t-0.5)(t-2)
		{"one inside", 1, -2.5, 1, []float64{0.5}},
		// t(t-1): endpoints are excluded
		{"endpoints", 1, -1, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifyRoots(t, SolveQuadraticInUnitInterval(tt.a, tt.b, tt.c), tt.want)
		})
	}
}

func TestIsFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if isFinite(v) {
			t.Errorf("isFinite(%v) = true", v)
		}
	}
	if !isFinite(0) || !isFinite(-1e300) {
		t.Error("isFinite rejected a finite value")
	}
}
