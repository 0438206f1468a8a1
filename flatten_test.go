package glyph

import "testing"

func TestFlattenQuad(t *testing.T) {
	pts := FlattenQuad(Pt(0, 0), Pt(50, 100), Pt(100, 0))
	if len(pts) != QuadSubdivisions+1 {
		t.Fatalf("len = %d, want %d", len(pts), QuadSubdivisions+1)
	}
	if !pointsEqual(pts[QuadSubdivisions/2], Pt(50, 50), epsilon) {
		t.Errorf("midpoint sample = %v, want (50, 50)", pts[QuadSubdivisions/2])
	}
}

func TestFlattenPen(t *testing.T) {
	t.Run("short input unchanged", func(t *testing.T) {
		in := []Point{Pt(0, 0), Pt(10, 10)}
		out := FlattenPen(in)
		if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
			t.Errorf("FlattenPen(%v) = %v", in, out)
		}
		if got := FlattenPen(nil); len(got) != 0 {
			t.Errorf("FlattenPen(nil) = %v, want empty", got)
		}
	})

	t.Run("three points", func(t *testing.T) {
		in := []Point{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
		out := FlattenPen(in)
		if len(out) != PenSubdivisions+1 {
			t.Fatalf("len = %d, want %d", len(out), PenSubdivisions+1)
		}
		if out[0] != in[0] || !pointsEqual(out[len(out)-1], in[2], epsilon) {
			t.Errorf("endpoints = %v, %v, want %v, %v", out[0], out[len(out)-1], in[0], in[2])
		}
		// The interior point is a control point, so the stroke stays
		// below it.
		for _, p := range out {
			if p.Y > 50+epsilon {
				t.Errorf("sample %v exceeds the curve apex", p)
			}
		}
	})

	t.Run("four points pass through midpoint", func(t *testing.T) {
		in := []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
		out := FlattenPen(in)
		if len(out) != 2*PenSubdivisions+1 {
			t.Fatalf("len = %d, want %d", len(out), 2*PenSubdivisions+1)
		}
		mid := in[1].Midpoint(in[2])
		if !pointsEqual(out[PenSubdivisions], mid, epsilon) {
			t.Errorf("junction = %v, want %v", out[PenSubdivisions], mid)
		}
	})
}

func TestFlattenContour(t *testing.T) {
	square := RectOutline(0, 0, 10, 10).Contours[0]
	pts := FlattenContour(square, 8)
	// Straight edges contribute their endpoints only; the contour closes.
	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	if pts[0] != pts[4] {
		t.Errorf("contour not closed: %v != %v", pts[0], pts[4])
	}

	curved := Contour{
		{Point: Pt(0, 0), HandleOut: Pt(0, -20)},
		{Point: Pt(40, 0), HandleIn: Pt(0, -20)},
	}
	pts = FlattenContour(curved, 4)
	// One curved edge (4 samples) and one straight closing edge.
	if len(pts) != 6 {
		t.Fatalf("curved len = %d, want 6", len(pts))
	}
	if FlattenContour(nil, 4) != nil {
		t.Error("empty contour should flatten to nil")
	}
}

func TestFlattenPath(t *testing.T) {
	edge := Pt(3, 4)
	tests := []struct {
		name string
		path Path
		want int
	}{
		{"line", LinePath{Points: []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}}, 3},
		{"curve", CurvePath{Start: Pt(0, 0), Control: Pt(5, 5), End: Pt(10, 0)}, QuadSubdivisions + 1},
		{"pen", PenPath{Points: []Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)}}, PenSubdivisions + 1},
		{"calligraphy", CalligraphyPath{Points: []Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)}, Angle: 0.5}, PenSubdivisions + 1},
		{"dot", DotPath{Center: Pt(0, 0), Edge: &edge}, 4},
		{"outline", RectOutline(0, 0, 10, 10), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenPath(tt.path, 2, 4); len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}
