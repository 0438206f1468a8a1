package glyph

import "testing"

func TestComputeZoneBoxes(t *testing.T) {
	const (
		baseline = 700.0
		topline  = 200.0
	)

	tests := []struct {
		name          string
		glyph         *GlyphData
		thickness     float64
		wantAscender  *Rect
		wantXHeight   *Rect
		wantDescender *Rect
	}{
		{
			name:          "x-height only",
			glyph:         NewGlyphData(LinePath{Points: []Point{Pt(0, 300), Pt(100, 600)}}),
			wantXHeight:   &Rect{Min: Pt(0, 300), Max: Pt(100, 600)},
			wantAscender:  nil,
			wantDescender: nil,
		},
		{
			name:          "baseline point in two zones",
			glyph:         NewGlyphData(LinePath{Points: []Point{Pt(0, 300), Pt(100, 700)}}),
			wantXHeight:   &Rect{Min: Pt(0, 300), Max: Pt(100, 700)},
			wantDescender: &Rect{Min: Pt(100, 700), Max: Pt(100, 700)},
		},
		{
			name:          "outline spanning all bands",
			glyph:         NewGlyphData(RectOutline(0, 100, 50, 700)),
			wantAscender:  &Rect{Min: Pt(0, 100), Max: Pt(50, 100)},
			wantXHeight:   nil,
			wantDescender: &Rect{Min: Pt(0, 800), Max: Pt(50, 800)},
		},
		{
			name:         "tolerance widens boundaries",
			glyph:        NewGlyphData(LinePath{Points: []Point{Pt(0, 195), Pt(10, 400)}}),
			thickness:    20,
			wantAscender: &Rect{Min: Pt(-10, 185), Max: Pt(10, 205)},
			wantXHeight:  &Rect{Min: Pt(-10, 185), Max: Pt(20, 410)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, ok := ComputeZoneBoxes(tt.glyph, baseline, topline, tt.thickness)
			if !ok {
				t.Fatal("ComputeZoneBoxes not ok")
			}
			checkZone(t, "ascender", z.Ascender, tt.wantAscender)
			checkZone(t, "x-height", z.XHeight, tt.wantXHeight)
			checkZone(t, "descender", z.Descender, tt.wantDescender)
		})
	}
}

func checkZone(t *testing.T, name string, got, want *Rect) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want nil", name, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %v", name, *want)
	case want != nil && !rectsEqual(*got, *want, 1e-9):
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func TestComputeZoneBoxes_Full(t *testing.T) {
	g := NewGlyphData(LinePath{Points: []Point{Pt(0, 0), Pt(100, 500)}})
	z, ok := ComputeZoneBoxes(g, 700, 200, 10)
	if !ok {
		t.Fatal("not ok")
	}
	box, _ := g.BoundingBox(10)
	if z.Full != box.Rect() {
		t.Errorf("Full = %v, want %v", z.Full, box.Rect())
	}
}

func TestComputeZoneBoxes_Empty(t *testing.T) {
	if _, ok := ComputeZoneBoxes(NewGlyphData(), 700, 200, 0); ok {
		t.Error("empty glyph should have no zones")
	}
	if _, ok := ComputeZoneBoxes(nil, 700, 200, 0); ok {
		t.Error("nil glyph should have no zones")
	}
}

func TestZoneBoxes_Translate(t *testing.T) {
	g := NewGlyphData(LinePath{Points: []Point{Pt(0, 300), Pt(100, 700)}})
	z, _ := ComputeZoneBoxes(g, 700, 200, 0)
	moved := z.Translate(50)

	if moved.Ascender != nil {
		t.Error("nil zone became non-nil")
	}
	if moved.XHeight.Min.X != 50 || moved.Full.Max.X != 150 {
		t.Errorf("moved zones = %+v", moved)
	}
	if z.XHeight.Min.X != 0 {
		t.Error("Translate modified the original")
	}
}
