package markpos

import (
	"testing"

	"github.com/gogpu/glyph"
)

func TestCompose(t *testing.T) {
	base := glyph.NewGlyphData(glyph.RectOutline(0, 200, 400, 500))
	mark := glyph.NewGlyphData(glyph.RectOutline(0, 0, 100, 100))

	lig := Compose(base, mark, glyph.Pt(150, 50))
	if n := len(lig.Paths()); n != 2 {
		t.Fatalf("paths = %d, want 2", n)
	}
	box, ok := lig.BoundingBox(0)
	if !ok {
		t.Fatal("composed glyph has no box")
	}
	if want := (glyph.BoundingBox{X: 0, Y: 50, Width: 400, Height: 650}); box != want {
		t.Errorf("box = %+v, want %+v", box, want)
	}

	if mb, _ := mark.BoundingBox(0); mb.X != 0 || mb.Y != 0 {
		t.Error("Compose moved the mark glyph")
	}
}

func TestCompose_NilSide(t *testing.T) {
	mark := glyph.NewGlyphData(glyph.RectOutline(0, 0, 10, 10))
	lig := Compose(nil, mark, glyph.Pt(5, 5))
	box, _ := lig.BoundingBox(0)
	if box.X != 5 || box.Y != 5 {
		t.Errorf("box = %+v, want origin (5, 5)", box)
	}
	if !Compose(nil, nil, glyph.Point{}).IsEmpty() {
		t.Error("composing nothing should be empty")
	}
}
