package fontimport

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyph"
)

var backends = []Backend{BackendXImage, BackendGoText}

func TestImport_GoRegular(t *testing.T) {
	runes := []rune{'o', 'H', 'x', 'A', 'V', ' ', '一'}

	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			f, err := Import(goregular.TTF, WithBackend(b), WithRunes(runes))
			if err != nil {
				t.Fatalf("Import: %v", err)
			}

			if f.Metrics.UnitsPerEm != 2048 {
				t.Errorf("UnitsPerEm = %d, want 2048", f.Metrics.UnitsPerEm)
			}
			if f.Metrics.ToplineY >= 0 || f.Metrics.ToplineY <= -2048 {
				t.Errorf("ToplineY = %v, want above the baseline within one em", f.Metrics.ToplineY)
			}
			if f.Metrics.DefaultLSB != 2048.0/20 {
				t.Errorf("DefaultLSB = %v, want %v", f.Metrics.DefaultLSB, 2048.0/20)
			}

			if _, ok := f.Characters['一']; ok {
				t.Error("character missing from the font was imported")
			}
			if len(f.Skipped) != 0 {
				t.Errorf("Skipped = %v", f.Skipped)
			}

			o := f.Glyphs['o']
			if o == nil || len(o.Paths()) != 1 {
				t.Fatalf("glyph o = %v, want one outline path", o)
			}
			outline, ok := o.Paths()[0].(glyph.OutlinePath)
			if !ok {
				t.Fatalf("o path is %T, want glyph.OutlinePath", o.Paths()[0])
			}
			if len(outline.Contours) != 2 {
				t.Errorf("o contours = %d, want 2", len(outline.Contours))
			}

			box, ok := o.BoundingBox(0)
			if !ok {
				t.Fatal("o has no bounding box")
			}
			if box.Y >= 0 || box.MaxY() < 0 {
				t.Errorf("o box = %+v, want it to sit on the baseline with Y down", box)
			}
			if !outline.Contains(glyph.Pt(box.X+5, box.Y+box.Height/2)) {
				t.Error("point on the left bowl of o is not filled")
			}
			if outline.Contains(glyph.Pt(box.X+box.Width/2, box.Y+box.Height/2)) {
				t.Error("point in the counter of o is filled")
			}

			c := f.Characters['H']
			if c.Name != "LATIN CAPITAL LETTER H" || c.Class != glyph.ClassBase {
				t.Errorf("H = %+v", c)
			}
			if c.LSB == nil || c.RSB == nil || *c.LSB <= 0 || *c.RSB <= 0 {
				t.Errorf("H bearings = %v, %v, want positive", c.LSB, c.RSB)
			}

			space := f.Characters[' ']
			if space.LSB != nil || !f.Glyphs[' '].IsEmpty() {
				t.Errorf("space = %+v, want no ink and no bearings", space)
			}
		})
	}
}

func TestImport_BackendsAgree(t *testing.T) {
	runes := []rune("AVWTo.,gj")
	x, err := Import(goregular.TTF, WithBackend(BackendXImage), WithRunes(runes))
	if err != nil {
		t.Fatal(err)
	}
	g, err := Import(goregular.TTF, WithBackend(BackendGoText), WithRunes(runes))
	if err != nil {
		t.Fatal(err)
	}

	const tol = 0.5
	if math.Abs(x.Metrics.ToplineY-g.Metrics.ToplineY) > tol {
		t.Errorf("ToplineY: ximage %v, gotext %v", x.Metrics.ToplineY, g.Metrics.ToplineY)
	}
	for _, r := range runes {
		bx, okX := x.Glyphs[r].BoundingBox(0)
		bg, okG := g.Glyphs[r].BoundingBox(0)
		if okX != okG {
			t.Errorf("%q: ok ximage %v, gotext %v", r, okX, okG)
			continue
		}
		if math.Abs(bx.X-bg.X) > tol || math.Abs(bx.Y-bg.Y) > tol ||
			math.Abs(bx.Width-bg.Width) > tol || math.Abs(bx.Height-bg.Height) > tol {
			t.Errorf("%q: box ximage %+v, gotext %+v", r, bx, bg)
		}
		if math.Abs(*x.Characters[r].RSB-*g.Characters[r].RSB) > tol {
			t.Errorf("%q: RSB ximage %v, gotext %v", r, *x.Characters[r].RSB, *g.Characters[r].RSB)
		}
	}
}

func TestImport_Options(t *testing.T) {
	f, err := Import(goregular.TTF, WithRunes([]rune{'a'}), WithDefaultBearings(7, 9))
	if err != nil {
		t.Fatal(err)
	}
	if f.Metrics.DefaultLSB != 7 || f.Metrics.DefaultRSB != 9 {
		t.Errorf("default bearings = %v, %v, want 7, 9", f.Metrics.DefaultLSB, f.Metrics.DefaultRSB)
	}
	if len(f.Characters) != 1 {
		t.Errorf("imported %d characters, want 1", len(f.Characters))
	}
}

func TestImport_Errors(t *testing.T) {
	if _, err := Import(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Import(nil) = %v, want ErrEmptyFontData", err)
	}
	for _, b := range backends {
		if _, err := Import([]byte("not a font"), WithBackend(b)); err == nil {
			t.Errorf("%v: Import(garbage) succeeded", b)
		}
	}
}

func TestGlyphError(t *testing.T) {
	err := error(&GlyphError{Rune: 'A', Err: ErrUnsupportedGlyph})
	if !errors.Is(err, ErrUnsupportedGlyph) {
		t.Error("GlyphError does not unwrap")
	}
	if got := err.Error(); got != "fontimport: glyph U+0041: fontimport: glyph has no outline" {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseBackend(t *testing.T) {
	for _, b := range backends {
		got, ok := ParseBackend(b.String())
		if !ok || got != b {
			t.Errorf("ParseBackend(%q) = %v, %v", b.String(), got, ok)
		}
	}
	if _, ok := ParseBackend("freetype"); ok {
		t.Error("ParseBackend accepted an unknown backend")
	}
}
