package preview

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/glyphsheet"
)

// patternTable returns a table with varied scan lines where glyph 0
// starts with a full line.
func patternTable(t *testing.T, count int) *glyphsheet.GlyphTable {
	t.Helper()
	glyphs := make([]glyphsheet.Glyph, count)
	for code := range glyphs {
		for line := range glyphsheet.CellSize {
			glyphs[code][line] = ^byte((code*glyphsheet.CellSize + line) * 37)
		}
	}
	table, err := glyphsheet.TableFromGlyphs(glyphs)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestRenderRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		layout glyphsheet.Layout
		count  int
	}{
		{glyphsheet.ZX81Layout, 64},
		{glyphsheet.ZX81ASCIILayout, 128},
	} {
		want := patternTable(t, tc.count)
		img, err := Render(want, tc.layout, Options{})
		if err != nil {
			t.Fatalf("Render() = %v", err)
		}
		c, err := glyphsheet.NewConverter(tc.layout, tc.count,
			glyphsheet.WithInk(glyphsheet.InkDarkerThan(128)))
		if err != nil {
			t.Fatal(err)
		}
		got, err := c.Convert(glyphsheet.FromImage(img))
		if err != nil {
			t.Fatalf("Convert(preview) = %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip of %d glyphs changed the table", tc.count)
		}
	}
}

func TestRenderScaleAndLabels(t *testing.T) {
	table := patternTable(t, 64)
	img, err := Render(table, glyphsheet.ZX81Layout, Options{Scale: 3, Labels: true})
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != labelWidth+128*3 || b.Dy() != 32*3 {
		t.Fatalf("Bounds() = %v, want %dx%d", b, labelWidth+128*3, 32*3)
	}

	// Code 0 line 0 is 0xff in the pattern: its scaled pixels are ink.
	for dy := range 3 {
		for dx := range 3 {
			if c := img.RGBAAt(labelWidth+dx, dy); c != (color.RGBA{A: 255}) {
				t.Fatalf("pixel (%d, %d) = %v, want black", labelWidth+dx, dy, c)
			}
		}
	}

	inked := false
	for y := range b.Dy() {
		for x := range labelWidth {
			if img.RGBAAt(x, y) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				inked = true
			}
		}
	}
	if !inked {
		t.Error("label margin is empty")
	}
}

func TestSave(t *testing.T) {
	table := patternTable(t, 64)
	for _, name := range []string{"preview.png", "preview.bmp"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(path, table, glyphsheet.ZX81Layout, Options{}); err != nil {
			t.Fatalf("Save(%s) = %v", name, err)
		}
		grid, err := glyphsheet.LoadSheet(path)
		if err != nil {
			t.Fatalf("LoadSheet(%s) = %v", name, err)
		}
		if grid.Width() != 128 || grid.Height() != 32 {
			t.Errorf("%s is %dx%d, want 128x32", name, grid.Width(), grid.Height())
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	table := patternTable(t, 128)
	var buf bytes.Buffer
	if err := Encode(&buf, "bmp", table, glyphsheet.ZX81ASCIILayout, Options{}); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	grid, err := glyphsheet.ParseSheet("preview.bmp", buf.Bytes())
	if err != nil {
		t.Fatalf("ParseSheet() = %v", err)
	}
	conv, err := glyphsheet.NewConverter(glyphsheet.ZX81ASCIILayout, 128, glyphsheet.WithInk(glyphsheet.InkDarkerThan(128)))
	if err != nil {
		t.Fatal(err)
	}
	got, err := conv.Convert(grid)
	if err != nil {
		t.Fatalf("Convert() = %v", err)
	}
	if !got.Equal(table) {
		t.Error("table decoded from encoded preview differs from the original")
	}

	if err := Encode(&buf, "gif", table, glyphsheet.ZX81Layout, Options{}); err == nil {
		t.Error("Encode(gif) should fail")
	}
}
