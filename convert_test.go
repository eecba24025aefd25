package glyphsheet

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

// whiteSheet returns an all-white gray sheet sized for count glyphs.
func whiteSheet(layout Layout, count int) *image.Gray {
	size := layout.SheetSize(count)
	img := image.NewGray(image.Rect(0, 0, size.X, size.Y))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func fillCell(img *image.Gray, layout Layout, code int, ink func(dx, dy int) bool) {
	o := layout.CellOrigin(code)
	for dy := range CellSize {
		for dx := range CellSize {
			if ink(dx, dy) {
				img.SetGray(o.X+dx, o.Y+dy, color.Gray{Y: 0})
			}
		}
	}
}

func TestConvertScenarios(t *testing.T) {
	img := whiteSheet(ZX81Layout, 64)
	fillCell(img, ZX81Layout, 0, func(int, int) bool { return true })
	fillCell(img, ZX81Layout, 2, func(dx, _ int) bool { return dx == 0 })

	c, err := NewConverter(ZX81Layout, 64, WithInk(InkDarkerThan(128)))
	if err != nil {
		t.Fatal(err)
	}
	table, err := c.Convert(FromImage(img))
	if err != nil {
		t.Fatalf("Convert() = %v", err)
	}

	tests := []struct {
		name string
		code int
		want byte
	}{
		{"all black", 0, 255},
		{"all white", 1, 0},
		{"left column", 2, 128},
	}
	for _, tt := range tests {
		for line := range CellSize {
			if got := table.Row(tt.code, line); got != tt.want {
				t.Errorf("%s: Row(%d, %d) = %d, want %d", tt.name, tt.code, line, got, tt.want)
			}
		}
	}
}

func TestConvertMatchesLayoutFormula(t *testing.T) {
	layouts := []struct {
		name   string
		layout Layout
		count  int
	}{
		{"zx81", ZX81Layout, 64},
		{"zx81 ascii", ZX81ASCIILayout, 128},
		{"narrow", Layout{PitchX: 10, PitchY: 12, OriginX: 3, OriginY: 2, GlyphsPerRow: 4}, 16},
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for _, tc := range layouts {
		t.Run(tc.name, func(t *testing.T) {
			img := whiteSheet(tc.layout, tc.count)
			for i := range img.Pix {
				if rng.IntN(3) == 0 {
					img.Pix[i] = 0
				}
			}
			c, err := NewConverter(tc.layout, tc.count, WithInk(InkDarkerThan(128)))
			if err != nil {
				t.Fatal(err)
			}
			table, err := c.Convert(FromImage(img))
			if err != nil {
				t.Fatalf("Convert() = %v", err)
			}
			if table.Shift() != map[int]int{16: 4, 64: 6, 128: 7}[tc.count] {
				t.Errorf("Shift() = %d for %d glyphs", table.Shift(), tc.count)
			}

			data := table.Bytes(LineMajor)
			if len(data) != tc.count*8 {
				t.Fatalf("len(Bytes()) = %d, want %d", len(data), tc.count*8)
			}
			for code := range tc.count {
				x0 := tc.layout.OriginX + (code%tc.layout.GlyphsPerRow)*tc.layout.PitchX
				y0 := tc.layout.OriginY + (code/tc.layout.GlyphsPerRow)*tc.layout.PitchY
				for line := range 8 {
					want := 0
					for dx := range 8 {
						want <<= 1
						if img.GrayAt(x0+dx, y0+line).Y < 128 {
							want |= 1
						}
					}
					if got := data[line*tc.count+code]; int(got) != want {
						t.Fatalf("byte for (code %d, line %d) = %08b, want %08b", code, line, got, want)
					}
				}
			}
		})
	}
}

func TestConvertIdempotent(t *testing.T) {
	img := whiteSheet(ZX81ASCIILayout, 128)
	fillCell(img, ZX81ASCIILayout, 65, func(dx, dy int) bool { return (dx+dy)%2 == 0 })
	grid := FromImage(img)

	c, err := NewConverter(ZX81ASCIILayout, 128, WithInk(InkNotEqual(255)))
	if err != nil {
		t.Fatal(err)
	}
	a, err := c.Convert(grid)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Convert(grid)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("two conversions of the same sheet differ")
	}
	ha, _ := Header("zx81_ascii_font", a)
	hb, _ := Header("zx81_ascii_font", b)
	if string(ha) != string(hb) {
		t.Error("two headers of the same sheet differ")
	}
	if got := a.Row(65, 0); got != 0b10101010 {
		t.Errorf("Row(65, 0) = %08b, want 10101010", got)
	}
}

func TestConvertOutOfBounds(t *testing.T) {
	// One pixel short of the 128-glyph ASCII sheet.
	img := image.NewGray(image.Rect(0, 0, 144, 71))
	c, err := NewConverter(ZX81ASCIILayout, 128)
	if err != nil {
		t.Fatal(err)
	}
	table, err := c.Convert(FromImage(img))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Convert() = %v, want ErrOutOfBounds", err)
	}
	if table != nil {
		t.Error("Convert() returned a partial table alongside the error")
	}
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Convert() error %T does not wrap *OutOfBoundsError", err)
	}
	if oob.Width != 144 || oob.Height != 71 {
		t.Errorf("OutOfBoundsError sheet = %dx%d, want 144x71", oob.Width, oob.Height)
	}
}

func TestConvertPalettedRawValues(t *testing.T) {
	// Paletted sheets classify on the palette index, not the colour.
	pal := color.Palette{color.White, color.Black}
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), pal)
	img.SetColorIndex(7, 3, 1)

	c, err := NewConverter(Layout{PitchX: 8, PitchY: 8, GlyphsPerRow: 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	table, err := c.Convert(FromImage(img))
	if err != nil {
		t.Fatal(err)
	}
	want := Glyph{0, 0, 0, 1, 0, 0, 0, 0}
	if got := table.Glyph(0); got != want {
		t.Errorf("Glyph(0) = %v, want %v", got, want)
	}
}

func TestConvertHistogram(t *testing.T) {
	img := whiteSheet(ZX81Layout, 64)
	fillCell(img, ZX81Layout, 0, func(int, int) bool { return true })

	var h Histogram
	observed := 0
	c, err := NewConverter(ZX81Layout, 64,
		WithHistogram(&h),
		WithObserver(func(Sample) { observed++ }))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Convert(FromImage(img)); err != nil {
		t.Fatal(err)
	}

	if h.Total() != 64*64 || observed != 64*64 {
		t.Errorf("observed %d/%d samples, want %d", h.Total(), observed, 64*64)
	}
	bg, ok := h.Background()
	if !ok || bg != 255 {
		t.Errorf("Background() = %d, %v, want 255, true", bg, ok)
	}
	if got, want := h.String(), "{0: 64, 255: 4032}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewConverterRejectsBadInput(t *testing.T) {
	if _, err := NewConverter(ZX81Layout, 100); !errors.Is(err, ErrGlyphCount) {
		t.Errorf("NewConverter(100 glyphs) = %v, want ErrGlyphCount", err)
	}
	if _, err := NewConverter(Layout{}, 64); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("NewConverter(zero layout) = %v, want ErrInvalidLayout", err)
	}
}
