package glyphsheet

import (
	"image"
	"image/color"
)

// Sample is a single pixel read from a glyph sheet.
type Sample struct {
	// Raw is the pixel value as image tools report it: the palette index
	// for paletted images and the luminance for everything else.
	Raw uint8

	// Gray is the luminance of the pixel.
	Gray uint8
}

// PixelGrid is an immutable grid of samples with its origin at the top-left.
type PixelGrid struct {
	width  int
	height int
	raw    []uint8
	gray   []uint8
}

// FromImage creates a pixel grid from an image. The image's bounds are
// translated so that the grid always starts at (0, 0).
func FromImage(img image.Image) *PixelGrid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	g := &PixelGrid{
		width:  width,
		height: height,
		raw:    make([]uint8, width*height),
		gray:   make([]uint8, width*height),
	}

	paletted, isPaletted := img.(image.PalettedImage)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px, py := bounds.Min.X+x, bounds.Min.Y+y
			i := y*width + x
			lum := color.GrayModel.Convert(img.At(px, py)).(color.Gray).Y
			g.gray[i] = lum
			if isPaletted {
				g.raw[i] = paletted.ColorIndexAt(px, py)
			} else {
				g.raw[i] = lum
			}
		}
	}
	return g
}

// Width returns the width of the grid.
func (g *PixelGrid) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g *PixelGrid) Height() int {
	return g.height
}

// Sample returns the sample at (x, y). Coordinates outside the grid yield
// an *OutOfBoundsError; no default value is ever substituted.
func (g *PixelGrid) Sample(x, y int) (Sample, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Sample{}, &OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	i := y*g.width + x
	return Sample{Raw: g.raw[i], Gray: g.gray[i]}, nil
}

// Contains reports whether r lies entirely inside the grid.
func (g *PixelGrid) Contains(r image.Rectangle) bool {
	return r.In(g.Bounds())
}

// At implements the image.Image interface with a luminance view.
func (g *PixelGrid) At(x, y int) color.Color {
	s, err := g.Sample(x, y)
	if err != nil {
		return color.Gray{}
	}
	return color.Gray{Y: s.Gray}
}

// Bounds implements the image.Image interface.
func (g *PixelGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// ColorModel implements the image.Image interface.
func (g *PixelGrid) ColorModel() color.Model {
	return color.GrayModel
}
