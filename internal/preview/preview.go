// Package preview renders glyph tables back into glyph sheet images.
//
// A preview at scale 1 without labels is a valid input sheet for the
// layout it was rendered with, which makes it useful both for eyeballing a
// generated header and for producing test sheets.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphsheet"
	intImage "github.com/gogpu/glyphsheet/internal/image"
)

// Options controls how a table is rendered.
type Options struct {
	// Scale multiplies every sheet pixel. Values below 1 mean 1.
	Scale int
	// Ink and Paper are the foreground and background colors.
	// Nil means black and white.
	Ink   color.Color
	Paper color.Color
	// Labels adds a left margin with the first glyph code of every row.
	Labels bool
}

// labelWidth is the margin for a "0x00" label in basicfont.Face7x13.
const labelWidth = 4*7 + 6

// Render draws table into a new image using layout.
func Render(table *glyphsheet.GlyphTable, layout glyphsheet.Layout, opts Options) (*image.RGBA, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	scale := max(opts.Scale, 1)
	ink, paper := opts.Ink, opts.Paper
	if ink == nil {
		ink = color.Black
	}
	if paper == nil {
		paper = color.White
	}

	size := layout.SheetSize(table.Count())
	sheet := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)
	for code := range table.Count() {
		o := layout.CellOrigin(code)
		g := table.Glyph(code)
		for line, row := range g {
			for dx := range glyphsheet.CellSize {
				if row&(0x80>>dx) != 0 {
					sheet.Set(o.X+dx, o.Y+line, ink)
				}
			}
		}
	}

	margin := 0
	if opts.Labels {
		margin = labelWidth
	}
	if scale == 1 && margin == 0 {
		return sheet, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, margin+size.X*scale, size.Y*scale))
	draw.Draw(out, out.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)
	dst := image.Rect(margin, 0, margin+size.X*scale, size.Y*scale)
	draw.NearestNeighbor.Scale(out, dst, sheet, sheet.Bounds(), draw.Src, nil)

	if opts.Labels {
		drawLabels(out, table.Count(), layout, scale, ink)
	}
	return out, nil
}

func drawLabels(dst draw.Image, count int, layout glyphsheet.Layout, scale int, ink color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(ink), Face: face}
	rows := (count + layout.GlyphsPerRow - 1) / layout.GlyphsPerRow
	for r := range rows {
		y := (layout.OriginY+r*layout.PitchY)*scale + face.Ascent
		d.Dot = fixed.P(2, y)
		d.DrawString(fmt.Sprintf("0x%02x", r*layout.GlyphsPerRow))
	}
}

// Encode renders table and writes it to w in the given format, "png" or
// "bmp".
func Encode(w io.Writer, format string, table *glyphsheet.GlyphTable, layout glyphsheet.Layout, opts Options) error {
	img, err := Render(table, layout, opts)
	if err != nil {
		return err
	}
	return intImage.Encode(w, img, format)
}

// Save renders table and writes it to path as PNG or BMP.
func Save(path string, table *glyphsheet.GlyphTable, layout glyphsheet.Layout, opts Options) error {
	img, err := Render(table, layout, opts)
	if err != nil {
		return err
	}
	if err := intImage.Save(path, img); err != nil {
		return err
	}
	glyphsheet.Logger().Info("preview written",
		slog.String("path", path),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))
	return nil
}
