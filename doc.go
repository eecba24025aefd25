// Package glyphsheet converts bitmap glyph sheets into packed font tables
// for firmware.
//
// # Overview
//
// A glyph sheet is an image holding a grid of 8x8 character cells. The
// converter samples each cell, packs every scan line into one byte (most
// significant bit = leftmost pixel) and emits the result as a C array:
//
//	static const uint8_t zx81_font[] = {
//		6, // shift, 2**6 glyphs
//		...
//	};
//
// The first element is log2 of the glyph count, so consumers can index the
// table with shifts. The glyph bytes follow in line-major order: scan line 0
// of every glyph, then scan line 1 of every glyph, and so on, so a renderer
// finds scan line l of code c at index 1 + (l << shift) + c.
//
// # Quick Start
//
//	grid, err := glyphsheet.LoadSheet("zx81_ascii_font.png")
//	if err != nil {
//		return err
//	}
//	c, err := glyphsheet.NewConverter(glyphsheet.ZX81ASCIILayout, 128,
//		glyphsheet.WithInk(glyphsheet.InkNotEqual(215)))
//	if err != nil {
//		return err
//	}
//	table, err := c.Convert(grid)
//	if err != nil {
//		return err
//	}
//	return glyphsheet.WriteHeader(os.Stdout, "zx81_ascii_font", table)
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel of the sheet, X increases right and
// Y increases down. Cell positions come from a Layout:
//
//	x0 = OriginX + (code % GlyphsPerRow) * PitchX
//	y0 = OriginY + (code / GlyphsPerRow) * PitchY
package glyphsheet
