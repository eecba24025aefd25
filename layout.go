package glyphsheet

import (
	"fmt"
	"image"
)

// CellSize is the width and height of every glyph cell in pixels.
// One scan line of a cell packs into exactly one byte.
const CellSize = 8

// Layout describes how glyph cells are arranged on a sheet.
type Layout struct {
	// PitchX and PitchY are the distances between the origins of
	// neighbouring cells: the cell size plus any inter-glyph margin.
	PitchX int `json:"pitch_x"`
	PitchY int `json:"pitch_y"`

	// OriginX and OriginY locate the first cell, skipping a border.
	OriginX int `json:"origin_x"`
	OriginY int `json:"origin_y"`

	// GlyphsPerRow is the number of cells on one row of the sheet.
	GlyphsPerRow int `json:"glyphs_per_row"`
}

// Preset layouts for the built-in ZX81 sheets.
var (
	// ZX81Layout is a 16-column grid of 8x8 cells with no margin.
	ZX81Layout = Layout{PitchX: 8, PitchY: 8, GlyphsPerRow: 16}

	// ZX81ASCIILayout is a 16-column grid of 8x8 cells separated by a
	// 1-pixel margin, with a 1-pixel border around the sheet.
	ZX81ASCIILayout = Layout{PitchX: 9, PitchY: 9, OriginX: 1, OriginY: 1, GlyphsPerRow: 16}
)

// Validate reports whether the layout can address non-overlapping 8x8 cells.
func (l Layout) Validate() error {
	switch {
	case l.PitchX < CellSize || l.PitchY < CellSize:
		return fmt.Errorf("%w: pitch %dx%d smaller than %d", ErrInvalidLayout, l.PitchX, l.PitchY, CellSize)
	case l.OriginX < 0 || l.OriginY < 0:
		return fmt.Errorf("%w: negative origin (%d, %d)", ErrInvalidLayout, l.OriginX, l.OriginY)
	case l.GlyphsPerRow <= 0:
		return fmt.Errorf("%w: %d glyphs per row", ErrInvalidLayout, l.GlyphsPerRow)
	}
	return nil
}

// CellOrigin returns the top-left pixel of the cell holding code.
func (l Layout) CellOrigin(code int) image.Point {
	return image.Point{
		X: l.OriginX + (code%l.GlyphsPerRow)*l.PitchX,
		Y: l.OriginY + (code/l.GlyphsPerRow)*l.PitchY,
	}
}

// Extent returns the smallest rectangle covering the cells of codes
// 0..count-1. A sheet must contain it for a conversion to succeed.
func (l Layout) Extent(count int) image.Rectangle {
	if count <= 0 {
		return image.Rectangle{}
	}
	cols := min(count, l.GlyphsPerRow)
	rows := (count + l.GlyphsPerRow - 1) / l.GlyphsPerRow
	return image.Rect(
		l.OriginX,
		l.OriginY,
		l.OriginX+(cols-1)*l.PitchX+CellSize,
		l.OriginY+(rows-1)*l.PitchY+CellSize,
	)
}

// SheetSize returns the size of a sheet that holds count glyphs with the
// same border on every side.
func (l Layout) SheetSize(count int) image.Point {
	ext := l.Extent(count)
	return image.Point{X: ext.Max.X + l.OriginX, Y: ext.Max.Y + l.OriginY}
}
