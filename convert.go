package glyphsheet

import (
	"fmt"
	"log/slog"
	"time"
)

// Converter turns a glyph sheet into a GlyphTable under a fixed layout.
// A Converter holds no per-conversion state and may be reused.
type Converter struct {
	layout Layout
	count  int
	opts   converterOptions
}

// NewConverter creates a converter for count glyphs arranged by layout.
func NewConverter(layout Layout, count int, opts ...Option) (*Converter, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if _, err := GlyphShift(count); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{layout: layout, count: count, opts: o}, nil
}

// Layout returns the layout the converter samples with.
func (c *Converter) Layout() Layout {
	return c.layout
}

// Count returns the number of glyphs the converter produces.
func (c *Converter) Count() int {
	return c.count
}

// Convert samples every glyph cell of grid and packs it into a table.
// The whole layout extent is checked against the grid before any sample is
// read, so a short sheet fails with *OutOfBoundsError and no table.
func (c *Converter) Convert(grid *PixelGrid) (*GlyphTable, error) {
	start := time.Now()

	ext := c.layout.Extent(c.count)
	if !grid.Contains(ext) {
		return nil, fmt.Errorf("glyph sheet too small for %d glyphs: %w", c.count,
			&OutOfBoundsError{X: ext.Max.X - 1, Y: ext.Max.Y - 1, Width: grid.Width(), Height: grid.Height()})
	}

	table, err := NewGlyphTable(c.count)
	if err != nil {
		return nil, err
	}
	for code := range c.count {
		g, err := c.glyph(grid, code)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", code, err)
		}
		table.set(code, g)
	}

	Logger().Debug("glyph sheet converted",
		slog.Int("glyphs", c.count),
		slog.Int("shift", table.Shift()),
		slog.Any("extent", ext),
		slog.Duration("elapsed", time.Since(start)))
	if table.Blank() {
		Logger().Warn("glyph sheet produced no ink; check the ink rule", slog.Int("glyphs", c.count))
	}
	return table, nil
}

// glyph packs the 8x8 cell of code, most significant bit first.
func (c *Converter) glyph(grid *PixelGrid, code int) (Glyph, error) {
	var g Glyph
	o := c.layout.CellOrigin(code)
	for line := range CellSize {
		var b byte
		for dx := range CellSize {
			s, err := grid.Sample(o.X+dx, o.Y+line)
			if err != nil {
				return Glyph{}, err
			}
			for _, fn := range c.opts.observers {
				fn(s)
			}
			b <<= 1
			if c.opts.ink(s) {
				b |= 1
			}
		}
		g[line] = b
	}
	return g, nil
}
