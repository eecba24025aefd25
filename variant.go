package glyphsheet

import (
	"fmt"
	"log/slog"
)

// Variant describes one glyph sheet to convert and the header it becomes.
type Variant struct {
	// Name is the C identifier of the emitted array.
	Name string
	// Source is the glyph sheet image path.
	Source string
	// Output is the header path.
	Output string

	Layout Layout
	Glyphs int
	Ink    InkSpec

	// Charset labels glyphs in dumps and previews. May be nil.
	Charset Charset
	Order   Order
}

// Variants returns the built-in ZX81 variants.
func Variants() []Variant {
	return []Variant{
		{
			Name:    "zx81_font",
			Source:  "zx81_font.png",
			Output:  "zx81.h",
			Layout:  ZX81Layout,
			Glyphs:  64,
			Ink:     InkSpec{Rule: InkRuleNonZero},
			Charset: ZX81Charset,
		},
		{
			Name:    "zx81_ascii_font",
			Source:  "zx81_ascii_font.png",
			Output:  "zx81_ascii.h",
			Layout:  ZX81ASCIILayout,
			Glyphs:  128,
			Ink:     InkSpec{Rule: InkRuleNotEqual, Value: 215},
			Charset: ASCIICharset,
		},
	}
}

// Result is the in-memory outcome of building a Variant.
type Result struct {
	Variant   Variant
	Table     *GlyphTable
	Histogram *Histogram
	Header    []byte
}

// NewVariantConverter returns a converter configured for v, recording
// samples into h when h is non-nil.
func NewVariantConverter(v Variant, h *Histogram) (*Converter, error) {
	ink, err := v.Ink.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	c, err := NewConverter(v.Layout, v.Glyphs, WithInk(ink), WithHistogram(h))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	return c, nil
}

// Convert converts an already loaded sheet according to v.
func (v Variant) Convert(grid *PixelGrid) (*Result, error) {
	h := &Histogram{}
	c, err := NewVariantConverter(v, h)
	if err != nil {
		return nil, err
	}
	table, err := c.Convert(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	header, err := Header(v.Name, table, WithOrder(v.Order))
	if err != nil {
		return nil, err
	}
	return &Result{Variant: v, Table: table, Histogram: h, Header: header}, nil
}

// Build loads v.Source and converts it. Nothing is written to disk.
func Build(v Variant) (*Result, error) {
	grid, err := LoadSheet(v.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	res, err := v.Convert(grid)
	if err != nil {
		return nil, err
	}
	Logger().Info("glyph table built",
		slog.String("name", v.Name),
		slog.String("source", v.Source),
		slog.Int("glyphs", v.Glyphs),
		slog.String("ink", v.Ink.String()),
		slog.String("order", v.Order.String()))
	return res, nil
}
