package glyphsheet

import (
	"fmt"
	"math/bits"
)

// Glyph is one 8x8 bitmap glyph, one byte per scan line.
// The most significant bit of each byte is the leftmost pixel.
type Glyph [CellSize]byte

// Order selects how a GlyphTable is flattened into bytes.
type Order uint8

const (
	// LineMajor emits scan line 0 of every glyph, then scan line 1 of
	// every glyph, and so on. Firmware indexes the table this way.
	LineMajor Order = iota

	// CodeMajor emits all eight scan lines of glyph 0, then glyph 1, ...
	CodeMajor
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case LineMajor:
		return "line"
	case CodeMajor:
		return "code"
	default:
		return fmt.Sprintf("Order(%d)", o)
	}
}

// ParseOrder parses "line" or "code".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "line":
		return LineMajor, nil
	case "code":
		return CodeMajor, nil
	default:
		return 0, fmt.Errorf("glyphsheet: unknown table order %q", s)
	}
}

// GlyphTable is the packed glyph set produced by a conversion.
type GlyphTable struct {
	shift  int
	glyphs []Glyph
}

// NewGlyphTable creates an empty table for count glyphs.
// count must be a power of two.
func NewGlyphTable(count int) (*GlyphTable, error) {
	shift, err := GlyphShift(count)
	if err != nil {
		return nil, err
	}
	return &GlyphTable{shift: shift, glyphs: make([]Glyph, count)}, nil
}

// TableFromGlyphs creates a table holding a copy of glyphs.
// len(glyphs) must be a power of two.
func TableFromGlyphs(glyphs []Glyph) (*GlyphTable, error) {
	t, err := NewGlyphTable(len(glyphs))
	if err != nil {
		return nil, err
	}
	copy(t.glyphs, glyphs)
	return t, nil
}

// GlyphShift returns log2(count), or ErrGlyphCount if count is not a
// positive power of two.
func GlyphShift(count int) (int, error) {
	if count <= 0 || count&(count-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrGlyphCount, count)
	}
	return bits.TrailingZeros(uint(count)), nil
}

// Count returns the number of glyphs in the table.
func (t *GlyphTable) Count() int {
	return len(t.glyphs)
}

// Shift returns log2(Count()).
func (t *GlyphTable) Shift() int {
	return t.shift
}

// Glyph returns the bitmap of code.
func (t *GlyphTable) Glyph(code int) Glyph {
	return t.glyphs[code]
}

// Row returns scan line line of code.
func (t *GlyphTable) Row(code, line int) byte {
	return t.glyphs[code][line]
}

func (t *GlyphTable) set(code int, g Glyph) {
	t.glyphs[code] = g
}

// Bytes flattens the table in the given order. The shift constant is not
// included; the result always holds Count()*8 bytes.
func (t *GlyphTable) Bytes(order Order) []byte {
	out := make([]byte, 0, len(t.glyphs)*CellSize)
	if order == CodeMajor {
		for _, g := range t.glyphs {
			out = append(out, g[:]...)
		}
		return out
	}
	for line := range CellSize {
		for _, g := range t.glyphs {
			out = append(out, g[line])
		}
	}
	return out
}

// Equal reports whether both tables hold identical glyphs.
func (t *GlyphTable) Equal(other *GlyphTable) bool {
	if t.shift != other.shift || len(t.glyphs) != len(other.glyphs) {
		return false
	}
	for i := range t.glyphs {
		if t.glyphs[i] != other.glyphs[i] {
			return false
		}
	}
	return true
}

// Blank reports whether no glyph has any ink.
func (t *GlyphTable) Blank() bool {
	for _, g := range t.glyphs {
		if g != (Glyph{}) {
			return false
		}
	}
	return true
}
