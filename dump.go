package glyphsheet

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// Dump writes a text rendering of every glyph in table, one bracketed row
// per scan line with 'X' for ink. When cs is non-nil each glyph is
// labelled with its character and Unicode name.
func Dump(w io.Writer, table *GlyphTable, cs Charset) error {
	bw := bufio.NewWriter(w)
	for code := range table.Count() {
		fmt.Fprintf(bw, "0x%02x", code)
		if cs != nil {
			if r := cs.Rune(code); r != utf8.RuneError {
				fmt.Fprintf(bw, " %q %s", r, runenames.Name(r))
			}
		}
		bw.WriteByte('\n')

		g := table.Glyph(code)
		for _, row := range g {
			fmt.Fprintf(bw, "  [%s]\n", rowString(row))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("glyphsheet: dump: %w", err)
	}
	return nil
}

func rowString(b byte) string {
	var s [CellSize]byte
	for i := range CellSize {
		if b&(0x80>>i) != 0 {
			s[i] = 'X'
		} else {
			s[i] = ' '
		}
	}
	return string(s[:])
}
