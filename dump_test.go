package glyphsheet

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDump(t *testing.T) {
	table, err := NewGlyphTable(64)
	if err != nil {
		t.Fatal(err)
	}
	table.set(38, Glyph{0, 0x3c, 0x42, 0x42, 0x7e, 0x42, 0x42, 0})

	var sb strings.Builder
	if err := Dump(&sb, table, ZX81Charset); err != nil {
		t.Fatalf("Dump() = %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"0x26 'A' LATIN CAPITAL LETTER A\n",
		"  [  XXXX  ]\n",
		"  [ XXXXXX ]\n",
		"0x1c '0' DIGIT ZERO\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q", want)
		}
	}
	if got := strings.Count(out, "["); got != 64*8 {
		t.Errorf("Dump() wrote %d rows, want %d", got, 64*8)
	}
}

func TestDumpUnlabelled(t *testing.T) {
	table, err := NewGlyphTable(1)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := Dump(&sb, table, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sb.String(), "0x00\n  [        ]\n") {
		t.Errorf("Dump() = %q", sb.String())
	}
}

func TestCharsets(t *testing.T) {
	tests := []struct {
		cs   Charset
		code int
		want rune
	}{
		{ZX81Charset, 0, ' '},
		{ZX81Charset, 11, '"'},
		{ZX81Charset, 12, '£'},
		{ZX81Charset, 28, '0'},
		{ZX81Charset, 38, 'A'},
		{ZX81Charset, 63, 'Z'},
		{ZX81Charset, 64, utf8.RuneError},
		{ASCIICharset, 'A', 'A'},
		{ASCIICharset, 0x7f, utf8.RuneError},
		{ASCIICharset, 0x1f, utf8.RuneError},
	}
	for _, tt := range tests {
		if got := tt.cs.Rune(tt.code); got != tt.want {
			t.Errorf("%s.Rune(%d) = %q, want %q", tt.cs.Name(), tt.code, got, tt.want)
		}
	}

	for _, name := range []string{"zx81", "ascii"} {
		cs, err := CharsetByName(name)
		if err != nil || cs.Name() != name {
			t.Errorf("CharsetByName(%q) = %v, %v", name, cs, err)
		}
	}
	if _, err := CharsetByName("petscii"); err == nil {
		t.Error("CharsetByName(petscii) should fail")
	}
}
