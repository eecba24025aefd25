package glyphsheet

import (
	"fmt"
	"unicode/utf8"
)

// Charset maps glyph codes to the characters they depict. It is used to
// label glyphs in dumps and previews; conversion never depends on it.
type Charset interface {
	// Name identifies the charset in configuration files.
	Name() string
	// Rune returns the character for code, or utf8.RuneError when the code
	// has no printable equivalent.
	Rune(code int) rune
}

// ZX81Charset is the character order of the ZX81 character ROM.
var ZX81Charset Charset = zx81Charset{}

// ASCIICharset maps codes 0x20..0x7e to themselves.
var ASCIICharset Charset = asciiCharset{}

// zx81Runes holds codes 0..63: space, ten block graphics, punctuation,
// digits and capital letters.
var zx81Runes = []rune(" ▘▝▀▖▌▞▛▒\U0001FB8F\U0001FB8E\"£$:?()><=+-*/;,.0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

type zx81Charset struct{}

func (zx81Charset) Name() string { return "zx81" }

func (zx81Charset) Rune(code int) rune {
	if code < 0 || code >= len(zx81Runes) {
		return utf8.RuneError
	}
	return zx81Runes[code]
}

type asciiCharset struct{}

func (asciiCharset) Name() string { return "ascii" }

func (asciiCharset) Rune(code int) rune {
	if code < 0x20 || code > 0x7e {
		return utf8.RuneError
	}
	return rune(code)
}

// CharsetByName returns the charset registered under name. An empty name
// yields nil, meaning unlabelled glyphs.
func CharsetByName(name string) (Charset, error) {
	switch name {
	case "":
		return nil, nil
	case "zx81":
		return ZX81Charset, nil
	case "ascii":
		return ASCIICharset, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
}
