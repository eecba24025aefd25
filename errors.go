package glyphsheet

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphsheet package.
var (
	// ErrOutOfBounds is returned when a sample lies outside the glyph sheet.
	ErrOutOfBounds = errors.New("glyphsheet: coordinates out of bounds")

	// ErrImageLoad is matched by every *ImageLoadError.
	ErrImageLoad = errors.New("glyphsheet: image load failed")

	// ErrInvalidLayout is returned when a layout cannot address 8x8 cells.
	ErrInvalidLayout = errors.New("glyphsheet: invalid layout")

	// ErrGlyphCount is returned when the glyph count is not a power of two.
	ErrGlyphCount = errors.New("glyphsheet: glyph count must be a power of two")

	// ErrInvalidName is returned when a table name is not a C identifier.
	ErrInvalidName = errors.New("glyphsheet: invalid table name")

	// ErrUnknownInkRule is returned for an unrecognized InkSpec rule.
	ErrUnknownInkRule = errors.New("glyphsheet: unknown ink rule")

	// ErrUnknownCharset is returned for an unrecognized charset name.
	ErrUnknownCharset = errors.New("glyphsheet: unknown charset")
)

// OutOfBoundsError reports a coordinate or region that does not fit the
// glyph sheet. It matches ErrOutOfBounds with errors.Is.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("glyphsheet: pixel (%d, %d) outside %dx%d sheet", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ImageLoadError is returned when a glyph sheet cannot be opened or decoded.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("glyphsheet: load %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrImageLoad.
func (e *ImageLoadError) Is(target error) bool {
	return target == ErrImageLoad
}
