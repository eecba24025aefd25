package glyphsheet

import (
	"log/slog"

	intImage "github.com/gogpu/glyphsheet/internal/image"
)

// LoadSheet loads a glyph sheet image into a PixelGrid. Any failure to
// open or decode the file is reported as *ImageLoadError.
func LoadSheet(path string) (*PixelGrid, error) {
	img, format, err := intImage.Load(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	grid := FromImage(img)
	Logger().Debug("glyph sheet loaded",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("width", grid.Width()),
		slog.Int("height", grid.Height()))
	return grid, nil
}

// ParseSheet decodes an in-memory glyph sheet. name identifies the data in
// errors and logs, typically the file or asset it came from.
func ParseSheet(name string, data []byte) (*PixelGrid, error) {
	img, format, err := intImage.LoadFromBytes(data)
	if err != nil {
		return nil, &ImageLoadError{Path: name, Err: err}
	}
	grid := FromImage(img)
	Logger().Debug("glyph sheet parsed",
		slog.String("name", name),
		slog.String("format", format),
		slog.Int("width", grid.Width()),
		slog.Int("height", grid.Height()))
	return grid, nil
}
