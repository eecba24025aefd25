package glyphsheet

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// HeaderOption configures WriteHeader.
type HeaderOption func(*headerOptions)

type headerOptions struct {
	order        Order
	bytesPerLine int
}

// WithOrder selects the byte order of the emitted table. The default,
// LineMajor, is what existing firmware indexes.
func WithOrder(order Order) HeaderOption {
	return func(o *headerOptions) {
		o.order = order
	}
}

// WithBytesPerLine sets how many table bytes are written on each source
// line. Values below 1 are treated as 1.
func WithBytesPerLine(n int) HeaderOption {
	return func(o *headerOptions) {
		o.bytesPerLine = max(n, 1)
	}
}

// WriteHeader writes table as a C array declaration named name:
//
//	static const uint8_t name[] = {
//		6, // shift, 2**6 glyphs
//		0,
//		...
//	};
func WriteHeader(w io.Writer, name string, table *GlyphTable, opts ...HeaderOption) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	o := headerOptions{order: LineMajor, bytesPerLine: 1}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "static const uint8_t %s[] = {\n", name)
	fmt.Fprintf(bw, "\t%d, // shift, 2**%d glyphs\n", table.Shift(), table.Shift())

	data := table.Bytes(o.order)
	for i := 0; i < len(data); i += o.bytesPerLine {
		bw.WriteByte('\t')
		for j, b := range data[i:min(i+o.bytesPerLine, len(data))] {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(b)))
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("};\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("glyphsheet: write header: %w", err)
	}
	return nil
}

// Header returns the output of WriteHeader as a byte slice.
func Header(name string, table *GlyphTable, opts ...HeaderOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, name, table, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
