package glyphsheet

// Option configures a Converter during creation.
//
// Example:
//
//	// Original ZX81 ASCII sheet: background luminance 215
//	var h glyphsheet.Histogram
//	c, err := glyphsheet.NewConverter(glyphsheet.ZX81ASCIILayout, 128,
//		glyphsheet.WithInk(glyphsheet.InkNotEqual(215)),
//		glyphsheet.WithHistogram(&h))
type Option func(*converterOptions)

// converterOptions holds optional configuration for Converter creation.
type converterOptions struct {
	ink       InkRule
	observers []func(Sample)
}

// defaultOptions returns the default converter options.
func defaultOptions() converterOptions {
	return converterOptions{
		ink: InkNonZero(),
	}
}

// WithInk sets the rule deciding which samples become set bits.
// A nil rule keeps the default InkNonZero.
func WithInk(rule InkRule) Option {
	return func(o *converterOptions) {
		if rule != nil {
			o.ink = rule
		}
	}
}

// WithObserver registers a callback invoked for every sample read during
// a conversion, in sampling order. It is meant for diagnostics such as
// threshold tuning and must not retain the converter.
func WithObserver(fn func(Sample)) Option {
	return func(o *converterOptions) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithHistogram records every sample read into h.
func WithHistogram(h *Histogram) Option {
	return func(o *converterOptions) {
		if h != nil {
			o.observers = append(o.observers, h.Observe)
		}
	}
}
