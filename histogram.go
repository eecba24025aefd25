package glyphsheet

import (
	"fmt"
	"strings"
)

// Histogram counts raw sample values seen during a conversion. It is the
// tool for picking the background value of an InkNotEqual rule.
type Histogram struct {
	counts [256]int
	total  int
}

// Bin is one histogram entry.
type Bin struct {
	Value uint8
	Count int
}

// Observe records one sample.
func (h *Histogram) Observe(s Sample) {
	h.counts[s.Raw]++
	h.total++
}

// Total returns the number of observed samples.
func (h *Histogram) Total() int {
	return h.total
}

// Counts returns the non-empty bins in ascending value order.
func (h *Histogram) Counts() []Bin {
	var bins []Bin
	for v, n := range h.counts {
		if n > 0 {
			bins = append(bins, Bin{Value: uint8(v), Count: n})
		}
	}
	return bins
}

// Background returns the most frequent raw value. Ties go to the lower
// value. ok is false when nothing was observed.
func (h *Histogram) Background() (value uint8, ok bool) {
	best := 0
	for v, n := range h.counts {
		if n > best {
			best = n
			value = uint8(v)
		}
	}
	return value, best > 0
}

func (h *Histogram) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range h.Counts() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %d", b.Value, b.Count)
	}
	sb.WriteByte('}')
	return sb.String()
}
