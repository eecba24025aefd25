package glyphsheet

import "fmt"

// InkRule classifies a sample as ink (foreground) or paper.
type InkRule func(Sample) bool

// InkNonZero treats every sample with a non-zero raw value as ink.
func InkNonZero() InkRule {
	return func(s Sample) bool { return s.Raw != 0 }
}

// InkNotEqual treats every sample whose raw value differs from the
// background value as ink.
func InkNotEqual(background uint8) InkRule {
	return func(s Sample) bool { return s.Raw != background }
}

// InkDarkerThan treats samples with luminance below threshold as ink.
func InkDarkerThan(threshold uint8) InkRule {
	return func(s Sample) bool { return s.Gray < threshold }
}

// Ink rule names accepted by InkSpec.
const (
	InkRuleNonZero  = "nonzero"
	InkRuleNotEqual = "not-equal"
	InkRuleDarker   = "darker-than"
)

// InkSpec is the serialisable form of an InkRule.
type InkSpec struct {
	Rule  string `json:"rule"`
	Value uint8  `json:"value,omitempty"`
}

// Compile returns the InkRule described by the spec.
// An empty rule compiles to InkNonZero.
func (s InkSpec) Compile() (InkRule, error) {
	switch s.Rule {
	case "", InkRuleNonZero:
		return InkNonZero(), nil
	case InkRuleNotEqual:
		return InkNotEqual(s.Value), nil
	case InkRuleDarker:
		return InkDarkerThan(s.Value), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInkRule, s.Rule)
	}
}

func (s InkSpec) String() string {
	switch s.Rule {
	case "", InkRuleNonZero:
		return InkRuleNonZero
	default:
		return fmt.Sprintf("%s(%d)", s.Rule, s.Value)
	}
}
