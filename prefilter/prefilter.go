// Package prefilter rejects inputs that cannot match, before the
// automaton runs.
//
// The filter is built from the required-literal set extracted from the
// regular expression tree: every accepted string contains at least one
// of those literals, so an input containing none of them is a guaranteed
// reject. The multi-literal scan is an Aho-Corasick automaton, which
// handles the full literal set in one pass over the input.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/Malyuk-afk/regular-expression-to-NFA/literal"
)

// Prefilter answers "can this input possibly match?" in one scan.
type Prefilter struct {
	auto *ahocorasick.Automaton
}

// FromSeq builds a prefilter from an extracted literal set.
// Returns nil when the set carries no requirement (infinite or empty);
// a nil *Prefilter is a valid always-pass filter.
func FromSeq(seq literal.Seq) *Prefilter {
	if seq.IsInfinite() || seq.Len() == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range seq.Literals() {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		// A filter is an optimization only; on a build failure the
		// matcher simply runs unfiltered.
		return nil
	}
	return &Prefilter{auto: auto}
}

// CanMatch reports whether input contains at least one required literal.
// A false result is a definitive reject; true means the automaton must
// decide.
func (p *Prefilter) CanMatch(input []byte) bool {
	if p == nil {
		return true
	}
	return p.auto.IsMatch(input)
}
