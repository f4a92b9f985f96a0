package prefilter

import (
	"testing"

	"github.com/Malyuk-afk/regular-expression-to-NFA/ast"
	"github.com/Malyuk-afk/regular-expression-to-NFA/literal"
)

func TestFromSeq_NoRequirement(t *testing.T) {
	seq := literal.Extract(ast.NewStar(ast.NewLiteral('a')), literal.DefaultConfig())
	if pf := FromSeq(seq); pf != nil {
		t.Errorf("FromSeq(infinite) = %v, want nil", pf)
	}
}

func TestNilPrefilterPasses(t *testing.T) {
	var pf *Prefilter
	if !pf.CanMatch([]byte("anything")) {
		t.Errorf("nil prefilter rejected input")
	}
	if !pf.CanMatch(nil) {
		t.Errorf("nil prefilter rejected empty input")
	}
}

func TestCanMatch(t *testing.T) {
	seq := literal.Extract(
		ast.NewAlt(ast.Str("foo"), ast.Str("bar")),
		literal.DefaultConfig(),
	)
	pf := FromSeq(seq)
	if pf == nil {
		t.Fatalf("FromSeq returned nil for a finite literal set")
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"foo", true},
		{"bar", true},
		{"a foo b", true},
		{"baz", false},
		{"", false},
		{"fobar", true},
		{"fo ba", false},
	}
	for _, tt := range tests {
		if got := pf.CanMatch([]byte(tt.input)); got != tt.want {
			t.Errorf("CanMatch(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPrefilterNeverRejectsAccepted(t *testing.T) {
	// Rejection must be definitive: anything the pattern accepts has to
	// pass the filter.
	tree := ast.NewConcat(
		ast.NewStar(ast.NewRange('a', 'c')),
		ast.Str("end"),
	)
	seq := literal.Extract(tree, literal.DefaultConfig())
	pf := FromSeq(seq)
	if pf == nil {
		t.Fatalf("FromSeq returned nil for a finite literal set")
	}

	accepted := []string{"end", "aend", "abcend", "ccccend"}
	for _, input := range accepted {
		if !pf.CanMatch([]byte(input)) {
			t.Errorf("prefilter rejected accepted input %q", input)
		}
	}
}
