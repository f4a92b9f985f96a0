// Package regexnfa decides regular-expression membership by compiling a
// caller-supplied expression tree into a nondeterministic finite
// automaton and walking it with a backtracking matcher.
//
// The pipeline is: tree → worklist compiler → ε-closure refinement →
// literal prefilter → backtracking walk. The alphabet is printable ASCII
// (0x20..0x7E); there is no textual pattern syntax, no capture groups
// and no DFA conversion.
//
// Basic usage:
//
//	// (a | ab)
//	tree := ast.NewAlt(ast.NewLiteral('a'), ast.Str("ab"))
//	re, err := regexnfa.Compile(tree)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := re.MatchString("ab")
package regexnfa

import (
	"github.com/Malyuk-afk/regular-expression-to-NFA/ast"
	"github.com/Malyuk-afk/regular-expression-to-NFA/literal"
	"github.com/Malyuk-afk/regular-expression-to-NFA/nfa"
	"github.com/Malyuk-afk/regular-expression-to-NFA/prefilter"
	"github.com/Malyuk-afk/regular-expression-to-NFA/simd"
)

// Regex is a compiled, refined automaton together with its prefilter.
//
// The automaton is immutable once built. Match reuses an internal
// backtracking stack, so a single Regex must not be used from multiple
// goroutines at once; compile one per goroutine or guard with a mutex.
type Regex struct {
	pattern string
	nfa     *nfa.NFA
	filter  *prefilter.Prefilter
	bt      *nfa.Backtracker
}

// Compile builds the automaton for the given expression tree with the
// reference limits (100 states, stack depth 300). The tree is read but
// not retained; the caller may drop it afterwards.
func Compile(tree ast.Node) (*Regex, error) {
	return CompileWithConfig(tree, nfa.DefaultConfig())
}

// CompileWithConfig builds the automaton with explicit limits.
func CompileWithConfig(tree ast.Node, config nfa.Config) (*Regex, error) {
	compiler := nfa.NewCompiler(config)
	n, err := compiler.Compile(tree)
	if err != nil {
		return nil, err
	}
	if err := n.RefineEpsilon(); err != nil {
		return nil, err
	}

	seq := literal.Extract(tree, literal.DefaultConfig())

	return &Regex{
		pattern: tree.String(),
		nfa:     n,
		filter:  prefilter.FromSeq(seq),
		bt:      nfa.NewBacktracker(n),
	}, nil
}

// MustCompile is Compile for trees known to be valid; it panics on error.
func MustCompile(tree ast.Node) *Regex {
	re, err := Compile(tree)
	if err != nil {
		panic("regexnfa: Compile(" + tree.String() + "): " + err.Error())
	}
	return re
}

// Match reports whether the automaton accepts input exactly.
//
// Inputs containing bytes outside printable ASCII fail with
// ErrInvalidCharacter before any matching happens.
func (r *Regex) Match(input []byte) (bool, error) {
	if idx := simd.FirstNonPrintable(input); idx >= 0 {
		return false, &nfa.MatchError{Pos: idx, Err: nfa.ErrInvalidCharacter}
	}
	if !r.filter.CanMatch(input) {
		return false, nil
	}
	return r.bt.Matches(input)
}

// MatchString reports whether the automaton accepts s exactly.
func (r *Regex) MatchString(s string) (bool, error) {
	return r.Match([]byte(s))
}

// Pattern returns the rendered form of the compiled tree.
func (r *Regex) Pattern() string {
	return r.pattern
}

// NFA exposes the underlying automaton, mainly for printing its state
// table.
func (r *Regex) NFA() *nfa.NFA {
	return r.nfa
}
