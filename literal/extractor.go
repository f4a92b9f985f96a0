// Package literal extracts required literals from a regular expression
// tree for prefilter use.
//
// The extracted Seq carries the guarantee that every string in the
// language of the tree contains at least one of its literals. A matcher
// can therefore reject any input that contains none of them without
// running the automaton at all.
package literal

import (
	"github.com/Malyuk-afk/regular-expression-to-NFA/ast"
)

// Config bounds extraction so pathological trees cannot blow up the
// literal set.
type Config struct {
	// MaxLiterals caps the size of the extracted set. Alternations over
	// many branches otherwise grow without bound.
	MaxLiterals int

	// MaxLiteralLen caps the length of any single literal. Longer
	// cross products stop extending instead of growing past it.
	MaxLiteralLen int

	// MaxClassSize caps character-range expansion. A range wider than
	// this contributes no requirement.
	MaxClassSize int

	// CrossProductLimit caps the number of literals produced when two
	// exact sets are crossed under concatenation.
	CrossProductLimit int
}

// DefaultConfig returns extraction limits tuned for prefilter use.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:       64,
		MaxLiteralLen:     32,
		MaxClassSize:      10,
		CrossProductLimit: 250,
	}
}

// Seq is a set of required literals for one subtree.
//
// When exact is set, the literals are precisely the strings the subtree
// matches. Exactness survives union and small cross products and is what
// lets concatenation build multi-character literals. An infinite Seq
// carries no requirement at all (a Star matches the empty string, so
// nothing below it can be required).
type Seq struct {
	lits     [][]byte
	exact    bool
	infinite bool
}

// Infinite returns the Seq carrying no requirement.
func Infinite() Seq {
	return Seq{infinite: true}
}

// IsInfinite reports whether the Seq carries no requirement.
func (s Seq) IsInfinite() bool {
	return s.infinite
}

// IsExact reports whether the literals are exactly the matched strings.
func (s Seq) IsExact() bool {
	return !s.infinite && s.exact
}

// Len returns the number of literals.
func (s Seq) Len() int {
	return len(s.lits)
}

// Literals returns the literal set. The caller must not mutate it.
func (s Seq) Literals() [][]byte {
	return s.lits
}

// minLen returns the length of the shortest literal.
func (s Seq) minLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	m := len(s.lits[0])
	for _, l := range s.lits[1:] {
		if len(l) < m {
			m = len(l)
		}
	}
	return m
}

// Extract computes the required-literal set of the tree under the given
// limits.
func Extract(n ast.Node, config Config) Seq {
	e := &extractor{config: config}
	return e.extract(n)
}

type extractor struct {
	config Config
}

func (e *extractor) extract(n ast.Node) Seq {
	switch node := n.(type) {
	case *ast.Literal:
		return Seq{lits: [][]byte{{node.Ch}}, exact: true}

	case *ast.Range:
		size := int(node.Hi) - int(node.Lo) + 1
		if size <= 0 || size > e.config.MaxClassSize {
			return Infinite()
		}
		lits := make([][]byte, 0, size)
		for ch := node.Lo; ch <= node.Hi; ch++ {
			lits = append(lits, []byte{ch})
		}
		return Seq{lits: lits, exact: true}

	case *ast.Star:
		// The empty repetition defeats any requirement from the body.
		return Infinite()

	case *ast.Alt:
		return e.union(e.extract(node.Left), e.extract(node.Right))

	case *ast.Concat:
		return e.concat(e.extract(node.Left), e.extract(node.Right))

	default:
		return Infinite()
	}
}

// union merges the requirements of two alternation branches. A string
// matching either branch must contain a literal from that branch, so the
// merged set is required only if both sides have one.
func (e *extractor) union(l, r Seq) Seq {
	if l.infinite || r.infinite {
		return Infinite()
	}
	seen := make(map[string]struct{}, len(l.lits)+len(r.lits))
	merged := make([][]byte, 0, len(l.lits)+len(r.lits))
	for _, set := range [2][][]byte{l.lits, r.lits} {
		for _, lit := range set {
			if _, ok := seen[string(lit)]; ok {
				continue
			}
			seen[string(lit)] = struct{}{}
			merged = append(merged, lit)
		}
	}
	if len(merged) > e.config.MaxLiterals {
		return Infinite()
	}
	return Seq{lits: merged, exact: l.exact && r.exact}
}

// concat combines the requirements of a concatenation. Two exact sides
// cross into longer exact literals while the limits hold; otherwise the
// stronger side alone still satisfies containment.
func (e *extractor) concat(l, r Seq) Seq {
	if l.IsExact() && r.IsExact() {
		product := len(l.lits) * len(r.lits)
		if product > 0 && product <= e.config.CrossProductLimit && product <= e.config.MaxLiterals {
			if l.minLen()+r.minLen() <= e.config.MaxLiteralLen {
				return e.cross(l, r)
			}
		}
	}
	return pickFactor(l, r)
}

// cross builds the exact cross product of two exact sets.
func (e *extractor) cross(l, r Seq) Seq {
	lits := make([][]byte, 0, len(l.lits)*len(r.lits))
	for _, a := range l.lits {
		for _, b := range r.lits {
			combined := make([]byte, 0, len(a)+len(b))
			combined = append(combined, a...)
			combined = append(combined, b...)
			if len(combined) > e.config.MaxLiteralLen {
				return pickFactor(l, r)
			}
			lits = append(lits, combined)
		}
	}
	return Seq{lits: lits, exact: true}
}

// pickFactor selects the stronger of two factor sets: a concatenated
// string contains a literal of each finite side, so either works alone.
// Longer minimum literals filter better; ties go to the smaller set.
func pickFactor(l, r Seq) Seq {
	if l.infinite {
		return inexact(r)
	}
	if r.infinite {
		return inexact(l)
	}
	lm, rm := l.minLen(), r.minLen()
	if lm > rm || (lm == rm && len(l.lits) <= len(r.lits)) {
		return inexact(l)
	}
	return inexact(r)
}

func inexact(s Seq) Seq {
	if s.infinite {
		return s
	}
	return Seq{lits: s.lits}
}
