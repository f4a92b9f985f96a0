package regexnfa

import (
	"fmt"

	"github.com/Malyuk-afk/regular-expression-to-NFA/ast"
)

// Suite is the top-level document of a scenario file: a list of patterns
// with inputs to run against each.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario pairs one pattern, given as a tree of data, with test inputs.
type Scenario struct {
	Description string         `yaml:"description"`
	Pattern     *PatternNode   `yaml:"pattern"`
	Tests       []ScenarioTest `yaml:"tests"`
}

// ScenarioTest is one input line. Matches is optional; when present the
// runner flags results that disagree with it.
type ScenarioTest struct {
	Input   string `yaml:"input"`
	Matches *bool  `yaml:"matches,omitempty"`
}

// PatternNode is the YAML form of one expression tree node. Exactly one
// field must be set:
//
//	concat:  [node, node, ...]   two or more, associated left
//	alt:     [node, node, ...]   two or more, associated left
//	star:    node
//	literal: "abc"               one or more characters, concatenated
//	range:   "a-z"               inclusive endpoints
//
// This is structured construction of the tree, not a pattern syntax: the
// grammar of the file is YAML's.
type PatternNode struct {
	Concat  []*PatternNode `yaml:"concat,omitempty"`
	Alt     []*PatternNode `yaml:"alt,omitempty"`
	Star    *PatternNode   `yaml:"star,omitempty"`
	Literal string         `yaml:"literal,omitempty"`
	Range   string         `yaml:"range,omitempty"`
}

// Tree converts the node into an expression tree.
func (p *PatternNode) Tree() (ast.Node, error) {
	if p == nil {
		return nil, fmt.Errorf("empty pattern node")
	}
	if err := p.checkSingleVariant(); err != nil {
		return nil, err
	}

	switch {
	case p.Concat != nil:
		return p.fold(p.Concat, "concat", func(l, r ast.Node) ast.Node {
			return ast.NewConcat(l, r)
		})

	case p.Alt != nil:
		return p.fold(p.Alt, "alt", func(l, r ast.Node) ast.Node {
			return ast.NewAlt(l, r)
		})

	case p.Star != nil:
		inner, err := p.Star.Tree()
		if err != nil {
			return nil, err
		}
		return ast.NewStar(inner), nil

	case p.Literal != "":
		return ast.Str(p.Literal), nil

	case p.Range != "":
		if len(p.Range) != 3 || p.Range[1] != '-' {
			return nil, fmt.Errorf("range %q: want the form \"a-z\"", p.Range)
		}
		return ast.NewRange(p.Range[0], p.Range[2]), nil

	default:
		return nil, fmt.Errorf("pattern node has no variant set")
	}
}

func (p *PatternNode) checkSingleVariant() error {
	set := 0
	if p.Concat != nil {
		set++
	}
	if p.Alt != nil {
		set++
	}
	if p.Star != nil {
		set++
	}
	if p.Literal != "" {
		set++
	}
	if p.Range != "" {
		set++
	}
	if set != 1 {
		return fmt.Errorf("pattern node must set exactly one of concat/alt/star/literal/range, got %d", set)
	}
	return nil
}

func (p *PatternNode) fold(children []*PatternNode, kind string, join func(l, r ast.Node) ast.Node) (ast.Node, error) {
	if len(children) < 2 {
		return nil, fmt.Errorf("%s requires at least two children, got %d", kind, len(children))
	}
	acc, err := children[0].Tree()
	if err != nil {
		return nil, err
	}
	for _, child := range children[1:] {
		next, err := child.Tree()
		if err != nil {
			return nil, err
		}
		acc = join(acc, next)
	}
	return acc, nil
}
