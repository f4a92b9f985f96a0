package nfa

import (
	"github.com/Malyuk-afk/regular-expression-to-NFA/ast"
	"github.com/Malyuk-afk/regular-expression-to-NFA/internal/conv"
)

// Config configures compilation and execution limits.
type Config struct {
	// MaxStates caps the number of automaton states. Compilation fails
	// with ErrCapacityExceeded when a fresh state is needed and none is
	// free below this bound.
	MaxStates int

	// MaxStackDepth caps the explicit stacks used by ε-closure
	// refinement and by the matcher. Exceeding it fails the operation
	// with ErrStackOverflow.
	MaxStackDepth int
}

// DefaultConfig returns the reference limits: 100 states, stack depth 300.
func DefaultConfig() Config {
	return Config{
		MaxStates:     100,
		MaxStackDepth: 300,
	}
}

// edge is a pending transition out of a state: if exp matches, control
// reaches next. Multiple edges on one state are alternatives (union).
type edge struct {
	exp  ast.Node
	next StateID
}

// Compiler rewrites pending tree-labeled edges into character-labeled
// transitions until none remain.
//
// The construction is iterative: states are processed in increasing
// order, and each rewrite either emits final transitions (Literal,
// Range), duplicates a branch on the same state (Alt), introduces one
// fresh intermediate state (Concat), or adds a back-edge (Star). Every
// step strictly shrinks the total tree size held by pending edges, so
// the worklist drains.
type Compiler struct {
	config  Config
	nfa     *NFA
	pending [][]edge
}

// NewCompiler creates a compiler with the given configuration.
// Zero limits fall back to the defaults.
func NewCompiler(config Config) *Compiler {
	def := DefaultConfig()
	if config.MaxStates <= 0 {
		config.MaxStates = def.MaxStates
	}
	if config.MaxStackDepth <= 0 {
		config.MaxStackDepth = def.MaxStackDepth
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a compiler with the reference limits.
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultConfig())
}

// Compile builds the automaton accepting exactly the language of root.
// State 1 starts with the single pending edge (root, 0); state 0 is the
// accepting state and never grows transitions of its own.
//
// The returned automaton still carries raw ε-lists; run RefineEpsilon
// before matching.
func (c *Compiler) Compile(root ast.Node) (*NFA, error) {
	c.nfa = newNFA(c.config.MaxStates, c.config.MaxStackDepth)
	c.pending = make([][]edge, c.config.MaxStates)
	c.pending[StartState] = []edge{{exp: root, next: AcceptState}}

	for s := int(StartState); s < c.config.MaxStates && len(c.pending[s]) > 0; s++ {
		if err := c.expandState(StateID(conv.IntToUint32(s))); err != nil {
			c.nfa = nil
			c.pending = nil
			return nil, &CompileError{Pattern: root.String(), Err: err}
		}
	}

	nfa := c.nfa
	c.nfa = nil
	c.pending = nil
	return nfa, nil
}

// expandState drains the pending list of state s.
func (c *Compiler) expandState(s StateID) error {
	// Reflexive ε seed; refinement relies on every live state appearing
	// in its own ε-list.
	c.nfa.addTransition(s, EpsilonSlot, s)

	for len(c.pending[s]) > 0 {
		head := c.pending[s][0]

		switch exp := head.exp.(type) {
		case *ast.Literal:
			if !IsPrintable(exp.Ch) {
				return ErrInvalidCharacter
			}
			c.nfa.addTransition(s, SlotOf(exp.Ch), head.next)
			c.pending[s] = c.pending[s][1:]

		case *ast.Range:
			if !IsPrintable(exp.Lo) || !IsPrintable(exp.Hi) {
				return ErrInvalidCharacter
			}
			if exp.Lo > exp.Hi {
				return ErrMalformedTree
			}
			for ch := exp.Lo; ch <= exp.Hi; ch++ {
				c.nfa.addTransition(s, SlotOf(ch), head.next)
			}
			c.pending[s] = c.pending[s][1:]

		case *ast.Concat:
			// Route the left half through a fresh intermediate state and
			// park the right half on it.
			m, err := c.newState(s)
			if err != nil {
				return err
			}
			c.pending[s][0] = edge{exp: exp.Left, next: m}
			c.pending[m] = append(c.pending[m], edge{exp: exp.Right, next: head.next})

		case *ast.Alt:
			// Both branches leave from s itself; the right one goes to
			// the end of the list and is reached later in this loop.
			c.pending[s][0] = edge{exp: exp.Left, next: head.next}
			c.pending[s] = append(c.pending[s], edge{exp: exp.Right, next: head.next})

		case *ast.Star:
			// ε-skip for the zero-repetition case, then matching the
			// body returns to s.
			c.nfa.addTransition(s, EpsilonSlot, head.next)
			c.pending[s][0] = edge{exp: exp.Inner, next: s}

		default:
			return ErrMalformedTree
		}
	}
	return nil
}

// newState returns the lowest state index at or above from that has no
// pending edges and no transitions yet.
func (c *Compiler) newState(from StateID) (StateID, error) {
	for i := int(from); i < c.config.MaxStates; i++ {
		s := StateID(conv.IntToUint32(i))
		if len(c.pending[i]) == 0 && !c.nfa.used(s) {
			return s, nil
		}
	}
	return 0, ErrCapacityExceeded
}
