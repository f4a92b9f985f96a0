package nfa

import (
	"github.com/Malyuk-afk/regular-expression-to-NFA/internal/conv"
	"github.com/Malyuk-afk/regular-expression-to-NFA/internal/sparse"
)

// RefineEpsilon rewrites every state's ε-list to its full ε-closure: the
// set of states reachable through any number of empty transitions,
// including the state itself.
//
// The traversal is an explicit-stack depth-first walk per state, bounded
// by the configured stack depth. The Star back-edges make the ε-graph
// cyclic; the visited set terminates the walk. Insertion into the ε-list
// goes through the same duplicate-suppressing path as compilation, so
// refinement is idempotent.
//
// After refinement the matcher can treat one ε-hop as reaching the whole
// closure.
func (n *NFA) RefineEpsilon() error {
	capacity := conv.IntToUint32(len(n.rows))
	visited := sparse.NewSparseSet(capacity)
	stack := make([]StateID, 0, n.maxStack)

	for i, r := range n.rows {
		if r == nil {
			continue
		}
		s := StateID(conv.IntToUint32(i))

		visited.Clear()
		stack = stack[:0]
		visited.Insert(uint32(s))
		stack = append(stack, s)

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, t := range n.targets(u, EpsilonSlot) {
				if visited.Contains(uint32(t)) {
					continue
				}
				visited.Insert(uint32(t))
				n.addTransition(s, EpsilonSlot, t)
				if len(stack) >= n.maxStack {
					return ErrStackOverflow
				}
				stack = append(stack, t)
			}
		}
	}

	n.refined = true
	return nil
}
