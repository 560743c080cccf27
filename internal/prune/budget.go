package prune

import (
	"github.com/dgallion1/pagetrim/internal/dom"
	"github.com/dgallion1/pagetrim/internal/tokens"
)

// ByTokens trims the subtree at n, in place, until its compact serialization
// fits maxTokens. A fitting subtree is returned untouched. Otherwise the
// children are detached and greedily re-accepted in selection order (document
// order, or reverse document order when favorRight is set) while they fit
// the budget left after the node's own shell; the first child that does not
// fit is kept and recursively trimmed with the leftover budget, and every
// child past it is dropped. Only one child per level recurses, so the cost
// is bounded by tree depth.
//
// When the childless shell alone exceeds maxTokens the node is left as that
// shell, over budget; callers needing a hard guarantee must re-check the
// final count.
func ByTokens(counter tokens.Counter, n *dom.Node, maxTokens int, favorRight bool) {
	if n == nil {
		return
	}
	if counter.Count(dom.Render(n)) <= maxTokens {
		return
	}

	children := n.DetachChildren()
	if len(children) == 0 {
		return
	}
	remaining := maxTokens - counter.Count(dom.Render(n))
	if remaining <= 0 {
		return
	}

	ordered := children
	if favorRight {
		ordered = make([]*dom.Node, len(children))
		for i, c := range children {
			ordered[len(children)-1-i] = c
		}
	}

	// Accept whole children until one no longer fits; that boundary child is
	// re-attached too and trimmed recursively below.
	acc := 0
	idx := 0
	var boundary *dom.Node
	for i, c := range ordered {
		idx, boundary = i, c
		t := counter.Count(dom.Render(c))
		if acc+t > remaining {
			break
		}
		acc += t
	}

	kept := ordered[:idx+1]
	if favorRight {
		// Selection ran right-to-left; restore document order.
		restored := make([]*dom.Node, len(kept))
		for i, c := range kept {
			restored[len(kept)-1-i] = c
		}
		kept = restored
	}
	n.Append(kept...)

	ByTokens(counter, boundary, remaining-acc, favorRight)
}

// ExtractHead deep-copies the subtree and trims the copy to maxTokens
// favoring leading content. The original tree is never mutated.
func ExtractHead(counter tokens.Counter, n *dom.Node, maxTokens int) *dom.Node {
	c := n.Clone()
	ByTokens(counter, c, maxTokens, false)
	return c
}

// ExtractTail is ExtractHead favoring trailing content.
func ExtractTail(counter tokens.Counter, n *dom.Node, maxTokens int) *dom.Node {
	c := n.Clone()
	ByTokens(counter, c, maxTokens, true)
	return c
}
