package prune

import (
	"strings"

	"github.com/dgallion1/pagetrim/internal/dom"
)

// ByInclusion keeps the neighborhood of the include-set addresses: ancestors
// and descendants of included nodes survive untouched, siblings along the
// included paths are blanked to empty shells, and subtrees with no relation
// to any included path are deliberately left alone. The include-set is
// reduced to its minimal covering set first. Addresses are computed on the
// fly during a single greedy pre-order pass, so the tree handed in must not
// have been mutated since the include-set was computed.
func ByInclusion(root *dom.Node, base string, includes []string) {
	includes = Dedupe(includes)
	WalkPre(root, base, func(n *dom.Node, addr string) bool {
		return keepOrBlank(n, addr, includes)
	})
}

// keepOrBlank decides one node's fate and reports whether to descend.
func keepOrBlank(n *dom.Node, addr string, includes []string) bool {
	inPath := false    // n is an ancestor of, or equal to, an included node
	contained := false // n is a descendant of an included node
	for _, inc := range includes {
		if strings.HasPrefix(inc, addr) {
			inPath = true
		}
		if strings.HasPrefix(addr, inc) {
			contained = true
		}
	}
	if inPath || contained {
		return true
	}

	// A sibling hanging off an included path is structural noise: keep the
	// shell so the document shape survives, drop everything inside it.
	parent := ParentAddress(addr)
	for _, inc := range includes {
		if strings.HasPrefix(inc, parent) {
			n.Clear()
			return false
		}
	}

	// No relation at all: leave the subtree untouched.
	return true
}
