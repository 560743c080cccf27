package prune

import "github.com/dgallion1/pagetrim/internal/dom"

// ReplaceWithText flattens the subtree at n into a single text child built
// from its trimmed, space-joined text fragments.
func ReplaceWithText(n *dom.Node) {
	n.SetText(n.TextContent())
}

// ToText collapses a subtree to text while keeping the container shapes that
// carry meaning. Rows collapse cell by cell and lists item by item, leaving
// the row/item shells in place; tables pass through untouched. A node with
// no element children just gets its own text trimmed. Everything else is
// flattened fully.
func ToText(n *dom.Node) {
	if len(n.Elements()) == 0 {
		n.SetText(n.TextContent())
		return
	}

	switch n.Tag {
	case "tr":
		for _, c := range n.Elements() {
			if c.Tag == "td" || c.Tag == "th" {
				ReplaceWithText(c)
			}
		}
	case "table":
		// Tables keep their full structure.
		return
	case "ul", "ol":
		for _, c := range n.Elements() {
			if c.Tag == "li" {
				ReplaceWithText(c)
			}
		}
	default:
		ReplaceWithText(n)
	}
}
