// Package sanitize strips a parsed markup tree down to content: interactive
// and non-content nodes go away, hidden subtrees are emptied, and attributes
// are reduced to a minimal keep-list.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/dgallion1/pagetrim/internal/dom"
)

// interactiveElements are removed outright: they carry behavior or
// embedding, not content.
var interactiveElements = map[string]bool{
	"script":   true,
	"noscript": true,
	"style":    true,
	"form":     true,
	"input":    true,
	"button":   true,
	"select":   true,
	"option":   true,
	"optgroup": true,
	"textarea": true,
	"iframe":   true,
	"frame":    true,
	"frameset": true,
	"embed":    true,
	"object":   true,
	"applet":   true,
	"audio":    true,
	"video":    true,
	"canvas":   true,
	"svg":      true,
	"template": true,
	"dialog":   true,
}

var displayNoneRE = regexp.MustCompile(`(?i)display\s*:\s*none`)

// keptAttrs survive attribute stripping.
var keptAttrs = map[string]bool{"class": true, "id": true}

// Clean sanitizes the tree in place with a single post-order pass: children
// are fully processed before rules apply to their parent, so removing a node
// never skips work and emptying a hidden subtree happens after its children
// were themselves cleaned. The traversal root is never removed (it has no
// parent to detach from). Clean is idempotent.
func Clean(root *dom.Node) {
	// Snapshot: cleaning may detach children mid-iteration.
	children := make([]*dom.Node, len(root.Children))
	copy(children, root.Children)
	for _, c := range children {
		Clean(c)
	}
	clean(root)
}

func clean(n *dom.Node) {
	switch n.Kind {
	case dom.Comment, dom.Doctype:
		n.Detach()
		return
	case dom.Text:
		return
	}

	if interactiveElements[n.Tag] {
		n.Detach()
		return
	}

	// Hidden content is dropped but the element stays: presence in the
	// document structure survives, the invisible content does not.
	if style, ok := n.Attrs["style"]; ok && displayNoneRE.MatchString(style) {
		n.Clear()
		return
	}

	for k := range n.Attrs {
		if !keptAttrs[k] {
			delete(n.Attrs, k)
		}
	}
	if href, ok := n.Attrs["href"]; ok && strings.HasPrefix(href, "javascript:") {
		delete(n.Attrs, "href")
	}
	if n.Tag == "img" {
		delete(n.Attrs, "src")
	}
}
