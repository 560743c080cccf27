// Package prune trims a sanitized markup tree down to a token budget while
// preserving its structure: structural addressing, include-set reduction,
// inclusion-anchored pruning, budget pruning and text collapsing.
package prune

import (
	"fmt"
	"strings"

	"github.com/dgallion1/pagetrim/internal/dom"
)

// childAddresses computes the address of every element child of parent.
// A tag that occurs once under parent gets a bare segment; a repeated tag
// gets a 1-based ordinal suffix in document order. Sibling addresses cannot
// collide by construction.
func childAddresses(parent *dom.Node, base string) ([]*dom.Node, []string) {
	counts := make(map[string]int)
	for _, c := range parent.Children {
		if c.Kind == dom.Element {
			counts[c.Tag]++
		}
	}
	order := make(map[string]int)
	var nodes []*dom.Node
	var addrs []string
	for _, c := range parent.Children {
		if c.Kind != dom.Element {
			continue
		}
		addr := base + "/" + c.Tag
		if counts[c.Tag] > 1 {
			addr = fmt.Sprintf("%s/%s[%d]", base, c.Tag, order[c.Tag]+1)
		}
		order[c.Tag]++
		nodes = append(nodes, c)
		addrs = append(addrs, addr)
	}
	return nodes, addrs
}

// Walk visits every element in the subtree post-order, children before the
// node itself, passing each node with its address. The root is visited last
// with the caller-supplied base address.
func Walk(root *dom.Node, base string, fn func(n *dom.Node, addr string)) {
	nodes, addrs := childAddresses(root, base)
	for i, c := range nodes {
		Walk(c, addrs[i], fn)
	}
	fn(root, base)
}

// WalkPre visits every element pre-order, the node before its children.
// fn's return value tells the driver whether to descend; child addresses
// are computed after fn runs, so fn may freely mutate the node it was
// handed (including clearing its children) without invalidating the walk.
func WalkPre(root *dom.Node, base string, fn func(n *dom.Node, addr string) bool) {
	if root == nil {
		return
	}
	if !fn(root, base) {
		return
	}
	nodes, addrs := childAddresses(root, base)
	for i, c := range nodes {
		WalkPre(c, addrs[i], fn)
	}
}

// WalkDocument is Walk anchored at a document root: the root's tag must be
// html and its base address is /html.
func WalkDocument(root *dom.Node, fn func(n *dom.Node, addr string)) error {
	if root == nil {
		return fmt.Errorf("%w: root is nil", dom.ErrInvalidRoot)
	}
	if root.Kind != dom.Element || root.Tag != "html" {
		return fmt.Errorf("%w: root tag is %q, want html", dom.ErrInvalidRoot, root.Tag)
	}
	Walk(root, "/html", fn)
	return nil
}

// Addresses returns every element address in the subtree, post-order.
func Addresses(root *dom.Node, base string) []string {
	var out []string
	Walk(root, base, func(_ *dom.Node, addr string) {
		out = append(out, addr)
	})
	return out
}

// ParentAddress drops the final segment of an address. The top-level
// address reduces to the empty string.
func ParentAddress(addr string) string {
	i := strings.LastIndex(addr, "/")
	if i < 0 {
		return ""
	}
	return addr[:i]
}
