package dom

import "strings"

// Kind discriminates the node variants in a parsed markup tree.
type Kind int

const (
	Element Kind = iota
	Text
	Comment
	Doctype
)

// Node is one node in a mutable markup tree. Elements carry Tag, Attrs and
// Children; the other kinds carry their content in Data. The tree owns its
// nodes top-down: a node's children belong to it alone, and detaching a node
// from its parent's child list is the only way a subtree leaves the tree.
type Node struct {
	Kind     Kind
	Tag      string            // lower-case element tag; empty for non-elements
	Attrs    map[string]string // element attributes; nil when none
	Data     string            // content for Text, Comment and Doctype nodes
	Children []*Node

	// parent is navigational only, never an ownership edge.
	parent *Node
}

// NewElement builds a parentless element node.
func NewElement(tag string, attrs map[string]string) *Node {
	return &Node{Kind: Element, Tag: tag, Attrs: attrs}
}

// NewText builds a parentless text node.
func NewText(data string) *Node {
	return &Node{Kind: Text, Data: data}
}

// Parent returns the node's parent, or nil for a tree root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Append adds children to the end of n's child list, taking ownership.
// Children still attached elsewhere are detached first.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		c.Detach()
		c.parent = n
		n.Children = append(n.Children, c)
	}
}

// Detach removes n from its parent's child list. A parentless node is left
// alone; the traversal root can never be removed this way.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// DetachChildren removes and returns all of n's children, in order.
func (n *Node) DetachChildren() []*Node {
	children := n.Children
	n.Children = nil
	for _, c := range children {
		c.parent = nil
	}
	return children
}

// Clear empties the node: children, text content and attributes are all
// dropped, leaving a bare element shell.
func (n *Node) Clear() {
	n.DetachChildren()
	n.Attrs = nil
}

// SetText replaces n's children with a single text node holding s. An empty
// s leaves the node childless.
func (n *Node) SetText(s string) {
	n.DetachChildren()
	if s != "" {
		n.Append(NewText(s))
	}
}

// TextContent flattens the subtree's text: every text fragment is trimmed,
// empty fragments are dropped, and the survivors are joined with one space.
func (n *Node) TextContent() string {
	var parts []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Kind == Text {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// Elements returns n's element children, in document order.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == Element {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the named attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// Clone deep-copies the subtree rooted at n. The copy's root is parentless;
// mutating the copy never touches the original.
func (n *Node) Clone() *Node {
	out := &Node{
		Kind: n.Kind,
		Tag:  n.Tag,
		Data: n.Data,
	}
	if n.Attrs != nil {
		out.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}
	for _, c := range n.Children {
		cc := c.Clone()
		cc.parent = out
		out.Children = append(out.Children, cc)
	}
	return out
}
