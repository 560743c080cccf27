package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Render serializes the subtree at n to its compact markup form. Attributes
// are emitted in sorted name order so the output is deterministic; token
// counts must always be computed on this form.
func Render(n *Node) string {
	var sb strings.Builder
	// html.Render only fails on writer errors; strings.Builder has none.
	html.Render(&sb, toHTML(n))
	return sb.String()
}

// toHTML rebuilds an x/net/html tree so the stock renderer handles
// escaping, void elements and raw-text rules.
func toHTML(n *Node) *html.Node {
	out := &html.Node{}
	switch n.Kind {
	case Element:
		out.Type = html.ElementNode
		out.Data = n.Tag
		if len(n.Attrs) > 0 {
			keys := make([]string, 0, len(n.Attrs))
			for k := range n.Attrs {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				out.Attr = append(out.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
			}
		}
	case Text:
		out.Type = html.TextNode
		out.Data = n.Data
	case Comment:
		out.Type = html.CommentNode
		out.Data = n.Data
	case Doctype:
		out.Type = html.DoctypeNode
		out.Data = n.Data
	}
	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}

// voidElements have no closing tag and never carry children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// RenderPretty serializes the subtree in an indented, human-readable form.
// It is for presentation only and must not feed token counting.
func RenderPretty(n *Node) string {
	var sb strings.Builder
	renderPretty(&sb, n, 0)
	return sb.String()
}

func renderPretty(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case Text:
		if t := strings.TrimSpace(n.Data); t != "" {
			sb.WriteString(indent)
			sb.WriteString(html.EscapeString(t))
			sb.WriteString("\n")
		}
	case Comment:
		sb.WriteString(indent)
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->\n")
	case Doctype:
		sb.WriteString(indent)
		sb.WriteString("<!DOCTYPE ")
		sb.WriteString(n.Data)
		sb.WriteString(">\n")
	case Element:
		sb.WriteString(indent)
		sb.WriteString("<")
		sb.WriteString(n.Tag)
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(" ")
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(n.Attrs[k]))
			sb.WriteString(`"`)
		}
		if voidElements[n.Tag] {
			sb.WriteString("/>\n")
			return
		}
		sb.WriteString(">\n")
		for _, c := range n.Children {
			renderPretty(sb, c, depth+1)
		}
		sb.WriteString(indent)
		sb.WriteString("</")
		sb.WriteString(n.Tag)
		sb.WriteString(">\n")
	}
}
