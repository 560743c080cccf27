package dom

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidRoot reports a missing document root or a document element whose
// tag is not the expected one.
var ErrInvalidRoot = errors.New("invalid document root")

var (
	decimalRefRE = regexp.MustCompile(`&#(\d+);?`)
	hexRefRE     = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);?`)
)

// illegalXMLRune reports whether r falls outside the XML 1.0 valid character
// range: Char ::= #x9 | #xA | #xD | [#x20-#xD7FF] | [#xE000-#xFFFD] | [#x10000-#x10FFFF].
func illegalXMLRune(r rune) bool {
	switch {
	case r == 0xB || r == 0xC || r == 0xFFFE || r == 0xFFFF:
		return true
	case r <= 0x8:
		return true
	case 0xE <= r && r <= 0x1F:
		return true
	case 0xD800 <= r && r <= 0xDFFF:
		return true
	}
	return false
}

// RemoveControlCharacters strips characters outside the valid XML range so
// the parser never sees them, both as literal codepoints and hidden inside
// numeric character references.
func RemoveControlCharacters(s string) string {
	s = decimalRefRE.ReplaceAllStringFunc(s, func(ref string) string {
		return stripIllegalRef(ref, decimalRefRE, 10)
	})
	s = hexRefRE.ReplaceAllStringFunc(s, func(ref string) string {
		return stripIllegalRef(ref, hexRefRE, 16)
	})
	return strings.Map(func(r rune) rune {
		if illegalXMLRune(r) {
			return -1
		}
		return r
	}, s)
}

func stripIllegalRef(ref string, re *regexp.Regexp, base int) string {
	m := re.FindStringSubmatch(ref)
	n, err := strconv.ParseInt(m[1], base, 64)
	if err != nil {
		// Out-of-range reference; the parser will reject it on its own.
		return ref
	}
	if n <= 0x10FFFF && illegalXMLRune(rune(n)) {
		return ""
	}
	return ref
}

// Parse repairs control characters in raw markup, parses it tolerantly, and
// returns the document's <html> element as a Node tree. Element tags are
// lower-cased by the parser; foreign-namespace prefixes are not applied.
func Parse(raw string) (*Node, error) {
	doc, err := html.Parse(strings.NewReader(RemoveControlCharacters(raw)))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	root := findRoot(doc)
	if root == nil {
		return nil, fmt.Errorf("%w: no html element", ErrInvalidRoot)
	}
	return convert(root), nil
}

// ParseFragment parses raw markup in a body context and returns the
// resulting top-level nodes.
func ParseFragment(raw string) ([]*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(strings.NewReader(RemoveControlCharacters(raw)), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	var out []*Node
	for _, n := range parsed {
		out = append(out, convert(n))
	}
	return out, nil
}

func findRoot(doc *html.Node) *html.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return c
		}
	}
	return nil
}

// convert maps an x/net/html node into the owned tree model.
func convert(src *html.Node) *Node {
	n := &Node{}
	switch src.Type {
	case html.ElementNode:
		n.Kind = Element
		n.Tag = src.Data
		if len(src.Attr) > 0 {
			n.Attrs = make(map[string]string, len(src.Attr))
			for _, a := range src.Attr {
				n.Attrs[a.Key] = a.Val
			}
		}
	case html.TextNode:
		n.Kind = Text
		n.Data = src.Data
	case html.CommentNode:
		n.Kind = Comment
		n.Data = src.Data
	case html.DoctypeNode:
		n.Kind = Doctype
		n.Data = src.Data
	default:
		n.Kind = Element
		n.Tag = src.Data
	}
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode, html.TextNode, html.CommentNode, html.DoctypeNode:
			cc := convert(c)
			cc.parent = n
			n.Children = append(n.Children, cc)
		}
	}
	return n
}
