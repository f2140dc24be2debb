package page

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ClearChildren detaches every child of n. Renderers clear their container
// before repopulating it, which keeps the full render sequence idempotent.
func ClearChildren(n *html.Node) {
	if n == nil {
		return
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// SetText replaces the content of n with a single text node. The text is
// escaped on serialization, so this is safe for untrusted values.
func SetText(n *html.Node, text string) {
	if n == nil {
		return
	}
	ClearChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// SetFragment replaces the content of n with the parsed markup. The fragment
// is inserted verbatim; callers own the trust boundary for its source.
func SetFragment(n *html.Node, markup string) error {
	if n == nil {
		return fmt.Errorf("page: fragment target is nil")
	}
	ClearChildren(n)
	return AppendFragment(n, markup)
}

// AppendFragment parses markup in the context of n and appends the resulting
// nodes after the existing children.
func AppendFragment(n *html.Node, markup string) error {
	if n == nil {
		return fmt.Errorf("page: fragment target is nil")
	}

	context := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Data,
		DataAtom: n.DataAtom,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return fmt.Errorf("page: parse fragment: %w", err)
	}
	for _, node := range nodes {
		n.AppendChild(node)
	}
	return nil
}

// Attr returns the value of the named attribute on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute on n.
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
