package page

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Page wraps a parsed HTML document tree. A Page is exclusively owned by one
// render pass; nothing here is safe for concurrent mutation.
type Page struct {
	root *html.Node
}

// Parse reads an HTML document from r and wraps it in a Page.
func Parse(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("page: parse document: %w", err)
	}
	return &Page{root: root}, nil
}

// ParseBytes parses an in-memory HTML document.
func ParseBytes(data []byte) (*Page, error) {
	return Parse(bytes.NewReader(data))
}

// Root returns the document root node.
func (p *Page) Root() *html.Node {
	return p.root
}

// Render serializes the document tree to w.
func (p *Page) Render(w io.Writer) error {
	if p == nil || p.root == nil {
		return fmt.Errorf("page: document is empty")
	}
	if err := html.Render(w, p.root); err != nil {
		return fmt.Errorf("page: render document: %w", err)
	}
	return nil
}

// HTML serializes the document tree and returns the bytes.
func (p *Page) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ElementByID returns the first element carrying the given id attribute, or
// nil when the page does not expose that insertion point.
func (p *Page) ElementByID(id string) *html.Node {
	if p == nil || p.root == nil || id == "" {
		return nil
	}
	return findNode(p.root, func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// ElementByTag returns the first element with the given tag name, or nil.
func (p *Page) ElementByTag(tag string) *html.Node {
	if p == nil || p.root == nil || tag == "" {
		return nil
	}
	lowered := strings.ToLower(tag)
	return findNode(p.root, func(n *html.Node) bool {
		return n.Data == lowered
	})
}

// DocumentElement returns the <html> element itself, used for document-wide
// attributes such as theme CSS variables.
func (p *Page) DocumentElement() *html.Node {
	return p.ElementByTag("html")
}

func findNode(root *html.Node, match func(*html.Node) bool) *html.Node {
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && match(n) {
			return n
		}
		if found := findNode(n, match); found != nil {
			return found
		}
	}
	return nil
}
