package page

import "golang.org/x/net/html"

// Target maps slot names to the resolved insertion points one section renderer
// writes into. Slots are resolved once at setup; a renderer receiving a Target
// never walks the tree itself. Missing slots simply stay absent from the map,
// and the renderer skips the corresponding output.
type Target map[string]*html.Node

// Slot returns the node bound to the named slot.
func (t Target) Slot(name string) (*html.Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t[name]
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// Has reports whether the named slot resolved to a node.
func (t Target) Has(name string) bool {
	_, ok := t.Slot(name)
	return ok
}
