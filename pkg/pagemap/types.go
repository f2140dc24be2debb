package pagemap

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-profilegen/pkg/page"
)

// Map binds section names to the named insertion points each section renderer
// writes into. It replaces scattered selector lookups with one explicit
// mapping resolved up front; renderers only ever see their own resolved
// slots. Safe for concurrent readers when treated as immutable after load.
type Map struct {
	sections map[string]Section
}

// Section lists the slots one renderer uses. Slot values name an element id;
// the "tag:" prefix selects the first element with that tag instead (used for
// the document <title> and the root <html> element).
type Section struct {
	Slots map[string]string `json:"slots" yaml:"slots"`
}

// Section returns the slot configuration for the named section.
func (m *Map) Section(name string) (Section, bool) {
	if m == nil {
		return Section{}, false
	}
	s, ok := m.sections[name]
	return s, ok
}

// Empty reports whether the map holds any sections.
func (m *Map) Empty() bool {
	return m == nil || len(m.sections) == 0
}

// Resolve walks the page once and returns a Target per section. Slots whose
// element is absent from the page are left out of the Target, so every
// renderer degrades gracefully per slot.
func (m *Map) Resolve(p *page.Page) map[string]page.Target {
	if m == nil || p == nil {
		return map[string]page.Target{}
	}
	targets := make(map[string]page.Target, len(m.sections))

	for name, section := range m.sections {
		target := make(page.Target, len(section.Slots))
		for slot, ref := range section.Slots {
			node := resolveRef(p, ref)
			if node == nil {
				continue
			}
			target[slot] = node
		}
		targets[name] = target
	}
	return targets
}

func resolveRef(p *page.Page, ref string) *html.Node {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return nil
	}
	if tag, ok := strings.CutPrefix(trimmed, "tag:"); ok {
		return p.ElementByTag(tag)
	}
	return p.ElementByID(trimmed)
}
