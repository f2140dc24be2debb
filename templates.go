package profilegen

import (
	"io/fs"

	"github.com/goliatone/go-profilegen/pkg/pagemap"
	"github.com/goliatone/go-profilegen/pkg/sections"
)

// EmbeddedTemplates exposes the built-in section templates so callers can
// reuse or extend them without importing the sections package directly.
func EmbeddedTemplates() fs.FS {
	return sections.TemplatesFS()
}

// EmbeddedPageMap returns the default insertion-point map binding section
// slots to element ids.
func EmbeddedPageMap() *pagemap.Map {
	return pagemap.Default()
}
