package pagemap

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*.yaml
var embeddedDefaults embed.FS

// EmbeddedFS exposes the built-in page map matching the insertion point ids
// of the stock page template.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		return embeddedDefaults
	}
	return sub
}

// Default loads the embedded page map. It panics when the embedded bundle is
// malformed, which can only happen through a bad edit of this module itself.
func Default() *Map {
	m, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return m
}
