package render

import (
	"context"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
)

// Section maps one field of the profile document onto one region of the page.
// Implementations only act when both the data and the target slots are
// present; otherwise Render is a no-op. Every implementation clears its
// container before repopulating, so repeating the full render sequence leaves
// the page in the same state.
type Section interface {
	Name() string
	Render(ctx context.Context, doc profile.Document, target page.Target) error
}
