package profilegen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-profilegen/pkg/orchestrator"
	"github.com/goliatone/go-profilegen/pkg/profile"
	"github.com/goliatone/go-profilegen/pkg/sections"
)

// Result aliases the orchestrator result for callers that only import the
// root package.
type Result = orchestrator.Result

// Status reports the pipeline outcome.
type Status = orchestrator.Status

// Pipeline outcomes re-exported for convenience.
const (
	StatusRendered    = orchestrator.StatusRendered
	StatusUnavailable = orchestrator.StatusUnavailable
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to hold the pipeline and run it repeatedly.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderPage loads the profile document from source, populates the host page
// markup, and returns the serialized result. It is the simplest entry point
// for callers that just want HTML output. When the document is unavailable
// the page comes back unchanged.
func RenderPage(ctx context.Context, source profile.Source, pageHTML []byte, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	result, err := gen.Run(ctx, orchestrator.Request{
		Source:   source,
		PageHTML: pageHTML,
	})
	if err != nil {
		return nil, err
	}
	return result.HTML()
}

// RenderPageFromPayload populates the host page using a pre-loaded payload,
// bypassing the loader stage while still delegating to the orchestrator.
func RenderPageFromPayload(ctx context.Context, payload profile.Payload, pageHTML []byte, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	result, err := gen.Run(ctx, orchestrator.Request{
		Payload:  &payload,
		PageHTML: pageHTML,
	})
	if err != nil {
		return nil, err
	}
	return result.HTML()
}

// WithThemeSelector passes a go-theme selector through to the section
// pipeline so base color tokens can be resolved ahead of the document's own
// overrides.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) orchestrator.Option {
	return orchestrator.WithSectionOptions(sections.Options{
		ThemeSelector: selector,
		ThemeName:     name,
		ThemeVariant:  variant,
	})
}
