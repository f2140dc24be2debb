package orchestrator

import "github.com/goliatone/go-profilegen/pkg/page"

// Status reports whether the pipeline populated the page or left it in its
// authored state.
type Status string

const (
	// StatusRendered means the profile document was decoded and every section
	// had a chance to run.
	StatusRendered Status = "rendered"

	// StatusUnavailable means the profile document could not be fetched or
	// decoded. The page is returned untouched so static fallback content keeps
	// working.
	StatusUnavailable Status = "unavailable"
)

// Result carries the populated page along with the pipeline outcome.
type Result struct {
	Status Status
	Page   *page.Page
}

// Rendered reports whether the document made it into the page.
func (r Result) Rendered() bool {
	return r.Status == StatusRendered
}

// HTML serializes the result page.
func (r Result) HTML() ([]byte, error) {
	return r.Page.HTML()
}
