// Package sanitize provides an opt-in policy for the rich-text bio fields.
// The profile document's introduction, background, and research-focus values
// are inserted into the page as raw markup: the data source is the trust
// boundary. Callers whose document comes from an untrusted source can attach
// this policy to the banner renderer; it stays off by default so trusted
// deployments keep their markup byte-for-byte.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// RichText sanitizes one rich-text value.
type RichText interface {
	Sanitize(raw string) string
}

type policy struct {
	inner *bluemonday.Policy
}

var (
	richTextOnce   sync.Once
	richTextPolicy *bluemonday.Policy
)

// NewRichText returns the shared rich-text policy: user-generated-content
// rules plus the inline formatting and anchor attributes the bio fields use.
func NewRichText() RichText {
	richTextOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("p", "span", "strong", "em", "ul", "ol", "li")
		p.AllowAttrs("target", "rel").OnElements("a")
		richTextPolicy = p
	})
	return policy{inner: richTextPolicy}
}

func (p policy) Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(p.inner.Sanitize(trimmed))
}

// Passthrough returns the input unchanged. It is the default used when the
// caller has not opted into sanitation.
type Passthrough struct{}

func (Passthrough) Sanitize(raw string) string {
	return raw
}
