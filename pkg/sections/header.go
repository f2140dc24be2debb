package sections

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
)

// Header writes the emphasized site name into the logo slot and rebuilds the
// navigation list: primary links first, then up to four contact links (email,
// LinkedIn, GitHub, Google Scholar) in that fixed order, each only when its
// field is present.
type Header struct {
	templates rendertemplate.TemplateRenderer
	logger    *logrus.Logger
}

// NewHeader constructs the header renderer.
func NewHeader(opts Options) *Header {
	return &Header{templates: opts.Templates, logger: opts.Logger}
}

func (s *Header) Name() string {
	return "header"
}

type navLinkView struct {
	Href     string
	Label    string
	External bool
}

func (s *Header) Render(_ context.Context, doc profile.Document, target page.Target) error {
	if logo, ok := target.Slot("logo"); ok && doc.Profile.Name != "" {
		markup := "<strong>" + html.EscapeString(doc.Profile.Name) + "</strong>"
		if err := page.SetFragment(logo, markup); err != nil {
			return fmt.Errorf("header: set logo: %w", err)
		}
	}

	nav, ok := target.Slot("nav")
	if !ok {
		return nil
	}

	links := make([]navLinkView, 0, len(doc.Navigation))
	for _, item := range doc.Navigation {
		links = append(links, navLinkView{Href: item.Href, Label: item.Label})
	}

	contacts := contactLinks(doc.Contact)
	if len(links) == 0 && len(contacts) == 0 {
		return nil
	}

	markup, err := s.templates.RenderTemplate("templates/nav", map[string]any{
		"Links":    links,
		"Contacts": contacts,
	})
	if err != nil {
		return fmt.Errorf("header: render navigation: %w", err)
	}
	if err := page.SetFragment(nav, markup); err != nil {
		return fmt.Errorf("header: set navigation: %w", err)
	}
	return nil
}

func contactLinks(contact profile.Contact) []navLinkView {
	var out []navLinkView
	if contact.Email != "" {
		out = append(out, navLinkView{Href: "mailto:" + contact.Email, Label: "Email"})
	}
	if contact.LinkedIn != "" {
		out = append(out, navLinkView{Href: contact.LinkedIn, Label: "LinkedIn", External: true})
	}
	if contact.GitHub != "" {
		out = append(out, navLinkView{Href: contact.GitHub, Label: "GitHub", External: true})
	}
	if contact.GoogleScholar != "" {
		out = append(out, navLinkView{Href: contact.GoogleScholar, Label: "Google Scholar", External: true})
	}
	return out
}
