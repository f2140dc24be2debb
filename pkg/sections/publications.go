package sections

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
)

// defaultPublicationImage is the placeholder shown when an entry carries no
// image of its own.
const defaultPublicationImage = "images/publication-placeholder.jpg"

// Publications clears and rebuilds one card per publication entry. A direct
// paper link takes precedence over a status placeholder; the two never render
// together.
type Publications struct {
	templates rendertemplate.TemplateRenderer
	logger    *logrus.Logger
}

// NewPublications constructs the publications renderer.
func NewPublications(opts Options) *Publications {
	return &Publications{templates: opts.Templates, logger: opts.Logger}
}

func (s *Publications) Name() string {
	return "publications"
}

type publicationView struct {
	Title       string
	Meta        string
	Description string
	Image       string
	PaperHref   string
	Status      string
	ProjectHref string
}

func (s *Publications) Render(_ context.Context, doc profile.Document, target page.Target) error {
	grid, ok := target.Slot("grid")
	if !ok || len(doc.Publications) == 0 {
		return nil
	}

	views := make([]publicationView, 0, len(doc.Publications))
	for _, pub := range doc.Publications {
		view := publicationView{
			Title:       pub.Title,
			Meta:        publicationMeta(pub),
			Description: pub.Description,
			Image:       pub.Image,
			PaperHref:   pub.Links.Paper,
			ProjectHref: pub.Links.GitHub,
		}
		if view.Image == "" {
			view.Image = defaultPublicationImage
		}
		if view.PaperHref == "" {
			view.Status = pub.Links.Status
		}
		views = append(views, view)
	}

	markup, err := s.templates.RenderTemplate("templates/publications", map[string]any{
		"Publications": views,
	})
	if err != nil {
		return fmt.Errorf("publications: render cards: %w", err)
	}
	if err := page.SetFragment(grid, markup); err != nil {
		return fmt.Errorf("publications: set cards: %w", err)
	}
	return nil
}

// publicationMeta combines authors and venue into one line, falling back to
// venue-only when the entry lists no authors.
func publicationMeta(pub profile.Publication) string {
	switch {
	case pub.Authors != "" && pub.Venue != "":
		return pub.Authors + " · " + pub.Venue
	case pub.Authors != "":
		return pub.Authors
	default:
		return pub.Venue
	}
}
