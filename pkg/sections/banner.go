package sections

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
	"github.com/goliatone/go-profilegen/pkg/sanitize"
)

// Banner populates the hero area: name, combined title line, profile image,
// the three rich-text bio fields, the metrics strip, and the CV link. Each
// slot is gated on its own data; the rich-text fields are injected as raw
// markup (optionally passed through the configured sanitizer first).
type Banner struct {
	templates rendertemplate.TemplateRenderer
	richText  sanitize.RichText
	logger    *logrus.Logger
}

// NewBanner constructs the banner renderer.
func NewBanner(opts Options) *Banner {
	return &Banner{
		templates: opts.Templates,
		richText:  opts.RichText,
		logger:    opts.Logger,
	}
}

func (s *Banner) Name() string {
	return "banner"
}

type metricView struct {
	Value string
	Label string
}

func (s *Banner) Render(_ context.Context, doc profile.Document, target page.Target) error {
	person := doc.Profile

	if name, ok := target.Slot("name"); ok && person.Name != "" {
		page.SetText(name, person.Name)
	}

	if title, ok := target.Slot("title"); ok && person.Title != "" {
		line := person.Title
		if person.Organization != "" {
			line += " | " + person.Organization
		}
		page.SetText(title, line)
	}

	if image, ok := target.Slot("image"); ok && person.ProfileImage != "" {
		page.SetAttr(image, "src", person.ProfileImage)
		page.SetAttr(image, "alt", person.Name)
	}

	for _, field := range []struct {
		slot  string
		value string
	}{
		{slot: "intro", value: doc.Bio.Introduction},
		{slot: "background", value: doc.Bio.Background},
		{slot: "research", value: doc.Bio.ResearchFocus},
	} {
		node, ok := target.Slot(field.slot)
		if !ok || field.value == "" {
			continue
		}
		if err := page.SetFragment(node, s.richText.Sanitize(field.value)); err != nil {
			return fmt.Errorf("banner: set %s: %w", field.slot, err)
		}
	}

	if metrics, ok := target.Slot("metrics"); ok && len(person.Metrics) > 0 {
		views := make([]metricView, 0, len(person.Metrics))
		for _, metric := range person.Metrics {
			value, label := SplitMetric(metric)
			views = append(views, metricView{Value: value, Label: label})
		}

		markup, err := s.templates.RenderTemplate("templates/metrics", map[string]any{
			"Metrics": views,
		})
		if err != nil {
			return fmt.Errorf("banner: render metrics: %w", err)
		}
		if err := page.SetFragment(metrics, markup); err != nil {
			return fmt.Errorf("banner: set metrics: %w", err)
		}
	}

	if cv, ok := target.Slot("cv"); ok && person.CVPath != "" {
		page.SetAttr(cv, "href", person.CVPath)
	}

	return nil
}
