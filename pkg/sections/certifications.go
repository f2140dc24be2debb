package sections

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
)

// Certifications clears and rebuilds one row per entry. Dates pass through
// the month-abbreviation table. Unlike the other sections, a missing
// container is reported as an error-level log entry and missing data as an
// informational one.
type Certifications struct {
	templates rendertemplate.TemplateRenderer
	logger    *logrus.Logger
}

// NewCertifications constructs the certifications renderer.
func NewCertifications(opts Options) *Certifications {
	return &Certifications{templates: opts.Templates, logger: opts.Logger}
}

func (s *Certifications) Name() string {
	return "certifications"
}

type certificationView struct {
	Name         string
	CredentialID string
	Date         string
}

func (s *Certifications) Render(_ context.Context, doc profile.Document, target page.Target) error {
	grid, ok := target.Slot("grid")
	if !ok {
		s.logger.WithField("section", s.Name()).Error("certifications container not found")
		return nil
	}
	if len(doc.Certifications) == 0 {
		s.logger.WithField("section", s.Name()).Info("no certification data to render")
		return nil
	}

	views := make([]certificationView, 0, len(doc.Certifications))
	for _, cert := range doc.Certifications {
		views = append(views, certificationView{
			Name:         cert.Name,
			CredentialID: cert.CredentialID,
			Date:         cert.Date,
		})
	}

	markup, err := s.templates.RenderTemplate("templates/certifications", map[string]any{
		"Certifications": views,
	})
	if err != nil {
		return fmt.Errorf("certifications: render rows: %w", err)
	}
	if err := page.SetFragment(grid, markup); err != nil {
		return fmt.Errorf("certifications: set rows: %w", err)
	}
	return nil
}
