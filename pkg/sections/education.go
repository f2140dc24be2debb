package sections

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
)

// Education clears and rebuilds one row per entry: the normalized degree plus
// institution and location joined with a comma.
type Education struct {
	templates rendertemplate.TemplateRenderer
	logger    *logrus.Logger
}

// NewEducation constructs the education renderer.
func NewEducation(opts Options) *Education {
	return &Education{templates: opts.Templates, logger: opts.Logger}
}

func (s *Education) Name() string {
	return "education"
}

type educationView struct {
	Degree      string
	Institution string
}

func (s *Education) Render(_ context.Context, doc profile.Document, target page.Target) error {
	grid, ok := target.Slot("grid")
	if !ok || len(doc.Education) == 0 {
		return nil
	}

	views := make([]educationView, 0, len(doc.Education))
	for _, entry := range doc.Education {
		views = append(views, educationView{
			Degree:      NormalizeDegree(entry.Degree),
			Institution: joinInstitution(entry.Institution, entry.Location),
		})
	}

	markup, err := s.templates.RenderTemplate("templates/education", map[string]any{
		"Education": views,
	})
	if err != nil {
		return fmt.Errorf("education: render rows: %w", err)
	}
	if err := page.SetFragment(grid, markup); err != nil {
		return fmt.Errorf("education: set rows: %w", err)
	}
	return nil
}

func joinInstitution(institution, location string) string {
	switch {
	case institution != "" && location != "":
		return institution + ", " + location
	case institution != "":
		return institution
	default:
		return location
	}
}
