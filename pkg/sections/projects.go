package sections

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
)

// Projects clears and rebuilds one card per project entry. The tech-stack
// pill list keeps the first four technologies in their given order.
type Projects struct {
	templates rendertemplate.TemplateRenderer
	logger    *logrus.Logger
}

// NewProjects constructs the projects renderer.
func NewProjects(opts Options) *Projects {
	return &Projects{templates: opts.Templates, logger: opts.Logger}
}

func (s *Projects) Name() string {
	return "projects"
}

type projectView struct {
	Title       string
	Year        string
	Description string
	Metrics     []metricView
	TechStack   []string
}

func (s *Projects) Render(_ context.Context, doc profile.Document, target page.Target) error {
	grid, ok := target.Slot("grid")
	if !ok || len(doc.Projects) == 0 {
		return nil
	}

	views := make([]projectView, 0, len(doc.Projects))
	for _, project := range doc.Projects {
		view := projectView{
			Title:       project.Title,
			Year:        project.Year,
			Description: project.ShortDescription,
		}
		for _, metric := range project.Metrics {
			view.Metrics = append(view.Metrics, metricView{Value: metric.Value, Label: metric.Label})
		}
		view.TechStack = project.TechStack
		if len(view.TechStack) > maxTechStack {
			view.TechStack = view.TechStack[:maxTechStack]
		}
		views = append(views, view)
	}

	markup, err := s.templates.RenderTemplate("templates/projects", map[string]any{
		"Projects": views,
	})
	if err != nil {
		return fmt.Errorf("projects: render cards: %w", err)
	}
	if err := page.SetFragment(grid, markup); err != nil {
		return fmt.Errorf("projects: set cards: %w", err)
	}
	return nil
}
