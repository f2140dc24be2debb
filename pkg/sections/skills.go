package sections

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
)

// Skills renders the five fixed categories in fixed order. A category whose
// field is absent or empty produces no block at all.
type Skills struct {
	templates rendertemplate.TemplateRenderer
	logger    *logrus.Logger
}

// NewSkills constructs the skills renderer.
func NewSkills(opts Options) *Skills {
	return &Skills{templates: opts.Templates, logger: opts.Logger}
}

func (s *Skills) Name() string {
	return "skills"
}

type skillGroupView struct {
	Label  string
	Skills []string
}

func (s *Skills) Render(_ context.Context, doc profile.Document, target page.Target) error {
	container, ok := target.Slot("container")
	if !ok {
		return nil
	}

	categories := []struct {
		label  string
		skills []string
	}{
		{label: "Salesforce Platform", skills: doc.Skills.Salesforce},
		{label: "Integration & Tools", skills: doc.Skills.Integration},
		{label: "Analytics & Data", skills: doc.Skills.Analytics},
		{label: "Productivity Tools", skills: doc.Skills.Productivity},
		{label: "Professional Skills", skills: doc.Skills.Professional},
	}

	var groups []skillGroupView
	for _, category := range categories {
		if len(category.skills) == 0 {
			continue
		}
		groups = append(groups, skillGroupView{Label: category.label, Skills: category.skills})
	}
	if len(groups) == 0 {
		return nil
	}

	markup, err := s.templates.RenderTemplate("templates/skills", map[string]any{
		"Groups": groups,
	})
	if err != nil {
		return fmt.Errorf("skills: render groups: %w", err)
	}
	if err := page.SetFragment(container, markup); err != nil {
		return fmt.Errorf("skills: set groups: %w", err)
	}
	return nil
}
