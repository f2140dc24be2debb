package sections

import (
	"fmt"
	"io/fs"
	"sync"

	theme "github.com/goliatone/go-theme"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/render"
	rendertemplate "github.com/goliatone/go-profilegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-profilegen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-profilegen/pkg/sanitize"
)

// Options carries the collaborators shared by every section renderer.
type Options struct {
	// Templates renders the section markup fragments. When nil, an engine
	// backed by the embedded template bundle is constructed.
	Templates rendertemplate.TemplateRenderer

	// TemplateFS overrides the template bundle used for the default engine.
	TemplateFS fs.FS

	// Logger receives section diagnostics. Defaults to the logrus standard
	// logger.
	Logger *logrus.Logger

	// RichText processes the bio rich-text fields before injection. Defaults
	// to the passthrough, which preserves the document markup verbatim.
	RichText sanitize.RichText

	// ThemeSelector optionally supplies base theme tokens that the document's
	// themeColors override. Nil means document colors only.
	ThemeSelector theme.ThemeSelector

	// ThemeName and ThemeVariant pick the base theme when a selector is set.
	ThemeName    string
	ThemeVariant string
}

var monthFilterOnce sync.Once

func (o Options) resolve() (Options, error) {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.RichText == nil {
		o.RichText = sanitize.Passthrough{}
	}
	if o.Templates == nil {
		files := o.TemplateFS
		if files == nil {
			files = TemplatesFS()
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(files),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return Options{}, fmt.Errorf("sections: configure template engine: %w", err)
		}
		o.Templates = engine
	}

	// Filter registration is global in the underlying engine; do it once.
	var filterErr error
	monthFilterOnce.Do(func() {
		filterErr = o.Templates.RegisterFilter("monthabbr", func(input any, _ any) (any, error) {
			if input == nil {
				return "", nil
			}
			return AbbreviateMonths(fmt.Sprint(input)), nil
		})
	})
	if filterErr != nil {
		return Options{}, fmt.Errorf("sections: register monthabbr filter: %w", filterErr)
	}

	return o, nil
}

// DefaultRegistry builds the full section sequence in its fixed dispatch
// order: metadata, header, banner, publications, projects, skills,
// certifications, education, theme.
func DefaultRegistry(opts Options) (*render.Registry, error) {
	resolved, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	registry.MustRegister(
		NewMetadata(resolved),
		NewHeader(resolved),
		NewBanner(resolved),
		NewPublications(resolved),
		NewProjects(resolved),
		NewSkills(resolved),
		NewCertifications(resolved),
		NewEducation(resolved),
		NewTheme(resolved),
	)
	return registry, nil
}
