package sections

import (
	"context"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
)

// colorTokens is the fixed set of theme color tokens the document may carry.
// Each present token sets the matching --<token> custom property on the root
// element; absent tokens leave the existing declaration alone.
var colorTokens = []string{
	"primary",
	"secondary",
	"accent",
	"background",
	"surface",
	"textDark",
	"textLight",
}

// Theme applies color tokens onto the root element's style attribute. An
// optional go-theme selector supplies base tokens that the document's
// themeColors override.
type Theme struct {
	selector theme.ThemeSelector
	name     string
	variant  string
	logger   *logrus.Logger
}

// NewTheme constructs the theme renderer.
func NewTheme(opts Options) *Theme {
	return &Theme{
		selector: opts.ThemeSelector,
		name:     opts.ThemeName,
		variant:  opts.ThemeVariant,
		logger:   opts.Logger,
	}
}

func (s *Theme) Name() string {
	return "theme"
}

func (s *Theme) Render(_ context.Context, doc profile.Document, target page.Target) error {
	root, ok := target.Slot("root")
	if !ok {
		return nil
	}

	tokens := s.baseTokens()
	for _, token := range colorTokens {
		if value, present := doc.SiteConfig.ThemeColors[token]; present && value != "" {
			tokens[token] = value
		}
	}
	if len(tokens) == 0 {
		return nil
	}

	style, _ := page.Attr(root, "style")
	for _, token := range colorTokens {
		value, present := tokens[token]
		if !present {
			continue
		}
		style = setStyleProperty(style, "--"+token, value)
	}
	page.SetAttr(root, "style", style)
	return nil
}

func (s *Theme) baseTokens() map[string]string {
	tokens := make(map[string]string)
	if s.selector == nil {
		return tokens
	}

	selection, err := s.selector.Select(s.name, s.variant)
	if err != nil {
		s.logger.WithError(err).WithField("theme", s.name).Warn("base theme unavailable, using document colors only")
		return tokens
	}
	if selection == nil || selection.Manifest == nil {
		return tokens
	}

	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}

// setStyleProperty updates one declaration inside an inline style string,
// preserving every other declaration and the existing order.
func setStyleProperty(style, property, value string) string {
	var out []string
	replaced := false

	for _, declaration := range strings.Split(style, ";") {
		trimmed := strings.TrimSpace(declaration)
		if trimmed == "" {
			continue
		}
		name, _, found := strings.Cut(trimmed, ":")
		if found && strings.TrimSpace(name) == property {
			out = append(out, property+": "+value)
			replaced = true
			continue
		}
		out = append(out, trimmed)
	}
	if !replaced {
		out = append(out, property+": "+value)
	}
	return strings.Join(out, "; ")
}
