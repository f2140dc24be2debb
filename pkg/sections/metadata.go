package sections

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
)

// Metadata sets the document title to the profile name.
type Metadata struct {
	logger *logrus.Logger
}

// NewMetadata constructs the metadata renderer.
func NewMetadata(opts Options) *Metadata {
	return &Metadata{logger: opts.Logger}
}

func (s *Metadata) Name() string {
	return "metadata"
}

func (s *Metadata) Render(_ context.Context, doc profile.Document, target page.Target) error {
	title, ok := target.Slot("title")
	if !ok {
		return nil
	}
	if doc.Profile.Name == "" {
		return nil
	}

	page.SetText(title, doc.Profile.Name)
	return nil
}
