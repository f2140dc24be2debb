package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	internalLoader "github.com/goliatone/go-profilegen/internal/profile/loader"
	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/pagemap"
	"github.com/goliatone/go-profilegen/pkg/profile"
	"github.com/goliatone/go-profilegen/pkg/render"
	"github.com/goliatone/go-profilegen/pkg/sections"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom profile loader.
func WithLoader(loader profile.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions configures the built-in loader. Ignored when WithLoader
// supplies a full implementation.
func WithLoaderOptions(options ...profile.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = append(o.loaderOptions, options...)
	}
}

// WithRegistry injects a section registry. The registry's registration order
// is the dispatch order.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithSectionOptions configures the default section registry. Ignored when
// WithRegistry supplies a registry.
func WithSectionOptions(opts sections.Options) Option {
	return func(o *Orchestrator) {
		o.sectionOptions = opts
	}
}

// WithPageMap overrides the insertion-point map that binds section slots to
// page elements.
func WithPageMap(m *pagemap.Map) Option {
	return func(o *Orchestrator) {
		o.pageMap = m
		o.pageMapSpecified = true
	}
}

// WithLogger injects the logger used for pipeline diagnostics.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the full pipeline from profile document to
// populated page. It applies sensible defaults (built-in loader, embedded page
// map, default section sequence) while remaining open to dependency injection
// for advanced callers.
type Orchestrator struct {
	loader           profile.Loader
	loaderOptions    []profile.LoaderOption
	registry         *render.Registry
	sectionOptions   sections.Options
	pageMap          *pagemap.Map
	pageMapSpecified bool
	logger           *logrus.Logger
	initialiseErr    error
	defaultsApplied  bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to populate a page from a profile
// document.
type Request struct {
	// Source identifies where the profile document lives. Optional when
	// Payload is supplied.
	Source profile.Source

	// Payload allows callers to bypass the loader when they already have the
	// raw document bytes.
	Payload *profile.Payload

	// Page is the parsed host page to populate. Optional when PageHTML is
	// supplied.
	Page *page.Page

	// PageHTML is the raw host page markup. Parsed when Page is nil.
	PageHTML []byte
}

// Run executes the loader → decode → section dispatch sequence against the
// host page. A document that cannot be fetched or decoded is not an error:
// the page comes back untouched with StatusUnavailable so its authored
// fallback content stands. Individual section failures are logged and the
// remaining sections still run.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	host, err := o.resolvePage(req)
	if err != nil {
		return Result{}, err
	}

	doc, ok := o.resolveDocument(ctx, req)
	if !ok {
		return Result{Status: StatusUnavailable, Page: host}, nil
	}

	targets := o.pageMap.Resolve(host)
	for _, section := range o.registry.Ordered() {
		if err := section.Render(ctx, doc, targets[section.Name()]); err != nil {
			o.logger.WithError(err).WithField("section", section.Name()).Error("section failed, continuing")
		}
	}

	return Result{Status: StatusRendered, Page: host}, nil
}

func (o *Orchestrator) resolvePage(req Request) (*page.Page, error) {
	if req.Page != nil {
		return req.Page, nil
	}
	if len(req.PageHTML) == 0 {
		return nil, errors.New("orchestrator: page or page html is required")
	}
	host, err := page.ParseBytes(req.PageHTML)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse page: %w", err)
	}
	return host, nil
}

// resolveDocument fetches and decodes the profile document. The boolean is
// false when the document is unavailable; the failure has already been logged.
func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (profile.Document, bool) {
	payload := req.Payload
	if payload == nil {
		if req.Source == nil {
			o.logger.Error("no profile source configured, leaving page untouched")
			return profile.Document{}, false
		}
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			o.logger.WithError(err).WithField("source", req.Source.Location()).Error("profile document unavailable, leaving page untouched")
			return profile.Document{}, false
		}
		payload = &loaded
	}

	doc, err := payload.Decode()
	if err != nil {
		o.logger.WithError(err).Error("profile document malformed, leaving page untouched")
		return profile.Document{}, false
	}
	return doc, true
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		if o.sectionOptions.Logger != nil {
			o.logger = o.sectionOptions.Logger
		} else {
			o.logger = logrus.StandardLogger()
		}
	}
	if o.loader == nil {
		o.loader = internalLoader.New(profile.NewLoaderOptions(o.loaderOptions...))
	}
	if !o.pageMapSpecified {
		o.pageMap = pagemap.Default()
	}
	if o.registry == nil {
		if o.sectionOptions.Logger == nil {
			o.sectionOptions.Logger = o.logger
		}
		registry, err := sections.DefaultRegistry(o.sectionOptions)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default sections: %w", err)
		} else {
			o.registry = registry
		}
	}

	o.defaultsApplied = true
}
