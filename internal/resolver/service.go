package resolver

import (
	"context"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/testimonials"
	"github.com/goliatone/go-landing/landing"
	"github.com/goliatone/go-landing/pkg/interfaces"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

// ServiceOption configures resolver behaviour.
type ServiceOption func(*service)

// WithLogger attaches a logger for degradation diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	catalog landingtemplates.Catalog
	logger  interfaces.Logger
}

// NewService constructs the landing resolution service. The service is
// stateless between calls and safe for concurrent use.
func NewService(catalog landingtemplates.Catalog, opts ...ServiceOption) landing.Service {
	if catalog == nil {
		panic(landing.ErrCatalogRequired)
	}
	s := &service{
		catalog: catalog,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve re-resolves the landing page from scratch: template defaults plus
// tenant override, canonical section order, validated variants, and content
// gating. Malformed tenant data never fails the call; every degradation is
// absorbed into a safe default and logged.
func (s *service) Resolve(ctx context.Context, input landing.ResolveInput) ([]landing.ResolvedSection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	template, found := s.catalog.Get(input.TemplateID)
	if !found {
		logging.WithFields(s.logger, map[string]any{
			"template_id": input.TemplateID,
			"fallback_id": template.ID,
		}).Warn("resolver.template.fallback")
	}

	config := Merge(template, input.Override)
	order := ResolveOrder(config.SectionOrder, template.KnownTypes())

	gate := GateContext{
		Testimonials: testimonials.Normalize(input.RawTestimonials),
		ProductCount: input.ProductCount,
	}

	resolved := make([]landing.ResolvedSection, 0, len(order))
	for _, sectionType := range order {
		section := config.Sections[sectionType]
		variant := selectVariant(
			sectionType,
			section.Variant,
			template.Variants[sectionType],
			s.catalog.FallbackVariant(sectionType),
			s.logger,
		)
		resolved = append(resolved, landing.ResolvedSection{
			Type:       sectionType,
			Variant:    variant,
			Props:      section.Props,
			Renderable: isRenderable(sectionType, section, gate),
		})
	}

	return resolved, nil
}

// ResolveConfig exposes the merged, complete config for builder-UI editing
// without applying variant correction or gating.
func (s *service) ResolveConfig(ctx context.Context, templateID string, override landing.Override) (landing.Config, error) {
	if err := ctx.Err(); err != nil {
		return landing.Config{}, err
	}
	template, _ := s.catalog.Get(templateID)
	config := Merge(template, override)
	config.SectionOrder = ResolveOrder(config.SectionOrder, template.KnownTypes())
	return config, nil
}
