package landing

import "context"

// ResolveInput bundles the three independently fetched inputs a resolution
// needs. The surrounding system fetches them however it likes; the engine only
// requires that all are present before Resolve is called.
type ResolveInput struct {
	TemplateID      string
	Override        Override
	RawTestimonials []any
	ProductCount    int
}

// Service exposes landing page resolution to external consumers. Resolve is
// pure and safe for concurrent use; it never fails on malformed tenant data,
// only on context cancellation.
type Service interface {
	Resolve(ctx context.Context, input ResolveInput) ([]ResolvedSection, error)
	ResolveConfig(ctx context.Context, templateID string, override Override) (Config, error)
}
